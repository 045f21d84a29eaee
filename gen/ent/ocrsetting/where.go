// Code generated by ent, DO NOT EDIT.

package ocrsetting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLTE(FieldID, id))
}

// Function applies equality check predicate on the "function" field. It's identical to FunctionEQ.
func Function(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldFunction, v))
}

// PromptTemplate applies equality check predicate on the "prompt_template" field. It's identical to PromptTemplateEQ.
func PromptTemplate(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldPromptTemplate, v))
}

// JSONExample applies equality check predicate on the "json_example" field. It's identical to JSONExampleEQ.
func JSONExample(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldJSONExample, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldUpdatedAt, v))
}

// FunctionEQ applies the EQ predicate on the "function" field.
func FunctionEQ(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldFunction, v))
}

// FunctionNEQ applies the NEQ predicate on the "function" field.
func FunctionNEQ(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNEQ(FieldFunction, v))
}

// FunctionIn applies the In predicate on the "function" field.
func FunctionIn(vs ...string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldIn(FieldFunction, vs...))
}

// FunctionNotIn applies the NotIn predicate on the "function" field.
func FunctionNotIn(vs ...string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNotIn(FieldFunction, vs...))
}

// FunctionGT applies the GT predicate on the "function" field.
func FunctionGT(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGT(FieldFunction, v))
}

// FunctionGTE applies the GTE predicate on the "function" field.
func FunctionGTE(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGTE(FieldFunction, v))
}

// FunctionLT applies the LT predicate on the "function" field.
func FunctionLT(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLT(FieldFunction, v))
}

// FunctionLTE applies the LTE predicate on the "function" field.
func FunctionLTE(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLTE(FieldFunction, v))
}

// FunctionContains applies the Contains predicate on the "function" field.
func FunctionContains(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldContains(FieldFunction, v))
}

// FunctionHasPrefix applies the HasPrefix predicate on the "function" field.
func FunctionHasPrefix(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldHasPrefix(FieldFunction, v))
}

// FunctionHasSuffix applies the HasSuffix predicate on the "function" field.
func FunctionHasSuffix(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldHasSuffix(FieldFunction, v))
}

// FunctionEqualFold applies the EqualFold predicate on the "function" field.
func FunctionEqualFold(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEqualFold(FieldFunction, v))
}

// FunctionContainsFold applies the ContainsFold predicate on the "function" field.
func FunctionContainsFold(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldContainsFold(FieldFunction, v))
}

// PromptTemplateEQ applies the EQ predicate on the "prompt_template" field.
func PromptTemplateEQ(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldPromptTemplate, v))
}

// PromptTemplateNEQ applies the NEQ predicate on the "prompt_template" field.
func PromptTemplateNEQ(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNEQ(FieldPromptTemplate, v))
}

// PromptTemplateIn applies the In predicate on the "prompt_template" field.
func PromptTemplateIn(vs ...string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldIn(FieldPromptTemplate, vs...))
}

// PromptTemplateNotIn applies the NotIn predicate on the "prompt_template" field.
func PromptTemplateNotIn(vs ...string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNotIn(FieldPromptTemplate, vs...))
}

// PromptTemplateGT applies the GT predicate on the "prompt_template" field.
func PromptTemplateGT(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGT(FieldPromptTemplate, v))
}

// PromptTemplateGTE applies the GTE predicate on the "prompt_template" field.
func PromptTemplateGTE(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGTE(FieldPromptTemplate, v))
}

// PromptTemplateLT applies the LT predicate on the "prompt_template" field.
func PromptTemplateLT(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLT(FieldPromptTemplate, v))
}

// PromptTemplateLTE applies the LTE predicate on the "prompt_template" field.
func PromptTemplateLTE(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLTE(FieldPromptTemplate, v))
}

// PromptTemplateContains applies the Contains predicate on the "prompt_template" field.
func PromptTemplateContains(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldContains(FieldPromptTemplate, v))
}

// PromptTemplateHasPrefix applies the HasPrefix predicate on the "prompt_template" field.
func PromptTemplateHasPrefix(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldHasPrefix(FieldPromptTemplate, v))
}

// PromptTemplateHasSuffix applies the HasSuffix predicate on the "prompt_template" field.
func PromptTemplateHasSuffix(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldHasSuffix(FieldPromptTemplate, v))
}

// PromptTemplateEqualFold applies the EqualFold predicate on the "prompt_template" field.
func PromptTemplateEqualFold(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEqualFold(FieldPromptTemplate, v))
}

// PromptTemplateContainsFold applies the ContainsFold predicate on the "prompt_template" field.
func PromptTemplateContainsFold(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldContainsFold(FieldPromptTemplate, v))
}

// JSONExampleEQ applies the EQ predicate on the "json_example" field.
func JSONExampleEQ(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldJSONExample, v))
}

// JSONExampleNEQ applies the NEQ predicate on the "json_example" field.
func JSONExampleNEQ(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNEQ(FieldJSONExample, v))
}

// JSONExampleIn applies the In predicate on the "json_example" field.
func JSONExampleIn(vs ...string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldIn(FieldJSONExample, vs...))
}

// JSONExampleNotIn applies the NotIn predicate on the "json_example" field.
func JSONExampleNotIn(vs ...string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNotIn(FieldJSONExample, vs...))
}

// JSONExampleGT applies the GT predicate on the "json_example" field.
func JSONExampleGT(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGT(FieldJSONExample, v))
}

// JSONExampleGTE applies the GTE predicate on the "json_example" field.
func JSONExampleGTE(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGTE(FieldJSONExample, v))
}

// JSONExampleLT applies the LT predicate on the "json_example" field.
func JSONExampleLT(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLT(FieldJSONExample, v))
}

// JSONExampleLTE applies the LTE predicate on the "json_example" field.
func JSONExampleLTE(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLTE(FieldJSONExample, v))
}

// JSONExampleContains applies the Contains predicate on the "json_example" field.
func JSONExampleContains(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldContains(FieldJSONExample, v))
}

// JSONExampleHasPrefix applies the HasPrefix predicate on the "json_example" field.
func JSONExampleHasPrefix(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldHasPrefix(FieldJSONExample, v))
}

// JSONExampleHasSuffix applies the HasSuffix predicate on the "json_example" field.
func JSONExampleHasSuffix(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldHasSuffix(FieldJSONExample, v))
}

// JSONExampleEqualFold applies the EqualFold predicate on the "json_example" field.
func JSONExampleEqualFold(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEqualFold(FieldJSONExample, v))
}

// JSONExampleContainsFold applies the ContainsFold predicate on the "json_example" field.
func JSONExampleContainsFold(v string) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldContainsFold(FieldJSONExample, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OCRSetting {
	return predicate.OCRSetting(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OCRSetting) predicate.OCRSetting {
	return predicate.OCRSetting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OCRSetting) predicate.OCRSetting {
	return predicate.OCRSetting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OCRSetting) predicate.OCRSetting {
	return predicate.OCRSetting(sql.NotPredicates(p))
}
