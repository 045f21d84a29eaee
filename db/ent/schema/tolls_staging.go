package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/db/ent/schema/utils"
)

// TollsStaging holds a provider response pending projection. One row per
// page result; the unique index makes the failure-path upsert safe.
type TollsStaging struct{ ent.Schema }

func (TollsStaging) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tolls_staging"},
	}
}

func (TollsStaging) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("capture_id", uuid.UUID{}).Immutable(),
		field.UUID("page_result_id", uuid.UUID{}).Immutable(),
		field.JSON("ai_response", json.RawMessage{}).Optional(),
		field.String("status").Default(string(constants.StagingPending)).
			Validate(utils.EnumValidator(
				string(constants.StagingPending),
				string(constants.StagingProcessing),
				string(constants.StagingCompleted),
				string(constants.StagingFailed),
			)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TollsStaging) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("page_result_id").Unique(),
		index.Fields("capture_id", "status"),
	}
}
