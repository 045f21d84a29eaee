package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Toll is an authoritative toll transaction. (transaction_date, etag_id)
// identifies a toll; the unique index makes the database the duplicate
// arbiter so concurrent projectors cannot double-insert.
type Toll struct{ ent.Schema }

func (Toll) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tolls"},
	}
}

func (Toll) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Time("transaction_date"),
		field.String("tolling_point").Optional(),
		field.String("etag_id").NotEmpty(),
		field.Float("net_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.UUID("capture_id", uuid.UUID{}),
		field.UUID("page_result_id", uuid.UUID{}),
		field.UUID("asset_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("driver_id", uuid.UUID{}).Optional().Nillable(),
		field.String("process_status").Default("PENDING"),
		field.UUID("expense_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Toll) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("transaction_date", "etag_id").Unique(),
		index.Fields("capture_id"),
		index.Fields("page_result_id"),
	}
}
