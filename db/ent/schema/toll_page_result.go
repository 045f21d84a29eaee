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

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/db/ent/schema/utils"
)

// TollPageResult is an audit row for one rasterised PDF page. Rows are
// inserted already terminal and never mutated afterwards.
type TollPageResult struct{ ent.Schema }

func (TollPageResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "toll_page_results"},
	}
}

func (TollPageResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("capture_id", uuid.UUID{}).Immutable(),
		field.Int("page_number").Positive().Immutable(),
		field.String("base64_image").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").
			Validate(utils.EnumValidator(
				string(constants.PageCompleted),
				string(constants.PageFailed),
			)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (TollPageResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("capture_id", "page_number").Unique(),
		index.Fields("capture_id", "status"),
	}
}
