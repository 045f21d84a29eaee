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

// TollCapture is the multi-page PDF capture variant. Page results and
// staging rows reference it by id; the reverse aggregation is a query, not
// a stored edge.
type TollCapture struct{ ent.Schema }

func (TollCapture) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "toll_captures"},
	}
}

func (TollCapture) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("driver_id", uuid.UUID{}),
		field.UUID("asset_id", uuid.UUID{}).Optional().Nillable(),
		field.String("file_path").NotEmpty(),
		field.Int("total_records").Default(0).NonNegative(),
		// progress_count is operator-facing text, e.g. "2 / 3".
		field.String("progress_count").Default(""),
		// processed_pages is the fan-in artefact: a page-sorted JSON array
		// of {page_number, base64_image}.
		field.JSON("processed_pages", json.RawMessage{}).Optional(),
		field.String("status").Default(string(constants.CapturePending)).
			Validate(utils.EnumValidator(
				string(constants.CapturePending),
				string(constants.CaptureProcessing),
				string(constants.CaptureCompleted),
				string(constants.CaptureFailed),
			)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TollCapture) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("driver_id", "created_at"),
		index.Fields("status"),
	}
}
