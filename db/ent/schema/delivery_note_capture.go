package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/db/ent/schema/utils"
)

// DeliveryNoteCapture is the single-image capture variant. Processing it
// produces a Trip in AWAITING_APPROVAL.
type DeliveryNoteCapture struct{ ent.Schema }

func (DeliveryNoteCapture) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "delivery_note_captures"},
	}
}

func (DeliveryNoteCapture) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("driver_id", uuid.UUID{}),
		field.String("file_path").NotEmpty(),
		field.String("optimized_path").Optional().Nillable(),
		field.String("delivery_note_number").Optional().Nillable(),
		field.UUID("trip_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").Default(string(constants.CapturePending)).
			Validate(utils.EnumValidator(
				string(constants.CapturePending),
				string(constants.CaptureProcessing),
				string(constants.CaptureCompleted),
				string(constants.CaptureFailed),
			)),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DeliveryNoteCapture) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("driver_id", "created_at"),
		index.Fields("status"),
	}
}
