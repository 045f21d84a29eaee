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

type Trip struct{ ent.Schema }

func (Trip) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "trips"},
	}
}

func (Trip) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("driver_id", uuid.UUID{}),
		field.UUID("capture_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("truck_number").Optional().Nillable(),
		field.String("delivery_note_number").Optional().Nillable(),
		field.Int("odo_start").Optional().Nillable(),
		field.Int("odo_end").Optional().Nillable(),
		field.String("time_start").Optional().Nillable(),
		field.String("time_end").Optional().Nillable(),
		field.String("status").Default(string(constants.TripDraft)).
			Validate(utils.EnumValidator(
				string(constants.TripDraft),
				string(constants.TripProcessing),
				string(constants.TripAwaitingApproval),
				string(constants.TripComplete),
				string(constants.TripError),
			)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Trip) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("driver_id", "date"),
		index.Fields("capture_id"),
	}
}
