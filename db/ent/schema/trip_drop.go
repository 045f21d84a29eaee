package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TripDrop is one drop-point odometer reading. seq preserves the order the
// model reported the readings in.
type TripDrop struct{ ent.Schema }

func (TripDrop) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "trip_drops"},
	}
}

func (TripDrop) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("trip_id", uuid.UUID{}),
		field.Int("seq").NonNegative(),
		field.Int("odo_reading"),
	}
}

func (TripDrop) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trip_id", "seq").Unique(),
	}
}
