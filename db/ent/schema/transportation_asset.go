package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TransportationAsset carries just enough of the fleet record to resolve
// tolls by etag and trips by truck number.
type TransportationAsset struct{ ent.Schema }

func (TransportationAsset) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transportation_assets"},
	}
}

func (TransportationAsset) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("truck_number").NotEmpty(),
		field.String("etag_id").Optional(),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now),
	}
}

func (TransportationAsset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("truck_number").Unique(),
		index.Fields("etag_id"),
	}
}
