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

// OCRSetting holds the prompt template and JSON example shape for one
// capture kind. The template must contain the {image_data} placeholder.
type OCRSetting struct{ ent.Schema }

func (OCRSetting) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_settings"},
	}
}

func (OCRSetting) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("function").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.KindDeliveryNote),
				string(constants.KindToll),
			)),
		field.String("prompt_template").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("json_example").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (OCRSetting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("function").Unique(),
	}
}
