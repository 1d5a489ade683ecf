package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/statline/statline/constants"
	"github.com/statline/statline/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Processor struct{ ent.Schema }

func (Processor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processors"},
	}
}

func (Processor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes()...)),
		field.Int("version").Default(1).Positive(),
		field.String("layout_hash").Optional(),
		// full RuleSet serialization; the typed model owns its shape
		field.JSON("rules", json.RawMessage{}),
		field.String("template").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("success_count").Default(0).NonNegative(),
		field.Int("failure_count").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Processor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("examples", Example.Type),
		edge.To("extractions", Extraction.Type),
	}
}

func (Processor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").Unique(),
		index.Fields("layout_hash"),
		index.Fields("document_type"),
	}
}
