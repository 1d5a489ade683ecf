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

// Extraction is the audit record for one processor run against one document.
type Extraction struct{ ent.Schema }

func (Extraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extractions"},
	}
}

func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("processor_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.ExtractionStatuses...)),
		field.String("ir_method").Optional().Nillable(),
		field.String("layout_hash").Optional(),
		field.JSON("output", json.RawMessage{}).Optional(),
		field.JSON("issues", json.RawMessage{}).Optional(),
		field.Float32("confidence").Optional().Nillable(),
		field.String("band").Optional().Nillable().
			Validate(utils.EnumValidator(constants.ConfidenceBands...)),
		field.Bool("success").Default(false),
		field.Bool("needs_review").Default(false),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.Int64("duration_ms").Optional(),
	}
}

func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("processor", Processor.Type).
			Ref("extractions").
			Field("processor_id").
			Unique().
			Required(),
	}
}

func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("processor_id", "status", "started_at"),
		index.Fields("band"),
		index.Fields("started_at"),
	}
}
