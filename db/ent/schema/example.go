package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Example is the training pair a processor was learned from: the built
// document IR plus the output its operator wants.
type Example struct{ ent.Schema }

func (Example) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "examples"},
	}
}

func (Example) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("processor_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("layout_hash").Optional(),
		field.JSON("ir_json", json.RawMessage{}),
		field.JSON("desired_output", json.RawMessage{}),
		field.JSON("synthesis_report", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Example) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("processor", Processor.Type).
			Ref("examples").
			Field("processor_id").
			Unique().
			Required(),
	}
}

func (Example) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("processor_id"),
		index.Fields("layout_hash"),
	}
}
