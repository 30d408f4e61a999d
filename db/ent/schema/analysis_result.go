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

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/db/ent/schema/utils"
)

type AnalysisResult struct{ ent.Schema }

func (AnalysisResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dce_analyses"},
	}
}

func (AnalysisResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("account_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("reservation_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator("PENDING", "PARTIAL", "COMPLETE", "FAILED")),
		field.JSON("findings", json.RawMessage{}).Optional(),
		field.String("summary").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// project metadata from the general-info pass
		field.String("project_name").Optional().Nillable(),
		field.String("client_name").Optional().Nillable(),
		field.Float("budget_ht").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Time("deadline").Optional().Nillable(),
		// sections whose chunks could not be analyzed (PARTIAL results)
		field.JSON("unanalyzed", []string{}).Optional(),
		field.Int("progress").Default(0).Min(0).Max(100),
		field.String("current_step").Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (AnalysisResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("analyses").
			Field("account_id").
			Required().
			Unique(),
		edge.From("document", Document.Type).
			Ref("analyses").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (AnalysisResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "created_at"),
		index.Fields("status", "created_at"),
		index.Fields("document_id"),
	}
}
