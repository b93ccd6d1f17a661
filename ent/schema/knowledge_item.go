package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeItem is reference content fed to the LLM as teaching context.
// The tutor groups items by topic but never branches on their fields.
type KnowledgeItem struct {
	ent.Schema
}

func (KnowledgeItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("subject").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("topic_name").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			NotEmpty(),
		field.JSON("key_points", []string{}).
			Optional(),
		field.JSON("common_mistakes", []string{}).
			Optional(),
		field.JSON("intuition_pumps", []string{}).
			Optional().
			Comment("Hints and analogies that build intuition"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (KnowledgeItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("subject", "topic_id"),
	}
}
