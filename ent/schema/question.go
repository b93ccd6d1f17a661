package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is an authored practice or transfer-test question.
// Questions are immutable from the tutor's point of view.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
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
		field.String("question_type").
			NotEmpty().
			Comment("choice, judgment, qa, fill, application"),
		field.Int("difficulty").
			Range(1, 5),
		field.Text("content").
			NotEmpty(),
		field.JSON("options", []string{}).
			Optional().
			Comment("Choice options in display order"),
		field.Text("answer").
			NotEmpty().
			Comment("Reference answer used for grading"),
		field.Text("explanation").
			Default(""),
		field.Bool("transfer").
			Default(false).
			Comment("Reserved for the transfer-test phase when true"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("subject", "topic_id"),
		index.Fields("transfer"),
	}
}
