package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one student-subject conversation and its state machine position.
type Session struct {
	ent.Schema
}

// ChatMessage is the serialized form of one conversation turn.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("student_id").
			Default("default_student"),
		field.String("subject").
			NotEmpty().
			Comment("One of: chinese, math, english, history, politics"),
		field.String("topic_id").
			Default("").
			Comment("Topic the student is currently working on, empty if none"),
		field.String("phase").
			Default("learning").
			Comment("learning, assessing, transfer_test, remediation, mastered"),
		field.String("grade").
			Default("C").
			Comment("Current mastery grade: A, B or C"),
		field.Int("consecutive_failures").
			Default(0).
			NonNegative().
			Comment("Wrong answers in a row during assessment"),
		field.JSON("messages", []ChatMessage{}).
			Optional().
			Comment("Ordered conversation log"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("subject"),
	}
}
