// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// KnowledgeItemsColumns holds the columns for the "knowledge_items" table.
	KnowledgeItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "topic_name", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "key_points", Type: field.TypeJSON, Nullable: true},
		{Name: "common_mistakes", Type: field.TypeJSON, Nullable: true},
		{Name: "intuition_pumps", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// KnowledgeItemsTable holds the schema information for the "knowledge_items" table.
	KnowledgeItemsTable = &schema.Table{
		Name:       "knowledge_items",
		Columns:    KnowledgeItemsColumns,
		PrimaryKey: []*schema.Column{KnowledgeItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgeitem_subject",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeItemsColumns[1]},
			},
			{
				Name:    "knowledgeitem_subject_topic_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeItemsColumns[1], KnowledgeItemsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "topic_name", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "transfer", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_subject",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_subject_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2]},
			},
			{
				Name:    "question_transfer",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[10]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString, Default: "default_student"},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString, Default: ""},
		{Name: "phase", Type: field.TypeString, Default: "learning"},
		{Name: "grade", Type: field.TypeString, Default: "C"},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "messages", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_student_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_subject",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		KnowledgeItemsTable,
		LlmRequestEventsTable,
		QuestionsTable,
		SessionsTable,
	}
)

func init() {
}
