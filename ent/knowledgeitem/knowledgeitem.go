// Code generated by ent, DO NOT EDIT.

package knowledgeitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the knowledgeitem type in the database.
	Label = "knowledge_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldTopicName holds the string denoting the topic_name field in the database.
	FieldTopicName = "topic_name"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldKeyPoints holds the string denoting the key_points field in the database.
	FieldKeyPoints = "key_points"
	// FieldCommonMistakes holds the string denoting the common_mistakes field in the database.
	FieldCommonMistakes = "common_mistakes"
	// FieldIntuitionPumps holds the string denoting the intuition_pumps field in the database.
	FieldIntuitionPumps = "intuition_pumps"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the knowledgeitem in the database.
	Table = "knowledge_items"
)

// Columns holds all SQL columns for knowledgeitem fields.
var Columns = []string{
	FieldID,
	FieldSubject,
	FieldTopicID,
	FieldTopicName,
	FieldTitle,
	FieldContent,
	FieldKeyPoints,
	FieldCommonMistakes,
	FieldIntuitionPumps,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	TopicNameValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// ContentValidator is a validator for the "content" field. It is called by the builders before save.
	ContentValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the KnowledgeItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByTopicName orders the results by the topic_name field.
func ByTopicName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicName, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
