// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/learnloop/learnloop/ent/knowledgeitem"
)

// KnowledgeItem is the model entity for the KnowledgeItem schema.
type KnowledgeItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// TopicName holds the value of the "topic_name" field.
	TopicName string `json:"topic_name,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// KeyPoints holds the value of the "key_points" field.
	KeyPoints []string `json:"key_points,omitempty"`
	// CommonMistakes holds the value of the "common_mistakes" field.
	CommonMistakes []string `json:"common_mistakes,omitempty"`
	// Hints and analogies that build intuition
	IntuitionPumps []string `json:"intuition_pumps,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgeitem.FieldKeyPoints, knowledgeitem.FieldCommonMistakes, knowledgeitem.FieldIntuitionPumps:
			values[i] = new([]byte)
		case knowledgeitem.FieldID, knowledgeitem.FieldSubject, knowledgeitem.FieldTopicID, knowledgeitem.FieldTopicName, knowledgeitem.FieldTitle, knowledgeitem.FieldContent:
			values[i] = new(sql.NullString)
		case knowledgeitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeItem fields.
func (_m *KnowledgeItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgeitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case knowledgeitem.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case knowledgeitem.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case knowledgeitem.FieldTopicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_name", values[i])
			} else if value.Valid {
				_m.TopicName = value.String
			}
		case knowledgeitem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case knowledgeitem.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case knowledgeitem.FieldKeyPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyPoints); err != nil {
					return fmt.Errorf("unmarshal field key_points: %w", err)
				}
			}
		case knowledgeitem.FieldCommonMistakes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field common_mistakes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CommonMistakes); err != nil {
					return fmt.Errorf("unmarshal field common_mistakes: %w", err)
				}
			}
		case knowledgeitem.FieldIntuitionPumps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field intuition_pumps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IntuitionPumps); err != nil {
					return fmt.Errorf("unmarshal field intuition_pumps: %w", err)
				}
			}
		case knowledgeitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeItem.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this KnowledgeItem.
// Note that you need to call KnowledgeItem.Unwrap() before calling this method if this KnowledgeItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeItem) Update() *KnowledgeItemUpdateOne {
	return NewKnowledgeItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeItem) Unwrap() *KnowledgeItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeItem) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("topic_name=")
	builder.WriteString(_m.TopicName)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("key_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyPoints))
	builder.WriteString(", ")
	builder.WriteString("common_mistakes=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommonMistakes))
	builder.WriteString(", ")
	builder.WriteString("intuition_pumps=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntuitionPumps))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeItems is a parsable slice of KnowledgeItem.
type KnowledgeItems []*KnowledgeItem
