// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// KnowledgeItem is the predicate function for knowledgeitem builders.
type KnowledgeItem func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
