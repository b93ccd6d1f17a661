// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnloop/learnloop/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetSubject sets the "subject" field.
func (_c *QuestionCreate) SetSubject(v string) *QuestionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *QuestionCreate) SetTopicID(v string) *QuestionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetTopicName sets the "topic_name" field.
func (_c *QuestionCreate) SetTopicName(v string) *QuestionCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionCreate) SetQuestionType(v string) *QuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v int) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *QuestionCreate) SetContent(v string) *QuestionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionCreate) SetOptions(v []string) *QuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QuestionCreate) SetAnswer(v string) *QuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuestionCreate) SetExplanation(v string) *QuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExplanation(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetTransfer sets the "transfer" field.
func (_c *QuestionCreate) SetTransfer(v bool) *QuestionCreate {
	_c.mutation.SetTransfer(v)
	return _c
}

// SetNillableTransfer sets the "transfer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTransfer(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetTransfer(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Explanation(); !ok {
		v := question.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.Transfer(); !ok {
		v := question.DefaultTransfer
		_c.mutation.SetTransfer(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Question.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := question.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Question.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "Question.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := question.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Question.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		return &ValidationError{Name: "topic_name", err: errors.New(`ent: missing required field "Question.topic_name"`)}
	}
	if v, ok := _c.mutation.TopicName(); ok {
		if err := question.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "Question.topic_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Question.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Question.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := question.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Question.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Question.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Question.explanation"`)}
	}
	if _, ok := _c.mutation.Transfer(); !ok {
		return &ValidationError{Name: "transfer", err: errors.New(`ent: missing required field "Question.transfer"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := question.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Question.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(question.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(question.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(question.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Transfer(); ok {
		_spec.SetField(question.FieldTransfer, field.TypeBool, value)
		_node.Transfer = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
