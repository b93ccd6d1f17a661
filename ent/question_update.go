// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/learnloop/learnloop/ent/predicate"
	"github.com/learnloop/learnloop/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdate) SetSubject(v string) *QuestionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubject(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuestionUpdate) SetTopicID(v string) *QuestionUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTopicID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *QuestionUpdate) SetTopicName(v string) *QuestionUpdate {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTopicName(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionUpdate) SetQuestionType(v string) *QuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionType(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v int) *QuestionUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuestionUpdate) AddDifficulty(v int) *QuestionUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *QuestionUpdate) SetContent(v string) *QuestionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableContent(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdate) SetOptions(v []string) *QuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdate) AppendOptions(v []string) *QuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdate) ClearOptions() *QuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionUpdate) SetAnswer(v string) *QuestionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdate) SetExplanation(v string) *QuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExplanation(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetTransfer sets the "transfer" field.
func (_u *QuestionUpdate) SetTransfer(v bool) *QuestionUpdate {
	_u.mutation.SetTransfer(v)
	return _u
}

// SetNillableTransfer sets the "transfer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTransfer(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetTransfer(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := question.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Question.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := question.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Question.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicName(); ok {
		if err := question.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "Question.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := question.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Question.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(question.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(question.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(question.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transfer(); ok {
		_spec.SetField(question.FieldTransfer, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdateOne) SetSubject(v string) *QuestionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubject(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuestionUpdateOne) SetTopicID(v string) *QuestionUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTopicID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *QuestionUpdateOne) SetTopicName(v string) *QuestionUpdateOne {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTopicName(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionUpdateOne) SetQuestionType(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionType(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v int) *QuestionUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuestionUpdateOne) AddDifficulty(v int) *QuestionUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *QuestionUpdateOne) SetContent(v string) *QuestionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableContent(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdateOne) SetOptions(v []string) *QuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdateOne) AppendOptions(v []string) *QuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdateOne) ClearOptions() *QuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionUpdateOne) SetAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdateOne) SetExplanation(v string) *QuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExplanation(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetTransfer sets the "transfer" field.
func (_u *QuestionUpdateOne) SetTransfer(v bool) *QuestionUpdateOne {
	_u.mutation.SetTransfer(v)
	return _u
}

// SetNillableTransfer sets the "transfer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTransfer(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetTransfer(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := question.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Question.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := question.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Question.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicName(); ok {
		if err := question.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "Question.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := question.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Question.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(question.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(question.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(question.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transfer(); ok {
		_spec.SetField(question.FieldTransfer, field.TypeBool, value)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
