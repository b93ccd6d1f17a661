// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/learnloop/learnloop/ent/predicate"
	"github.com/learnloop/learnloop/ent/schema"
	"github.com/learnloop/learnloop/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionUpdate) SetStudentID(v string) *SessionUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStudentID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionUpdate) SetSubject(v string) *SessionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSubject(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionUpdate) SetTopicID(v string) *SessionUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTopicID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionUpdate) SetPhase(v string) *SessionUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePhase(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SessionUpdate) SetGrade(v string) *SessionUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableGrade(v *string) *SessionUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *SessionUpdate) SetConsecutiveFailures(v int) *SessionUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableConsecutiveFailures(v *int) *SessionUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *SessionUpdate) AddConsecutiveFailures(v int) *SessionUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetMessages sets the "messages" field.
func (_u *SessionUpdate) SetMessages(v []schema.ChatMessage) *SessionUpdate {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *SessionUpdate) AppendMessages(v []schema.ChatMessage) *SessionUpdate {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *SessionUpdate) ClearMessages() *SessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := session.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Session.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsecutiveFailures(); ok {
		if err := session.ConsecutiveFailuresValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_failures", err: fmt.Errorf(`ent: validator failed for field "Session.consecutive_failures": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(session.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(session.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(session.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(session.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(session.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(session.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(session.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(session.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(session.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetStudentID sets the "student_id" field.
func (_u *SessionUpdateOne) SetStudentID(v string) *SessionUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStudentID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionUpdateOne) SetSubject(v string) *SessionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSubject(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionUpdateOne) SetTopicID(v string) *SessionUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTopicID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionUpdateOne) SetPhase(v string) *SessionUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePhase(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SessionUpdateOne) SetGrade(v string) *SessionUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableGrade(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *SessionUpdateOne) SetConsecutiveFailures(v int) *SessionUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableConsecutiveFailures(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *SessionUpdateOne) AddConsecutiveFailures(v int) *SessionUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetMessages sets the "messages" field.
func (_u *SessionUpdateOne) SetMessages(v []schema.ChatMessage) *SessionUpdateOne {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *SessionUpdateOne) AppendMessages(v []schema.ChatMessage) *SessionUpdateOne {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *SessionUpdateOne) ClearMessages() *SessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := session.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Session.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsecutiveFailures(); ok {
		if err := session.ConsecutiveFailuresValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_failures", err: fmt.Errorf(`ent: validator failed for field "Session.consecutive_failures": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(session.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(session.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(session.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(session.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(session.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(session.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(session.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(session.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(session.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
