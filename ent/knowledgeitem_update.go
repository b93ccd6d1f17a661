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
	"github.com/learnloop/learnloop/ent/knowledgeitem"
	"github.com/learnloop/learnloop/ent/predicate"
)

// KnowledgeItemUpdate is the builder for updating KnowledgeItem entities.
type KnowledgeItemUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeItemMutation
}

// Where appends a list predicates to the KnowledgeItemUpdate builder.
func (_u *KnowledgeItemUpdate) Where(ps ...predicate.KnowledgeItem) *KnowledgeItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *KnowledgeItemUpdate) SetSubject(v string) *KnowledgeItemUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableSubject(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *KnowledgeItemUpdate) SetTopicID(v string) *KnowledgeItemUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableTopicID(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *KnowledgeItemUpdate) SetTopicName(v string) *KnowledgeItemUpdate {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableTopicName(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeItemUpdate) SetTitle(v string) *KnowledgeItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableTitle(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeItemUpdate) SetContent(v string) *KnowledgeItemUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableContent(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetKeyPoints sets the "key_points" field.
func (_u *KnowledgeItemUpdate) SetKeyPoints(v []string) *KnowledgeItemUpdate {
	_u.mutation.SetKeyPoints(v)
	return _u
}

// AppendKeyPoints appends value to the "key_points" field.
func (_u *KnowledgeItemUpdate) AppendKeyPoints(v []string) *KnowledgeItemUpdate {
	_u.mutation.AppendKeyPoints(v)
	return _u
}

// ClearKeyPoints clears the value of the "key_points" field.
func (_u *KnowledgeItemUpdate) ClearKeyPoints() *KnowledgeItemUpdate {
	_u.mutation.ClearKeyPoints()
	return _u
}

// SetCommonMistakes sets the "common_mistakes" field.
func (_u *KnowledgeItemUpdate) SetCommonMistakes(v []string) *KnowledgeItemUpdate {
	_u.mutation.SetCommonMistakes(v)
	return _u
}

// AppendCommonMistakes appends value to the "common_mistakes" field.
func (_u *KnowledgeItemUpdate) AppendCommonMistakes(v []string) *KnowledgeItemUpdate {
	_u.mutation.AppendCommonMistakes(v)
	return _u
}

// ClearCommonMistakes clears the value of the "common_mistakes" field.
func (_u *KnowledgeItemUpdate) ClearCommonMistakes() *KnowledgeItemUpdate {
	_u.mutation.ClearCommonMistakes()
	return _u
}

// SetIntuitionPumps sets the "intuition_pumps" field.
func (_u *KnowledgeItemUpdate) SetIntuitionPumps(v []string) *KnowledgeItemUpdate {
	_u.mutation.SetIntuitionPumps(v)
	return _u
}

// AppendIntuitionPumps appends value to the "intuition_pumps" field.
func (_u *KnowledgeItemUpdate) AppendIntuitionPumps(v []string) *KnowledgeItemUpdate {
	_u.mutation.AppendIntuitionPumps(v)
	return _u
}

// ClearIntuitionPumps clears the value of the "intuition_pumps" field.
func (_u *KnowledgeItemUpdate) ClearIntuitionPumps() *KnowledgeItemUpdate {
	_u.mutation.ClearIntuitionPumps()
	return _u
}

// Mutation returns the KnowledgeItemMutation object of the builder.
func (_u *KnowledgeItemUpdate) Mutation() *KnowledgeItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeItemUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := knowledgeitem.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := knowledgeitem.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicName(); ok {
		if err := knowledgeitem.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := knowledgeitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := knowledgeitem.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.content": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeitem.Table, knowledgeitem.Columns, sqlgraph.NewFieldSpec(knowledgeitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(knowledgeitem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(knowledgeitem.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(knowledgeitem.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgeitem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyPoints(); ok {
		_spec.SetField(knowledgeitem.FieldKeyPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeitem.FieldKeyPoints, value)
		})
	}
	if _u.mutation.KeyPointsCleared() {
		_spec.ClearField(knowledgeitem.FieldKeyPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommonMistakes(); ok {
		_spec.SetField(knowledgeitem.FieldCommonMistakes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommonMistakes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeitem.FieldCommonMistakes, value)
		})
	}
	if _u.mutation.CommonMistakesCleared() {
		_spec.ClearField(knowledgeitem.FieldCommonMistakes, field.TypeJSON)
	}
	if value, ok := _u.mutation.IntuitionPumps(); ok {
		_spec.SetField(knowledgeitem.FieldIntuitionPumps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntuitionPumps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeitem.FieldIntuitionPumps, value)
		})
	}
	if _u.mutation.IntuitionPumpsCleared() {
		_spec.ClearField(knowledgeitem.FieldIntuitionPumps, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeItemUpdateOne is the builder for updating a single KnowledgeItem entity.
type KnowledgeItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeItemMutation
}

// SetSubject sets the "subject" field.
func (_u *KnowledgeItemUpdateOne) SetSubject(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableSubject(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *KnowledgeItemUpdateOne) SetTopicID(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableTopicID(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *KnowledgeItemUpdateOne) SetTopicName(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableTopicName(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeItemUpdateOne) SetTitle(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableTitle(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeItemUpdateOne) SetContent(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableContent(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetKeyPoints sets the "key_points" field.
func (_u *KnowledgeItemUpdateOne) SetKeyPoints(v []string) *KnowledgeItemUpdateOne {
	_u.mutation.SetKeyPoints(v)
	return _u
}

// AppendKeyPoints appends value to the "key_points" field.
func (_u *KnowledgeItemUpdateOne) AppendKeyPoints(v []string) *KnowledgeItemUpdateOne {
	_u.mutation.AppendKeyPoints(v)
	return _u
}

// ClearKeyPoints clears the value of the "key_points" field.
func (_u *KnowledgeItemUpdateOne) ClearKeyPoints() *KnowledgeItemUpdateOne {
	_u.mutation.ClearKeyPoints()
	return _u
}

// SetCommonMistakes sets the "common_mistakes" field.
func (_u *KnowledgeItemUpdateOne) SetCommonMistakes(v []string) *KnowledgeItemUpdateOne {
	_u.mutation.SetCommonMistakes(v)
	return _u
}

// AppendCommonMistakes appends value to the "common_mistakes" field.
func (_u *KnowledgeItemUpdateOne) AppendCommonMistakes(v []string) *KnowledgeItemUpdateOne {
	_u.mutation.AppendCommonMistakes(v)
	return _u
}

// ClearCommonMistakes clears the value of the "common_mistakes" field.
func (_u *KnowledgeItemUpdateOne) ClearCommonMistakes() *KnowledgeItemUpdateOne {
	_u.mutation.ClearCommonMistakes()
	return _u
}

// SetIntuitionPumps sets the "intuition_pumps" field.
func (_u *KnowledgeItemUpdateOne) SetIntuitionPumps(v []string) *KnowledgeItemUpdateOne {
	_u.mutation.SetIntuitionPumps(v)
	return _u
}

// AppendIntuitionPumps appends value to the "intuition_pumps" field.
func (_u *KnowledgeItemUpdateOne) AppendIntuitionPumps(v []string) *KnowledgeItemUpdateOne {
	_u.mutation.AppendIntuitionPumps(v)
	return _u
}

// ClearIntuitionPumps clears the value of the "intuition_pumps" field.
func (_u *KnowledgeItemUpdateOne) ClearIntuitionPumps() *KnowledgeItemUpdateOne {
	_u.mutation.ClearIntuitionPumps()
	return _u
}

// Mutation returns the KnowledgeItemMutation object of the builder.
func (_u *KnowledgeItemUpdateOne) Mutation() *KnowledgeItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeItemUpdate builder.
func (_u *KnowledgeItemUpdateOne) Where(ps ...predicate.KnowledgeItem) *KnowledgeItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeItemUpdateOne) Select(field string, fields ...string) *KnowledgeItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeItem entity.
func (_u *KnowledgeItemUpdateOne) Save(ctx context.Context) (*KnowledgeItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeItemUpdateOne) SaveX(ctx context.Context) *KnowledgeItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeItemUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := knowledgeitem.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := knowledgeitem.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicName(); ok {
		if err := knowledgeitem.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := knowledgeitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := knowledgeitem.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.content": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeItemUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeitem.Table, knowledgeitem.Columns, sqlgraph.NewFieldSpec(knowledgeitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeitem.FieldID)
		for _, f := range fields {
			if !knowledgeitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeitem.FieldID {
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
		_spec.SetField(knowledgeitem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(knowledgeitem.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(knowledgeitem.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgeitem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyPoints(); ok {
		_spec.SetField(knowledgeitem.FieldKeyPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeitem.FieldKeyPoints, value)
		})
	}
	if _u.mutation.KeyPointsCleared() {
		_spec.ClearField(knowledgeitem.FieldKeyPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommonMistakes(); ok {
		_spec.SetField(knowledgeitem.FieldCommonMistakes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommonMistakes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeitem.FieldCommonMistakes, value)
		})
	}
	if _u.mutation.CommonMistakesCleared() {
		_spec.ClearField(knowledgeitem.FieldCommonMistakes, field.TypeJSON)
	}
	if value, ok := _u.mutation.IntuitionPumps(); ok {
		_spec.SetField(knowledgeitem.FieldIntuitionPumps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntuitionPumps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeitem.FieldIntuitionPumps, value)
		})
	}
	if _u.mutation.IntuitionPumpsCleared() {
		_spec.ClearField(knowledgeitem.FieldIntuitionPumps, field.TypeJSON)
	}
	_node = &KnowledgeItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
