// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnloop/learnloop/ent/knowledgeitem"
)

// KnowledgeItemCreate is the builder for creating a KnowledgeItem entity.
type KnowledgeItemCreate struct {
	config
	mutation *KnowledgeItemMutation
	hooks    []Hook
}

// SetSubject sets the "subject" field.
func (_c *KnowledgeItemCreate) SetSubject(v string) *KnowledgeItemCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *KnowledgeItemCreate) SetTopicID(v string) *KnowledgeItemCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetTopicName sets the "topic_name" field.
func (_c *KnowledgeItemCreate) SetTopicName(v string) *KnowledgeItemCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *KnowledgeItemCreate) SetTitle(v string) *KnowledgeItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *KnowledgeItemCreate) SetContent(v string) *KnowledgeItemCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetKeyPoints sets the "key_points" field.
func (_c *KnowledgeItemCreate) SetKeyPoints(v []string) *KnowledgeItemCreate {
	_c.mutation.SetKeyPoints(v)
	return _c
}

// SetCommonMistakes sets the "common_mistakes" field.
func (_c *KnowledgeItemCreate) SetCommonMistakes(v []string) *KnowledgeItemCreate {
	_c.mutation.SetCommonMistakes(v)
	return _c
}

// SetIntuitionPumps sets the "intuition_pumps" field.
func (_c *KnowledgeItemCreate) SetIntuitionPumps(v []string) *KnowledgeItemCreate {
	_c.mutation.SetIntuitionPumps(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeItemCreate) SetCreatedAt(v time.Time) *KnowledgeItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeItemCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeItemCreate) SetID(v string) *KnowledgeItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the KnowledgeItemMutation object of the builder.
func (_c *KnowledgeItemCreate) Mutation() *KnowledgeItemMutation {
	return _c.mutation
}

// Save creates the KnowledgeItem in the database.
func (_c *KnowledgeItemCreate) Save(ctx context.Context) (*KnowledgeItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeItemCreate) SaveX(ctx context.Context) *KnowledgeItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgeitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeItemCreate) check() error {
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "KnowledgeItem.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := knowledgeitem.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "KnowledgeItem.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := knowledgeitem.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		return &ValidationError{Name: "topic_name", err: errors.New(`ent: missing required field "KnowledgeItem.topic_name"`)}
	}
	if v, ok := _c.mutation.TopicName(); ok {
		if err := knowledgeitem.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.topic_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "KnowledgeItem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := knowledgeitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "KnowledgeItem.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := knowledgeitem.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeItem.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := knowledgeitem.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.id": %w`, err)}
		}
	}
	return nil
}

func (_c *KnowledgeItemCreate) sqlSave(ctx context.Context) (*KnowledgeItem, error) {
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
			return nil, fmt.Errorf("unexpected KnowledgeItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeItemCreate) createSpec() (*KnowledgeItem, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgeitem.Table, sqlgraph.NewFieldSpec(knowledgeitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(knowledgeitem.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(knowledgeitem.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(knowledgeitem.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(knowledgeitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(knowledgeitem.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.KeyPoints(); ok {
		_spec.SetField(knowledgeitem.FieldKeyPoints, field.TypeJSON, value)
		_node.KeyPoints = value
	}
	if value, ok := _c.mutation.CommonMistakes(); ok {
		_spec.SetField(knowledgeitem.FieldCommonMistakes, field.TypeJSON, value)
		_node.CommonMistakes = value
	}
	if value, ok := _c.mutation.IntuitionPumps(); ok {
		_spec.SetField(knowledgeitem.FieldIntuitionPumps, field.TypeJSON, value)
		_node.IntuitionPumps = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgeitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// KnowledgeItemCreateBulk is the builder for creating many KnowledgeItem entities in bulk.
type KnowledgeItemCreateBulk struct {
	config
	err      error
	builders []*KnowledgeItemCreate
}

// Save creates the KnowledgeItem entities in the database.
func (_c *KnowledgeItemCreateBulk) Save(ctx context.Context) ([]*KnowledgeItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeItemMutation)
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
func (_c *KnowledgeItemCreateBulk) SaveX(ctx context.Context) []*KnowledgeItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
