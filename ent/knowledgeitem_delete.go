// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnloop/learnloop/ent/knowledgeitem"
	"github.com/learnloop/learnloop/ent/predicate"
)

// KnowledgeItemDelete is the builder for deleting a KnowledgeItem entity.
type KnowledgeItemDelete struct {
	config
	hooks    []Hook
	mutation *KnowledgeItemMutation
}

// Where appends a list predicates to the KnowledgeItemDelete builder.
func (_d *KnowledgeItemDelete) Where(ps ...predicate.KnowledgeItem) *KnowledgeItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnowledgeItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnowledgeItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knowledgeitem.Table, sqlgraph.NewFieldSpec(knowledgeitem.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// KnowledgeItemDeleteOne is the builder for deleting a single KnowledgeItem entity.
type KnowledgeItemDeleteOne struct {
	_d *KnowledgeItemDelete
}

// Where appends a list predicates to the KnowledgeItemDelete builder.
func (_d *KnowledgeItemDeleteOne) Where(ps ...predicate.KnowledgeItem) *KnowledgeItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnowledgeItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knowledgeitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
