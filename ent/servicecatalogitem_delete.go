// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dediamond1/mechanic/ent/predicate"
	"github.com/dediamond1/mechanic/ent/servicecatalogitem"
)

// ServiceCatalogItemDelete is the builder for deleting a ServiceCatalogItem entity.
type ServiceCatalogItemDelete struct {
	config
	hooks    []Hook
	mutation *ServiceCatalogItemMutation
}

// Where appends a list predicates to the ServiceCatalogItemDelete builder.
func (_d *ServiceCatalogItemDelete) Where(ps ...predicate.ServiceCatalogItem) *ServiceCatalogItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ServiceCatalogItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceCatalogItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ServiceCatalogItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(servicecatalogitem.Table, sqlgraph.NewFieldSpec(servicecatalogitem.FieldID, field.TypeString))
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

// ServiceCatalogItemDeleteOne is the builder for deleting a single ServiceCatalogItem entity.
type ServiceCatalogItemDeleteOne struct {
	_d *ServiceCatalogItemDelete
}

// Where appends a list predicates to the ServiceCatalogItemDelete builder.
func (_d *ServiceCatalogItemDeleteOne) Where(ps ...predicate.ServiceCatalogItem) *ServiceCatalogItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ServiceCatalogItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{servicecatalogitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceCatalogItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
