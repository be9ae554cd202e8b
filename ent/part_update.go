// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dediamond1/mechanic/ent/part"
	"github.com/dediamond1/mechanic/ent/predicate"
)

// PartUpdate is the builder for updating Part entities.
type PartUpdate struct {
	config
	hooks    []Hook
	mutation *PartMutation
}

// Where appends a list predicates to the PartUpdate builder.
func (_u *PartUpdate) Where(ps ...predicate.Part) *PartUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartUpdate) SetUpdatedAt(v time.Time) *PartUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PartUpdate) SetName(v string) *PartUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PartUpdate) SetNillableName(v *string) *PartUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *PartUpdate) SetCondition(v part.Condition) *PartUpdate {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *PartUpdate) SetNillableCondition(v *part.Condition) *PartUpdate {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PartUpdate) SetPrice(v float64) *PartUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PartUpdate) SetNillablePrice(v *float64) *PartUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PartUpdate) AddPrice(v float64) *PartUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *PartUpdate) SetQuantity(v int) *PartUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *PartUpdate) SetNillableQuantity(v *int) *PartUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *PartUpdate) AddQuantity(v int) *PartUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *PartUpdate) SetSupplier(v string) *PartUpdate {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *PartUpdate) SetNillableSupplier(v *string) *PartUpdate {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *PartUpdate) ClearSupplier() *PartUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// Mutation returns the PartMutation object of the builder.
func (_u *PartUpdate) Mutation() *PartMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PartUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PartUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := part.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := part.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Part.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Condition(); ok {
		if err := part.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "Part.condition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := part.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Part.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := part.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Part.quantity": %w`, err)}
		}
	}
	return nil
}

func (_u *PartUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(part.Table, part.Columns, sqlgraph.NewFieldSpec(part.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(part.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(part.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(part.FieldCondition, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(part.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(part.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(part.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(part.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(part.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(part.FieldSupplier, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{part.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PartUpdateOne is the builder for updating a single Part entity.
type PartUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartUpdateOne) SetUpdatedAt(v time.Time) *PartUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PartUpdateOne) SetName(v string) *PartUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableName(v *string) *PartUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *PartUpdateOne) SetCondition(v part.Condition) *PartUpdateOne {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableCondition(v *part.Condition) *PartUpdateOne {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PartUpdateOne) SetPrice(v float64) *PartUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillablePrice(v *float64) *PartUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PartUpdateOne) AddPrice(v float64) *PartUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *PartUpdateOne) SetQuantity(v int) *PartUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableQuantity(v *int) *PartUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *PartUpdateOne) AddQuantity(v int) *PartUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *PartUpdateOne) SetSupplier(v string) *PartUpdateOne {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *PartUpdateOne) SetNillableSupplier(v *string) *PartUpdateOne {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *PartUpdateOne) ClearSupplier() *PartUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// Mutation returns the PartMutation object of the builder.
func (_u *PartUpdateOne) Mutation() *PartMutation {
	return _u.mutation
}

// Where appends a list predicates to the PartUpdate builder.
func (_u *PartUpdateOne) Where(ps ...predicate.Part) *PartUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PartUpdateOne) Select(field string, fields ...string) *PartUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Part entity.
func (_u *PartUpdateOne) Save(ctx context.Context) (*Part, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartUpdateOne) SaveX(ctx context.Context) *Part {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PartUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := part.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := part.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Part.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Condition(); ok {
		if err := part.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "Part.condition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := part.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Part.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := part.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Part.quantity": %w`, err)}
		}
	}
	return nil
}

func (_u *PartUpdateOne) sqlSave(ctx context.Context) (_node *Part, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(part.Table, part.Columns, sqlgraph.NewFieldSpec(part.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Part.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, part.FieldID)
		for _, f := range fields {
			if !part.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != part.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(part.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(part.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(part.FieldCondition, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(part.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(part.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(part.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(part.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(part.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(part.FieldSupplier, field.TypeString)
	}
	_node = &Part{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{part.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
