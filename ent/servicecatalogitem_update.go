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
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/predicate"
	"github.com/dediamond1/mechanic/ent/servicecatalogitem"
)

// ServiceCatalogItemUpdate is the builder for updating ServiceCatalogItem entities.
type ServiceCatalogItemUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceCatalogItemMutation
}

// Where appends a list predicates to the ServiceCatalogItemUpdate builder.
func (_u *ServiceCatalogItemUpdate) Where(ps ...predicate.ServiceCatalogItem) *ServiceCatalogItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceCatalogItemUpdate) SetUpdatedAt(v time.Time) *ServiceCatalogItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceCatalogItemUpdate) SetName(v string) *ServiceCatalogItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdate) SetNillableName(v *string) *ServiceCatalogItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceCatalogItemUpdate) SetDescription(v string) *ServiceCatalogItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdate) SetNillableDescription(v *string) *ServiceCatalogItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServiceCatalogItemUpdate) ClearDescription() *ServiceCatalogItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ServiceCatalogItemUpdate) SetPrice(v float64) *ServiceCatalogItemUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdate) SetNillablePrice(v *float64) *ServiceCatalogItemUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ServiceCatalogItemUpdate) AddPrice(v float64) *ServiceCatalogItemUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ServiceCatalogItemUpdate) SetCategory(v servicecatalogitem.Category) *ServiceCatalogItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdate) SetNillableCategory(v *servicecatalogitem.Category) *ServiceCatalogItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceCatalogItemUpdate) SetIsActive(v bool) *ServiceCatalogItemUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdate) SetNillableIsActive(v *bool) *ServiceCatalogItemUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *ServiceCatalogItemUpdate) AddAppointmentIDs(ids ...string) *ServiceCatalogItemUpdate {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *ServiceCatalogItemUpdate) AddAppointments(v ...*Appointment) *ServiceCatalogItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// Mutation returns the ServiceCatalogItemMutation object of the builder.
func (_u *ServiceCatalogItemUpdate) Mutation() *ServiceCatalogItemMutation {
	return _u.mutation
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *ServiceCatalogItemUpdate) ClearAppointments() *ServiceCatalogItemUpdate {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *ServiceCatalogItemUpdate) RemoveAppointmentIDs(ids ...string) *ServiceCatalogItemUpdate {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *ServiceCatalogItemUpdate) RemoveAppointments(v ...*Appointment) *ServiceCatalogItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceCatalogItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceCatalogItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceCatalogItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceCatalogItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceCatalogItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servicecatalogitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceCatalogItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := servicecatalogitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ServiceCatalogItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := servicecatalogitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "ServiceCatalogItem.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := servicecatalogitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ServiceCatalogItem.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceCatalogItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicecatalogitem.Table, servicecatalogitem.Columns, sqlgraph.NewFieldSpec(servicecatalogitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(servicecatalogitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(servicecatalogitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicecatalogitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(servicecatalogitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(servicecatalogitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(servicecatalogitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(servicecatalogitem.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(servicecatalogitem.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   servicecatalogitem.AppointmentsTable,
			Columns: servicecatalogitem.AppointmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   servicecatalogitem.AppointmentsTable,
			Columns: servicecatalogitem.AppointmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   servicecatalogitem.AppointmentsTable,
			Columns: servicecatalogitem.AppointmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicecatalogitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceCatalogItemUpdateOne is the builder for updating a single ServiceCatalogItem entity.
type ServiceCatalogItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceCatalogItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceCatalogItemUpdateOne) SetUpdatedAt(v time.Time) *ServiceCatalogItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceCatalogItemUpdateOne) SetName(v string) *ServiceCatalogItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdateOne) SetNillableName(v *string) *ServiceCatalogItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceCatalogItemUpdateOne) SetDescription(v string) *ServiceCatalogItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdateOne) SetNillableDescription(v *string) *ServiceCatalogItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServiceCatalogItemUpdateOne) ClearDescription() *ServiceCatalogItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ServiceCatalogItemUpdateOne) SetPrice(v float64) *ServiceCatalogItemUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdateOne) SetNillablePrice(v *float64) *ServiceCatalogItemUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ServiceCatalogItemUpdateOne) AddPrice(v float64) *ServiceCatalogItemUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ServiceCatalogItemUpdateOne) SetCategory(v servicecatalogitem.Category) *ServiceCatalogItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdateOne) SetNillableCategory(v *servicecatalogitem.Category) *ServiceCatalogItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceCatalogItemUpdateOne) SetIsActive(v bool) *ServiceCatalogItemUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceCatalogItemUpdateOne) SetNillableIsActive(v *bool) *ServiceCatalogItemUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *ServiceCatalogItemUpdateOne) AddAppointmentIDs(ids ...string) *ServiceCatalogItemUpdateOne {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *ServiceCatalogItemUpdateOne) AddAppointments(v ...*Appointment) *ServiceCatalogItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// Mutation returns the ServiceCatalogItemMutation object of the builder.
func (_u *ServiceCatalogItemUpdateOne) Mutation() *ServiceCatalogItemMutation {
	return _u.mutation
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *ServiceCatalogItemUpdateOne) ClearAppointments() *ServiceCatalogItemUpdateOne {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *ServiceCatalogItemUpdateOne) RemoveAppointmentIDs(ids ...string) *ServiceCatalogItemUpdateOne {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *ServiceCatalogItemUpdateOne) RemoveAppointments(v ...*Appointment) *ServiceCatalogItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// Where appends a list predicates to the ServiceCatalogItemUpdate builder.
func (_u *ServiceCatalogItemUpdateOne) Where(ps ...predicate.ServiceCatalogItem) *ServiceCatalogItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceCatalogItemUpdateOne) Select(field string, fields ...string) *ServiceCatalogItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceCatalogItem entity.
func (_u *ServiceCatalogItemUpdateOne) Save(ctx context.Context) (*ServiceCatalogItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceCatalogItemUpdateOne) SaveX(ctx context.Context) *ServiceCatalogItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceCatalogItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceCatalogItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceCatalogItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servicecatalogitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceCatalogItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := servicecatalogitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ServiceCatalogItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := servicecatalogitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "ServiceCatalogItem.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := servicecatalogitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ServiceCatalogItem.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceCatalogItemUpdateOne) sqlSave(ctx context.Context) (_node *ServiceCatalogItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicecatalogitem.Table, servicecatalogitem.Columns, sqlgraph.NewFieldSpec(servicecatalogitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServiceCatalogItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servicecatalogitem.FieldID)
		for _, f := range fields {
			if !servicecatalogitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != servicecatalogitem.FieldID {
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
		_spec.SetField(servicecatalogitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(servicecatalogitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicecatalogitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(servicecatalogitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(servicecatalogitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(servicecatalogitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(servicecatalogitem.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(servicecatalogitem.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   servicecatalogitem.AppointmentsTable,
			Columns: servicecatalogitem.AppointmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   servicecatalogitem.AppointmentsTable,
			Columns: servicecatalogitem.AppointmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   servicecatalogitem.AppointmentsTable,
			Columns: servicecatalogitem.AppointmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ServiceCatalogItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicecatalogitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
