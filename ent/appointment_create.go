// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/employee"
	"github.com/dediamond1/mechanic/ent/issue"
	"github.com/dediamond1/mechanic/ent/servicecatalogitem"
	"github.com/dediamond1/mechanic/ent/servicerecord"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAppointmentDate sets the "appointment_date" field.
func (_c *AppointmentCreate) SetAppointmentDate(v time.Time) *AppointmentCreate {
	_c.mutation.SetAppointmentDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *AppointmentCreate) SetNotes(v string) *AppointmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableNotes(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetAppointmentType sets the "appointment_type" field.
func (_c *AppointmentCreate) SetAppointmentType(v appointment.AppointmentType) *AppointmentCreate {
	_c.mutation.SetAppointmentType(v)
	return _c
}

// SetNillableAppointmentType sets the "appointment_type" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableAppointmentType(v *appointment.AppointmentType) *AppointmentCreate {
	if v != nil {
		_c.SetAppointmentType(*v)
	}
	return _c
}

// SetPartsUsed sets the "parts_used" field.
func (_c *AppointmentCreate) SetPartsUsed(v []domain.PartUsage) *AppointmentCreate {
	_c.mutation.SetPartsUsed(v)
	return _c
}

// SetLaborCost sets the "labor_cost" field.
func (_c *AppointmentCreate) SetLaborCost(v float64) *AppointmentCreate {
	_c.mutation.SetLaborCost(v)
	return _c
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableLaborCost(v *float64) *AppointmentCreate {
	if v != nil {
		_c.SetLaborCost(*v)
	}
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *AppointmentCreate) SetTotalCost(v float64) *AppointmentCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableTotalCost(v *float64) *AppointmentCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v string) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by ID.
func (_c *AppointmentCreate) SetVehicleID(id string) *AppointmentCreate {
	_c.mutation.SetVehicleID(id)
	return _c
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_c *AppointmentCreate) SetVehicle(v *Vehicle) *AppointmentCreate {
	return _c.SetVehicleID(v.ID)
}

// SetEmployeeID sets the "employee" edge to the Employee entity by ID.
func (_c *AppointmentCreate) SetEmployeeID(id string) *AppointmentCreate {
	_c.mutation.SetEmployeeID(id)
	return _c
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_c *AppointmentCreate) SetEmployee(v *Employee) *AppointmentCreate {
	return _c.SetEmployeeID(v.ID)
}

// AddServiceIDs adds the "services" edge to the ServiceCatalogItem entity by IDs.
func (_c *AppointmentCreate) AddServiceIDs(ids ...string) *AppointmentCreate {
	_c.mutation.AddServiceIDs(ids...)
	return _c
}

// AddServices adds the "services" edges to the ServiceCatalogItem entity.
func (_c *AppointmentCreate) AddServices(v ...*ServiceCatalogItem) *AppointmentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddServiceIDs(ids...)
}

// SetIssueID sets the "issue" edge to the Issue entity by ID.
func (_c *AppointmentCreate) SetIssueID(id string) *AppointmentCreate {
	_c.mutation.SetIssueID(id)
	return _c
}

// SetNillableIssueID sets the "issue" edge to the Issue entity by ID if the given value is not nil.
func (_c *AppointmentCreate) SetNillableIssueID(id *string) *AppointmentCreate {
	if id != nil {
		_c = _c.SetIssueID(*id)
	}
	return _c
}

// SetIssue sets the "issue" edge to the Issue entity.
func (_c *AppointmentCreate) SetIssue(v *Issue) *AppointmentCreate {
	return _c.SetIssueID(v.ID)
}

// AddServiceRecordIDs adds the "service_records" edge to the ServiceRecord entity by IDs.
func (_c *AppointmentCreate) AddServiceRecordIDs(ids ...string) *AppointmentCreate {
	_c.mutation.AddServiceRecordIDs(ids...)
	return _c
}

// AddServiceRecords adds the "service_records" edges to the ServiceRecord entity.
func (_c *AppointmentCreate) AddServiceRecords(v ...*ServiceRecord) *AppointmentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddServiceRecordIDs(ids...)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Appointment.updated_at"`)}
	}
	if _, ok := _c.mutation.AppointmentDate(); !ok {
		return &ValidationError{Name: "appointment_date", err: errors.New(`ent: missing required field "Appointment.appointment_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AppointmentType(); ok {
		if err := appointment.AppointmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_type", err: fmt.Errorf(`ent: validator failed for field "Appointment.appointment_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LaborCost(); ok {
		if err := appointment.LaborCostValidator(v); err != nil {
			return &ValidationError{Name: "labor_cost", err: fmt.Errorf(`ent: validator failed for field "Appointment.labor_cost": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TotalCost(); ok {
		if err := appointment.TotalCostValidator(v); err != nil {
			return &ValidationError{Name: "total_cost", err: fmt.Errorf(`ent: validator failed for field "Appointment.total_cost": %w`, err)}
		}
	}
	if len(_c.mutation.VehicleIDs()) == 0 {
		return &ValidationError{Name: "vehicle", err: errors.New(`ent: missing required edge "Appointment.vehicle"`)}
	}
	if len(_c.mutation.EmployeeIDs()) == 0 {
		return &ValidationError{Name: "employee", err: errors.New(`ent: missing required edge "Appointment.employee"`)}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
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
			return nil, fmt.Errorf("unexpected Appointment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeTime, value)
		_node.AppointmentDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.AppointmentType(); ok {
		_spec.SetField(appointment.FieldAppointmentType, field.TypeEnum, value)
		_node.AppointmentType = value
	}
	if value, ok := _c.mutation.PartsUsed(); ok {
		_spec.SetField(appointment.FieldPartsUsed, field.TypeJSON, value)
		_node.PartsUsed = value
	}
	if value, ok := _c.mutation.LaborCost(); ok {
		_spec.SetField(appointment.FieldLaborCost, field.TypeFloat64, value)
		_node.LaborCost = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(appointment.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if nodes := _c.mutation.VehicleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.VehicleTable,
			Columns: []string{appointment.VehicleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.vehicle_appointments = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EmployeeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.EmployeeTable,
			Columns: []string{appointment.EmployeeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(employee.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.employee_appointments = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   appointment.ServicesTable,
			Columns: appointment.ServicesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servicecatalogitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IssueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.IssueTable,
			Columns: []string{appointment.IssueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.issue_appointments = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServiceRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   appointment.ServiceRecordsTable,
			Columns: []string{appointment.ServiceRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servicerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
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
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
