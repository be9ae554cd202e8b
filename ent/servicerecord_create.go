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
	"github.com/dediamond1/mechanic/ent/servicerecord"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
)

// ServiceRecordCreate is the builder for creating a ServiceRecord entity.
type ServiceRecordCreate struct {
	config
	mutation *ServiceRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceRecordCreate) SetCreatedAt(v time.Time) *ServiceRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableCreatedAt(v *time.Time) *ServiceRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServiceRecordCreate) SetUpdatedAt(v time.Time) *ServiceRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableUpdatedAt(v *time.Time) *ServiceRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ServiceRecordCreate) SetDescription(v string) *ServiceRecordCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableDescription(v *string) *ServiceRecordCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetServicesPerformed sets the "services_performed" field.
func (_c *ServiceRecordCreate) SetServicesPerformed(v []string) *ServiceRecordCreate {
	_c.mutation.SetServicesPerformed(v)
	return _c
}

// SetPartsUsed sets the "parts_used" field.
func (_c *ServiceRecordCreate) SetPartsUsed(v []domain.PartUsage) *ServiceRecordCreate {
	_c.mutation.SetPartsUsed(v)
	return _c
}

// SetLaborCost sets the "labor_cost" field.
func (_c *ServiceRecordCreate) SetLaborCost(v float64) *ServiceRecordCreate {
	_c.mutation.SetLaborCost(v)
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *ServiceRecordCreate) SetTotalCost(v float64) *ServiceRecordCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ServiceRecordCreate) SetNotes(v string) *ServiceRecordCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableNotes(v *string) *ServiceRecordCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ServiceRecordCreate) SetStatus(v servicerecord.Status) *ServiceRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableStatus(v *servicerecord.Status) *ServiceRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ServiceRecordCreate) SetCompletedAt(v time.Time) *ServiceRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableCompletedAt(v *time.Time) *ServiceRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceRecordCreate) SetID(v string) *ServiceRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by ID.
func (_c *ServiceRecordCreate) SetVehicleID(id string) *ServiceRecordCreate {
	_c.mutation.SetVehicleID(id)
	return _c
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_c *ServiceRecordCreate) SetVehicle(v *Vehicle) *ServiceRecordCreate {
	return _c.SetVehicleID(v.ID)
}

// SetAppointmentID sets the "appointment" edge to the Appointment entity by ID.
func (_c *ServiceRecordCreate) SetAppointmentID(id string) *ServiceRecordCreate {
	_c.mutation.SetAppointmentID(id)
	return _c
}

// SetNillableAppointmentID sets the "appointment" edge to the Appointment entity by ID if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableAppointmentID(id *string) *ServiceRecordCreate {
	if id != nil {
		_c = _c.SetAppointmentID(*id)
	}
	return _c
}

// SetAppointment sets the "appointment" edge to the Appointment entity.
func (_c *ServiceRecordCreate) SetAppointment(v *Appointment) *ServiceRecordCreate {
	return _c.SetAppointmentID(v.ID)
}

// Mutation returns the ServiceRecordMutation object of the builder.
func (_c *ServiceRecordCreate) Mutation() *ServiceRecordMutation {
	return _c.mutation
}

// Save creates the ServiceRecord in the database.
func (_c *ServiceRecordCreate) Save(ctx context.Context) (*ServiceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceRecordCreate) SaveX(ctx context.Context) *ServiceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := servicerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := servicerecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := servicerecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ServiceRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ServiceRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.LaborCost(); !ok {
		return &ValidationError{Name: "labor_cost", err: errors.New(`ent: missing required field "ServiceRecord.labor_cost"`)}
	}
	if v, ok := _c.mutation.LaborCost(); ok {
		if err := servicerecord.LaborCostValidator(v); err != nil {
			return &ValidationError{Name: "labor_cost", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.labor_cost": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "ServiceRecord.total_cost"`)}
	}
	if v, ok := _c.mutation.TotalCost(); ok {
		if err := servicerecord.TotalCostValidator(v); err != nil {
			return &ValidationError{Name: "total_cost", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.total_cost": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ServiceRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := servicerecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.status": %w`, err)}
		}
	}
	if len(_c.mutation.VehicleIDs()) == 0 {
		return &ValidationError{Name: "vehicle", err: errors.New(`ent: missing required edge "ServiceRecord.vehicle"`)}
	}
	return nil
}

func (_c *ServiceRecordCreate) sqlSave(ctx context.Context) (*ServiceRecord, error) {
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
			return nil, fmt.Errorf("unexpected ServiceRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ServiceRecordCreate) createSpec() (*ServiceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(servicerecord.Table, sqlgraph.NewFieldSpec(servicerecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(servicerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(servicerecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(servicerecord.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ServicesPerformed(); ok {
		_spec.SetField(servicerecord.FieldServicesPerformed, field.TypeJSON, value)
		_node.ServicesPerformed = value
	}
	if value, ok := _c.mutation.PartsUsed(); ok {
		_spec.SetField(servicerecord.FieldPartsUsed, field.TypeJSON, value)
		_node.PartsUsed = value
	}
	if value, ok := _c.mutation.LaborCost(); ok {
		_spec.SetField(servicerecord.FieldLaborCost, field.TypeFloat64, value)
		_node.LaborCost = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(servicerecord.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(servicerecord.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(servicerecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(servicerecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.VehicleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servicerecord.VehicleTable,
			Columns: []string{servicerecord.VehicleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.vehicle_service_records = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AppointmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servicerecord.AppointmentTable,
			Columns: []string{servicerecord.AppointmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.appointment_service_records = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ServiceRecordCreateBulk is the builder for creating many ServiceRecord entities in bulk.
type ServiceRecordCreateBulk struct {
	config
	err      error
	builders []*ServiceRecordCreate
}

// Save creates the ServiceRecord entities in the database.
func (_c *ServiceRecordCreateBulk) Save(ctx context.Context) ([]*ServiceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceRecordMutation)
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
func (_c *ServiceRecordCreateBulk) SaveX(ctx context.Context) []*ServiceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
