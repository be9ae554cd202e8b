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
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/predicate"
	"github.com/dediamond1/mechanic/ent/servicerecord"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
)

// ServiceRecordUpdate is the builder for updating ServiceRecord entities.
type ServiceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceRecordMutation
}

// Where appends a list predicates to the ServiceRecordUpdate builder.
func (_u *ServiceRecordUpdate) Where(ps ...predicate.ServiceRecord) *ServiceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceRecordUpdate) SetUpdatedAt(v time.Time) *ServiceRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceRecordUpdate) SetDescription(v string) *ServiceRecordUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableDescription(v *string) *ServiceRecordUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServiceRecordUpdate) ClearDescription() *ServiceRecordUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetServicesPerformed sets the "services_performed" field.
func (_u *ServiceRecordUpdate) SetServicesPerformed(v []string) *ServiceRecordUpdate {
	_u.mutation.SetServicesPerformed(v)
	return _u
}

// AppendServicesPerformed appends value to the "services_performed" field.
func (_u *ServiceRecordUpdate) AppendServicesPerformed(v []string) *ServiceRecordUpdate {
	_u.mutation.AppendServicesPerformed(v)
	return _u
}

// ClearServicesPerformed clears the value of the "services_performed" field.
func (_u *ServiceRecordUpdate) ClearServicesPerformed() *ServiceRecordUpdate {
	_u.mutation.ClearServicesPerformed()
	return _u
}

// SetPartsUsed sets the "parts_used" field.
func (_u *ServiceRecordUpdate) SetPartsUsed(v []domain.PartUsage) *ServiceRecordUpdate {
	_u.mutation.SetPartsUsed(v)
	return _u
}

// AppendPartsUsed appends value to the "parts_used" field.
func (_u *ServiceRecordUpdate) AppendPartsUsed(v []domain.PartUsage) *ServiceRecordUpdate {
	_u.mutation.AppendPartsUsed(v)
	return _u
}

// ClearPartsUsed clears the value of the "parts_used" field.
func (_u *ServiceRecordUpdate) ClearPartsUsed() *ServiceRecordUpdate {
	_u.mutation.ClearPartsUsed()
	return _u
}

// SetLaborCost sets the "labor_cost" field.
func (_u *ServiceRecordUpdate) SetLaborCost(v float64) *ServiceRecordUpdate {
	_u.mutation.ResetLaborCost()
	_u.mutation.SetLaborCost(v)
	return _u
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableLaborCost(v *float64) *ServiceRecordUpdate {
	if v != nil {
		_u.SetLaborCost(*v)
	}
	return _u
}

// AddLaborCost adds value to the "labor_cost" field.
func (_u *ServiceRecordUpdate) AddLaborCost(v float64) *ServiceRecordUpdate {
	_u.mutation.AddLaborCost(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *ServiceRecordUpdate) SetTotalCost(v float64) *ServiceRecordUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableTotalCost(v *float64) *ServiceRecordUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *ServiceRecordUpdate) AddTotalCost(v float64) *ServiceRecordUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ServiceRecordUpdate) SetNotes(v string) *ServiceRecordUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableNotes(v *string) *ServiceRecordUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ServiceRecordUpdate) ClearNotes() *ServiceRecordUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ServiceRecordUpdate) SetStatus(v servicerecord.Status) *ServiceRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableStatus(v *servicerecord.Status) *ServiceRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ServiceRecordUpdate) SetCompletedAt(v time.Time) *ServiceRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableCompletedAt(v *time.Time) *ServiceRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ServiceRecordUpdate) ClearCompletedAt() *ServiceRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by ID.
func (_u *ServiceRecordUpdate) SetVehicleID(id string) *ServiceRecordUpdate {
	_u.mutation.SetVehicleID(id)
	return _u
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_u *ServiceRecordUpdate) SetVehicle(v *Vehicle) *ServiceRecordUpdate {
	return _u.SetVehicleID(v.ID)
}

// SetAppointmentID sets the "appointment" edge to the Appointment entity by ID.
func (_u *ServiceRecordUpdate) SetAppointmentID(id string) *ServiceRecordUpdate {
	_u.mutation.SetAppointmentID(id)
	return _u
}

// SetNillableAppointmentID sets the "appointment" edge to the Appointment entity by ID if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableAppointmentID(id *string) *ServiceRecordUpdate {
	if id != nil {
		_u = _u.SetAppointmentID(*id)
	}
	return _u
}

// SetAppointment sets the "appointment" edge to the Appointment entity.
func (_u *ServiceRecordUpdate) SetAppointment(v *Appointment) *ServiceRecordUpdate {
	return _u.SetAppointmentID(v.ID)
}

// Mutation returns the ServiceRecordMutation object of the builder.
func (_u *ServiceRecordUpdate) Mutation() *ServiceRecordMutation {
	return _u.mutation
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (_u *ServiceRecordUpdate) ClearVehicle() *ServiceRecordUpdate {
	_u.mutation.ClearVehicle()
	return _u
}

// ClearAppointment clears the "appointment" edge to the Appointment entity.
func (_u *ServiceRecordUpdate) ClearAppointment() *ServiceRecordUpdate {
	_u.mutation.ClearAppointment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servicerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceRecordUpdate) check() error {
	if v, ok := _u.mutation.LaborCost(); ok {
		if err := servicerecord.LaborCostValidator(v); err != nil {
			return &ValidationError{Name: "labor_cost", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.labor_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCost(); ok {
		if err := servicerecord.TotalCostValidator(v); err != nil {
			return &ValidationError{Name: "total_cost", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.total_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := servicerecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.status": %w`, err)}
		}
	}
	if _u.mutation.VehicleCleared() && len(_u.mutation.VehicleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServiceRecord.vehicle"`)
	}
	return nil
}

func (_u *ServiceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicerecord.Table, servicerecord.Columns, sqlgraph.NewFieldSpec(servicerecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(servicerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicerecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(servicerecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ServicesPerformed(); ok {
		_spec.SetField(servicerecord.FieldServicesPerformed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedServicesPerformed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, servicerecord.FieldServicesPerformed, value)
		})
	}
	if _u.mutation.ServicesPerformedCleared() {
		_spec.ClearField(servicerecord.FieldServicesPerformed, field.TypeJSON)
	}
	if value, ok := _u.mutation.PartsUsed(); ok {
		_spec.SetField(servicerecord.FieldPartsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, servicerecord.FieldPartsUsed, value)
		})
	}
	if _u.mutation.PartsUsedCleared() {
		_spec.ClearField(servicerecord.FieldPartsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.LaborCost(); ok {
		_spec.SetField(servicerecord.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborCost(); ok {
		_spec.AddField(servicerecord.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(servicerecord.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(servicerecord.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(servicerecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(servicerecord.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(servicerecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(servicerecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(servicerecord.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.VehicleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VehicleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceRecordUpdateOne is the builder for updating a single ServiceRecord entity.
type ServiceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceRecordUpdateOne) SetUpdatedAt(v time.Time) *ServiceRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceRecordUpdateOne) SetDescription(v string) *ServiceRecordUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableDescription(v *string) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServiceRecordUpdateOne) ClearDescription() *ServiceRecordUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetServicesPerformed sets the "services_performed" field.
func (_u *ServiceRecordUpdateOne) SetServicesPerformed(v []string) *ServiceRecordUpdateOne {
	_u.mutation.SetServicesPerformed(v)
	return _u
}

// AppendServicesPerformed appends value to the "services_performed" field.
func (_u *ServiceRecordUpdateOne) AppendServicesPerformed(v []string) *ServiceRecordUpdateOne {
	_u.mutation.AppendServicesPerformed(v)
	return _u
}

// ClearServicesPerformed clears the value of the "services_performed" field.
func (_u *ServiceRecordUpdateOne) ClearServicesPerformed() *ServiceRecordUpdateOne {
	_u.mutation.ClearServicesPerformed()
	return _u
}

// SetPartsUsed sets the "parts_used" field.
func (_u *ServiceRecordUpdateOne) SetPartsUsed(v []domain.PartUsage) *ServiceRecordUpdateOne {
	_u.mutation.SetPartsUsed(v)
	return _u
}

// AppendPartsUsed appends value to the "parts_used" field.
func (_u *ServiceRecordUpdateOne) AppendPartsUsed(v []domain.PartUsage) *ServiceRecordUpdateOne {
	_u.mutation.AppendPartsUsed(v)
	return _u
}

// ClearPartsUsed clears the value of the "parts_used" field.
func (_u *ServiceRecordUpdateOne) ClearPartsUsed() *ServiceRecordUpdateOne {
	_u.mutation.ClearPartsUsed()
	return _u
}

// SetLaborCost sets the "labor_cost" field.
func (_u *ServiceRecordUpdateOne) SetLaborCost(v float64) *ServiceRecordUpdateOne {
	_u.mutation.ResetLaborCost()
	_u.mutation.SetLaborCost(v)
	return _u
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableLaborCost(v *float64) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetLaborCost(*v)
	}
	return _u
}

// AddLaborCost adds value to the "labor_cost" field.
func (_u *ServiceRecordUpdateOne) AddLaborCost(v float64) *ServiceRecordUpdateOne {
	_u.mutation.AddLaborCost(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *ServiceRecordUpdateOne) SetTotalCost(v float64) *ServiceRecordUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableTotalCost(v *float64) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *ServiceRecordUpdateOne) AddTotalCost(v float64) *ServiceRecordUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ServiceRecordUpdateOne) SetNotes(v string) *ServiceRecordUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableNotes(v *string) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ServiceRecordUpdateOne) ClearNotes() *ServiceRecordUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ServiceRecordUpdateOne) SetStatus(v servicerecord.Status) *ServiceRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableStatus(v *servicerecord.Status) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ServiceRecordUpdateOne) SetCompletedAt(v time.Time) *ServiceRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ServiceRecordUpdateOne) ClearCompletedAt() *ServiceRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by ID.
func (_u *ServiceRecordUpdateOne) SetVehicleID(id string) *ServiceRecordUpdateOne {
	_u.mutation.SetVehicleID(id)
	return _u
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_u *ServiceRecordUpdateOne) SetVehicle(v *Vehicle) *ServiceRecordUpdateOne {
	return _u.SetVehicleID(v.ID)
}

// SetAppointmentID sets the "appointment" edge to the Appointment entity by ID.
func (_u *ServiceRecordUpdateOne) SetAppointmentID(id string) *ServiceRecordUpdateOne {
	_u.mutation.SetAppointmentID(id)
	return _u
}

// SetNillableAppointmentID sets the "appointment" edge to the Appointment entity by ID if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableAppointmentID(id *string) *ServiceRecordUpdateOne {
	if id != nil {
		_u = _u.SetAppointmentID(*id)
	}
	return _u
}

// SetAppointment sets the "appointment" edge to the Appointment entity.
func (_u *ServiceRecordUpdateOne) SetAppointment(v *Appointment) *ServiceRecordUpdateOne {
	return _u.SetAppointmentID(v.ID)
}

// Mutation returns the ServiceRecordMutation object of the builder.
func (_u *ServiceRecordUpdateOne) Mutation() *ServiceRecordMutation {
	return _u.mutation
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (_u *ServiceRecordUpdateOne) ClearVehicle() *ServiceRecordUpdateOne {
	_u.mutation.ClearVehicle()
	return _u
}

// ClearAppointment clears the "appointment" edge to the Appointment entity.
func (_u *ServiceRecordUpdateOne) ClearAppointment() *ServiceRecordUpdateOne {
	_u.mutation.ClearAppointment()
	return _u
}

// Where appends a list predicates to the ServiceRecordUpdate builder.
func (_u *ServiceRecordUpdateOne) Where(ps ...predicate.ServiceRecord) *ServiceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceRecordUpdateOne) Select(field string, fields ...string) *ServiceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceRecord entity.
func (_u *ServiceRecordUpdateOne) Save(ctx context.Context) (*ServiceRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceRecordUpdateOne) SaveX(ctx context.Context) *ServiceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servicerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LaborCost(); ok {
		if err := servicerecord.LaborCostValidator(v); err != nil {
			return &ValidationError{Name: "labor_cost", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.labor_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCost(); ok {
		if err := servicerecord.TotalCostValidator(v); err != nil {
			return &ValidationError{Name: "total_cost", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.total_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := servicerecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.status": %w`, err)}
		}
	}
	if _u.mutation.VehicleCleared() && len(_u.mutation.VehicleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServiceRecord.vehicle"`)
	}
	return nil
}

func (_u *ServiceRecordUpdateOne) sqlSave(ctx context.Context) (_node *ServiceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicerecord.Table, servicerecord.Columns, sqlgraph.NewFieldSpec(servicerecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServiceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servicerecord.FieldID)
		for _, f := range fields {
			if !servicerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != servicerecord.FieldID {
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
		_spec.SetField(servicerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicerecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(servicerecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ServicesPerformed(); ok {
		_spec.SetField(servicerecord.FieldServicesPerformed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedServicesPerformed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, servicerecord.FieldServicesPerformed, value)
		})
	}
	if _u.mutation.ServicesPerformedCleared() {
		_spec.ClearField(servicerecord.FieldServicesPerformed, field.TypeJSON)
	}
	if value, ok := _u.mutation.PartsUsed(); ok {
		_spec.SetField(servicerecord.FieldPartsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, servicerecord.FieldPartsUsed, value)
		})
	}
	if _u.mutation.PartsUsedCleared() {
		_spec.ClearField(servicerecord.FieldPartsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.LaborCost(); ok {
		_spec.SetField(servicerecord.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborCost(); ok {
		_spec.AddField(servicerecord.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(servicerecord.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(servicerecord.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(servicerecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(servicerecord.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(servicerecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(servicerecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(servicerecord.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.VehicleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VehicleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ServiceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
