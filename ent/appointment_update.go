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
	"github.com/dediamond1/mechanic/ent/employee"
	"github.com/dediamond1/mechanic/ent/issue"
	"github.com/dediamond1/mechanic/ent/predicate"
	"github.com/dediamond1/mechanic/ent/servicecatalogitem"
	"github.com/dediamond1/mechanic/ent/servicerecord"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdate) SetAppointmentDate(v time.Time) *AppointmentUpdate {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentDate(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdate) SetNotes(v string) *AppointmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdate) ClearNotes() *AppointmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetAppointmentType sets the "appointment_type" field.
func (_u *AppointmentUpdate) SetAppointmentType(v appointment.AppointmentType) *AppointmentUpdate {
	_u.mutation.SetAppointmentType(v)
	return _u
}

// SetNillableAppointmentType sets the "appointment_type" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentType(v *appointment.AppointmentType) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentType(*v)
	}
	return _u
}

// ClearAppointmentType clears the value of the "appointment_type" field.
func (_u *AppointmentUpdate) ClearAppointmentType() *AppointmentUpdate {
	_u.mutation.ClearAppointmentType()
	return _u
}

// SetPartsUsed sets the "parts_used" field.
func (_u *AppointmentUpdate) SetPartsUsed(v []domain.PartUsage) *AppointmentUpdate {
	_u.mutation.SetPartsUsed(v)
	return _u
}

// AppendPartsUsed appends value to the "parts_used" field.
func (_u *AppointmentUpdate) AppendPartsUsed(v []domain.PartUsage) *AppointmentUpdate {
	_u.mutation.AppendPartsUsed(v)
	return _u
}

// ClearPartsUsed clears the value of the "parts_used" field.
func (_u *AppointmentUpdate) ClearPartsUsed() *AppointmentUpdate {
	_u.mutation.ClearPartsUsed()
	return _u
}

// SetLaborCost sets the "labor_cost" field.
func (_u *AppointmentUpdate) SetLaborCost(v float64) *AppointmentUpdate {
	_u.mutation.ResetLaborCost()
	_u.mutation.SetLaborCost(v)
	return _u
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableLaborCost(v *float64) *AppointmentUpdate {
	if v != nil {
		_u.SetLaborCost(*v)
	}
	return _u
}

// AddLaborCost adds value to the "labor_cost" field.
func (_u *AppointmentUpdate) AddLaborCost(v float64) *AppointmentUpdate {
	_u.mutation.AddLaborCost(v)
	return _u
}

// ClearLaborCost clears the value of the "labor_cost" field.
func (_u *AppointmentUpdate) ClearLaborCost() *AppointmentUpdate {
	_u.mutation.ClearLaborCost()
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *AppointmentUpdate) SetTotalCost(v float64) *AppointmentUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTotalCost(v *float64) *AppointmentUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *AppointmentUpdate) AddTotalCost(v float64) *AppointmentUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// ClearTotalCost clears the value of the "total_cost" field.
func (_u *AppointmentUpdate) ClearTotalCost() *AppointmentUpdate {
	_u.mutation.ClearTotalCost()
	return _u
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by ID.
func (_u *AppointmentUpdate) SetVehicleID(id string) *AppointmentUpdate {
	_u.mutation.SetVehicleID(id)
	return _u
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_u *AppointmentUpdate) SetVehicle(v *Vehicle) *AppointmentUpdate {
	return _u.SetVehicleID(v.ID)
}

// SetEmployeeID sets the "employee" edge to the Employee entity by ID.
func (_u *AppointmentUpdate) SetEmployeeID(id string) *AppointmentUpdate {
	_u.mutation.SetEmployeeID(id)
	return _u
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *AppointmentUpdate) SetEmployee(v *Employee) *AppointmentUpdate {
	return _u.SetEmployeeID(v.ID)
}

// AddServiceIDs adds the "services" edge to the ServiceCatalogItem entity by IDs.
func (_u *AppointmentUpdate) AddServiceIDs(ids ...string) *AppointmentUpdate {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the ServiceCatalogItem entity.
func (_u *AppointmentUpdate) AddServices(v ...*ServiceCatalogItem) *AppointmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// SetIssueID sets the "issue" edge to the Issue entity by ID.
func (_u *AppointmentUpdate) SetIssueID(id string) *AppointmentUpdate {
	_u.mutation.SetIssueID(id)
	return _u
}

// SetNillableIssueID sets the "issue" edge to the Issue entity by ID if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableIssueID(id *string) *AppointmentUpdate {
	if id != nil {
		_u = _u.SetIssueID(*id)
	}
	return _u
}

// SetIssue sets the "issue" edge to the Issue entity.
func (_u *AppointmentUpdate) SetIssue(v *Issue) *AppointmentUpdate {
	return _u.SetIssueID(v.ID)
}

// AddServiceRecordIDs adds the "service_records" edge to the ServiceRecord entity by IDs.
func (_u *AppointmentUpdate) AddServiceRecordIDs(ids ...string) *AppointmentUpdate {
	_u.mutation.AddServiceRecordIDs(ids...)
	return _u
}

// AddServiceRecords adds the "service_records" edges to the ServiceRecord entity.
func (_u *AppointmentUpdate) AddServiceRecords(v ...*ServiceRecord) *AppointmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceRecordIDs(ids...)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (_u *AppointmentUpdate) ClearVehicle() *AppointmentUpdate {
	_u.mutation.ClearVehicle()
	return _u
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *AppointmentUpdate) ClearEmployee() *AppointmentUpdate {
	_u.mutation.ClearEmployee()
	return _u
}

// ClearServices clears all "services" edges to the ServiceCatalogItem entity.
func (_u *AppointmentUpdate) ClearServices() *AppointmentUpdate {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to ServiceCatalogItem entities by IDs.
func (_u *AppointmentUpdate) RemoveServiceIDs(ids ...string) *AppointmentUpdate {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to ServiceCatalogItem entities.
func (_u *AppointmentUpdate) RemoveServices(v ...*ServiceCatalogItem) *AppointmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// ClearIssue clears the "issue" edge to the Issue entity.
func (_u *AppointmentUpdate) ClearIssue() *AppointmentUpdate {
	_u.mutation.ClearIssue()
	return _u
}

// ClearServiceRecords clears all "service_records" edges to the ServiceRecord entity.
func (_u *AppointmentUpdate) ClearServiceRecords() *AppointmentUpdate {
	_u.mutation.ClearServiceRecords()
	return _u
}

// RemoveServiceRecordIDs removes the "service_records" edge to ServiceRecord entities by IDs.
func (_u *AppointmentUpdate) RemoveServiceRecordIDs(ids ...string) *AppointmentUpdate {
	_u.mutation.RemoveServiceRecordIDs(ids...)
	return _u
}

// RemoveServiceRecords removes "service_records" edges to ServiceRecord entities.
func (_u *AppointmentUpdate) RemoveServiceRecords(v ...*ServiceRecord) *AppointmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentType(); ok {
		if err := appointment.AppointmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_type", err: fmt.Errorf(`ent: validator failed for field "Appointment.appointment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LaborCost(); ok {
		if err := appointment.LaborCostValidator(v); err != nil {
			return &ValidationError{Name: "labor_cost", err: fmt.Errorf(`ent: validator failed for field "Appointment.labor_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCost(); ok {
		if err := appointment.TotalCostValidator(v); err != nil {
			return &ValidationError{Name: "total_cost", err: fmt.Errorf(`ent: validator failed for field "Appointment.total_cost": %w`, err)}
		}
	}
	if _u.mutation.VehicleCleared() && len(_u.mutation.VehicleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Appointment.vehicle"`)
	}
	if _u.mutation.EmployeeCleared() && len(_u.mutation.EmployeeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Appointment.employee"`)
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.AppointmentType(); ok {
		_spec.SetField(appointment.FieldAppointmentType, field.TypeEnum, value)
	}
	if _u.mutation.AppointmentTypeCleared() {
		_spec.ClearField(appointment.FieldAppointmentType, field.TypeEnum)
	}
	if value, ok := _u.mutation.PartsUsed(); ok {
		_spec.SetField(appointment.FieldPartsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, appointment.FieldPartsUsed, value)
		})
	}
	if _u.mutation.PartsUsedCleared() {
		_spec.ClearField(appointment.FieldPartsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.LaborCost(); ok {
		_spec.SetField(appointment.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborCost(); ok {
		_spec.AddField(appointment.FieldLaborCost, field.TypeFloat64, value)
	}
	if _u.mutation.LaborCostCleared() {
		_spec.ClearField(appointment.FieldLaborCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(appointment.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(appointment.FieldTotalCost, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCostCleared() {
		_spec.ClearField(appointment.FieldTotalCost, field.TypeFloat64)
	}
	if _u.mutation.VehicleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VehicleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmployeeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServicesIDs(); len(nodes) > 0 && !_u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssueCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssueIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServiceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServiceRecordsIDs(); len(nodes) > 0 && !_u.mutation.ServiceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdateOne) SetAppointmentDate(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentDate(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdateOne) SetNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdateOne) ClearNotes() *AppointmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetAppointmentType sets the "appointment_type" field.
func (_u *AppointmentUpdateOne) SetAppointmentType(v appointment.AppointmentType) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentType(v)
	return _u
}

// SetNillableAppointmentType sets the "appointment_type" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentType(v *appointment.AppointmentType) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentType(*v)
	}
	return _u
}

// ClearAppointmentType clears the value of the "appointment_type" field.
func (_u *AppointmentUpdateOne) ClearAppointmentType() *AppointmentUpdateOne {
	_u.mutation.ClearAppointmentType()
	return _u
}

// SetPartsUsed sets the "parts_used" field.
func (_u *AppointmentUpdateOne) SetPartsUsed(v []domain.PartUsage) *AppointmentUpdateOne {
	_u.mutation.SetPartsUsed(v)
	return _u
}

// AppendPartsUsed appends value to the "parts_used" field.
func (_u *AppointmentUpdateOne) AppendPartsUsed(v []domain.PartUsage) *AppointmentUpdateOne {
	_u.mutation.AppendPartsUsed(v)
	return _u
}

// ClearPartsUsed clears the value of the "parts_used" field.
func (_u *AppointmentUpdateOne) ClearPartsUsed() *AppointmentUpdateOne {
	_u.mutation.ClearPartsUsed()
	return _u
}

// SetLaborCost sets the "labor_cost" field.
func (_u *AppointmentUpdateOne) SetLaborCost(v float64) *AppointmentUpdateOne {
	_u.mutation.ResetLaborCost()
	_u.mutation.SetLaborCost(v)
	return _u
}

// SetNillableLaborCost sets the "labor_cost" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableLaborCost(v *float64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetLaborCost(*v)
	}
	return _u
}

// AddLaborCost adds value to the "labor_cost" field.
func (_u *AppointmentUpdateOne) AddLaborCost(v float64) *AppointmentUpdateOne {
	_u.mutation.AddLaborCost(v)
	return _u
}

// ClearLaborCost clears the value of the "labor_cost" field.
func (_u *AppointmentUpdateOne) ClearLaborCost() *AppointmentUpdateOne {
	_u.mutation.ClearLaborCost()
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *AppointmentUpdateOne) SetTotalCost(v float64) *AppointmentUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTotalCost(v *float64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *AppointmentUpdateOne) AddTotalCost(v float64) *AppointmentUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// ClearTotalCost clears the value of the "total_cost" field.
func (_u *AppointmentUpdateOne) ClearTotalCost() *AppointmentUpdateOne {
	_u.mutation.ClearTotalCost()
	return _u
}

// SetVehicleID sets the "vehicle" edge to the Vehicle entity by ID.
func (_u *AppointmentUpdateOne) SetVehicleID(id string) *AppointmentUpdateOne {
	_u.mutation.SetVehicleID(id)
	return _u
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_u *AppointmentUpdateOne) SetVehicle(v *Vehicle) *AppointmentUpdateOne {
	return _u.SetVehicleID(v.ID)
}

// SetEmployeeID sets the "employee" edge to the Employee entity by ID.
func (_u *AppointmentUpdateOne) SetEmployeeID(id string) *AppointmentUpdateOne {
	_u.mutation.SetEmployeeID(id)
	return _u
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *AppointmentUpdateOne) SetEmployee(v *Employee) *AppointmentUpdateOne {
	return _u.SetEmployeeID(v.ID)
}

// AddServiceIDs adds the "services" edge to the ServiceCatalogItem entity by IDs.
func (_u *AppointmentUpdateOne) AddServiceIDs(ids ...string) *AppointmentUpdateOne {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the ServiceCatalogItem entity.
func (_u *AppointmentUpdateOne) AddServices(v ...*ServiceCatalogItem) *AppointmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// SetIssueID sets the "issue" edge to the Issue entity by ID.
func (_u *AppointmentUpdateOne) SetIssueID(id string) *AppointmentUpdateOne {
	_u.mutation.SetIssueID(id)
	return _u
}

// SetNillableIssueID sets the "issue" edge to the Issue entity by ID if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableIssueID(id *string) *AppointmentUpdateOne {
	if id != nil {
		_u = _u.SetIssueID(*id)
	}
	return _u
}

// SetIssue sets the "issue" edge to the Issue entity.
func (_u *AppointmentUpdateOne) SetIssue(v *Issue) *AppointmentUpdateOne {
	return _u.SetIssueID(v.ID)
}

// AddServiceRecordIDs adds the "service_records" edge to the ServiceRecord entity by IDs.
func (_u *AppointmentUpdateOne) AddServiceRecordIDs(ids ...string) *AppointmentUpdateOne {
	_u.mutation.AddServiceRecordIDs(ids...)
	return _u
}

// AddServiceRecords adds the "service_records" edges to the ServiceRecord entity.
func (_u *AppointmentUpdateOne) AddServiceRecords(v ...*ServiceRecord) *AppointmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceRecordIDs(ids...)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (_u *AppointmentUpdateOne) ClearVehicle() *AppointmentUpdateOne {
	_u.mutation.ClearVehicle()
	return _u
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *AppointmentUpdateOne) ClearEmployee() *AppointmentUpdateOne {
	_u.mutation.ClearEmployee()
	return _u
}

// ClearServices clears all "services" edges to the ServiceCatalogItem entity.
func (_u *AppointmentUpdateOne) ClearServices() *AppointmentUpdateOne {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to ServiceCatalogItem entities by IDs.
func (_u *AppointmentUpdateOne) RemoveServiceIDs(ids ...string) *AppointmentUpdateOne {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to ServiceCatalogItem entities.
func (_u *AppointmentUpdateOne) RemoveServices(v ...*ServiceCatalogItem) *AppointmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// ClearIssue clears the "issue" edge to the Issue entity.
func (_u *AppointmentUpdateOne) ClearIssue() *AppointmentUpdateOne {
	_u.mutation.ClearIssue()
	return _u
}

// ClearServiceRecords clears all "service_records" edges to the ServiceRecord entity.
func (_u *AppointmentUpdateOne) ClearServiceRecords() *AppointmentUpdateOne {
	_u.mutation.ClearServiceRecords()
	return _u
}

// RemoveServiceRecordIDs removes the "service_records" edge to ServiceRecord entities by IDs.
func (_u *AppointmentUpdateOne) RemoveServiceRecordIDs(ids ...string) *AppointmentUpdateOne {
	_u.mutation.RemoveServiceRecordIDs(ids...)
	return _u
}

// RemoveServiceRecords removes "service_records" edges to ServiceRecord entities.
func (_u *AppointmentUpdateOne) RemoveServiceRecords(v ...*ServiceRecord) *AppointmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceRecordIDs(ids...)
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentType(); ok {
		if err := appointment.AppointmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_type", err: fmt.Errorf(`ent: validator failed for field "Appointment.appointment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LaborCost(); ok {
		if err := appointment.LaborCostValidator(v); err != nil {
			return &ValidationError{Name: "labor_cost", err: fmt.Errorf(`ent: validator failed for field "Appointment.labor_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCost(); ok {
		if err := appointment.TotalCostValidator(v); err != nil {
			return &ValidationError{Name: "total_cost", err: fmt.Errorf(`ent: validator failed for field "Appointment.total_cost": %w`, err)}
		}
	}
	if _u.mutation.VehicleCleared() && len(_u.mutation.VehicleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Appointment.vehicle"`)
	}
	if _u.mutation.EmployeeCleared() && len(_u.mutation.EmployeeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Appointment.employee"`)
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.AppointmentType(); ok {
		_spec.SetField(appointment.FieldAppointmentType, field.TypeEnum, value)
	}
	if _u.mutation.AppointmentTypeCleared() {
		_spec.ClearField(appointment.FieldAppointmentType, field.TypeEnum)
	}
	if value, ok := _u.mutation.PartsUsed(); ok {
		_spec.SetField(appointment.FieldPartsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, appointment.FieldPartsUsed, value)
		})
	}
	if _u.mutation.PartsUsedCleared() {
		_spec.ClearField(appointment.FieldPartsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.LaborCost(); ok {
		_spec.SetField(appointment.FieldLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborCost(); ok {
		_spec.AddField(appointment.FieldLaborCost, field.TypeFloat64, value)
	}
	if _u.mutation.LaborCostCleared() {
		_spec.ClearField(appointment.FieldLaborCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(appointment.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(appointment.FieldTotalCost, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCostCleared() {
		_spec.ClearField(appointment.FieldTotalCost, field.TypeFloat64)
	}
	if _u.mutation.VehicleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VehicleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmployeeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServicesIDs(); len(nodes) > 0 && !_u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssueCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssueIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServiceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServiceRecordsIDs(); len(nodes) > 0 && !_u.mutation.ServiceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
