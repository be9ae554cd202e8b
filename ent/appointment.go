// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/employee"
	"github.com/dediamond1/mechanic/ent/issue"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
)

// Appointment is the model entity for the Appointment schema.
type Appointment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// AppointmentDate holds the value of the "appointment_date" field.
	AppointmentDate time.Time `json:"appointment_date,omitempty"`
	// Status holds the value of the "status" field.
	Status appointment.Status `json:"status,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// AppointmentType holds the value of the "appointment_type" field.
	AppointmentType appointment.AppointmentType `json:"appointment_type,omitempty"`
	// PartsUsed holds the value of the "parts_used" field.
	PartsUsed []domain.PartUsage `json:"parts_used,omitempty"`
	// LaborCost holds the value of the "labor_cost" field.
	LaborCost float64 `json:"labor_cost,omitempty"`
	// TotalCost holds the value of the "total_cost" field.
	TotalCost float64 `json:"total_cost,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AppointmentQuery when eager-loading is set.
	Edges                 AppointmentEdges `json:"edges"`
	employee_appointments *string
	issue_appointments    *string
	vehicle_appointments  *string
	selectValues          sql.SelectValues
}

// AppointmentEdges holds the relations/edges for other nodes in the graph.
type AppointmentEdges struct {
	// Vehicle holds the value of the vehicle edge.
	Vehicle *Vehicle `json:"vehicle,omitempty"`
	// Employee holds the value of the employee edge.
	Employee *Employee `json:"employee,omitempty"`
	// Services holds the value of the services edge.
	Services []*ServiceCatalogItem `json:"services,omitempty"`
	// Issue holds the value of the issue edge.
	Issue *Issue `json:"issue,omitempty"`
	// ServiceRecords holds the value of the service_records edge.
	ServiceRecords []*ServiceRecord `json:"service_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// VehicleOrErr returns the Vehicle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) VehicleOrErr() (*Vehicle, error) {
	if e.Vehicle != nil {
		return e.Vehicle, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: vehicle.Label}
	}
	return nil, &NotLoadedError{edge: "vehicle"}
}

// EmployeeOrErr returns the Employee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) EmployeeOrErr() (*Employee, error) {
	if e.Employee != nil {
		return e.Employee, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: employee.Label}
	}
	return nil, &NotLoadedError{edge: "employee"}
}

// ServicesOrErr returns the Services value or an error if the edge
// was not loaded in eager-loading.
func (e AppointmentEdges) ServicesOrErr() ([]*ServiceCatalogItem, error) {
	if e.loadedTypes[2] {
		return e.Services, nil
	}
	return nil, &NotLoadedError{edge: "services"}
}

// IssueOrErr returns the Issue value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) IssueOrErr() (*Issue, error) {
	if e.Issue != nil {
		return e.Issue, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: issue.Label}
	}
	return nil, &NotLoadedError{edge: "issue"}
}

// ServiceRecordsOrErr returns the ServiceRecords value or an error if the edge
// was not loaded in eager-loading.
func (e AppointmentEdges) ServiceRecordsOrErr() ([]*ServiceRecord, error) {
	if e.loadedTypes[4] {
		return e.ServiceRecords, nil
	}
	return nil, &NotLoadedError{edge: "service_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Appointment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointment.FieldPartsUsed:
			values[i] = new([]byte)
		case appointment.FieldLaborCost, appointment.FieldTotalCost:
			values[i] = new(sql.NullFloat64)
		case appointment.FieldID, appointment.FieldStatus, appointment.FieldNotes, appointment.FieldAppointmentType:
			values[i] = new(sql.NullString)
		case appointment.FieldCreatedAt, appointment.FieldUpdatedAt, appointment.FieldAppointmentDate:
			values[i] = new(sql.NullTime)
		case appointment.ForeignKeys[0]: // employee_appointments
			values[i] = new(sql.NullString)
		case appointment.ForeignKeys[1]: // issue_appointments
			values[i] = new(sql.NullString)
		case appointment.ForeignKeys[2]: // vehicle_appointments
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Appointment fields.
func (_m *Appointment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case appointment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case appointment.FieldAppointmentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_date", values[i])
			} else if value.Valid {
				_m.AppointmentDate = value.Time
			}
		case appointment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = appointment.Status(value.String)
			}
		case appointment.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case appointment.FieldAppointmentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_type", values[i])
			} else if value.Valid {
				_m.AppointmentType = appointment.AppointmentType(value.String)
			}
		case appointment.FieldPartsUsed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parts_used", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PartsUsed); err != nil {
					return fmt.Errorf("unmarshal field parts_used: %w", err)
				}
			}
		case appointment.FieldLaborCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field labor_cost", values[i])
			} else if value.Valid {
				_m.LaborCost = value.Float64
			}
		case appointment.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		case appointment.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employee_appointments", values[i])
			} else if value.Valid {
				_m.employee_appointments = new(string)
				*_m.employee_appointments = value.String
			}
		case appointment.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_appointments", values[i])
			} else if value.Valid {
				_m.issue_appointments = new(string)
				*_m.issue_appointments = value.String
			}
		case appointment.ForeignKeys[2]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_appointments", values[i])
			} else if value.Valid {
				_m.vehicle_appointments = new(string)
				*_m.vehicle_appointments = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Appointment.
// This includes values selected through modifiers, order, etc.
func (_m *Appointment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVehicle queries the "vehicle" edge of the Appointment entity.
func (_m *Appointment) QueryVehicle() *VehicleQuery {
	return NewAppointmentClient(_m.config).QueryVehicle(_m)
}

// QueryEmployee queries the "employee" edge of the Appointment entity.
func (_m *Appointment) QueryEmployee() *EmployeeQuery {
	return NewAppointmentClient(_m.config).QueryEmployee(_m)
}

// QueryServices queries the "services" edge of the Appointment entity.
func (_m *Appointment) QueryServices() *ServiceCatalogItemQuery {
	return NewAppointmentClient(_m.config).QueryServices(_m)
}

// QueryIssue queries the "issue" edge of the Appointment entity.
func (_m *Appointment) QueryIssue() *IssueQuery {
	return NewAppointmentClient(_m.config).QueryIssue(_m)
}

// QueryServiceRecords queries the "service_records" edge of the Appointment entity.
func (_m *Appointment) QueryServiceRecords() *ServiceRecordQuery {
	return NewAppointmentClient(_m.config).QueryServiceRecords(_m)
}

// Update returns a builder for updating this Appointment.
// Note that you need to call Appointment.Unwrap() before calling this method if this Appointment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Appointment) Update() *AppointmentUpdateOne {
	return NewAppointmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Appointment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Appointment) Unwrap() *Appointment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Appointment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Appointment) String() string {
	var builder strings.Builder
	builder.WriteString("Appointment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appointment_date=")
	builder.WriteString(_m.AppointmentDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("appointment_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentType))
	builder.WriteString(", ")
	builder.WriteString("parts_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartsUsed))
	builder.WriteString(", ")
	builder.WriteString("labor_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.LaborCost))
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteByte(')')
	return builder.String()
}

// Appointments is a parsable slice of Appointment.
type Appointments []*Appointment
