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
	"github.com/dediamond1/mechanic/ent/servicerecord"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
)

// ServiceRecord is the model entity for the ServiceRecord schema.
type ServiceRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ServicesPerformed holds the value of the "services_performed" field.
	ServicesPerformed []string `json:"services_performed,omitempty"`
	// PartsUsed holds the value of the "parts_used" field.
	PartsUsed []domain.PartUsage `json:"parts_used,omitempty"`
	// LaborCost holds the value of the "labor_cost" field.
	LaborCost float64 `json:"labor_cost,omitempty"`
	// TotalCost holds the value of the "total_cost" field.
	TotalCost float64 `json:"total_cost,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Status holds the value of the "status" field.
	Status servicerecord.Status `json:"status,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServiceRecordQuery when eager-loading is set.
	Edges                       ServiceRecordEdges `json:"edges"`
	appointment_service_records *string
	vehicle_service_records     *string
	selectValues                sql.SelectValues
}

// ServiceRecordEdges holds the relations/edges for other nodes in the graph.
type ServiceRecordEdges struct {
	// Vehicle holds the value of the vehicle edge.
	Vehicle *Vehicle `json:"vehicle,omitempty"`
	// Appointment holds the value of the appointment edge.
	Appointment *Appointment `json:"appointment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VehicleOrErr returns the Vehicle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServiceRecordEdges) VehicleOrErr() (*Vehicle, error) {
	if e.Vehicle != nil {
		return e.Vehicle, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: vehicle.Label}
	}
	return nil, &NotLoadedError{edge: "vehicle"}
}

// AppointmentOrErr returns the Appointment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServiceRecordEdges) AppointmentOrErr() (*Appointment, error) {
	if e.Appointment != nil {
		return e.Appointment, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: appointment.Label}
	}
	return nil, &NotLoadedError{edge: "appointment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServiceRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case servicerecord.FieldServicesPerformed, servicerecord.FieldPartsUsed:
			values[i] = new([]byte)
		case servicerecord.FieldLaborCost, servicerecord.FieldTotalCost:
			values[i] = new(sql.NullFloat64)
		case servicerecord.FieldID, servicerecord.FieldDescription, servicerecord.FieldNotes, servicerecord.FieldStatus:
			values[i] = new(sql.NullString)
		case servicerecord.FieldCreatedAt, servicerecord.FieldUpdatedAt, servicerecord.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case servicerecord.ForeignKeys[0]: // appointment_service_records
			values[i] = new(sql.NullString)
		case servicerecord.ForeignKeys[1]: // vehicle_service_records
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServiceRecord fields.
func (_m *ServiceRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case servicerecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case servicerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case servicerecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case servicerecord.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case servicerecord.FieldServicesPerformed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field services_performed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ServicesPerformed); err != nil {
					return fmt.Errorf("unmarshal field services_performed: %w", err)
				}
			}
		case servicerecord.FieldPartsUsed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parts_used", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PartsUsed); err != nil {
					return fmt.Errorf("unmarshal field parts_used: %w", err)
				}
			}
		case servicerecord.FieldLaborCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field labor_cost", values[i])
			} else if value.Valid {
				_m.LaborCost = value.Float64
			}
		case servicerecord.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		case servicerecord.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case servicerecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = servicerecord.Status(value.String)
			}
		case servicerecord.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case servicerecord.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_service_records", values[i])
			} else if value.Valid {
				_m.appointment_service_records = new(string)
				*_m.appointment_service_records = value.String
			}
		case servicerecord.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_service_records", values[i])
			} else if value.Valid {
				_m.vehicle_service_records = new(string)
				*_m.vehicle_service_records = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ServiceRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ServiceRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVehicle queries the "vehicle" edge of the ServiceRecord entity.
func (_m *ServiceRecord) QueryVehicle() *VehicleQuery {
	return NewServiceRecordClient(_m.config).QueryVehicle(_m)
}

// QueryAppointment queries the "appointment" edge of the ServiceRecord entity.
func (_m *ServiceRecord) QueryAppointment() *AppointmentQuery {
	return NewServiceRecordClient(_m.config).QueryAppointment(_m)
}

// Update returns a builder for updating this ServiceRecord.
// Note that you need to call ServiceRecord.Unwrap() before calling this method if this ServiceRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServiceRecord) Update() *ServiceRecordUpdateOne {
	return NewServiceRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServiceRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServiceRecord) Unwrap() *ServiceRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ServiceRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServiceRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ServiceRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("services_performed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServicesPerformed))
	builder.WriteString(", ")
	builder.WriteString("parts_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartsUsed))
	builder.WriteString(", ")
	builder.WriteString("labor_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.LaborCost))
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ServiceRecords is a parsable slice of ServiceRecord.
type ServiceRecords []*ServiceRecord
