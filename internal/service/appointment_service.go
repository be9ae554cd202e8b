package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/employee"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// AppointmentService owns appointment reads and single-row writes.
// Scheduling and status changes run through the scheduling usecase,
// which coordinates the related entities and notifications.
type AppointmentService struct {
	client *ent.Client
}

func NewAppointmentService(client *ent.Client) *AppointmentService {
	return &AppointmentService{client: client}
}

type AppointmentFilter struct {
	VehicleID  string
	EmployeeID string
	Status     string
	From       time.Time
	To         time.Time
	Page       int
	PerPage    int
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*ent.Appointment, error) {
	a, err := s.client.Appointment.Query().
		Where(appointment.IDEQ(id)).
		WithVehicle(func(q *ent.VehicleQuery) { q.WithCustomer() }).
		WithEmployee().
		WithServices().
		WithIssue().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrAppointmentNotFoundf(id)
		}
		return nil, fmt.Errorf("fetching appointment %s: %w", id, err)
	}
	return a, nil
}

func (s *AppointmentService) List(ctx context.Context, f AppointmentFilter) ([]*ent.Appointment, int, error) {
	q := s.client.Appointment.Query().
		WithVehicle().
		WithEmployee().
		WithServices()
	if f.VehicleID != "" {
		q = q.Where(appointment.HasVehicleWith(vehicle.IDEQ(f.VehicleID)))
	}
	if f.EmployeeID != "" {
		q = q.Where(appointment.HasEmployeeWith(employee.IDEQ(f.EmployeeID)))
	}
	if f.Status != "" {
		q = q.Where(appointment.StatusEQ(appointment.Status(f.Status)))
	}
	if !f.From.IsZero() {
		q = q.Where(appointment.AppointmentDateGTE(f.From))
	}
	if !f.To.IsZero() {
		q = q.Where(appointment.AppointmentDateLT(f.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting appointments: %w", err)
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	items, err := q.
		Order(ent.Asc(appointment.FieldAppointmentDate)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing appointments: %w", err)
	}
	return items, total, nil
}

// UpcomingScheduled returns appointments still in SCHEDULED whose date
// falls inside [from, to). Used by the reminder job.
func (s *AppointmentService) UpcomingScheduled(ctx context.Context, from, to time.Time) ([]*ent.Appointment, error) {
	items, err := s.client.Appointment.Query().
		Where(
			appointment.StatusEQ(appointment.Status(domain.StatusScheduled)),
			appointment.AppointmentDateGTE(from),
			appointment.AppointmentDateLT(to),
		).
		WithVehicle().
		WithEmployee().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming appointments: %w", err)
	}
	return items, nil
}

// AppendNote adds a timestamped line to the appointment's running notes.
func (s *AppointmentService) AppendNote(ctx context.Context, id, note string) (*ent.Appointment, error) {
	if note == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "note must not be empty")
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	line := fmt.Sprintf("[%s] %s", time.Now().UTC().Format(time.RFC3339), note)
	notes := a.Notes
	if notes != "" {
		notes += "\n"
	}
	notes += line

	a, err = s.client.Appointment.UpdateOneID(id).SetNotes(notes).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("appending appointment note: %w", err)
	}
	return a, nil
}

// SetStatus persists a status change after checking the transition
// table. Callers wanting side effects (notifications, issue resolution)
// go through the scheduling usecase instead.
func (s *AppointmentService) SetStatus(ctx context.Context, id string, next domain.AppointmentStatus) (*ent.Appointment, error) {
	if !domain.ValidAppointmentStatus(next) {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			"unknown appointment status").WithParam("status", string(next))
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current := domain.AppointmentStatus(a.Status)
	if !domain.CanTransition(current, next) {
		return nil, apperrors.Conflict(apperrors.CodeInvalidStatus,
			"status transition not allowed").
			WithParam("from", string(current)).
			WithParam("to", string(next))
	}

	a, err = s.client.Appointment.UpdateOneID(id).
		SetStatus(appointment.Status(next)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating appointment %s status: %w", id, err)
	}

	logger.L().Info("appointment status changed",
		zap.String("appointment_id", id),
		zap.String("from", string(current)),
		zap.String("to", string(next)))
	return a, nil
}

// Delete removes the appointment. Linked service records survive with
// their appointment reference cleared, matching the orphan policy for
// that edge (the optional edge maps to ON DELETE SET NULL).
func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.client.Appointment.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrAppointmentNotFoundf(id)
		}
		return fmt.Errorf("deleting appointment %s: %w", id, err)
	}
	logger.L().Info("appointment deleted", zap.String("appointment_id", id))
	return nil
}
