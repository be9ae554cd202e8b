// Package usecase provides application use cases. Flows that touch
// several entities at once live here, with the transaction boundary
// managed at this level; single-entity persistence stays in service.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/issue"
	"github.com/dediamond1/mechanic/ent/servicecatalogitem"
	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/notification"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
	"github.com/dediamond1/mechanic/internal/pkg/worker"
)

// ScheduleAppointmentUseCase books an appointment: it checks that the
// vehicle, mechanic and requested catalog services all exist, derives
// the total cost, writes the appointment in one transaction and then
// notifies the assigned mechanic off the request path.
type ScheduleAppointmentUseCase struct {
	entClient *ent.Client
	triggers  *notification.Triggers
	pools     *worker.Pools
}

// NewScheduleAppointmentUseCase creates a new ScheduleAppointmentUseCase.
func NewScheduleAppointmentUseCase(entClient *ent.Client, triggers *notification.Triggers, pools *worker.Pools) *ScheduleAppointmentUseCase {
	return &ScheduleAppointmentUseCase{
		entClient: entClient,
		triggers:  triggers,
		pools:     pools,
	}
}

// Execute books the appointment described by input.
func (uc *ScheduleAppointmentUseCase) Execute(ctx context.Context, input domain.AppointmentInput) (*ent.Appointment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tx, err := uc.entClient.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin scheduling tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	vehicle, err := tx.Vehicle.Get(ctx, input.VehicleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrVehicleNotFoundf(input.VehicleID)
		}
		return nil, fmt.Errorf("loading vehicle: %w", err)
	}

	employee, err := tx.Employee.Get(ctx, input.EmployeeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFoundf(input.EmployeeID)
		}
		return nil, fmt.Errorf("loading employee: %w", err)
	}

	var services []*ent.ServiceCatalogItem
	if len(input.ServiceIDs) > 0 {
		services, err = tx.ServiceCatalogItem.Query().
			Where(servicecatalogitem.IDIn(input.ServiceIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading catalog services: %w", err)
		}
		if len(services) != len(input.ServiceIDs) {
			found := make(map[string]bool, len(services))
			for _, svc := range services {
				found[svc.ID] = true
			}
			for _, id := range input.ServiceIDs {
				if !found[id] {
					return nil, apperrors.NotFound(apperrors.CodeServiceNotFound,
						"service not found").WithParam("service_id", id)
				}
			}
		}
		for _, svc := range services {
			if !svc.IsActive {
				return nil, apperrors.Conflict(apperrors.CodeServiceInactive,
					"service is no longer offered").WithParam("service_id", svc.ID)
			}
		}
	}

	if input.IssueID != "" {
		exists, err := tx.Issue.Query().Where(issue.IDEQ(input.IssueID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("checking issue: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFound(apperrors.CodeIssueNotFound,
				"issue not found").WithParam("issue_id", input.IssueID)
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating appointment id: %w", err)
	}

	// Price snapshot: catalog prices as of booking time plus labor and
	// part line items. Callers never supply a total.
	total := domain.TotalCost(input.LaborCost, input.PartsUsed)
	for _, svc := range services {
		total += svc.Price
	}

	create := tx.Appointment.Create().
		SetID(id.String()).
		SetAppointmentDate(input.AppointmentDate).
		SetLaborCost(input.LaborCost).
		SetTotalCost(total).
		SetVehicleID(input.VehicleID).
		SetEmployeeID(input.EmployeeID)
	if len(input.ServiceIDs) > 0 {
		create.AddServiceIDs(input.ServiceIDs...)
	}
	if input.Notes != "" {
		create.SetNotes(input.Notes)
	}
	if input.Type != "" {
		create.SetAppointmentType(appointment.AppointmentType(input.Type))
	}
	if input.IssueID != "" {
		create.SetIssueID(input.IssueID)
	}
	if len(input.PartsUsed) > 0 {
		create.SetPartsUsed(input.PartsUsed)
	}

	appt, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing appointment: %w", err)
	}

	logger.L().Info("appointment scheduled",
		zap.String("appointment_id", appt.ID),
		zap.String("vehicle_id", input.VehicleID),
		zap.String("employee_id", input.EmployeeID),
		zap.Time("appointment_date", input.AppointmentDate))

	apptID := appt.ID
	employeeEmail := employee.Email
	vehicleLabel := fmt.Sprintf("%s %s (%d)", vehicle.Make, vehicle.Model, vehicle.Year)
	when := input.AppointmentDate.Format(time.RFC1123)
	if err := uc.pools.SubmitDetached("notify", func(ctx context.Context) {
		uc.triggers.OnAppointmentScheduled(ctx, apptID, employeeEmail, vehicleLabel, when)
	}); err != nil {
		logger.L().Warn("notification fan-out not submitted",
			zap.String("appointment_id", apptID), zap.Error(err))
	}

	return appt, nil
}
