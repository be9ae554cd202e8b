package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/notification"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
	"github.com/dediamond1/mechanic/internal/pkg/worker"
	"github.com/dediamond1/mechanic/internal/service"
)

// UpdateAppointmentStatusUseCase moves an appointment through its
// lifecycle. Completing an issue-repair appointment also resolves the
// linked issue; every persisted change notifies the assigned mechanic.
type UpdateAppointmentStatusUseCase struct {
	appointments *service.AppointmentService
	issues       *service.IssueService
	triggers     *notification.Triggers
	pools        *worker.Pools
}

// NewUpdateAppointmentStatusUseCase creates a new UpdateAppointmentStatusUseCase.
func NewUpdateAppointmentStatusUseCase(
	appointments *service.AppointmentService,
	issues *service.IssueService,
	triggers *notification.Triggers,
	pools *worker.Pools,
) *UpdateAppointmentStatusUseCase {
	return &UpdateAppointmentStatusUseCase{
		appointments: appointments,
		issues:       issues,
		triggers:     triggers,
		pools:        pools,
	}
}

// Execute transitions the appointment to next.
func (uc *UpdateAppointmentStatusUseCase) Execute(ctx context.Context, appointmentID string, next domain.AppointmentStatus) (*ent.Appointment, error) {
	before, err := uc.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	from := domain.AppointmentStatus(before.Status)

	appt, err := uc.appointments.SetStatus(ctx, appointmentID, next)
	if err != nil {
		return nil, err
	}

	if next == domain.StatusCompleted {
		if linked, lerr := before.Edges.IssueOrErr(); lerr == nil && linked != nil {
			if _, rerr := uc.issues.Resolve(ctx, linked.ID); rerr != nil {
				// The status change itself stands; the dangling issue is
				// visible in logs and can be resolved by hand.
				logger.L().Error("failed to resolve linked issue",
					zap.String("appointment_id", appointmentID),
					zap.String("issue_id", linked.ID),
					zap.Error(rerr))
			}
		}
	}

	employeeEmail := ""
	if emp, eerr := before.Edges.EmployeeOrErr(); eerr == nil && emp != nil {
		employeeEmail = emp.Email
	}
	if employeeEmail != "" && from != next {
		fromStr, toStr := string(from), string(next)
		if err := uc.pools.SubmitDetached("notify", func(ctx context.Context) {
			uc.triggers.OnAppointmentStatusChanged(ctx, appointmentID, employeeEmail, fromStr, toStr)
		}); err != nil {
			logger.L().Warn("notification fan-out not submitted",
				zap.String("appointment_id", appointmentID), zap.Error(err))
		}
	}

	return appt, nil
}

// ParseStatus converts a raw string into a known appointment status.
func ParseStatus(raw string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(raw)
	if !domain.ValidAppointmentStatus(s) {
		return "", apperrors.BadRequest(apperrors.CodeInvalidStatus,
			fmt.Sprintf("unknown appointment status %q", raw))
	}
	return s, nil
}
