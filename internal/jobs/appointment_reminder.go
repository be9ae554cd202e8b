package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/appointment"
	entnotification "github.com/dediamond1/mechanic/ent/notification"
	"github.com/dediamond1/mechanic/ent/user"
	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/notification"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// DefaultReminderWindow is how far ahead the reminder sweep looks.
const DefaultReminderWindow = 24 * time.Hour

// AppointmentReminderArgs is a periodic job that reminds assigned
// mechanics about upcoming appointments still in SCHEDULED.
type AppointmentReminderArgs struct{}

// Kind returns the job kind identifier for the reminder sweep.
func (AppointmentReminderArgs) Kind() string { return "appointment_reminder" }

// InsertOpts ensures at most one sweep is enqueued per hour.
func (AppointmentReminderArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// AppointmentReminderWorker finds appointments inside the reminder
// window and writes one APPOINTMENT_REMINDER inbox entry per
// appointment. The type+resource index makes the dedup check cheap, so
// re-running the sweep never double-reminds.
type AppointmentReminderWorker struct {
	river.WorkerDefaults[AppointmentReminderArgs]
	entClient *ent.Client
	sender    notification.Sender
	window    time.Duration
}

// NewAppointmentReminderWorker creates a reminder worker. Non-positive
// window falls back to 24 hours.
func NewAppointmentReminderWorker(entClient *ent.Client, sender notification.Sender, window time.Duration) *AppointmentReminderWorker {
	if window <= 0 {
		window = DefaultReminderWindow
	}
	return &AppointmentReminderWorker{
		entClient: entClient,
		sender:    sender,
		window:    window,
	}
}

// Work runs one reminder sweep.
func (w *AppointmentReminderWorker) Work(ctx context.Context, _ *river.Job[AppointmentReminderArgs]) error {
	if w == nil || w.entClient == nil || w.sender == nil {
		return fmt.Errorf("appointment reminder worker is not initialized")
	}

	now := time.Now().UTC()
	upcoming, err := w.entClient.Appointment.Query().
		Where(
			appointment.StatusEQ(appointment.Status(domain.StatusScheduled)),
			appointment.AppointmentDateGTE(now),
			appointment.AppointmentDateLT(now.Add(w.window)),
		).
		WithVehicle().
		WithEmployee().
		All(ctx)
	if err != nil {
		return fmt.Errorf("query upcoming appointments: %w", err)
	}

	var sent, skipped int
	for _, appt := range upcoming {
		already, err := w.entClient.Notification.Query().
			Where(
				entnotification.TypeEQ(entnotification.TypeAPPOINTMENT_REMINDER),
				entnotification.ResourceIDEQ(appt.ID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check existing reminder for %s: %w", appt.ID, err)
		}
		if already {
			skipped++
			continue
		}

		emp, err := appt.Edges.EmployeeOrErr()
		if err != nil || emp == nil {
			skipped++
			continue
		}
		userID, ok := w.userIDByEmail(ctx, emp.Email)
		if !ok {
			skipped++
			continue
		}

		vehicleLabel := "vehicle"
		if v, verr := appt.Edges.VehicleOrErr(); verr == nil && v != nil {
			vehicleLabel = fmt.Sprintf("%s %s (%d)", v.Make, v.Model, v.Year)
		}

		if err := w.sender.Send(ctx, notification.Params{
			RecipientID:  userID,
			Type:         notification.TypeAppointmentReminder,
			Title:        "Upcoming appointment",
			Message:      fmt.Sprintf("Appointment for %s at %s", vehicleLabel, appt.AppointmentDate.Format(time.RFC1123)),
			ResourceType: "appointment",
			ResourceID:   appt.ID,
		}); err != nil {
			logger.Warn("failed to send appointment reminder",
				zap.String("appointment_id", appt.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	logger.Info("appointment reminder sweep completed",
		zap.Int("upcoming", len(upcoming)),
		zap.Int("sent", sent),
		zap.Int("skipped", skipped),
		zap.Duration("window", w.window),
	)
	return nil
}

func (w *AppointmentReminderWorker) userIDByEmail(ctx context.Context, email string) (string, bool) {
	u, err := w.entClient.User.Query().
		Where(user.EmailEQ(email), user.Enabled(true)).
		Only(ctx)
	if err != nil {
		return "", false
	}
	return u.ID, true
}
