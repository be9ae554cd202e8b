package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/employee"
	"github.com/dediamond1/mechanic/ent/user"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// Triggers encapsulates notification trigger logic for shop events:
//  1. APPOINTMENT_SCHEDULED — notify the assigned mechanic
//  2. APPOINTMENT_STATUS_CHANGE — notify the assigned mechanic
//  3. ISSUE_REPORTED — notify managers and admins
//
// Staff accounts are matched to employees by email. An employee without
// a user account simply receives nothing; that is logged, not an error.
type Triggers struct {
	sender Sender
	client *ent.Client
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender, client *ent.Client) *Triggers {
	return &Triggers{sender: sender, client: client}
}

// OnAppointmentScheduled fires after an appointment is booked.
func (t *Triggers) OnAppointmentScheduled(ctx context.Context, appointmentID, employeeEmail, vehicleLabel string, when string) {
	userID, ok := t.userIDByEmail(ctx, employeeEmail)
	if !ok {
		logger.Debug("no user account for assigned employee, skipping notification",
			zap.String("appointment_id", appointmentID),
			zap.String("employee_email", employeeEmail),
		)
		return
	}

	params := Params{
		RecipientID:  userID,
		Type:         TypeAppointmentScheduled,
		Title:        "New appointment assigned",
		Message:      fmt.Sprintf("Appointment for %s on %s has been assigned to you", vehicleLabel, when),
		ResourceType: "appointment",
		ResourceID:   appointmentID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send APPOINTMENT_SCHEDULED notification",
			zap.String("appointment_id", appointmentID),
			zap.Error(err),
		)
	}
}

// OnAppointmentStatusChanged fires after a status transition is persisted.
func (t *Triggers) OnAppointmentStatusChanged(ctx context.Context, appointmentID, employeeEmail, from, to string) {
	userID, ok := t.userIDByEmail(ctx, employeeEmail)
	if !ok {
		return
	}

	params := Params{
		RecipientID:  userID,
		Type:         TypeAppointmentStatusChange,
		Title:        "Appointment status updated",
		Message:      fmt.Sprintf("Appointment moved from %s to %s", from, to),
		ResourceType: "appointment",
		ResourceID:   appointmentID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send APPOINTMENT_STATUS_CHANGE notification",
			zap.String("appointment_id", appointmentID),
			zap.Error(err),
		)
	}
}

// OnIssueReported fires when a customer problem is logged against a
// vehicle. Managers and admins get the heads-up.
func (t *Triggers) OnIssueReported(ctx context.Context, issueID, vehicleLabel, description string) {
	recipientIDs, err := t.managerUserIDs(ctx)
	if err != nil {
		logger.Error("failed to find managers for notification",
			zap.String("issue_id", issueID),
			zap.Error(err),
		)
		return
	}
	if len(recipientIDs) == 0 {
		logger.Warn("no manager accounts found for issue notification", zap.String("issue_id", issueID))
		return
	}

	params := Params{
		Type:         TypeIssueReported,
		Title:        "New vehicle issue reported",
		Message:      fmt.Sprintf("Issue reported for %s: %s", vehicleLabel, description),
		ResourceType: "issue",
		ResourceID:   issueID,
	}

	if err := t.sender.SendToMany(ctx, recipientIDs, params); err != nil {
		logger.Error("failed to send ISSUE_REPORTED notifications",
			zap.String("issue_id", issueID),
			zap.Int("recipient_count", len(recipientIDs)),
			zap.Error(err),
		)
	}
}

func (t *Triggers) userIDByEmail(ctx context.Context, email string) (string, bool) {
	u, err := t.client.User.Query().
		Where(user.EmailEQ(email), user.Enabled(true)).
		Only(ctx)
	if err != nil {
		return "", false
	}
	return u.ID, true
}

// managerUserIDs returns enabled user accounts whose email belongs to a
// manager or admin employee.
func (t *Triggers) managerUserIDs(ctx context.Context) ([]string, error) {
	emails, err := t.client.Employee.Query().
		Where(employee.RoleIn(employee.RoleManager, employee.RoleAdmin)).
		Select(employee.FieldEmail).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query manager emails: %w", err)
	}
	if len(emails) == 0 {
		return nil, nil
	}

	ids, err := t.client.User.Query().
		Where(user.EmailIn(emails...), user.Enabled(true)).
		Select(user.FieldID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query manager accounts: %w", err)
	}
	return ids, nil
}
