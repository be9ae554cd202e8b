package modules

import (
	"context"

	"github.com/riverqueue/river"

	"github.com/dediamond1/mechanic/internal/api/handlers"
	"github.com/dediamond1/mechanic/internal/jobs"
	"github.com/dediamond1/mechanic/internal/notification"
)

// NotificationModule wires the inbox sender, the notification triggers
// shared by other modules, and the periodic inbox workers.
type NotificationModule struct {
	infra    *Infrastructure
	sender   notification.Sender
	triggers *notification.Triggers
}

// NewNotificationModule creates the notification module. It must be
// constructed before modules that send notifications.
func NewNotificationModule(infra *Infrastructure) *NotificationModule {
	sender := notification.NewInboxSender(infra.EntClient)
	return &NotificationModule{
		infra:    infra,
		sender:   sender,
		triggers: notification.NewTriggers(sender, infra.EntClient),
	}
}

func (m *NotificationModule) Name() string { return "notifications" }

// Triggers exposes the shared trigger helper for other modules.
func (m *NotificationModule) Triggers() *notification.Triggers { return m.triggers }

func (m *NotificationModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Notifier = m.triggers
}

func (m *NotificationModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	cfg := m.infra.Config.Notifications
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(m.infra.EntClient, cfg.Retention))
	river.AddWorker(workers, jobs.NewAppointmentReminderWorker(m.infra.EntClient, m.sender, cfg.ReminderWindow))
}

func (m *NotificationModule) Shutdown(context.Context) error { return nil }
