package modules

import (
	"context"

	"github.com/riverqueue/river"

	"github.com/dediamond1/mechanic/internal/api/handlers"
	"github.com/dediamond1/mechanic/internal/notification"
	"github.com/dediamond1/mechanic/internal/service"
	"github.com/dediamond1/mechanic/internal/usecase"
)

// WorkshopModule wires the workshop floor: appointments, reported
// issues, and service records, plus the use cases that cross them.
type WorkshopModule struct {
	infra          *Infrastructure
	appointments   *service.AppointmentService
	issues         *service.IssueService
	serviceRecords *service.ServiceRecordService
	scheduleUC     *usecase.ScheduleAppointmentUseCase
	statusUC       *usecase.UpdateAppointmentStatusUseCase
	reportIssueUC  *usecase.ReportIssueUseCase
}

// NewWorkshopModule creates the workshop module. Vehicle lookups come
// from the shop module and triggers from the notification module.
func NewWorkshopModule(infra *Infrastructure, vehicles *service.VehicleService, triggers *notification.Triggers) *WorkshopModule {
	appointments := service.NewAppointmentService(infra.EntClient)
	issues := service.NewIssueService(infra.EntClient)

	return &WorkshopModule{
		infra:          infra,
		appointments:   appointments,
		issues:         issues,
		serviceRecords: service.NewServiceRecordService(infra.EntClient),
		scheduleUC:     usecase.NewScheduleAppointmentUseCase(infra.EntClient, triggers, infra.Pools),
		statusUC:       usecase.NewUpdateAppointmentStatusUseCase(appointments, issues, triggers, infra.Pools),
		reportIssueUC:  usecase.NewReportIssueUseCase(issues, vehicles, triggers, infra.Pools),
	}
}

func (m *WorkshopModule) Name() string { return "workshop" }

func (m *WorkshopModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Appointments = m.appointments
	deps.Issues = m.issues
	deps.ServiceRecords = m.serviceRecords
	deps.ScheduleUC = m.scheduleUC
	deps.StatusUC = m.statusUC
	deps.ReportIssueUC = m.reportIssueUC
}

func (m *WorkshopModule) RegisterWorkers(_ *river.Workers) {}

func (m *WorkshopModule) Shutdown(context.Context) error { return nil }
