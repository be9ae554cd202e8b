package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/notification"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
	"github.com/dediamond1/mechanic/internal/pkg/worker"
	"github.com/dediamond1/mechanic/internal/service"
)

// ReportIssueUseCase records a customer-reported vehicle problem and
// alerts the managers.
type ReportIssueUseCase struct {
	issues   *service.IssueService
	vehicles *service.VehicleService
	triggers *notification.Triggers
	pools    *worker.Pools
}

// NewReportIssueUseCase creates a new ReportIssueUseCase.
func NewReportIssueUseCase(
	issues *service.IssueService,
	vehicles *service.VehicleService,
	triggers *notification.Triggers,
	pools *worker.Pools,
) *ReportIssueUseCase {
	return &ReportIssueUseCase{
		issues:   issues,
		vehicles: vehicles,
		triggers: triggers,
		pools:    pools,
	}
}

// Execute files the issue and fans out the manager notification.
func (uc *ReportIssueUseCase) Execute(ctx context.Context, input domain.IssueInput) (*ent.Issue, error) {
	i, err := uc.issues.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	vehicleLabel := input.VehicleID
	if v, verr := uc.vehicles.GetByID(ctx, input.VehicleID); verr == nil {
		vehicleLabel = fmt.Sprintf("%s %s (%d)", v.Make, v.Model, v.Year)
	}

	issueID, description := i.ID, i.Description
	if err := uc.pools.SubmitDetached("notify", func(ctx context.Context) {
		uc.triggers.OnIssueReported(ctx, issueID, vehicleLabel, description)
	}); err != nil {
		logger.L().Warn("notification fan-out not submitted",
			zap.String("issue_id", issueID), zap.Error(err))
	}

	return i, nil
}
