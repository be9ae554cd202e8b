package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/issue"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// IssueService owns reported vehicle problems. Issues move from pending
// through diagnosed to resolved; resolution stamps resolved_at.
type IssueService struct {
	client *ent.Client
}

func NewIssueService(client *ent.Client) *IssueService {
	return &IssueService{client: client}
}

type IssueFilter struct {
	VehicleID string
	Status    string
	Page      int
	PerPage   int
}

func (s *IssueService) Create(ctx context.Context, in domain.IssueInput) (*ent.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	vehicleExists, err := s.client.Vehicle.Query().Where(vehicle.IDEQ(in.VehicleID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking issue vehicle: %w", err)
	}
	if !vehicleExists {
		return nil, apperrors.ErrVehicleNotFoundf(in.VehicleID)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating issue id: %w", err)
	}

	create := s.client.Issue.Create().
		SetID(id.String()).
		SetDescription(in.Description).
		SetVehicleID(in.VehicleID)
	if in.Status != "" {
		create.SetStatus(issue.Status(in.Status))
	}

	i, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	logger.L().Info("issue reported",
		zap.String("issue_id", i.ID),
		zap.String("vehicle_id", in.VehicleID))
	return i, nil
}

func (s *IssueService) GetByID(ctx context.Context, id string) (*ent.Issue, error) {
	i, err := s.client.Issue.Query().
		Where(issue.IDEQ(id)).
		WithVehicle().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeIssueNotFound,
				"issue not found").WithParam("issue_id", id)
		}
		return nil, fmt.Errorf("fetching issue %s: %w", id, err)
	}
	return i, nil
}

func (s *IssueService) List(ctx context.Context, f IssueFilter) ([]*ent.Issue, int, error) {
	q := s.client.Issue.Query().WithVehicle()
	if f.VehicleID != "" {
		q = q.Where(issue.HasVehicleWith(vehicle.IDEQ(f.VehicleID)))
	}
	if f.Status != "" {
		q = q.Where(issue.StatusEQ(issue.Status(f.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting issues: %w", err)
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	items, err := q.
		Order(ent.Desc(issue.FieldReportedAt)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing issues: %w", err)
	}
	return items, total, nil
}

func (s *IssueService) Update(ctx context.Context, id string, in domain.IssueInput) (*ent.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := s.client.Issue.UpdateOneID(id).
		SetDescription(in.Description)
	if in.Status != "" {
		update.SetStatus(issue.Status(in.Status))
		if in.Status == domain.IssueResolved && existing.Status != issue.StatusResolved {
			update.SetResolvedAt(time.Now().UTC())
		}
	}

	i, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating issue %s: %w", id, err)
	}
	return i, nil
}

// Resolve marks the issue resolved, stamping resolved_at exactly once.
func (s *IssueService) Resolve(ctx context.Context, id string) (*ent.Issue, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == issue.StatusResolved {
		return existing, nil
	}

	i, err := s.client.Issue.UpdateOneID(id).
		SetStatus(issue.StatusResolved).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving issue %s: %w", id, err)
	}
	logger.L().Info("issue resolved", zap.String("issue_id", id))
	return i, nil
}

func (s *IssueService) Delete(ctx context.Context, id string) error {
	if err := s.client.Issue.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeIssueNotFound,
				"issue not found").WithParam("issue_id", id)
		}
		return fmt.Errorf("deleting issue %s: %w", id, err)
	}
	return nil
}
