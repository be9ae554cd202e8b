package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/servicecatalogitem"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// CatalogService owns the service catalog: the priced menu of work the
// shop offers. Names are unique and retired entries are deactivated
// rather than deleted so historical appointments keep their references.
type CatalogService struct {
	client *ent.Client
}

func NewCatalogService(client *ent.Client) *CatalogService {
	return &CatalogService{client: client}
}

type CatalogFilter struct {
	Category   string
	ActiveOnly bool
	Search     string
	Page       int
	PerPage    int
}

func (s *CatalogService) Create(ctx context.Context, in domain.ServiceCatalogItemInput) (*ent.ServiceCatalogItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.client.ServiceCatalogItem.Query().
		Where(servicecatalogitem.NameEQ(in.Name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking service name: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict(apperrors.CodeServiceNameExists,
			"a service with this name already exists").WithParam("name", in.Name)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating service id: %w", err)
	}

	create := s.client.ServiceCatalogItem.Create().
		SetID(id.String()).
		SetName(in.Name).
		SetPrice(in.Price)
	if in.Description != "" {
		create.SetDescription(in.Description)
	}
	if in.Category != "" {
		create.SetCategory(servicecatalogitem.Category(in.Category))
	}
	if in.IsActive != nil {
		create.SetIsActive(*in.IsActive)
	}

	item, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeServiceNameExists,
				"a service with this name already exists").WithParam("name", in.Name)
		}
		return nil, fmt.Errorf("creating catalog item: %w", err)
	}

	logger.L().Info("catalog item created", zap.String("service_id", item.ID), zap.String("name", item.Name))
	return item, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*ent.ServiceCatalogItem, error) {
	item, err := s.client.ServiceCatalogItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeServiceNotFound,
				"service not found").WithParam("service_id", id)
		}
		return nil, fmt.Errorf("fetching catalog item %s: %w", id, err)
	}
	return item, nil
}

func (s *CatalogService) List(ctx context.Context, f CatalogFilter) ([]*ent.ServiceCatalogItem, int, error) {
	q := s.client.ServiceCatalogItem.Query()
	if f.Category != "" {
		q = q.Where(servicecatalogitem.CategoryEQ(servicecatalogitem.Category(f.Category)))
	}
	if f.ActiveOnly {
		q = q.Where(servicecatalogitem.IsActive(true))
	}
	if f.Search != "" {
		q = q.Where(servicecatalogitem.NameContainsFold(f.Search))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting catalog items: %w", err)
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	items, err := q.
		Order(ent.Asc(servicecatalogitem.FieldName)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing catalog items: %w", err)
	}
	return items, total, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, in domain.ServiceCatalogItemInput) (*ent.ServiceCatalogItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	taken, err := s.client.ServiceCatalogItem.Query().
		Where(servicecatalogitem.NameEQ(in.Name), servicecatalogitem.IDNEQ(id)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking service name: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeServiceNameExists,
			"a service with this name already exists").WithParam("name", in.Name)
	}

	update := s.client.ServiceCatalogItem.UpdateOneID(id).
		SetName(in.Name).
		SetPrice(in.Price)
	if in.Description != "" {
		update.SetDescription(in.Description)
	} else {
		update.ClearDescription()
	}
	if in.Category != "" {
		update.SetCategory(servicecatalogitem.Category(in.Category))
	}
	if in.IsActive != nil {
		update.SetIsActive(*in.IsActive)
	}

	item, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeServiceNotFound,
				"service not found").WithParam("service_id", id)
		}
		return nil, fmt.Errorf("updating catalog item %s: %w", id, err)
	}
	return item, nil
}

// SetActive toggles availability without touching history.
func (s *CatalogService) SetActive(ctx context.Context, id string, active bool) (*ent.ServiceCatalogItem, error) {
	item, err := s.client.ServiceCatalogItem.UpdateOneID(id).SetIsActive(active).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeServiceNotFound,
				"service not found").WithParam("service_id", id)
		}
		return nil, fmt.Errorf("toggling catalog item %s: %w", id, err)
	}
	return item, nil
}

// Delete removes a catalog entry outright. Entries referenced by any
// appointment are deactivated instead so past work orders stay intact.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	referenced, err := s.client.Appointment.Query().
		Where(appointment.HasServicesWith(servicecatalogitem.IDEQ(id))).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("checking catalog references: %w", err)
	}
	if referenced {
		if _, err := s.SetActive(ctx, id, false); err != nil {
			return err
		}
		logger.L().Info("catalog item deactivated instead of deleted", zap.String("service_id", id))
		return nil
	}

	if err := s.client.ServiceCatalogItem.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeServiceNotFound,
				"service not found").WithParam("service_id", id)
		}
		return fmt.Errorf("deleting catalog item %s: %w", id, err)
	}
	logger.L().Info("catalog item deleted", zap.String("service_id", id))
	return nil
}
