package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/part"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// PartService owns the parts inventory.
type PartService struct {
	client *ent.Client
}

func NewPartService(client *ent.Client) *PartService {
	return &PartService{client: client}
}

type PartFilter struct {
	Condition string
	Search    string
	Page      int
	PerPage   int
}

func (s *PartService) Create(ctx context.Context, in domain.PartInput) (*ent.Part, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating part id: %w", err)
	}

	create := s.client.Part.Create().
		SetID(id.String()).
		SetName(in.Name).
		SetPrice(in.Price)
	if in.Condition != "" {
		create.SetCondition(part.Condition(in.Condition))
	}
	if in.Quantity != nil {
		create.SetQuantity(*in.Quantity)
	}
	if in.Supplier != "" {
		create.SetSupplier(in.Supplier)
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating part: %w", err)
	}

	logger.L().Info("part created", zap.String("part_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *PartService) GetByID(ctx context.Context, id string) (*ent.Part, error) {
	p, err := s.client.Part.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodePartNotFound,
				"part not found").WithParam("part_id", id)
		}
		return nil, fmt.Errorf("fetching part %s: %w", id, err)
	}
	return p, nil
}

func (s *PartService) List(ctx context.Context, f PartFilter) ([]*ent.Part, int, error) {
	q := s.client.Part.Query()
	if f.Condition != "" {
		q = q.Where(part.ConditionEQ(part.Condition(f.Condition)))
	}
	if f.Search != "" {
		q = q.Where(part.Or(
			part.NameContainsFold(f.Search),
			part.SupplierContainsFold(f.Search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting parts: %w", err)
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	items, err := q.
		Order(ent.Asc(part.FieldName)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing parts: %w", err)
	}
	return items, total, nil
}

func (s *PartService) Update(ctx context.Context, id string, in domain.PartInput) (*ent.Part, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	update := s.client.Part.UpdateOneID(id).
		SetName(in.Name).
		SetPrice(in.Price)
	if in.Condition != "" {
		update.SetCondition(part.Condition(in.Condition))
	}
	if in.Quantity != nil {
		update.SetQuantity(*in.Quantity)
	}
	if in.Supplier != "" {
		update.SetSupplier(in.Supplier)
	} else {
		update.ClearSupplier()
	}

	p, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodePartNotFound,
				"part not found").WithParam("part_id", id)
		}
		return nil, fmt.Errorf("updating part %s: %w", id, err)
	}
	return p, nil
}

func (s *PartService) Delete(ctx context.Context, id string) error {
	if err := s.client.Part.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodePartNotFound,
				"part not found").WithParam("part_id", id)
		}
		return fmt.Errorf("deleting part %s: %w", id, err)
	}
	logger.L().Info("part deleted", zap.String("part_id", id))
	return nil
}

// AdjustQuantity changes stock by delta, refusing to go negative.
func (s *PartService) AdjustQuantity(ctx context.Context, id string, delta int) (*ent.Part, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := p.Quantity + delta
	if next < 0 {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
			"part quantity cannot go below zero").
			WithParam("part_id", id).
			WithParam("quantity", p.Quantity)
	}
	p, err = s.client.Part.UpdateOneID(id).SetQuantity(next).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("adjusting part %s quantity: %w", id, err)
	}
	return p, nil
}
