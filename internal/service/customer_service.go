package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/customer"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// CustomerService owns customer records and the unique-email invariant.
type CustomerService struct {
	client *ent.Client
}

func NewCustomerService(client *ent.Client) *CustomerService {
	return &CustomerService{client: client}
}

// CustomerFilter narrows List results. Search matches name, email and
// phone case-insensitively.
type CustomerFilter struct {
	Search  string
	Email   string
	Page    int
	PerPage int
}

func (s *CustomerService) Create(ctx context.Context, in domain.CustomerInput) (*ent.Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.client.Customer.Query().Where(customer.EmailEQ(in.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking customer email: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict(apperrors.CodeCustomerEmailExists,
			"a customer with this email already exists").WithParam("email", in.Email)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating customer id: %w", err)
	}

	create := s.client.Customer.Create().
		SetID(id.String()).
		SetName(in.Name).
		SetEmail(in.Email)
	if in.Phone != "" {
		create.SetPhone(in.Phone)
	}
	if in.Address != "" {
		create.SetAddress(in.Address)
	}

	c, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeCustomerEmailExists,
				"a customer with this email already exists").WithParam("email", in.Email)
		}
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	logger.L().Info("customer created", zap.String("customer_id", c.ID), zap.String("email", c.Email))
	return c, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*ent.Customer, error) {
	c, err := s.client.Customer.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrCustomerNotFoundf(id)
		}
		return nil, fmt.Errorf("fetching customer %s: %w", id, err)
	}
	return c, nil
}

func (s *CustomerService) List(ctx context.Context, f CustomerFilter) ([]*ent.Customer, int, error) {
	q := s.client.Customer.Query()
	if f.Search != "" {
		q = q.Where(customer.Or(
			customer.NameContainsFold(f.Search),
			customer.EmailContainsFold(f.Search),
			customer.PhoneContainsFold(f.Search),
		))
	}
	if f.Email != "" {
		q = q.Where(customer.EmailEQ(domain.NormalizeEmail(f.Email)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting customers: %w", err)
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	items, err := q.
		Order(ent.Desc(customer.FieldCreatedAt)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing customers: %w", err)
	}
	return items, total, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, in domain.CustomerInput) (*ent.Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	taken, err := s.client.Customer.Query().
		Where(customer.EmailEQ(in.Email), customer.IDNEQ(id)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking customer email: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeCustomerEmailExists,
			"a customer with this email already exists").WithParam("email", in.Email)
	}

	update := s.client.Customer.UpdateOneID(id).
		SetName(in.Name).
		SetEmail(in.Email)
	if in.Phone != "" {
		update.SetPhone(in.Phone)
	} else {
		update.ClearPhone()
	}
	if in.Address != "" {
		update.SetAddress(in.Address)
	} else {
		update.ClearAddress()
	}

	c, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrCustomerNotFoundf(id)
		}
		return nil, fmt.Errorf("updating customer %s: %w", id, err)
	}
	return c, nil
}

// Delete refuses to remove a customer who still owns vehicles.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if PolicyFor("customer.vehicles") == PolicyRestrict {
		n, err := s.VehicleCount(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperrors.Conflict(apperrors.CodeCustomerHasVehicles,
				"customer has vehicles and cannot be deleted").
				WithParam("vehicle_count", n)
		}
	}

	if err := s.client.Customer.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrCustomerNotFoundf(id)
		}
		return fmt.Errorf("deleting customer %s: %w", id, err)
	}
	logger.L().Info("customer deleted", zap.String("customer_id", id))
	return nil
}

// VehicleCount reports how many vehicles reference the customer.
func (s *CustomerService) VehicleCount(ctx context.Context, id string) (int, error) {
	n, err := s.client.Customer.Query().
		Where(customer.IDEQ(id)).
		QueryVehicles().
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting customer vehicles: %w", err)
	}
	return n, nil
}
