package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/customer"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// VehicleService owns vehicle records. Every vehicle belongs to exactly
// one customer and VINs are unique across the fleet.
type VehicleService struct {
	client *ent.Client
}

func NewVehicleService(client *ent.Client) *VehicleService {
	return &VehicleService{client: client}
}

type VehicleFilter struct {
	CustomerID string
	VIN        string
	Search     string
	Page       int
	PerPage    int
}

func (s *VehicleService) Create(ctx context.Context, in domain.VehicleInput) (*ent.Vehicle, error) {
	if err := in.Validate(time.Now()); err != nil {
		return nil, err
	}

	ownerExists, err := s.client.Customer.Query().Where(customer.IDEQ(in.CustomerID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking vehicle owner: %w", err)
	}
	if !ownerExists {
		return nil, apperrors.ErrCustomerNotFoundf(in.CustomerID)
	}

	vinTaken, err := s.client.Vehicle.Query().Where(vehicle.VinEQ(in.VIN)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking vin: %w", err)
	}
	if vinTaken {
		return nil, apperrors.Conflict(apperrors.CodeVehicleVINExists,
			"a vehicle with this VIN already exists").WithParam("vin", in.VIN)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating vehicle id: %w", err)
	}

	create := s.client.Vehicle.Create().
		SetID(id.String()).
		SetMake(in.Make).
		SetModel(in.Model).
		SetYear(in.Year).
		SetVin(in.VIN).
		SetMileage(in.Mileage).
		SetLicensePlate(in.LicensePlate).
		SetCustomerID(in.CustomerID)

	v, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeVehicleVINExists,
				"a vehicle with this VIN already exists").WithParam("vin", in.VIN)
		}
		return nil, fmt.Errorf("creating vehicle: %w", err)
	}

	logger.L().Info("vehicle created",
		zap.String("vehicle_id", v.ID),
		zap.String("vin", v.Vin),
		zap.String("customer_id", in.CustomerID))
	return v, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id string) (*ent.Vehicle, error) {
	v, err := s.client.Vehicle.Query().
		Where(vehicle.IDEQ(id)).
		WithCustomer().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrVehicleNotFoundf(id)
		}
		return nil, fmt.Errorf("fetching vehicle %s: %w", id, err)
	}
	return v, nil
}

func (s *VehicleService) List(ctx context.Context, f VehicleFilter) ([]*ent.Vehicle, int, error) {
	q := s.client.Vehicle.Query().WithCustomer()
	if f.CustomerID != "" {
		q = q.Where(vehicle.HasCustomerWith(customer.IDEQ(f.CustomerID)))
	}
	if f.VIN != "" {
		q = q.Where(vehicle.VinEQ(domain.NormalizeVIN(f.VIN)))
	}
	if f.Search != "" {
		q = q.Where(vehicle.Or(
			vehicle.MakeContainsFold(f.Search),
			vehicle.ModelContainsFold(f.Search),
			vehicle.LicensePlateContainsFold(f.Search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting vehicles: %w", err)
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	items, err := q.
		Order(ent.Desc(vehicle.FieldCreatedAt)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing vehicles: %w", err)
	}
	return items, total, nil
}

func (s *VehicleService) Update(ctx context.Context, id string, in domain.VehicleInput) (*ent.Vehicle, error) {
	if err := in.Validate(time.Now()); err != nil {
		return nil, err
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if in.CustomerID != "" {
		ownerExists, err := s.client.Customer.Query().Where(customer.IDEQ(in.CustomerID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("checking vehicle owner: %w", err)
		}
		if !ownerExists {
			return nil, apperrors.ErrCustomerNotFoundf(in.CustomerID)
		}
	}

	vinTaken, err := s.client.Vehicle.Query().
		Where(vehicle.VinEQ(in.VIN), vehicle.IDNEQ(id)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking vin: %w", err)
	}
	if vinTaken {
		return nil, apperrors.Conflict(apperrors.CodeVehicleVINExists,
			"a vehicle with this VIN already exists").WithParam("vin", in.VIN)
	}

	update := s.client.Vehicle.UpdateOneID(id).
		SetMake(in.Make).
		SetModel(in.Model).
		SetYear(in.Year).
		SetVin(in.VIN).
		SetMileage(in.Mileage).
		SetLicensePlate(in.LicensePlate)
	if in.CustomerID != "" {
		update.SetCustomerID(in.CustomerID)
	}

	v, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrVehicleNotFoundf(id)
		}
		return nil, fmt.Errorf("updating vehicle %s: %w", id, err)
	}
	return v, nil
}

// Delete removes the vehicle row only. The shop usecase cascades
// appointments, issues and service records first.
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	if err := s.client.Vehicle.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrVehicleNotFoundf(id)
		}
		return fmt.Errorf("deleting vehicle %s: %w", id, err)
	}
	logger.L().Info("vehicle deleted", zap.String("vehicle_id", id))
	return nil
}
