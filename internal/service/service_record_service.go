package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/servicerecord"
	"github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// ServiceRecordService owns the maintenance history. A record documents
// work actually performed on a vehicle; its total cost is always derived
// from labor plus part line items, never accepted from the caller.
type ServiceRecordService struct {
	client *ent.Client
}

func NewServiceRecordService(client *ent.Client) *ServiceRecordService {
	return &ServiceRecordService{client: client}
}

type ServiceRecordFilter struct {
	VehicleID     string
	AppointmentID string
	Status        string
	Page          int
	PerPage       int
}

func (s *ServiceRecordService) Create(ctx context.Context, in domain.ServiceRecordInput) (*ent.ServiceRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	vehicleExists, err := s.client.Vehicle.Query().Where(vehicle.IDEQ(in.VehicleID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking record vehicle: %w", err)
	}
	if !vehicleExists {
		return nil, apperrors.ErrVehicleNotFoundf(in.VehicleID)
	}

	if in.AppointmentID != "" {
		apptExists, err := s.client.Appointment.Query().
			Where(appointment.IDEQ(in.AppointmentID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("checking record appointment: %w", err)
		}
		if !apptExists {
			return nil, apperrors.ErrAppointmentNotFoundf(in.AppointmentID)
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating record id: %w", err)
	}

	create := s.client.ServiceRecord.Create().
		SetID(id.String()).
		SetLaborCost(in.LaborCost).
		SetTotalCost(domain.TotalCost(in.LaborCost, in.PartsUsed)).
		SetVehicleID(in.VehicleID)
	if in.Description != "" {
		create.SetDescription(in.Description)
	}
	if len(in.ServicesPerformed) > 0 {
		create.SetServicesPerformed(in.ServicesPerformed)
	}
	if len(in.PartsUsed) > 0 {
		create.SetPartsUsed(in.PartsUsed)
	}
	if in.Notes != "" {
		create.SetNotes(in.Notes)
	}
	if in.AppointmentID != "" {
		create.SetAppointmentID(in.AppointmentID)
	}

	rec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating service record: %w", err)
	}

	logger.L().Info("service record created",
		zap.String("record_id", rec.ID),
		zap.String("vehicle_id", in.VehicleID),
		zap.Float64("total_cost", rec.TotalCost))
	return rec, nil
}

func (s *ServiceRecordService) GetByID(ctx context.Context, id string) (*ent.ServiceRecord, error) {
	rec, err := s.client.ServiceRecord.Query().
		Where(servicerecord.IDEQ(id)).
		WithVehicle().
		WithAppointment().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeServiceRecordNotFound,
				"service record not found").WithParam("record_id", id)
		}
		return nil, fmt.Errorf("fetching service record %s: %w", id, err)
	}
	return rec, nil
}

func (s *ServiceRecordService) List(ctx context.Context, f ServiceRecordFilter) ([]*ent.ServiceRecord, int, error) {
	q := s.client.ServiceRecord.Query().WithVehicle()
	if f.VehicleID != "" {
		q = q.Where(servicerecord.HasVehicleWith(vehicle.IDEQ(f.VehicleID)))
	}
	if f.AppointmentID != "" {
		q = q.Where(servicerecord.HasAppointmentWith(appointment.IDEQ(f.AppointmentID)))
	}
	if f.Status != "" {
		q = q.Where(servicerecord.StatusEQ(servicerecord.Status(f.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting service records: %w", err)
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	items, err := q.
		Order(ent.Desc(servicerecord.FieldCreatedAt)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing service records: %w", err)
	}
	return items, total, nil
}

func (s *ServiceRecordService) Update(ctx context.Context, id string, in domain.ServiceRecordInput) (*ent.ServiceRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	update := s.client.ServiceRecord.UpdateOneID(id).
		SetLaborCost(in.LaborCost).
		SetTotalCost(domain.TotalCost(in.LaborCost, in.PartsUsed)).
		SetServicesPerformed(in.ServicesPerformed).
		SetPartsUsed(in.PartsUsed)
	if in.Description != "" {
		update.SetDescription(in.Description)
	} else {
		update.ClearDescription()
	}
	if in.Notes != "" {
		update.SetNotes(in.Notes)
	} else {
		update.ClearNotes()
	}

	rec, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating service record %s: %w", id, err)
	}
	return rec, nil
}

// Complete stamps the record completed and recomputes the final total.
func (s *ServiceRecordService) Complete(ctx context.Context, id string) (*ent.ServiceRecord, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status == servicerecord.StatusCompleted {
		return rec, nil
	}

	rec, err = s.client.ServiceRecord.UpdateOneID(id).
		SetStatus(servicerecord.StatusCompleted).
		SetCompletedAt(time.Now().UTC()).
		SetTotalCost(domain.TotalCost(rec.LaborCost, rec.PartsUsed)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("completing service record %s: %w", id, err)
	}
	logger.L().Info("service record completed", zap.String("record_id", id))
	return rec, nil
}

func (s *ServiceRecordService) Delete(ctx context.Context, id string) error {
	if err := s.client.ServiceRecord.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeServiceRecordNotFound,
				"service record not found").WithParam("record_id", id)
		}
		return fmt.Errorf("deleting service record %s: %w", id, err)
	}
	return nil
}
