package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/issue"
	"github.com/dediamond1/mechanic/ent/servicerecord"
	"github.com/dediamond1/mechanic/ent/vehicle"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
	"github.com/dediamond1/mechanic/internal/service"
)

// DeleteVehicleUseCase removes a vehicle and everything hanging off it.
// Appointments, issues and service records cascade with the vehicle in
// a single transaction so a crash cannot leave half a history behind.
type DeleteVehicleUseCase struct {
	entClient *ent.Client
}

// NewDeleteVehicleUseCase creates a new DeleteVehicleUseCase.
func NewDeleteVehicleUseCase(entClient *ent.Client) *DeleteVehicleUseCase {
	return &DeleteVehicleUseCase{entClient: entClient}
}

// Execute deletes the vehicle and its dependent records.
func (uc *DeleteVehicleUseCase) Execute(ctx context.Context, vehicleID string) error {
	tx, err := uc.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin vehicle delete tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exists, err := tx.Vehicle.Query().Where(vehicle.IDEQ(vehicleID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("checking vehicle: %w", err)
	}
	if !exists {
		return apperrors.ErrVehicleNotFoundf(vehicleID)
	}

	byVehicle := vehicle.IDEQ(vehicleID)

	var appts, issues, records int
	if service.PolicyFor("vehicle.appointments") == service.PolicyCascade {
		appts, err = tx.Appointment.Delete().
			Where(appointment.HasVehicleWith(byVehicle)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("cascading appointments: %w", err)
		}
	}
	if service.PolicyFor("vehicle.issues") == service.PolicyCascade {
		issues, err = tx.Issue.Delete().
			Where(issue.HasVehicleWith(byVehicle)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("cascading issues: %w", err)
		}
	}
	if service.PolicyFor("vehicle.service_records") == service.PolicyCascade {
		records, err = tx.ServiceRecord.Delete().
			Where(servicerecord.HasVehicleWith(byVehicle)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("cascading service records: %w", err)
		}
	}

	if err := tx.Vehicle.DeleteOneID(vehicleID).Exec(ctx); err != nil {
		return fmt.Errorf("deleting vehicle %s: %w", vehicleID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing vehicle delete: %w", err)
	}

	logger.L().Info("vehicle deleted with history",
		zap.String("vehicle_id", vehicleID),
		zap.Int("appointments", appts),
		zap.Int("issues", issues),
		zap.Int("service_records", records))
	return nil
}
