package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/ent/servicerecord"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func seedRecordVehicle(t *testing.T, customers *CustomerService, vehicles *VehicleService, suffix string) string {
	t.Helper()
	ctx := context.Background()
	ownerID := seedOwner(t, customers, "rec-"+suffix+"@example.com")
	vin := "2HGFC2F59MH" + suffix + "00000"
	v, err := vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   ownerID,
		Make:         "Honda",
		Model:        "Civic",
		Year:         2021,
		LicensePlate: "REC-" + suffix,
		VIN:          vin[:17],
	})
	require.NoError(t, err)
	return v.ID
}

func TestServiceRecordService_CreateDerivesTotalCost(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "record_total")
	customers := NewCustomerService(client)
	vehicles := NewVehicleService(client)
	svc := NewServiceRecordService(client)
	ctx := context.Background()

	vehicleID := seedRecordVehicle(t, customers, vehicles, "11")

	rec, err := svc.Create(ctx, domain.ServiceRecordInput{
		VehicleID:         vehicleID,
		Description:       "Front brake job",
		ServicesPerformed: []string{"Brake pad replacement"},
		PartsUsed: []domain.PartUsage{
			{PartID: "p1", Name: "Brake Pad Set", Quantity: 2, UnitPrice: 45},
		},
		LaborCost: 120,
	})
	require.NoError(t, err)
	require.Equal(t, servicerecord.StatusPending, rec.Status)
	require.Equal(t, 210.0, rec.TotalCost, "total derived from labor plus parts")
	require.Nil(t, rec.CompletedAt)
}

func TestServiceRecordService_CreateUnknownVehicle(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "record_vehicle")
	svc := NewServiceRecordService(client)

	_, err := svc.Create(context.Background(), domain.ServiceRecordInput{
		VehicleID: "missing",
		LaborCost: 50,
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeVehicleNotFound, appErr.Code)
}

func TestServiceRecordService_CreateUnknownAppointment(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "record_appt")
	customers := NewCustomerService(client)
	vehicles := NewVehicleService(client)
	svc := NewServiceRecordService(client)

	vehicleID := seedRecordVehicle(t, customers, vehicles, "22")

	_, err := svc.Create(context.Background(), domain.ServiceRecordInput{
		VehicleID:     vehicleID,
		AppointmentID: "missing",
		LaborCost:     50,
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeAppointmentNotFound, appErr.Code)
}

func TestServiceRecordService_CompleteIsIdempotent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "record_complete")
	customers := NewCustomerService(client)
	vehicles := NewVehicleService(client)
	svc := NewServiceRecordService(client)
	ctx := context.Background()

	vehicleID := seedRecordVehicle(t, customers, vehicles, "33")

	rec, err := svc.Create(ctx, domain.ServiceRecordInput{
		VehicleID: vehicleID,
		LaborCost: 80,
		PartsUsed: []domain.PartUsage{
			{PartID: "p2", Name: "Oil Filter", Quantity: 1, UnitPrice: 12.5},
		},
	})
	require.NoError(t, err)

	done, err := svc.Complete(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, servicerecord.StatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	require.Equal(t, 92.5, done.TotalCost)
	firstStamp := *done.CompletedAt

	again, err := svc.Complete(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	require.True(t, again.CompletedAt.Equal(firstStamp), "completed_at stamped once")
}
