package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func seedOwner(t *testing.T, svc *CustomerService, email string) string {
	t.Helper()
	owner, err := svc.Create(context.Background(), domain.CustomerInput{Name: "Owner", Email: email})
	require.NoError(t, err)
	return owner.ID
}

func TestVehicleService_CreateDuplicateVIN(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "vehicle_vin")
	customers := NewCustomerService(client)
	svc := NewVehicleService(client)
	ctx := context.Background()

	ownerID := seedOwner(t, customers, "owner@example.com")

	in := domain.VehicleInput{
		CustomerID:   ownerID,
		Make:         "Honda",
		Model:        "Accord",
		Year:         2019,
		LicensePlate: "ABC-123",
		VIN:          "1hgcm82633a123456",
	}
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "1HGCM82633A123456", created.Vin, "VIN stored uppercase")

	in.LicensePlate = "XYZ-999"
	_, err = svc.Create(ctx, in)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeVehicleVINExists, appErr.Code)
}

func TestVehicleService_CreateUnknownOwner(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "vehicle_owner")
	svc := NewVehicleService(client)

	_, err := svc.Create(context.Background(), domain.VehicleInput{
		CustomerID:   "missing",
		Make:         "Honda",
		Model:        "Accord",
		Year:         2019,
		LicensePlate: "ABC-123",
		VIN:          "1HGCM82633A123456",
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeCustomerNotFound, appErr.Code)
}

func TestVehicleService_GetByIDLoadsOwner(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "vehicle_get")
	customers := NewCustomerService(client)
	svc := NewVehicleService(client)
	ctx := context.Background()

	ownerID := seedOwner(t, customers, "owner@example.com")
	created, err := svc.Create(ctx, domain.VehicleInput{
		CustomerID:   ownerID,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2021,
		LicensePlate: "DEF-456",
		VIN:          "JTDBU4EE9A9123456",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	owner, err := got.Edges.CustomerOrErr()
	require.NoError(t, err, "customer edge should be loaded")
	require.Equal(t, ownerID, owner.ID)
}

func TestVehicleService_ListFilters(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "vehicle_list")
	customers := NewCustomerService(client)
	svc := NewVehicleService(client)
	ctx := context.Background()

	ownerA := seedOwner(t, customers, "a@example.com")
	ownerB := seedOwner(t, customers, "b@example.com")

	vins := map[string]string{
		ownerA: "1HGCM82633A123456",
		ownerB: "JTDBU4EE9A9123456",
	}
	for owner, vin := range vins {
		_, err := svc.Create(ctx, domain.VehicleInput{
			CustomerID:   owner,
			Make:         "Honda",
			Model:        "Civic",
			Year:         2020,
			LicensePlate: "P-" + vin[:5],
			VIN:          vin,
		})
		require.NoError(t, err)
	}

	got, total, err := svc.List(ctx, VehicleFilter{CustomerID: ownerA})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, vins[ownerA], got[0].Vin)

	got, total, err = svc.List(ctx, VehicleFilter{VIN: "jtdbu4ee9a9123456"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, vins[ownerB], got[0].Vin)
}

func TestVehicleService_UpdateReplacesPlate(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "vehicle_plate")
	customers := NewCustomerService(client)
	svc := NewVehicleService(client)
	ctx := context.Background()

	ownerID := seedOwner(t, customers, "plate@example.com")
	in := domain.VehicleInput{
		CustomerID:   ownerID,
		Make:         "Honda",
		Model:        "Accord",
		Year:         2019,
		LicensePlate: "OLD-111",
		VIN:          "1HGCM82633A654321",
	}
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "OLD-111", created.LicensePlate)

	in.LicensePlate = "NEW-222"
	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	require.Equal(t, "NEW-222", updated.LicensePlate)

	// A blank plate never reaches the store; validation rejects it first.
	in.LicensePlate = "   "
	_, err = svc.Update(ctx, created.ID, in)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
