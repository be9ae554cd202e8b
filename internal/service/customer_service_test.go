package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestCustomerService_CreateAndDuplicateEmail(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "customer_create")
	svc := NewCustomerService(client)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CustomerInput{
		Name:  "Jane Doe",
		Email: "Jane@Example.com",
		Phone: "+15550100",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "jane@example.com", created.Email, "email stored lowercase")

	_, err = svc.Create(ctx, domain.CustomerInput{
		Name:  "Other Jane",
		Email: "JANE@example.com",
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeCustomerEmailExists, appErr.Code)
}

func TestCustomerService_ListSearch(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "customer_list")
	svc := NewCustomerService(client)
	ctx := context.Background()

	for _, in := range []domain.CustomerInput{
		{Name: "Alice Smith", Email: "alice@example.com"},
		{Name: "Bob Jones", Email: "bob@example.com", Phone: "+15550111"},
		{Name: "Carol Smith", Email: "carol@example.com"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	got, total, err := svc.List(ctx, CustomerFilter{Search: "smith"})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, got, 2)

	got, total, err = svc.List(ctx, CustomerFilter{Email: "bob@example.com"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Bob Jones", got[0].Name)

	// Pagination caps and defaults apply.
	got, total, err = svc.List(ctx, CustomerFilter{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, got, 1)
}

func TestCustomerService_UpdateClearsOptionalFields(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "customer_update")
	svc := NewCustomerService(client)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CustomerInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "+15550100",
		Address: "1 Main St",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, domain.CustomerInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})
	require.NoError(t, err)
	require.Empty(t, updated.Phone)
	require.Empty(t, updated.Address)
}

func TestCustomerService_DeleteRestrictedByVehicles(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "customer_delete")
	svc := NewCustomerService(client)
	vehicles := NewVehicleService(client)
	ctx := context.Background()

	owner, err := svc.Create(ctx, domain.CustomerInput{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   owner.ID,
		Make:         "Honda",
		Model:        "Accord",
		Year:         2019,
		LicensePlate: "ABC-123",
		VIN:          "1HGCM82633A123456",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, owner.ID)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeCustomerHasVehicles, appErr.Code)

	// Still deletable once the vehicle is gone.
	vlist, _, err := vehicles.List(ctx, VehicleFilter{CustomerID: owner.ID})
	require.NoError(t, err)
	require.Len(t, vlist, 1)
	require.NoError(t, vehicles.Delete(ctx, vlist[0].ID))
	require.NoError(t, svc.Delete(ctx, owner.ID))
}

func TestCustomerService_GetByIDNotFound(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "customer_get")
	svc := NewCustomerService(client)

	_, err := svc.GetByID(context.Background(), "missing")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeCustomerNotFound, appErr.Code)
}
