package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func TestCatalogService_CreateDefaultsAndDuplicateName(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "catalog_create")
	svc := NewCatalogService(client)
	ctx := context.Background()

	item, err := svc.Create(ctx, domain.ServiceCatalogItemInput{
		Name:  "Oil Change",
		Price: 49.99,
	})
	require.NoError(t, err)
	require.Equal(t, "General", string(item.Category), "category defaults to General")
	require.True(t, item.IsActive, "new items start active")

	_, err = svc.Create(ctx, domain.ServiceCatalogItemInput{Name: "Oil Change", Price: 59.99})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeServiceNameExists, appErr.Code)
}

func TestCatalogService_ListActiveOnly(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "catalog_list")
	svc := NewCatalogService(client)
	ctx := context.Background()

	active, err := svc.Create(ctx, domain.ServiceCatalogItemInput{Name: "Tire Rotation", Price: 29.99, Category: domain.CategoryTires})
	require.NoError(t, err)
	retired, err := svc.Create(ctx, domain.ServiceCatalogItemInput{Name: "Carburetor Tune", Price: 99.99, Category: domain.CategoryEngine})
	require.NoError(t, err)

	_, err = svc.SetActive(ctx, retired.ID, false)
	require.NoError(t, err)

	got, total, err := svc.List(ctx, CatalogFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, active.ID, got[0].ID)

	_, total, err = svc.List(ctx, CatalogFilter{})
	require.NoError(t, err)
	require.Equal(t, 2, total)
}

func TestCatalogService_DeleteDeactivatesWhenReferenced(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "catalog_delete")
	svc := NewCatalogService(client)
	ctx := context.Background()

	// The seeded appointment references svc-c1 in the catalog.
	seedAppointment(t, client, "c1", time.Now().Add(24*time.Hour).UTC())

	require.NoError(t, svc.Delete(ctx, "svc-c1"))

	// Still present, just inactive.
	got, err := svc.GetByID(ctx, "svc-c1")
	require.NoError(t, err)
	require.False(t, got.IsActive)

	// Unreferenced items are removed outright.
	loose, err := svc.Create(ctx, domain.ServiceCatalogItemInput{Name: "Wiper Swap", Price: 9.99})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, loose.ID))
	_, err = svc.GetByID(ctx, loose.ID)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeServiceNotFound, appErr.Code)
}
