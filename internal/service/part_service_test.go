package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func TestPartService_CreateDefaults(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "part_create")
	svc := NewPartService(client)

	p, err := svc.Create(context.Background(), domain.PartInput{Name: "Oil Filter", Price: 12.5})
	require.NoError(t, err)
	require.Equal(t, "new", string(p.Condition))
	require.Equal(t, 1, p.Quantity)
}

func TestPartService_AdjustQuantity(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "part_adjust")
	svc := NewPartService(client)
	ctx := context.Background()

	qty := 10
	p, err := svc.Create(ctx, domain.PartInput{Name: "Brake Pad Set", Price: 45, Quantity: &qty})
	require.NoError(t, err)

	p, err = svc.AdjustQuantity(ctx, p.ID, -4)
	require.NoError(t, err)
	require.Equal(t, 6, p.Quantity)

	p, err = svc.AdjustQuantity(ctx, p.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 8, p.Quantity)
}

func TestPartService_AdjustQuantityRefusesNegativeStock(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "part_negative")
	svc := NewPartService(client)
	ctx := context.Background()

	qty := 3
	p, err := svc.Create(ctx, domain.PartInput{Name: "Wiper Blade", Price: 8.75, Quantity: &qty})
	require.NoError(t, err)

	_, err = svc.AdjustQuantity(ctx, p.ID, -5)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeInvalidRequest, appErr.Code)

	// Stock unchanged after the refused adjustment.
	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.Quantity)
}
