package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/ent/issue"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func TestIssueService_CreateDefaultsToPending(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "issue_create")
	customers := NewCustomerService(client)
	vehicles := NewVehicleService(client)
	svc := NewIssueService(client)
	ctx := context.Background()

	ownerID := seedOwner(t, customers, "issue-owner@example.com")
	v, err := vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   ownerID,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2020,
		LicensePlate: "ISS-001",
		VIN:          "JTDBR32E820012345",
	})
	require.NoError(t, err)

	i, err := svc.Create(ctx, domain.IssueInput{
		VehicleID:   v.ID,
		Description: "Rattling noise from the front left wheel",
	})
	require.NoError(t, err)
	require.Equal(t, issue.StatusPending, i.Status)
	require.Nil(t, i.ResolvedAt)
}

func TestIssueService_CreateUnknownVehicle(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "issue_vehicle")
	svc := NewIssueService(client)

	_, err := svc.Create(context.Background(), domain.IssueInput{
		VehicleID:   "missing",
		Description: "Check engine light on",
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeVehicleNotFound, appErr.Code)
}

func TestIssueService_ResolveIsIdempotent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "issue_resolve")
	customers := NewCustomerService(client)
	vehicles := NewVehicleService(client)
	svc := NewIssueService(client)
	ctx := context.Background()

	ownerID := seedOwner(t, customers, "resolve-owner@example.com")
	v, err := vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   ownerID,
		Make:         "Ford",
		Model:        "Focus",
		Year:         2018,
		LicensePlate: "ISS-002",
		VIN:          "1FADP3F20JL123456",
	})
	require.NoError(t, err)

	created, err := svc.Create(ctx, domain.IssueInput{
		VehicleID:   v.ID,
		Description: "Battery drains overnight",
	})
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, issue.StatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	firstStamp := *resolved.ResolvedAt

	again, err := svc.Resolve(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, again.ResolvedAt)
	require.True(t, again.ResolvedAt.Equal(firstStamp), "resolved_at stamped once")
}

func TestIssueService_ResolveNotFound(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "issue_missing")
	svc := NewIssueService(client)

	_, err := svc.Resolve(context.Background(), "missing")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeIssueNotFound, appErr.Code)
}
