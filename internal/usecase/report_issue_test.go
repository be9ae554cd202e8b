package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	entnotification "github.com/dediamond1/mechanic/ent/notification"
	entuser "github.com/dediamond1/mechanic/ent/user"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/service"
)

func TestReportIssue_CreatesIssueAndNotifiesManagers(t *testing.T) {
	fx := newShopFixture(t, "uc_report_issue")
	issues := service.NewIssueService(fx.client)
	uc := NewReportIssueUseCase(issues, fx.vehicles, fx.triggers, fx.pools)
	ctx := context.Background()

	owner, err := fx.customers.Create(ctx, domain.CustomerInput{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)
	veh, err := fx.vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   owner.ID,
		Make:         "Volvo",
		Model:        "V60",
		Year:         2023,
		LicensePlate: "UCR-001",
		VIN:          "YV1FS54A4D2123456",
	})
	require.NoError(t, err)

	// A manager with an enabled account receives the inbox heads-up.
	_, err = fx.employees.Create(ctx, domain.EmployeeInput{
		Name:  "Shop Manager",
		Role:  domain.RoleManager,
		Email: "manager@shop.test",
	})
	require.NoError(t, err)
	mgr, err := fx.client.User.Create().
		SetID("user-manager").
		SetEmail("manager@shop.test").
		SetName("Shop Manager").
		SetPasswordHash("x").
		SetEmailVerified(true).
		SetEnabled(true).
		Save(ctx)
	require.NoError(t, err)

	reported, err := uc.Execute(ctx, domain.IssueInput{
		VehicleID:   veh.ID,
		Description: "Coolant leak under the engine bay",
	})
	require.NoError(t, err)
	require.NotEmpty(t, reported.ID)

	// Fan-out runs detached on the notify pool; wait for the row.
	require.Eventually(t, func() bool {
		n, err := fx.client.Notification.Query().
			Where(
				entnotification.TypeEQ(entnotification.TypeISSUE_REPORTED),
				entnotification.ResourceIDEQ(reported.ID),
				entnotification.HasUserWith(entuser.IDEQ(mgr.ID)),
			).
			Count(ctx)
		return err == nil && n == 1
	}, 5*time.Second, 50*time.Millisecond, "manager notification not delivered")
}

func TestReportIssue_UnknownVehicle(t *testing.T) {
	fx := newShopFixture(t, "uc_report_missing")
	issues := service.NewIssueService(fx.client)
	uc := NewReportIssueUseCase(issues, fx.vehicles, fx.triggers, fx.pools)

	_, err := uc.Execute(context.Background(), domain.IssueInput{
		VehicleID:   "missing",
		Description: "Flat tire",
	})
	requireCode(t, err, apperrors.CodeVehicleNotFound)
}
