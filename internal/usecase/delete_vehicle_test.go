package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/service"
)

func TestDeleteVehicle_CascadesHistory(t *testing.T) {
	fx := newShopFixture(t, "uc_del_vehicle")
	issues := service.NewIssueService(fx.client)
	records := service.NewServiceRecordService(fx.client)
	appointments := service.NewAppointmentService(fx.client)
	schedule := NewScheduleAppointmentUseCase(fx.client, fx.triggers, fx.pools)
	uc := NewDeleteVehicleUseCase(fx.client)
	ctx := context.Background()

	owner, err := fx.customers.Create(ctx, domain.CustomerInput{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)
	veh, err := fx.vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   owner.ID,
		Make:         "Mazda",
		Model:        "3",
		Year:         2017,
		LicensePlate: "UCD-001",
		VIN:          "JM1BK32F781123456",
	})
	require.NoError(t, err)
	emp, err := fx.employees.Create(ctx, domain.EmployeeInput{Name: "Mechanic", Email: "mech@shop.test"})
	require.NoError(t, err)
	svc, err := fx.catalog.Create(ctx, domain.ServiceCatalogItemInput{
		Name:     "Brake Inspection",
		Price:    39.99,
		Category: domain.CategoryBrakes,
	})
	require.NoError(t, err)

	appt, err := schedule.Execute(ctx, domain.AppointmentInput{
		VehicleID:       veh.ID,
		EmployeeID:      emp.ID,
		ServiceIDs:      []string{svc.ID},
		AppointmentDate: time.Now().Add(24 * time.Hour).UTC(),
		Type:            domain.AppointmentTypeService,
	})
	require.NoError(t, err)

	iss, err := issues.Create(ctx, domain.IssueInput{
		VehicleID:   veh.ID,
		Description: "Squeaky rear brakes",
	})
	require.NoError(t, err)

	rec, err := records.Create(ctx, domain.ServiceRecordInput{
		VehicleID:     veh.ID,
		AppointmentID: appt.ID,
		LaborCost:     60,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Execute(ctx, veh.ID))

	_, err = fx.vehicles.GetByID(ctx, veh.ID)
	requireCode(t, err, apperrors.CodeVehicleNotFound)
	_, err = appointments.GetByID(ctx, appt.ID)
	requireCode(t, err, apperrors.CodeAppointmentNotFound)
	_, err = issues.GetByID(ctx, iss.ID)
	requireCode(t, err, apperrors.CodeIssueNotFound)
	_, err = records.GetByID(ctx, rec.ID)
	requireCode(t, err, apperrors.CodeServiceRecordNotFound)

	// The owner is untouched.
	_, err = fx.customers.GetByID(ctx, owner.ID)
	require.NoError(t, err)
}

func TestDeleteVehicle_NotFound(t *testing.T) {
	fx := newShopFixture(t, "uc_del_missing")
	uc := NewDeleteVehicleUseCase(fx.client)

	err := uc.Execute(context.Background(), "missing")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeVehicleNotFound, appErr.Code)
}
