package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	entissue "github.com/dediamond1/mechanic/ent/issue"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/service"
)

func TestUpdateAppointmentStatus_CompletedResolvesLinkedIssue(t *testing.T) {
	fx := newShopFixture(t, "uc_status_issue")
	issues := service.NewIssueService(fx.client)
	appointments := service.NewAppointmentService(fx.client)
	schedule := NewScheduleAppointmentUseCase(fx.client, fx.triggers, fx.pools)
	uc := NewUpdateAppointmentStatusUseCase(appointments, issues, fx.triggers, fx.pools)
	ctx := context.Background()

	owner, err := fx.customers.Create(ctx, domain.CustomerInput{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)
	veh, err := fx.vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   owner.ID,
		Make:         "Subaru",
		Model:        "Outback",
		Year:         2022,
		LicensePlate: "UCS-003",
		VIN:          "4S4BSANC5J3123456",
	})
	require.NoError(t, err)
	emp, err := fx.employees.Create(ctx, domain.EmployeeInput{Name: "Mechanic", Email: "mech@shop.test"})
	require.NoError(t, err)

	reported, err := issues.Create(ctx, domain.IssueInput{
		VehicleID:   veh.ID,
		Description: "Grinding noise when braking",
	})
	require.NoError(t, err)

	appt, err := schedule.Execute(ctx, domain.AppointmentInput{
		VehicleID:       veh.ID,
		EmployeeID:      emp.ID,
		IssueID:         reported.ID,
		AppointmentDate: time.Now().Add(24 * time.Hour).UTC(),
		Type:            domain.AppointmentTypeIssue,
	})
	require.NoError(t, err)

	got, err := uc.Execute(ctx, appt.ID, domain.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCompleted), string(got.Status))

	// Completing an issue-repair visit resolves the issue it was booked for.
	after, err := issues.GetByID(ctx, reported.ID)
	require.NoError(t, err)
	require.Equal(t, entissue.StatusResolved, after.Status)
	require.NotNil(t, after.ResolvedAt)
}

func TestUpdateAppointmentStatus_UnknownAppointment(t *testing.T) {
	fx := newShopFixture(t, "uc_status_missing")
	issues := service.NewIssueService(fx.client)
	appointments := service.NewAppointmentService(fx.client)
	uc := NewUpdateAppointmentStatusUseCase(appointments, issues, fx.triggers, fx.pools)

	_, err := uc.Execute(context.Background(), "missing", domain.StatusInProgress)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeAppointmentNotFound, appErr.Code)
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"SCHEDULED", "IN_PROGRESS", "COMPLETED", "CANCELLED"} {
		got, err := ParseStatus(raw)
		if err != nil {
			t.Fatalf("ParseStatus(%s): %v", raw, err)
		}
		if string(got) != raw {
			t.Errorf("ParseStatus(%s) = %s", raw, got)
		}
	}

	_, err := ParseStatus("DONE")
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.CodeInvalidStatus {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeInvalidStatus)
	}
}
