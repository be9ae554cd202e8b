package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/ent/employee"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func TestEmployeeService_CreateDefaultRoleAndDuplicateEmail(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "employee_email")
	svc := NewEmployeeService(client)
	ctx := context.Background()

	e, err := svc.Create(ctx, domain.EmployeeInput{
		Name:  "Alex Mechanic",
		Email: "alex@shop.test",
	})
	require.NoError(t, err)
	require.Equal(t, employee.RoleEmployee, e.Role)

	_, err = svc.Create(ctx, domain.EmployeeInput{
		Name:  "Other Alex",
		Email: "alex@shop.test",
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeEmployeeEmailExists, appErr.Code)
}

func TestEmployeeService_UpdateEmailTakenByOther(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "employee_update")
	svc := NewEmployeeService(client)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.EmployeeInput{Name: "First", Email: "first@shop.test"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, domain.EmployeeInput{Name: "Second", Email: "second@shop.test"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID, domain.EmployeeInput{Name: "Second", Email: first.Email})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeEmployeeEmailExists, appErr.Code)

	// Keeping your own email is fine.
	updated, err := svc.Update(ctx, second.ID, domain.EmployeeInput{Name: "Second Renamed", Email: second.Email})
	require.NoError(t, err)
	require.Equal(t, "Second Renamed", updated.Name)
}

func TestEmployeeService_DeleteRestrictedByAppointments(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "employee_delete")
	svc := NewEmployeeService(client)
	appointments := NewAppointmentService(client)
	ctx := context.Background()

	apptID := seedAppointment(t, client, "e1", time.Now().Add(72*time.Hour).UTC())

	err := svc.Delete(ctx, "emp-e1")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeEmployeeHasAppointments, appErr.Code)

	require.NoError(t, appointments.Delete(ctx, apptID))
	require.NoError(t, svc.Delete(ctx, "emp-e1"))

	_, err = svc.GetByID(ctx, "emp-e1")
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeEmployeeNotFound, appErr.Code)
}
