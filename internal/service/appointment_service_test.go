package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/ent"
	entappointment "github.com/dediamond1/mechanic/ent/appointment"
	entemployee "github.com/dediamond1/mechanic/ent/employee"
	entservicecatalogitem "github.com/dediamond1/mechanic/ent/servicecatalogitem"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/testutil"
)

// seedAppointment creates the full dependency chain for one scheduled
// appointment and returns its id.
func seedAppointment(t *testing.T, client *ent.Client, suffix string, when time.Time) string {
	t.Helper()
	ctx := context.Background()

	cust, err := client.Customer.Create().
		SetID("cust-" + suffix).
		SetName("Owner " + suffix).
		SetEmail("owner-" + suffix + "@example.com").
		Save(ctx)
	require.NoError(t, err)

	veh, err := client.Vehicle.Create().
		SetID("veh-" + suffix).
		SetMake("Honda").
		SetModel("Civic").
		SetYear(2020).
		SetLicensePlate("PL-" + suffix).
		SetVin(strings.ToUpper("1HGCM82633A" + suffix + "00000")[:17]).
		SetCustomerID(cust.ID).
		Save(ctx)
	require.NoError(t, err)

	emp, err := client.Employee.Create().
		SetID("emp-" + suffix).
		SetName("Mechanic " + suffix).
		SetRole(entemployee.RoleEmployee).
		SetEmail("mech-" + suffix + "@shop.test").
		Save(ctx)
	require.NoError(t, err)

	svc, err := client.ServiceCatalogItem.Create().
		SetID("svc-" + suffix).
		SetName("Oil Change " + suffix).
		SetPrice(49.99).
		SetCategory(entservicecatalogitem.CategoryEngine).
		Save(ctx)
	require.NoError(t, err)

	appt, err := client.Appointment.Create().
		SetID("appt-" + suffix).
		SetAppointmentDate(when).
		SetStatus(entappointment.StatusSCHEDULED).
		SetAppointmentType(entappointment.AppointmentTypeService).
		SetLaborCost(0).
		SetTotalCost(49.99).
		SetVehicleID(veh.ID).
		SetEmployeeID(emp.ID).
		AddServiceIDs(svc.ID).
		Save(ctx)
	require.NoError(t, err)
	return appt.ID
}

func TestAppointmentService_SetStatus(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "appt_status")
	svc := NewAppointmentService(client)
	ctx := context.Background()

	id := seedAppointment(t, client, "s1", time.Now().Add(48*time.Hour).UTC())

	got, err := svc.SetStatus(ctx, id, domain.StatusInProgress)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusInProgress), string(got.Status))

	got, err = svc.SetStatus(ctx, id, domain.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCompleted), string(got.Status))

	// Corrections move backwards too.
	got, err = svc.SetStatus(ctx, id, domain.StatusScheduled)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusScheduled), string(got.Status))
}

func TestAppointmentService_SetStatusUnknown(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "appt_badstatus")
	svc := NewAppointmentService(client)

	id := seedAppointment(t, client, "s2", time.Now().Add(48*time.Hour).UTC())

	_, err := svc.SetStatus(context.Background(), id, "DONE")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	require.Equal(t, 400, appErr.HTTPStatus)
}

func TestAppointmentService_AppendNote(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "appt_note")
	svc := NewAppointmentService(client)
	ctx := context.Background()

	id := seedAppointment(t, client, "n1", time.Now().Add(24*time.Hour).UTC())

	got, err := svc.AppendNote(ctx, id, "customer called ahead")
	require.NoError(t, err)
	require.Contains(t, got.Notes, "customer called ahead")

	got, err = svc.AppendNote(ctx, id, "brake fluid low")
	require.NoError(t, err)
	require.Contains(t, got.Notes, "customer called ahead")
	require.Contains(t, got.Notes, "brake fluid low")
	require.Equal(t, 2, len(strings.Split(got.Notes, "\n")))
}

func TestAppointmentService_ListByStatusAndWindow(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "appt_list")
	svc := NewAppointmentService(client)
	ctx := context.Background()

	now := time.Now().UTC()
	early := seedAppointment(t, client, "l1", now.Add(12*time.Hour))
	late := seedAppointment(t, client, "l2", now.Add(72*time.Hour))

	_, err := svc.SetStatus(ctx, late, domain.StatusCancelled)
	require.NoError(t, err)

	got, total, err := svc.List(ctx, AppointmentFilter{Status: string(domain.StatusScheduled)})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, early, got[0].ID)

	got, total, err = svc.List(ctx, AppointmentFilter{
		From: now.Add(48 * time.Hour),
		To:   now.Add(96 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, late, got[0].ID)
}

func TestAppointmentService_UpcomingScheduled(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "appt_upcoming")
	svc := NewAppointmentService(client)
	ctx := context.Background()

	now := time.Now().UTC()
	inWindow := seedAppointment(t, client, "u1", now.Add(6*time.Hour))
	seedAppointment(t, client, "u2", now.Add(100*time.Hour))

	got, err := svc.UpcomingScheduled(ctx, now, now.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, inWindow, got[0].ID)
}

func TestAppointmentService_DeleteOrphansServiceRecords(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "appt_orphan")
	svc := NewAppointmentService(client)
	ctx := context.Background()

	id := seedAppointment(t, client, "d1", time.Now().Add(24*time.Hour).UTC())

	rec, err := client.ServiceRecord.Create().
		SetID("rec-d1").
		SetDescription("oil change performed").
		SetLaborCost(40).
		SetTotalCost(40).
		SetVehicleID("veh-d1").
		SetAppointmentID(id).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	// Record survives with the appointment edge cleared.
	got, err := client.ServiceRecord.Get(ctx, rec.ID)
	require.NoError(t, err)
	appt, err := got.QueryAppointment().Only(ctx)
	require.Error(t, err, "appointment edge should be empty, got %v", appt)
	require.True(t, ent.IsNotFound(err))
}
