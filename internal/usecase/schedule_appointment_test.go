package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/ent"
	entappointment "github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/notification"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
	"github.com/dediamond1/mechanic/internal/pkg/worker"
	"github.com/dediamond1/mechanic/internal/service"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

// shopFixture bundles the collaborators a usecase test needs against
// one isolated database schema.
type shopFixture struct {
	client    *ent.Client
	pools     *worker.Pools
	triggers  *notification.Triggers
	customers *service.CustomerService
	vehicles  *service.VehicleService
	employees *service.EmployeeService
	catalog   *service.CatalogService
}

func newShopFixture(t *testing.T, prefix string) *shopFixture {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)

	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize: 4,
		NotifyPoolSize:  2,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	return &shopFixture{
		client:    client,
		pools:     pools,
		triggers:  notification.NewTriggers(notification.NewInboxSender(client), client),
		customers: service.NewCustomerService(client),
		vehicles:  service.NewVehicleService(client),
		employees: service.NewEmployeeService(client),
		catalog:   service.NewCatalogService(client),
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func TestScheduleAppointment_RegisterThroughBooking(t *testing.T) {
	fx := newShopFixture(t, "uc_schedule")
	uc := NewScheduleAppointmentUseCase(fx.client, fx.triggers, fx.pools)
	ctx := context.Background()

	ada, err := fx.customers.Create(ctx, domain.CustomerInput{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	require.NoError(t, err)

	veh, err := fx.vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   ada.ID,
		Make:         "Honda",
		Model:        "Accord",
		Year:         2020,
		LicensePlate: "ADA-001",
		VIN:          "1HGCM82633A123456",
	})
	require.NoError(t, err)

	emp, err := fx.employees.Create(ctx, domain.EmployeeInput{
		Name:  "Mechanic One",
		Email: "mech1@shop.test",
	})
	require.NoError(t, err)

	oilChange, err := fx.catalog.Create(ctx, domain.ServiceCatalogItemInput{
		Name:     "Oil Change",
		Price:    49.99,
		Category: domain.CategoryEngine,
	})
	require.NoError(t, err)

	when := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	appt, err := uc.Execute(ctx, domain.AppointmentInput{
		VehicleID:       veh.ID,
		EmployeeID:      emp.ID,
		ServiceIDs:      []string{oilChange.ID},
		AppointmentDate: when,
		Type:            domain.AppointmentTypeService,
		LaborCost:       20,
		PartsUsed: []domain.PartUsage{
			{PartID: "p1", Name: "Oil Filter", Quantity: 2, UnitPrice: 12.5},
		},
	})
	require.NoError(t, err)

	// Status is never set by the booking flow; new appointments come
	// out scheduled.
	require.Equal(t, entappointment.StatusSCHEDULED, appt.Status)
	require.True(t, appt.AppointmentDate.Equal(when))
	require.InDelta(t, 94.99, appt.TotalCost, 1e-9, "catalog price plus labor plus parts")

	owned, total, err := fx.vehicles.List(ctx, service.VehicleFilter{CustomerID: ada.ID})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, owned, 1)
	require.Equal(t, veh.ID, owned[0].ID)
}

func TestScheduleAppointment_UnknownService(t *testing.T) {
	fx := newShopFixture(t, "uc_sched_missing")
	uc := NewScheduleAppointmentUseCase(fx.client, fx.triggers, fx.pools)
	ctx := context.Background()

	owner, err := fx.customers.Create(ctx, domain.CustomerInput{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)
	veh, err := fx.vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   owner.ID,
		Make:         "Ford",
		Model:        "Focus",
		Year:         2019,
		LicensePlate: "UCS-001",
		VIN:          "1FADP3F20JL654321",
	})
	require.NoError(t, err)
	emp, err := fx.employees.Create(ctx, domain.EmployeeInput{Name: "Mechanic", Email: "mech@shop.test"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, domain.AppointmentInput{
		VehicleID:       veh.ID,
		EmployeeID:      emp.ID,
		ServiceIDs:      []string{"missing-service"},
		AppointmentDate: time.Now().Add(24 * time.Hour).UTC(),
		Type:            domain.AppointmentTypeService,
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeServiceNotFound, appErr.Code)
}

func TestScheduleAppointment_InactiveService(t *testing.T) {
	fx := newShopFixture(t, "uc_sched_inactive")
	uc := NewScheduleAppointmentUseCase(fx.client, fx.triggers, fx.pools)
	ctx := context.Background()

	owner, err := fx.customers.Create(ctx, domain.CustomerInput{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)
	veh, err := fx.vehicles.Create(ctx, domain.VehicleInput{
		CustomerID:   owner.ID,
		Make:         "Toyota",
		Model:        "Camry",
		Year:         2021,
		LicensePlate: "UCS-002",
		VIN:          "4T1BF1FK5HU123456",
	})
	require.NoError(t, err)
	emp, err := fx.employees.Create(ctx, domain.EmployeeInput{Name: "Mechanic", Email: "mech@shop.test"})
	require.NoError(t, err)

	retired, err := fx.catalog.Create(ctx, domain.ServiceCatalogItemInput{
		Name:     "Carburetor Tuning",
		Price:    89,
		Category: domain.CategoryEngine,
	})
	require.NoError(t, err)
	_, err = fx.catalog.SetActive(ctx, retired.ID, false)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, domain.AppointmentInput{
		VehicleID:       veh.ID,
		EmployeeID:      emp.ID,
		ServiceIDs:      []string{retired.ID},
		AppointmentDate: time.Now().Add(24 * time.Hour).UTC(),
		Type:            domain.AppointmentTypeService,
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeServiceInactive, appErr.Code)
}

func TestScheduleAppointment_UnknownVehicle(t *testing.T) {
	fx := newShopFixture(t, "uc_sched_vehicle")
	uc := NewScheduleAppointmentUseCase(fx.client, fx.triggers, fx.pools)
	ctx := context.Background()

	emp, err := fx.employees.Create(ctx, domain.EmployeeInput{Name: "Mechanic", Email: "mech@shop.test"})
	require.NoError(t, err)
	svc, err := fx.catalog.Create(ctx, domain.ServiceCatalogItemInput{
		Name:     "Tire Rotation",
		Price:    29.99,
		Category: domain.CategoryTires,
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, domain.AppointmentInput{
		VehicleID:       "missing",
		EmployeeID:      emp.ID,
		ServiceIDs:      []string{svc.ID},
		AppointmentDate: time.Now().Add(24 * time.Hour).UTC(),
		Type:            domain.AppointmentTypeService,
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeVehicleNotFound, appErr.Code)
}
