// Package main seeds deterministic fixtures for live end-to-end tests.
//
// This command is test-environment only and is intentionally idempotent.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dediamond1/mechanic/ent"
	entappointment "github.com/dediamond1/mechanic/ent/appointment"
	entcustomer "github.com/dediamond1/mechanic/ent/customer"
	entemployee "github.com/dediamond1/mechanic/ent/employee"
	entservicecatalogitem "github.com/dediamond1/mechanic/ent/servicecatalogitem"
	entuser "github.com/dediamond1/mechanic/ent/user"
	entvehicle "github.com/dediamond1/mechanic/ent/vehicle"
	"github.com/dediamond1/mechanic/internal/config"
	"github.com/dediamond1/mechanic/internal/infrastructure"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

const (
	defaultAdminEmail    = "e2e-admin@localhost"
	defaultAdminPassword = "e2e-admin-123"

	defaultCustomerID    = "cust-e2e"
	defaultCustomerEmail = "e2e-customer@example.com"
	defaultVehicleID     = "veh-e2e"
	defaultVehicleVIN    = "1HGCM82633A123456"
	defaultEmployeeID    = "emp-e2e"
	defaultEmployeeEmail = "e2e-mechanic@localhost"
	defaultCatalogID     = "svc-e2e-oil-change"
	defaultAppointmentID = "appt-e2e-scheduled"
)

type fixtureConfig struct {
	AdminEmail    string
	AdminPassword string

	CustomerID    string
	CustomerEmail string
	VehicleID     string
	VehicleVIN    string
	EmployeeID    string
	EmployeeEmail string
	CatalogID     string
	AppointmentID string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "e2e-seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	fx := loadFixtureConfig()
	client := db.EntClient

	if err := ensureAdminUser(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}
	if err := ensureCustomer(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure customer: %w", err)
	}
	if err := ensureVehicle(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure vehicle: %w", err)
	}
	if err := ensureEmployee(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure employee: %w", err)
	}
	if err := ensureCatalogItem(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure catalog item: %w", err)
	}
	if err := ensureAppointment(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure appointment: %w", err)
	}

	fmt.Printf("e2e fixtures ready (admin=%s customer=%s vehicle=%s appointment=%s)\n",
		fx.AdminEmail, fx.CustomerID, fx.VehicleID, fx.AppointmentID,
	)
	return nil
}

func loadFixtureConfig() fixtureConfig {
	return fixtureConfig{
		AdminEmail:    envOrDefault("E2E_ADMIN_EMAIL", defaultAdminEmail),
		AdminPassword: envOrDefault("E2E_ADMIN_PASSWORD", defaultAdminPassword),
		CustomerID:    envOrDefault("E2E_CUSTOMER_ID", defaultCustomerID),
		CustomerEmail: envOrDefault("E2E_CUSTOMER_EMAIL", defaultCustomerEmail),
		VehicleID:     envOrDefault("E2E_VEHICLE_ID", defaultVehicleID),
		VehicleVIN:    envOrDefault("E2E_VEHICLE_VIN", defaultVehicleVIN),
		EmployeeID:    envOrDefault("E2E_EMPLOYEE_ID", defaultEmployeeID),
		EmployeeEmail: envOrDefault("E2E_EMPLOYEE_EMAIL", defaultEmployeeEmail),
		CatalogID:     envOrDefault("E2E_CATALOG_ID", defaultCatalogID),
		AppointmentID: envOrDefault("E2E_APPOINTMENT_ID", defaultAppointmentID),
	}
}

func envOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func ensureAdminUser(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(fx.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	existing, err := client.User.Query().Where(entuser.EmailEQ(fx.AdminEmail)).Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return err
		}
		_, createErr := client.User.Create().
			SetID("user-e2e-admin").
			SetEmail(fx.AdminEmail).
			SetName("E2E Administrator").
			SetPasswordHash(string(hash)).
			SetEmailVerified(true).
			SetEnabled(true).
			Save(ctx)
		return createErr
	}

	_, err = client.User.UpdateOneID(existing.ID).
		SetName("E2E Administrator").
		SetPasswordHash(string(hash)).
		SetEmailVerified(true).
		SetEnabled(true).
		Save(ctx)
	return err
}

func ensureCustomer(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	exists, err := client.Customer.Query().Where(entcustomer.IDEQ(fx.CustomerID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = client.Customer.Create().
		SetID(fx.CustomerID).
		SetName("E2E Customer").
		SetEmail(fx.CustomerEmail).
		SetPhone("+1-555-0100").
		SetAddress("1 Test Street").
		Save(ctx)
	return err
}

func ensureVehicle(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	exists, err := client.Vehicle.Query().Where(entvehicle.IDEQ(fx.VehicleID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = client.Vehicle.Create().
		SetID(fx.VehicleID).
		SetMake("Honda").
		SetModel("Accord").
		SetYear(2019).
		SetVin(fx.VehicleVIN).
		SetLicensePlate("E2E-001").
		SetMileage(42000).
		SetCustomerID(fx.CustomerID).
		Save(ctx)
	return err
}

func ensureEmployee(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	exists, err := client.Employee.Query().Where(entemployee.IDEQ(fx.EmployeeID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = client.Employee.Create().
		SetID(fx.EmployeeID).
		SetName("E2E Mechanic").
		SetRole(entemployee.RoleEmployee).
		SetEmail(fx.EmployeeEmail).
		SetPhone("+1-555-0101").
		Save(ctx)
	return err
}

func ensureCatalogItem(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	exists, err := client.ServiceCatalogItem.Query().Where(entservicecatalogitem.IDEQ(fx.CatalogID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = client.ServiceCatalogItem.Create().
		SetID(fx.CatalogID).
		SetName("E2E Oil Change").
		SetDescription("Deterministic fixture service").
		SetPrice(49.99).
		SetCategory(entservicecatalogitem.CategoryEngine).
		SetIsActive(true).
		Save(ctx)
	return err
}

func ensureAppointment(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	exists, err := client.Appointment.Query().Where(entappointment.IDEQ(fx.AppointmentID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	// Fixed far-future date keeps the fixture out of reminder sweeps.
	when := time.Date(2030, time.January, 15, 10, 0, 0, 0, time.UTC)
	_, err = client.Appointment.Create().
		SetID(fx.AppointmentID).
		SetAppointmentDate(when).
		SetStatus(entappointment.StatusSCHEDULED).
		SetAppointmentType(entappointment.AppointmentTypeService).
		SetLaborCost(0).
		SetTotalCost(49.99).
		SetVehicleID(fx.VehicleID).
		SetEmployeeID(fx.EmployeeID).
		AddServiceIDs(fx.CatalogID).
		Save(ctx)
	return err
}
