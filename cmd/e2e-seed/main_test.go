package main

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("E2E_TEST_KEY", "")
	if got := envOrDefault("E2E_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("envOrDefault empty = %q, want fallback", got)
	}

	t.Setenv("E2E_TEST_KEY", "  configured  ")
	if got := envOrDefault("E2E_TEST_KEY", "fallback"); got != "configured" {
		t.Fatalf("envOrDefault value = %q, want configured", got)
	}
}

func TestLoadFixtureConfig_Defaults(t *testing.T) {
	t.Setenv("E2E_ADMIN_EMAIL", "")
	t.Setenv("E2E_ADMIN_PASSWORD", "")
	t.Setenv("E2E_VEHICLE_VIN", "")

	cfg := loadFixtureConfig()
	if cfg.AdminEmail != defaultAdminEmail {
		t.Fatalf("AdminEmail = %q, want %q", cfg.AdminEmail, defaultAdminEmail)
	}
	if cfg.AdminPassword != defaultAdminPassword {
		t.Fatalf("AdminPassword = %q, want %q", cfg.AdminPassword, defaultAdminPassword)
	}
	if cfg.VehicleVIN != defaultVehicleVIN {
		t.Fatalf("VehicleVIN = %q, want %q", cfg.VehicleVIN, defaultVehicleVIN)
	}
}

func TestLoadFixtureConfig_Overrides(t *testing.T) {
	t.Setenv("E2E_ADMIN_EMAIL", "tester@localhost")
	t.Setenv("E2E_ADMIN_PASSWORD", "password-1")
	t.Setenv("E2E_VEHICLE_ID", "veh-live-x")
	t.Setenv("E2E_APPOINTMENT_ID", "appt-live-x")

	cfg := loadFixtureConfig()
	if cfg.AdminEmail != "tester@localhost" {
		t.Fatalf("AdminEmail = %q, want tester@localhost", cfg.AdminEmail)
	}
	if cfg.AdminPassword != "password-1" {
		t.Fatalf("AdminPassword = %q, want password-1", cfg.AdminPassword)
	}
	if cfg.VehicleID != "veh-live-x" {
		t.Fatalf("VehicleID = %q, want veh-live-x", cfg.VehicleID)
	}
	if cfg.AppointmentID != "appt-live-x" {
		t.Fatalf("AppointmentID = %q, want appt-live-x", cfg.AppointmentID)
	}
}
