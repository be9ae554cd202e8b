package domain

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
)

func fieldCodes(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T (%v)", err, err)
	}
	if appErr.Code != apperrors.CodeValidationFailed {
		t.Fatalf("Code = %q, want %q", appErr.Code, apperrors.CodeValidationFailed)
	}
	codes := make(map[string]string, len(appErr.FieldErrors))
	for _, fe := range appErr.FieldErrors {
		codes[fe.Field] = fe.Code
	}
	return codes
}

func TestCustomerInput_Validate(t *testing.T) {
	t.Run("valid input normalizes email", func(t *testing.T) {
		in := CustomerInput{Name: "  Jane Doe ", Email: " Jane@Example.COM ", Phone: "+15550100"}
		if err := in.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if in.Email != "jane@example.com" {
			t.Errorf("Email = %q, want jane@example.com", in.Email)
		}
		if in.Name != "Jane Doe" {
			t.Errorf("Name = %q, want Jane Doe", in.Name)
		}
	})

	t.Run("collects all field errors at once", func(t *testing.T) {
		in := CustomerInput{Name: "", Email: "no-at-sign", Phone: "0123"}
		codes := fieldCodes(t, in.Validate())
		if codes["name"] != "REQUIRED" {
			t.Errorf("name code = %q, want REQUIRED", codes["name"])
		}
		if codes["email"] != "INVALID_FORMAT" {
			t.Errorf("email code = %q, want INVALID_FORMAT", codes["email"])
		}
		if codes["phone"] != "INVALID_FORMAT" {
			t.Errorf("phone code = %q, want INVALID_FORMAT", codes["phone"])
		}
	})

	t.Run("phone is optional", func(t *testing.T) {
		in := CustomerInput{Name: "Jane", Email: "jane@example.com"}
		if err := in.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
	})
}

func TestVehicleInput_Validate(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	valid := func() VehicleInput {
		return VehicleInput{
			CustomerID:   "cust-1",
			Make:         "Honda",
			Model:        "Accord",
			Year:         2019,
			LicensePlate: "ABC-123",
			VIN:          "1hgcm82633a123456",
			Mileage:      42000,
		}
	}

	t.Run("valid input uppercases VIN", func(t *testing.T) {
		in := valid()
		if err := in.Validate(now); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if in.VIN != "1HGCM82633A123456" {
			t.Errorf("VIN = %q, want 1HGCM82633A123456", in.VIN)
		}
	})

	t.Run("next model year is allowed", func(t *testing.T) {
		in := valid()
		in.Year = now.Year() + 1
		if err := in.Validate(now); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
	})

	tests := []struct {
		name     string
		mutate   func(*VehicleInput)
		field    string
		wantCode string
	}{
		{"missing customer", func(in *VehicleInput) { in.CustomerID = " " }, "customer_id", "REQUIRED"},
		{"year before first automobile", func(in *VehicleInput) { in.Year = 1885 }, "year", "OUT_OF_RANGE"},
		{"year too far ahead", func(in *VehicleInput) { in.Year = now.Year() + 2 }, "year", "OUT_OF_RANGE"},
		{"short VIN", func(in *VehicleInput) { in.VIN = "1HGCM82633A12345" }, "vin", "INVALID_FORMAT"},
		{"VIN with excluded letter", func(in *VehicleInput) { in.VIN = "IHGCM82633A123456" }, "vin", "INVALID_FORMAT"},
		{"negative mileage", func(in *VehicleInput) { in.Mileage = -1 }, "mileage", "OUT_OF_RANGE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			codes := fieldCodes(t, in.Validate(now))
			if codes[tt.field] != tt.wantCode {
				t.Errorf("%s code = %q, want %q", tt.field, codes[tt.field], tt.wantCode)
			}
		})
	}
}

func TestEmployeeInput_Validate(t *testing.T) {
	t.Run("role defaults to employee", func(t *testing.T) {
		in := EmployeeInput{Name: "Sam", Email: "sam@shop.test"}
		if err := in.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if in.Role != RoleEmployee {
			t.Errorf("Role = %q, want %q", in.Role, RoleEmployee)
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		in := EmployeeInput{Name: "Sam", Email: "sam@shop.test", Role: "owner"}
		codes := fieldCodes(t, in.Validate())
		if codes["role"] != "INVALID_ENUM" {
			t.Errorf("role code = %q, want INVALID_ENUM", codes["role"])
		}
	})
}

func TestAppointmentInput_Validate(t *testing.T) {
	when := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)

	t.Run("service appointment requires catalog services", func(t *testing.T) {
		in := AppointmentInput{
			VehicleID:       "veh-1",
			EmployeeID:      "emp-1",
			AppointmentDate: when,
			Type:            AppointmentTypeService,
		}
		codes := fieldCodes(t, in.Validate())
		if codes["service_ids"] != "REQUIRED" {
			t.Errorf("service_ids code = %q, want REQUIRED", codes["service_ids"])
		}
	})

	t.Run("issue appointment must not carry services", func(t *testing.T) {
		in := AppointmentInput{
			VehicleID:       "veh-1",
			EmployeeID:      "emp-1",
			AppointmentDate: when,
			Type:            AppointmentTypeIssue,
			IssueID:         "iss-1",
			ServiceIDs:      []string{"svc-1"},
		}
		codes := fieldCodes(t, in.Validate())
		if codes["service_ids"] != "CONFLICT" {
			t.Errorf("service_ids code = %q, want CONFLICT", codes["service_ids"])
		}
	})

	t.Run("service appointment must not carry issue", func(t *testing.T) {
		in := AppointmentInput{
			VehicleID:       "veh-1",
			EmployeeID:      "emp-1",
			AppointmentDate: when,
			Type:            AppointmentTypeService,
			ServiceIDs:      []string{"svc-1"},
			IssueID:         "iss-1",
		}
		codes := fieldCodes(t, in.Validate())
		if codes["issue_id"] != "CONFLICT" {
			t.Errorf("issue_id code = %q, want CONFLICT", codes["issue_id"])
		}
	})

	t.Run("parts are validated per line", func(t *testing.T) {
		in := AppointmentInput{
			VehicleID:       "veh-1",
			EmployeeID:      "emp-1",
			AppointmentDate: when,
			Type:            AppointmentTypeService,
			ServiceIDs:      []string{"svc-1"},
			PartsUsed: []PartUsage{
				{PartID: "", Quantity: 0, UnitPrice: -1},
			},
		}
		codes := fieldCodes(t, in.Validate())
		if codes["parts_used[0].part_id"] != "REQUIRED" {
			t.Errorf("part_id code = %q, want REQUIRED", codes["parts_used[0].part_id"])
		}
		if codes["parts_used[0].quantity"] != "OUT_OF_RANGE" {
			t.Errorf("quantity code = %q, want OUT_OF_RANGE", codes["parts_used[0].quantity"])
		}
		if codes["parts_used[0].unit_price"] != "OUT_OF_RANGE" {
			t.Errorf("unit_price code = %q, want OUT_OF_RANGE", codes["parts_used[0].unit_price"])
		}
	})

	t.Run("valid issue appointment", func(t *testing.T) {
		in := AppointmentInput{
			VehicleID:       "veh-1",
			EmployeeID:      "emp-1",
			AppointmentDate: when,
			Type:            AppointmentTypeIssue,
			IssueID:         "iss-1",
		}
		if err := in.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
	})
}

func TestPartInput_Validate_Defaults(t *testing.T) {
	in := PartInput{Name: "Oil Filter", Price: 12.5}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if in.Condition != PartNew {
		t.Errorf("Condition = %q, want %q", in.Condition, PartNew)
	}
	if in.Quantity == nil || *in.Quantity != 1 {
		t.Errorf("Quantity = %v, want 1", in.Quantity)
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
