package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
)

// minVehicleYear is the first production automobile year.
const minVehicleYear = 1886

var (
	// emailPattern matches the permissive shape the original forms accepted.
	emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

	// phonePattern is E.164-like: optional +, no leading zero, max 15 digits.
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	// vinPattern excludes I, O and Q, exactly 17 characters, checked after uppercasing.
	vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
)

// fieldErrs accumulates field-level failures and renders them as one
// VALIDATION_FAILED AppError.
type fieldErrs []apperrors.FieldError

func (fe *fieldErrs) add(field, code, message string) {
	*fe = append(*fe, apperrors.FieldError{Field: field, Code: code, Message: message})
}

func (fe fieldErrs) err() error {
	if len(fe) == 0 {
		return nil
	}
	return apperrors.BadRequest(apperrors.CodeValidationFailed, "validation failed").
		WithFieldErrors(fe)
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeVIN trims and uppercases a VIN.
func NormalizeVIN(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

// ValidEmail reports whether the address matches the accepted shape.
// Callers normalize first.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Validate normalizes the input in place (trimmed fields, lowercased email)
// and reports every violated constraint at once.
func (in *CustomerInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)

	var fe fieldErrs
	if in.Name == "" {
		fe.add("name", "REQUIRED", "name must not be empty")
	}
	validateEmail(&fe, in.Email)
	validatePhone(&fe, in.Phone)
	return fe.err()
}

// Validate normalizes the input in place (uppercased VIN) and reports every
// violated constraint at once. The customer id is checked for presence only;
// existence is the service layer's concern.
func (in *VehicleInput) Validate(now time.Time) error {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.Make = strings.TrimSpace(in.Make)
	in.Model = strings.TrimSpace(in.Model)
	in.LicensePlate = strings.TrimSpace(in.LicensePlate)
	in.VIN = NormalizeVIN(in.VIN)

	var fe fieldErrs
	if in.CustomerID == "" {
		fe.add("customer_id", "REQUIRED", "customer_id must not be empty")
	}
	if in.Make == "" {
		fe.add("make", "REQUIRED", "make must not be empty")
	}
	if in.Model == "" {
		fe.add("model", "REQUIRED", "model must not be empty")
	}
	if maxYear := now.Year() + 1; in.Year < minVehicleYear || in.Year > maxYear {
		fe.add("year", "OUT_OF_RANGE",
			fmt.Sprintf("year must be between %d and %d", minVehicleYear, maxYear))
	}
	if in.LicensePlate == "" {
		fe.add("license_plate", "REQUIRED", "license_plate must not be empty")
	}
	if !vinPattern.MatchString(in.VIN) {
		fe.add("vin", "INVALID_FORMAT", "vin must be 17 characters from A-HJ-NPR-Z0-9")
	}
	if in.Mileage < 0 {
		fe.add("mileage", "OUT_OF_RANGE", "mileage must not be negative")
	}
	return fe.err()
}

// Validate normalizes the input in place and defaults the role to employee.
func (in *EmployeeInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Role == "" {
		in.Role = RoleEmployee
	}

	var fe fieldErrs
	if in.Name == "" {
		fe.add("name", "REQUIRED", "name must not be empty")
	}
	switch in.Role {
	case RoleEmployee, RoleManager, RoleAdmin:
	default:
		fe.add("role", "INVALID_ENUM", "role must be one of employee, manager, admin")
	}
	validateEmail(&fe, in.Email)
	validatePhone(&fe, in.Phone)
	return fe.err()
}

// Validate normalizes the input in place and defaults the category to General.
func (in *ServiceCatalogItemInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Category == "" {
		in.Category = CategoryGeneral
	}

	var fe fieldErrs
	if in.Name == "" {
		fe.add("name", "REQUIRED", "name must not be empty")
	}
	if in.Price < 0 {
		fe.add("price", "OUT_OF_RANGE", "price must not be negative")
	}
	switch in.Category {
	case CategoryEngine, CategoryTires, CategoryBrakes, CategoryElectrical, CategoryGeneral:
	default:
		fe.add("category", "INVALID_ENUM",
			"category must be one of Engine, Tires, Brakes, Electrical, General")
	}
	return fe.err()
}

// Validate checks the scheduling input, including the type/reference
// invariant: an issue visit carries an issue and no catalog services, a
// service visit carries catalog services and no issue.
func (in *AppointmentInput) Validate() error {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.IssueID = strings.TrimSpace(in.IssueID)

	var fe fieldErrs
	if in.VehicleID == "" {
		fe.add("vehicle_id", "REQUIRED", "vehicle_id must not be empty")
	}
	if in.EmployeeID == "" {
		fe.add("employee_id", "REQUIRED", "employee_id must not be empty")
	}
	if in.AppointmentDate.IsZero() {
		fe.add("appointment_date", "REQUIRED", "appointment_date must be set")
	}
	switch in.Type {
	case "":
		// Plain visit: at least one catalog service, no issue binding required.
		if len(in.ServiceIDs) == 0 {
			fe.add("service_ids", "REQUIRED", "at least one service is required")
		}
	case AppointmentTypeIssue:
		if in.IssueID == "" {
			fe.add("issue_id", "REQUIRED", "issue_id is required for issue appointments")
		}
		if len(in.ServiceIDs) > 0 {
			fe.add("service_ids", "CONFLICT", "issue appointments must not reference catalog services")
		}
	case AppointmentTypeService:
		if len(in.ServiceIDs) == 0 {
			fe.add("service_ids", "REQUIRED", "at least one service is required")
		}
		if in.IssueID != "" {
			fe.add("issue_id", "CONFLICT", "service appointments must not reference an issue")
		}
	default:
		fe.add("appointment_type", "INVALID_ENUM", "appointment_type must be issue or service")
	}
	if in.LaborCost < 0 {
		fe.add("labor_cost", "OUT_OF_RANGE", "labor_cost must not be negative")
	}
	validatePartsUsed(&fe, in.PartsUsed)
	return fe.err()
}

// Validate normalizes the input in place and defaults the status to pending.
func (in *IssueInput) Validate() error {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.Description = strings.TrimSpace(in.Description)
	if in.Status == "" {
		in.Status = IssuePending
	}

	var fe fieldErrs
	if in.VehicleID == "" {
		fe.add("vehicle_id", "REQUIRED", "vehicle_id must not be empty")
	}
	if in.Description == "" {
		fe.add("description", "REQUIRED", "description must not be empty")
	}
	switch in.Status {
	case IssuePending, IssueDiagnosed, IssueResolved:
	default:
		fe.add("status", "INVALID_ENUM", "status must be one of pending, diagnosed, resolved")
	}
	return fe.err()
}

// Validate normalizes the input in place, defaulting condition to new and
// quantity to 1.
func (in *PartInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Supplier = strings.TrimSpace(in.Supplier)
	if in.Condition == "" {
		in.Condition = PartNew
	}
	if in.Quantity == nil {
		one := 1
		in.Quantity = &one
	}

	var fe fieldErrs
	if in.Name == "" {
		fe.add("name", "REQUIRED", "name must not be empty")
	}
	switch in.Condition {
	case PartNew, PartUsed, PartRefurbished:
	default:
		fe.add("condition", "INVALID_ENUM", "condition must be one of new, used, refurbished")
	}
	if in.Price < 0 {
		fe.add("price", "OUT_OF_RANGE", "price must not be negative")
	}
	if *in.Quantity < 0 {
		fe.add("quantity", "OUT_OF_RANGE", "quantity must not be negative")
	}
	return fe.err()
}

// Validate checks a performed-work record.
func (in *ServiceRecordInput) Validate() error {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.AppointmentID = strings.TrimSpace(in.AppointmentID)
	in.Description = strings.TrimSpace(in.Description)

	var fe fieldErrs
	if in.VehicleID == "" {
		fe.add("vehicle_id", "REQUIRED", "vehicle_id must not be empty")
	}
	if in.LaborCost < 0 {
		fe.add("labor_cost", "OUT_OF_RANGE", "labor_cost must not be negative")
	}
	validatePartsUsed(&fe, in.PartsUsed)
	return fe.err()
}

func validateEmail(fe *fieldErrs, email string) {
	if email == "" {
		fe.add("email", "REQUIRED", "email must not be empty")
		return
	}
	if !emailPattern.MatchString(email) {
		fe.add("email", "INVALID_FORMAT", "email must be a valid address")
	}
}

func validatePhone(fe *fieldErrs, phone string) {
	// Phone is optional everywhere it appears.
	if phone == "" {
		return
	}
	if !phonePattern.MatchString(phone) {
		fe.add("phone", "INVALID_FORMAT", "phone must match +?[1-9] followed by up to 14 digits")
	}
}

func validatePartsUsed(fe *fieldErrs, parts []PartUsage) {
	for i, p := range parts {
		if strings.TrimSpace(p.PartID) == "" {
			fe.add(fmt.Sprintf("parts_used[%d].part_id", i), "REQUIRED", "part_id must not be empty")
		}
		if p.Quantity < 1 {
			fe.add(fmt.Sprintf("parts_used[%d].quantity", i), "OUT_OF_RANGE", "quantity must be at least 1")
		}
		if p.UnitPrice < 0 {
			fe.add(fmt.Sprintf("parts_used[%d].unit_price", i), "OUT_OF_RANGE", "unit_price must not be negative")
		}
	}
}
