// Package domain provides domain types and pure validation for the shop
// management backend. Validation never touches the database; uniqueness
// checks belong to the service layer.
package domain

import "time"

// EmployeeRole enumerates staff roles.
type EmployeeRole string

const (
	RoleEmployee EmployeeRole = "employee"
	RoleManager  EmployeeRole = "manager"
	RoleAdmin    EmployeeRole = "admin"
)

// ServiceCategory enumerates catalog categories.
type ServiceCategory string

const (
	CategoryEngine     ServiceCategory = "Engine"
	CategoryTires      ServiceCategory = "Tires"
	CategoryBrakes     ServiceCategory = "Brakes"
	CategoryElectrical ServiceCategory = "Electrical"
	CategoryGeneral    ServiceCategory = "General"
)

// IssueStatus enumerates reported-problem states.
type IssueStatus string

const (
	IssuePending   IssueStatus = "pending"
	IssueDiagnosed IssueStatus = "diagnosed"
	IssueResolved  IssueStatus = "resolved"
)

// PartCondition enumerates inventory part conditions.
type PartCondition string

const (
	PartNew         PartCondition = "new"
	PartUsed        PartCondition = "used"
	PartRefurbished PartCondition = "refurbished"
)

// AppointmentType distinguishes issue-driven visits from catalog-service visits.
type AppointmentType string

const (
	AppointmentTypeIssue   AppointmentType = "issue"
	AppointmentTypeService AppointmentType = "service"
)

// PartUsage is a value snapshot of a part consumed by an appointment or
// service record. Name and unit price are copied at usage time so history
// survives later part edits.
type PartUsage struct {
	PartID    string  `json:"part_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// TotalCost computes labor plus the part line items.
// The stored total_cost is always derived through this function.
func TotalCost(laborCost float64, parts []PartUsage) float64 {
	total := laborCost
	for _, p := range parts {
		total += float64(p.Quantity) * p.UnitPrice
	}
	return total
}

// CustomerInput is the candidate record for creating or updating a customer.
type CustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// VehicleInput is the candidate record for creating or updating a vehicle.
type VehicleInput struct {
	CustomerID   string `json:"customer_id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
	Mileage      int    `json:"mileage,omitempty"`
}

// EmployeeInput is the candidate record for creating or updating an employee.
type EmployeeInput struct {
	Name  string       `json:"name"`
	Role  EmployeeRole `json:"role,omitempty"`
	Email string       `json:"email"`
	Phone string       `json:"phone,omitempty"`
}

// ServiceCatalogItemInput is the candidate record for a catalog entry.
type ServiceCatalogItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       float64         `json:"price"`
	Category    ServiceCategory `json:"category,omitempty"`
	IsActive    *bool           `json:"is_active,omitempty"`
}

// AppointmentInput is the candidate record for scheduling an appointment.
type AppointmentInput struct {
	VehicleID       string          `json:"vehicle_id"`
	EmployeeID      string          `json:"employee_id"`
	ServiceIDs      []string        `json:"service_ids,omitempty"`
	AppointmentDate time.Time       `json:"appointment_date"`
	Notes           string          `json:"notes,omitempty"`
	Type            AppointmentType `json:"appointment_type,omitempty"`
	IssueID         string          `json:"issue_id,omitempty"`
	PartsUsed       []PartUsage     `json:"parts_used,omitempty"`
	LaborCost       float64         `json:"labor_cost,omitempty"`
}

// IssueInput is the candidate record for reporting a vehicle issue.
type IssueInput struct {
	VehicleID   string      `json:"vehicle_id"`
	Description string      `json:"description"`
	Status      IssueStatus `json:"status,omitempty"`
}

// PartInput is the candidate record for an inventory part.
type PartInput struct {
	Name      string        `json:"name"`
	Condition PartCondition `json:"condition,omitempty"`
	Price     float64       `json:"price"`
	Quantity  *int          `json:"quantity,omitempty"`
	Supplier  string        `json:"supplier,omitempty"`
}

// ServiceRecordInput is the candidate record for documenting performed work.
type ServiceRecordInput struct {
	VehicleID         string      `json:"vehicle_id"`
	AppointmentID     string      `json:"appointment_id,omitempty"`
	Description       string      `json:"description,omitempty"`
	ServicesPerformed []string    `json:"services_performed,omitempty"`
	PartsUsed         []PartUsage `json:"parts_used,omitempty"`
	LaborCost         float64     `json:"labor_cost"`
	Notes             string      `json:"notes,omitempty"`
}
