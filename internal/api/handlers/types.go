package handlers

import (
	"time"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/internal/domain"
)

// Pagination is the shared list envelope metadata.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func paginationFor(page, perPage, total int) Pagination {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// CustomerResponse is the wire shape of a customer.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func customerToAPI(c *ent.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// VehicleResponse is the wire shape of a vehicle. Customer is embedded
// when the edge was loaded.
type VehicleResponse struct {
	ID           string            `json:"id"`
	CustomerID   string            `json:"customer_id,omitempty"`
	Make         string            `json:"make"`
	Model        string            `json:"model"`
	Year         int               `json:"year"`
	LicensePlate string            `json:"license_plate,omitempty"`
	VIN          string            `json:"vin"`
	Mileage      int               `json:"mileage"`
	Customer     *CustomerResponse `json:"customer,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func vehicleToAPI(v *ent.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		VIN:          v.Vin,
		Mileage:      v.Mileage,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if owner, err := v.Edges.CustomerOrErr(); err == nil && owner != nil {
		resp.CustomerID = owner.ID
		c := customerToAPI(owner)
		resp.Customer = &c
	}
	return resp
}

// EmployeeResponse is the wire shape of an employee.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func employeeToAPI(e *ent.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      string(e.Role),
		Email:     e.Email,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// CatalogItemResponse is the wire shape of a catalog entry.
type CatalogItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func catalogItemToAPI(i *ent.ServiceCatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Category:    string(i.Category),
		IsActive:    i.IsActive,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// PartResponse is the wire shape of an inventory part.
type PartResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Condition string    `json:"condition"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Supplier  string    `json:"supplier,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func partToAPI(p *ent.Part) PartResponse {
	return PartResponse{
		ID:        p.ID,
		Name:      p.Name,
		Condition: string(p.Condition),
		Price:     p.Price,
		Quantity:  p.Quantity,
		Supplier:  p.Supplier,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// IssueResponse is the wire shape of a reported vehicle issue.
type IssueResponse struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicle_id,omitempty"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	ReportedAt  time.Time  `json:"reported_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func issueToAPI(i *ent.Issue) IssueResponse {
	resp := IssueResponse{
		ID:          i.ID,
		Description: i.Description,
		Status:      string(i.Status),
		ReportedAt:  i.ReportedAt,
		ResolvedAt:  i.ResolvedAt,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
	if v, err := i.Edges.VehicleOrErr(); err == nil && v != nil {
		resp.VehicleID = v.ID
	}
	return resp
}

// ServiceRecordResponse is the wire shape of a maintenance record.
type ServiceRecordResponse struct {
	ID                string             `json:"id"`
	VehicleID         string             `json:"vehicle_id,omitempty"`
	AppointmentID     string             `json:"appointment_id,omitempty"`
	Description       string             `json:"description,omitempty"`
	ServicesPerformed []string           `json:"services_performed,omitempty"`
	PartsUsed         []domain.PartUsage `json:"parts_used,omitempty"`
	LaborCost         float64            `json:"labor_cost"`
	TotalCost         float64            `json:"total_cost"`
	Notes             string             `json:"notes,omitempty"`
	Status            string             `json:"status"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func serviceRecordToAPI(r *ent.ServiceRecord) ServiceRecordResponse {
	resp := ServiceRecordResponse{
		ID:                r.ID,
		Description:       r.Description,
		ServicesPerformed: r.ServicesPerformed,
		PartsUsed:         r.PartsUsed,
		LaborCost:         r.LaborCost,
		TotalCost:         r.TotalCost,
		Notes:             r.Notes,
		Status:            string(r.Status),
		CompletedAt:       r.CompletedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if v, err := r.Edges.VehicleOrErr(); err == nil && v != nil {
		resp.VehicleID = v.ID
	}
	if a, err := r.Edges.AppointmentOrErr(); err == nil && a != nil {
		resp.AppointmentID = a.ID
	}
	return resp
}

// AppointmentResponse is the wire shape of an appointment with its
// loaded relations.
type AppointmentResponse struct {
	ID              string                `json:"id"`
	VehicleID       string                `json:"vehicle_id,omitempty"`
	EmployeeID      string                `json:"employee_id,omitempty"`
	AppointmentDate time.Time             `json:"appointment_date"`
	Status          string                `json:"status"`
	Notes           string                `json:"notes,omitempty"`
	Type            string                `json:"appointment_type,omitempty"`
	IssueID         string                `json:"issue_id,omitempty"`
	PartsUsed       []domain.PartUsage    `json:"parts_used,omitempty"`
	LaborCost       float64               `json:"labor_cost"`
	TotalCost       float64               `json:"total_cost"`
	Vehicle         *VehicleResponse      `json:"vehicle,omitempty"`
	Employee        *EmployeeResponse     `json:"employee,omitempty"`
	Services        []CatalogItemResponse `json:"services,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func appointmentToAPI(a *ent.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:              a.ID,
		AppointmentDate: a.AppointmentDate,
		Status:          string(a.Status),
		Notes:           a.Notes,
		Type:            string(a.AppointmentType),
		PartsUsed:       a.PartsUsed,
		LaborCost:       a.LaborCost,
		TotalCost:       a.TotalCost,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if v, err := a.Edges.VehicleOrErr(); err == nil && v != nil {
		resp.VehicleID = v.ID
		vr := vehicleToAPI(v)
		resp.Vehicle = &vr
	}
	if e, err := a.Edges.EmployeeOrErr(); err == nil && e != nil {
		resp.EmployeeID = e.ID
		er := employeeToAPI(e)
		resp.Employee = &er
	}
	if svcs, err := a.Edges.ServicesOrErr(); err == nil {
		for _, svc := range svcs {
			resp.Services = append(resp.Services, catalogItemToAPI(svc))
		}
	}
	if i, err := a.Edges.IssueOrErr(); err == nil && i != nil {
		resp.IssueID = i.ID
	}
	return resp
}

// NotificationResponse is the wire shape of an inbox entry.
type NotificationResponse struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	ResourceType string     `json:"resource_type,omitempty"`
	ResourceID   string     `json:"resource_id,omitempty"`
	Read         bool       `json:"read"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func notificationToAPI(n *ent.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		Type:         string(n.Type),
		Title:        n.Title,
		Message:      n.Message,
		ResourceType: n.ResourceType,
		ResourceID:   n.ResourceID,
		Read:         n.Read,
		ReadAt:       n.ReadAt,
		CreatedAt:    n.CreatedAt,
	}
}

// UserResponse is the wire shape of a staff account.
type UserResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func userToAPI(u *ent.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
	}
}
