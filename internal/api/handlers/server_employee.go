package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/service"
)

// ListEmployees handles GET /employees.
func (s *Server) ListEmployees(c *gin.Context) {
	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	filter := service.EmployeeFilter{
		Role:    c.Query("role"),
		Search:  c.Query("search"),
		Page:    page,
		PerPage: perPage,
	}

	items, total, err := s.employees.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]EmployeeResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, employeeToAPI(item))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      resp,
		"pagination": paginationFor(page, perPage, total),
	})
}

// CreateEmployee handles POST /employees.
func (s *Server) CreateEmployee(c *gin.Context) {
	var in domain.EmployeeInput
	if !bindJSON(c, &in) {
		return
	}

	e, err := s.employees.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employeeToAPI(e))
}

// GetEmployee handles GET /employees/:id.
func (s *Server) GetEmployee(c *gin.Context) {
	e, err := s.employees.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employeeToAPI(e))
}

// UpdateEmployee handles PUT /employees/:id.
func (s *Server) UpdateEmployee(c *gin.Context) {
	var in domain.EmployeeInput
	if !bindJSON(c, &in) {
		return
	}

	e, err := s.employees.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employeeToAPI(e))
}

// DeleteEmployee handles DELETE /employees/:id.
func (s *Server) DeleteEmployee(c *gin.Context) {
	if err := s.employees.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEmployeeAppointments handles GET /employees/:id/appointments.
func (s *Server) ListEmployeeAppointments(c *gin.Context) {
	employeeID := c.Param("id")
	if _, err := s.employees.GetByID(c.Request.Context(), employeeID); err != nil {
		respondError(c, err)
		return
	}

	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	items, total, err := s.appointments.List(c.Request.Context(), service.AppointmentFilter{
		EmployeeID: employeeID,
		Status:     c.Query("status"),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]AppointmentResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, appointmentToAPI(item))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      resp,
		"pagination": paginationFor(page, perPage, total),
	})
}
