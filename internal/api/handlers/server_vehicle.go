package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/service"
)

// ListVehicles handles GET /vehicles.
func (s *Server) ListVehicles(c *gin.Context) {
	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	filter := service.VehicleFilter{
		CustomerID: c.Query("customer_id"),
		VIN:        c.Query("vin"),
		Search:     c.Query("search"),
		Page:       page,
		PerPage:    perPage,
	}

	items, total, err := s.vehicles.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]VehicleResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, vehicleToAPI(item))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      resp,
		"pagination": paginationFor(page, perPage, total),
	})
}

// CreateVehicle handles POST /vehicles.
func (s *Server) CreateVehicle(c *gin.Context) {
	var in domain.VehicleInput
	if !bindJSON(c, &in) {
		return
	}

	v, err := s.vehicles.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicleToAPI(v))
}

// GetVehicle handles GET /vehicles/:id.
func (s *Server) GetVehicle(c *gin.Context) {
	v, err := s.vehicles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicleToAPI(v))
}

// UpdateVehicle handles PUT /vehicles/:id.
func (s *Server) UpdateVehicle(c *gin.Context) {
	var in domain.VehicleInput
	if !bindJSON(c, &in) {
		return
	}

	v, err := s.vehicles.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicleToAPI(v))
}

// DeleteVehicle handles DELETE /vehicles/:id. The vehicle's
// appointments, issues and service records go with it.
func (s *Server) DeleteVehicle(c *gin.Context) {
	if err := s.deleteVehicleUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListVehicleAppointments handles GET /vehicles/:id/appointments.
func (s *Server) ListVehicleAppointments(c *gin.Context) {
	vehicleID := c.Param("id")
	if _, err := s.vehicles.GetByID(c.Request.Context(), vehicleID); err != nil {
		respondError(c, err)
		return
	}

	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	items, total, err := s.appointments.List(c.Request.Context(), service.AppointmentFilter{
		VehicleID: vehicleID,
		Status:    c.Query("status"),
		Page:      page,
		PerPage:   perPage,
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

// ListVehicleIssues handles GET /vehicles/:id/issues.
func (s *Server) ListVehicleIssues(c *gin.Context) {
	vehicleID := c.Param("id")
	if _, err := s.vehicles.GetByID(c.Request.Context(), vehicleID); err != nil {
		respondError(c, err)
		return
	}

	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	items, total, err := s.issues.List(c.Request.Context(), service.IssueFilter{
		VehicleID: vehicleID,
		Status:    c.Query("status"),
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]IssueResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, issueToAPI(item))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      resp,
		"pagination": paginationFor(page, perPage, total),
	})
}

// ListVehicleServiceRecords handles GET /vehicles/:id/service-records.
func (s *Server) ListVehicleServiceRecords(c *gin.Context) {
	vehicleID := c.Param("id")
	if _, err := s.vehicles.GetByID(c.Request.Context(), vehicleID); err != nil {
		respondError(c, err)
		return
	}

	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	items, total, err := s.serviceRecords.List(c.Request.Context(), service.ServiceRecordFilter{
		VehicleID: vehicleID,
		Status:    c.Query("status"),
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]ServiceRecordResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, serviceRecordToAPI(item))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      resp,
		"pagination": paginationFor(page, perPage, total),
	})
}
