package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/service"
)

// ListServiceRecords handles GET /service-records.
func (s *Server) ListServiceRecords(c *gin.Context) {
	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	filter := service.ServiceRecordFilter{
		VehicleID:     c.Query("vehicle_id"),
		AppointmentID: c.Query("appointment_id"),
		Status:        c.Query("status"),
		Page:          page,
		PerPage:       perPage,
	}

	items, total, err := s.serviceRecords.List(c.Request.Context(), filter)
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

// CreateServiceRecord handles POST /service-records.
func (s *Server) CreateServiceRecord(c *gin.Context) {
	var in domain.ServiceRecordInput
	if !bindJSON(c, &in) {
		return
	}

	rec, err := s.serviceRecords.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serviceRecordToAPI(rec))
}

// GetServiceRecord handles GET /service-records/:id.
func (s *Server) GetServiceRecord(c *gin.Context) {
	rec, err := s.serviceRecords.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceRecordToAPI(rec))
}

// UpdateServiceRecord handles PUT /service-records/:id.
func (s *Server) UpdateServiceRecord(c *gin.Context) {
	var in domain.ServiceRecordInput
	if !bindJSON(c, &in) {
		return
	}

	rec, err := s.serviceRecords.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceRecordToAPI(rec))
}

// CompleteServiceRecord handles POST /service-records/:id/complete.
func (s *Server) CompleteServiceRecord(c *gin.Context) {
	rec, err := s.serviceRecords.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceRecordToAPI(rec))
}

// DeleteServiceRecord handles DELETE /service-records/:id.
func (s *Server) DeleteServiceRecord(c *gin.Context) {
	if err := s.serviceRecords.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
