package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/service"
	"github.com/dediamond1/mechanic/internal/usecase"
)

type updateStatusRequest struct {
	Status string `json:"status"`
}

type appendNoteRequest struct {
	Note string `json:"note"`
}

// ListAppointments handles GET /appointments. Date bounds accept
// RFC 3339 timestamps via the from/to query parameters.
func (s *Server) ListAppointments(c *gin.Context) {
	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	filter := service.AppointmentFilter{
		VehicleID:  c.Query("vehicle_id"),
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
		Page:       page,
		PerPage:    perPage,
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(c, apperrors.BadRequest(apperrors.CodeInvalidRequest, "from must be RFC 3339"))
			return
		}
		filter.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(c, apperrors.BadRequest(apperrors.CodeInvalidRequest, "to must be RFC 3339"))
			return
		}
		filter.To = t
	}

	items, total, err := s.appointments.List(c.Request.Context(), filter)
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

// CreateAppointment handles POST /appointments.
func (s *Server) CreateAppointment(c *gin.Context) {
	var in domain.AppointmentInput
	if !bindJSON(c, &in) {
		return
	}

	appt, err := s.scheduleUC.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	// Reload with relations for the response body.
	full, err := s.appointments.GetByID(c.Request.Context(), appt.ID)
	if err != nil {
		c.JSON(http.StatusCreated, appointmentToAPI(appt))
		return
	}
	c.JSON(http.StatusCreated, appointmentToAPI(full))
}

// GetAppointment handles GET /appointments/:id.
func (s *Server) GetAppointment(c *gin.Context) {
	appt, err := s.appointments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointmentToAPI(appt))
}

// UpdateAppointmentStatus handles POST /appointments/:id/status.
func (s *Server) UpdateAppointmentStatus(c *gin.Context) {
	var req updateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	next, err := usecase.ParseStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	appt, err := s.statusUC.Execute(c.Request.Context(), c.Param("id"), next)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointmentToAPI(appt))
}

// AppendAppointmentNote handles POST /appointments/:id/notes.
func (s *Server) AppendAppointmentNote(c *gin.Context) {
	var req appendNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	appt, err := s.appointments.AppendNote(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointmentToAPI(appt))
}

// DeleteAppointment handles DELETE /appointments/:id.
func (s *Server) DeleteAppointment(c *gin.Context) {
	if err := s.appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
