package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/service"
)

// ListIssues handles GET /issues.
func (s *Server) ListIssues(c *gin.Context) {
	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	filter := service.IssueFilter{
		VehicleID: c.Query("vehicle_id"),
		Status:    c.Query("status"),
		Page:      page,
		PerPage:   perPage,
	}

	items, total, err := s.issues.List(c.Request.Context(), filter)
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

// CreateIssue handles POST /issues. Reporting an issue alerts the
// managers through the inbox.
func (s *Server) CreateIssue(c *gin.Context) {
	var in domain.IssueInput
	if !bindJSON(c, &in) {
		return
	}

	i, err := s.reportIssueUC.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, issueToAPI(i))
}

// GetIssue handles GET /issues/:id.
func (s *Server) GetIssue(c *gin.Context) {
	i, err := s.issues.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issueToAPI(i))
}

// UpdateIssue handles PUT /issues/:id.
func (s *Server) UpdateIssue(c *gin.Context) {
	var in domain.IssueInput
	if !bindJSON(c, &in) {
		return
	}

	i, err := s.issues.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issueToAPI(i))
}

// ResolveIssue handles POST /issues/:id/resolve.
func (s *Server) ResolveIssue(c *gin.Context) {
	i, err := s.issues.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issueToAPI(i))
}

// DeleteIssue handles DELETE /issues/:id.
func (s *Server) DeleteIssue(c *gin.Context) {
	if err := s.issues.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
