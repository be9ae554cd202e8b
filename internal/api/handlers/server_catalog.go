package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/service"
)

// ListServices handles GET /services.
func (s *Server) ListServices(c *gin.Context) {
	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	filter := service.CatalogFilter{
		Category:   c.Query("category"),
		ActiveOnly: boolQuery(c, "active_only"),
		Search:     c.Query("search"),
		Page:       page,
		PerPage:    perPage,
	}

	items, total, err := s.catalog.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, catalogItemToAPI(item))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      resp,
		"pagination": paginationFor(page, perPage, total),
	})
}

// CreateService handles POST /services.
func (s *Server) CreateService(c *gin.Context) {
	var in domain.ServiceCatalogItemInput
	if !bindJSON(c, &in) {
		return
	}

	item, err := s.catalog.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, catalogItemToAPI(item))
}

// GetService handles GET /services/:id.
func (s *Server) GetService(c *gin.Context) {
	item, err := s.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogItemToAPI(item))
}

// UpdateService handles PUT /services/:id.
func (s *Server) UpdateService(c *gin.Context) {
	var in domain.ServiceCatalogItemInput
	if !bindJSON(c, &in) {
		return
	}

	item, err := s.catalog.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogItemToAPI(item))
}

// DeleteService handles DELETE /services/:id. Referenced entries are
// deactivated instead of removed.
func (s *Server) DeleteService(c *gin.Context) {
	if err := s.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
