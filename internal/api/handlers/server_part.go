package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/service"
)

type adjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// ListParts handles GET /parts.
func (s *Server) ListParts(c *gin.Context) {
	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	filter := service.PartFilter{
		Condition: c.Query("condition"),
		Search:    c.Query("search"),
		Page:      page,
		PerPage:   perPage,
	}

	items, total, err := s.parts.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]PartResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, partToAPI(item))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      resp,
		"pagination": paginationFor(page, perPage, total),
	})
}

// CreatePart handles POST /parts.
func (s *Server) CreatePart(c *gin.Context) {
	var in domain.PartInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := s.parts.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, partToAPI(p))
}

// GetPart handles GET /parts/:id.
func (s *Server) GetPart(c *gin.Context) {
	p, err := s.parts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partToAPI(p))
}

// UpdatePart handles PUT /parts/:id.
func (s *Server) UpdatePart(c *gin.Context) {
	var in domain.PartInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := s.parts.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partToAPI(p))
}

// DeletePart handles DELETE /parts/:id.
func (s *Server) DeletePart(c *gin.Context) {
	if err := s.parts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdjustPartQuantity handles POST /parts/:id/adjust-quantity.
func (s *Server) AdjustPartQuantity(c *gin.Context) {
	var req adjustQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := s.parts.AdjustQuantity(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partToAPI(p))
}
