package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/internal/domain"
	"github.com/dediamond1/mechanic/internal/service"
)

// ListCustomers handles GET /customers.
func (s *Server) ListCustomers(c *gin.Context) {
	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	filter := service.CustomerFilter{
		Search:  c.Query("search"),
		Email:   c.Query("email"),
		Page:    page,
		PerPage: perPage,
	}

	items, total, err := s.customers.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]CustomerResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, customerToAPI(item))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      resp,
		"pagination": paginationFor(page, perPage, total),
	})
}

// CreateCustomer handles POST /customers.
func (s *Server) CreateCustomer(c *gin.Context) {
	var in domain.CustomerInput
	if !bindJSON(c, &in) {
		return
	}

	customer, err := s.customers.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customerToAPI(customer))
}

// GetCustomer handles GET /customers/:id.
func (s *Server) GetCustomer(c *gin.Context) {
	customer, err := s.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerToAPI(customer))
}

// UpdateCustomer handles PUT /customers/:id.
func (s *Server) UpdateCustomer(c *gin.Context) {
	var in domain.CustomerInput
	if !bindJSON(c, &in) {
		return
	}

	customer, err := s.customers.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerToAPI(customer))
}

// DeleteCustomer handles DELETE /customers/:id.
func (s *Server) DeleteCustomer(c *gin.Context) {
	if err := s.customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCustomerVehicles handles GET /customers/:id/vehicles.
func (s *Server) ListCustomerVehicles(c *gin.Context) {
	customerID := c.Param("id")
	if _, err := s.customers.GetByID(c.Request.Context(), customerID); err != nil {
		respondError(c, err)
		return
	}

	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	filter := service.VehicleFilter{
		CustomerID: customerID,
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
