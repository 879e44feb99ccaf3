package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agricoop-backend/internal/service"
)

// BusinessHandler handles HTTP requests for agribusiness outlets
type BusinessHandler struct {
	businessService service.BusinessServiceInterface
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(businessService service.BusinessServiceInterface) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

// Create handles POST /businesses
// @Summary Create a business
// @Description Registers a business outlet owned by the authenticated member
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body service.BusinessRequest true "Business data"
// @Success 201 {object} models.Business "Successfully created business"
// @Failure 400 {object} ErrorResponse "Invalid request body or business type"
// @Security BearerAuth
// @Router /businesses [post]
func (h *BusinessHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.businessService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, business)
}

// List handles GET /businesses
// @Summary List own businesses
// @Tags businesses
// @Produce json
// @Success 200 {array} models.Business "Successfully retrieved businesses"
// @Security BearerAuth
// @Router /businesses [get]
func (h *BusinessHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	businesses, err := h.businessService.ListByOwner(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// GetByID handles GET /businesses/:id
// @Summary Get a business
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} models.Business "Successfully retrieved business"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Security BearerAuth
// @Router /businesses/{id} [get]
func (h *BusinessHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	business, err := h.businessService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, business)
}

// Update handles PUT /businesses/:id
// @Summary Update a business
// @Description Replaces a business's fields; owner only
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Param business body service.BusinessRequest true "Business data"
// @Success 200 {object} models.Business "Successfully updated business"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Security BearerAuth
// @Router /businesses/{id} [put]
func (h *BusinessHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.businessService.Update(id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, business)
}

// Delete handles DELETE /businesses/:id
// @Summary Delete a business
// @Tags businesses
// @Param id path string true "Business ID (UUID)"
// @Success 204 "Successfully deleted business"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Security BearerAuth
// @Router /businesses/{id} [delete]
func (h *BusinessHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.businessService.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
