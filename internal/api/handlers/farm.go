package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agricoop-backend/internal/service"
)

// FarmHandler handles HTTP requests for farms
type FarmHandler struct {
	farmService service.FarmServiceInterface
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmService service.FarmServiceInterface) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

// Create handles POST /farms
// @Summary Create a farm
// @Description Registers a farm owned by the authenticated member
// @Tags farms
// @Accept json
// @Produce json
// @Param farm body service.FarmRequest true "Farm data"
// @Success 201 {object} models.Farm "Successfully created farm"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /farms [post]
func (h *FarmHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.FarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	farm, err := h.farmService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, farm)
}

// List handles GET /farms
// @Summary List own farms
// @Description Lists the authenticated member's farms with their varieties
// @Tags farms
// @Produce json
// @Success 200 {array} models.Farm "Successfully retrieved farms"
// @Security BearerAuth
// @Router /farms [get]
func (h *FarmHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	farms, err := h.farmService.ListByOwner(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, farms)
}

// GetByID handles GET /farms/:id
// @Summary Get a farm
// @Tags farms
// @Produce json
// @Param id path string true "Farm ID (UUID)"
// @Success 200 {object} models.Farm "Successfully retrieved farm"
// @Failure 404 {object} ErrorResponse "Farm not found"
// @Security BearerAuth
// @Router /farms/{id} [get]
func (h *FarmHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	farm, err := h.farmService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, farm)
}

// Update handles PUT /farms/:id
// @Summary Update a farm
// @Description Replaces a farm's fields and varieties; owner only
// @Tags farms
// @Accept json
// @Produce json
// @Param id path string true "Farm ID (UUID)"
// @Param farm body service.FarmRequest true "Farm data"
// @Success 200 {object} models.Farm "Successfully updated farm"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Farm not found"
// @Security BearerAuth
// @Router /farms/{id} [put]
func (h *FarmHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.FarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	farm, err := h.farmService.Update(id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, farm)
}

// Delete handles DELETE /farms/:id
// @Summary Delete a farm
// @Tags farms
// @Param id path string true "Farm ID (UUID)"
// @Success 204 "Successfully deleted farm"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Farm not found"
// @Security BearerAuth
// @Router /farms/{id} [delete]
func (h *FarmHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.farmService.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
