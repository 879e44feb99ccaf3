package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agricoop-backend/internal/auth"
	"agricoop-backend/internal/service"
)

// HarvestHandler handles HTTP requests for harvest schedules
type HarvestHandler struct {
	harvestService service.HarvestServiceInterface
	userService    service.UserServiceInterface
}

// NewHarvestHandler creates a new harvest handler
func NewHarvestHandler(harvestService service.HarvestServiceInterface, userService service.UserServiceInterface) *HarvestHandler {
	return &HarvestHandler{
		harvestService: harvestService,
		userService:    userService,
	}
}

// Create handles POST /harvests
// @Summary Schedule a harvest
// @Description Records a planned harvest window for the authenticated member, pinned to their region
// @Tags harvests
// @Accept json
// @Produce json
// @Param harvest body service.HarvestRequest true "Harvest schedule data"
// @Success 201 {object} models.HarvestSchedule "Successfully created harvest schedule"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /harvests [post]
func (h *HarvestHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.HarvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := h.userService.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	schedule, err := h.harvestService.Create(owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// List handles GET /harvests
// @Summary List own harvest timeline
// @Description Lists the authenticated member's active schedules in their region, ordered by harvest start
// @Tags harvests
// @Produce json
// @Success 200 {array} models.HarvestSchedule "Successfully retrieved schedules"
// @Security BearerAuth
// @Router /harvests [get]
func (h *HarvestHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	region, _ := auth.GetRegion(c)

	schedules, err := h.harvestService.MyTimeline(userID, region)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// GetByID handles GET /harvests/:id
// @Summary Get a harvest schedule
// @Tags harvests
// @Produce json
// @Param id path string true "Harvest schedule ID (UUID)"
// @Success 200 {object} models.HarvestSchedule "Successfully retrieved schedule"
// @Failure 404 {object} ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /harvests/{id} [get]
func (h *HarvestHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	schedule, err := h.harvestService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// Update handles PUT /harvests/:id
// @Summary Update a harvest schedule
// @Description Replaces a schedule's fields; owner only
// @Tags harvests
// @Accept json
// @Produce json
// @Param id path string true "Harvest schedule ID (UUID)"
// @Param harvest body service.HarvestRequest true "Harvest schedule data"
// @Success 200 {object} models.HarvestSchedule "Successfully updated schedule"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /harvests/{id} [put]
func (h *HarvestHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.HarvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.harvestService.Update(id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// Delete handles DELETE /harvests/:id
// @Summary Delete a harvest schedule
// @Tags harvests
// @Param id path string true "Harvest schedule ID (UUID)"
// @Success 204 "Successfully deleted schedule"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /harvests/{id} [delete]
func (h *HarvestHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.harvestService.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
