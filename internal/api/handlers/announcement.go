package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agricoop-backend/internal/service"
)

// AnnouncementHandler handles HTTP requests for the community feed
type AnnouncementHandler struct {
	announcementService service.AnnouncementServiceInterface
	userService         service.UserServiceInterface
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService service.AnnouncementServiceInterface, userService service.UserServiceInterface) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		userService:         userService,
	}
}

// CommentBody represents the expected request body for posting a comment
type CommentBody struct {
	Content string `json:"content" binding:"required"`
}

// Create handles POST /announcements
// @Summary Post an announcement
// @Description Posts an announcement to the community feed, stamped with the author's display fields
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body service.AnnouncementRequest true "Announcement data"
// @Success 201 {object} models.Announcement "Successfully created announcement"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.userService.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	announcement, err := h.announcementService.Create(author, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

// List handles GET /announcements
// @Summary List announcements
// @Description Lists the community feed, newest first, optionally filtered by category or author
// @Tags announcements
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Param category query string false "Filter by category"
// @Param user_id query string false "Filter by author (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved announcements"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	opts := service.AnnouncementListOptions{
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	}
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		opts.UserID = userID
	}

	announcements, total, err := h.announcementService.List(opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"announcements": announcements,
		"total":         total,
		"limit":         limit,
		"offset":        offset,
	})
}

// GetByID handles GET /announcements/:id
// @Summary Get an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} models.Announcement "Successfully retrieved announcement"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	announcement, err := h.announcementService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// Update handles PUT /announcements/:id
// @Summary Update an announcement
// @Description Replaces an announcement's content; author only
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Param announcement body service.AnnouncementRequest true "Announcement data"
// @Success 200 {object} models.Announcement "Successfully updated announcement"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.Update(id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// Delete handles DELETE /announcements/:id
// @Summary Delete an announcement
// @Tags announcements
// @Param id path string true "Announcement ID (UUID)"
// @Success 204 "Successfully deleted announcement"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.announcementService.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleLike handles POST /announcements/:id/like
// @Summary Toggle a like
// @Description Likes the announcement, or removes the caller's existing like
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} map[string]interface{} "Resulting liked state"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id}/like [post]
func (h *AnnouncementHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	liked, err := h.announcementService.ToggleLike(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// AddComment handles POST /announcements/:id/comments
// @Summary Post a comment
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Param comment body CommentBody true "Comment data"
// @Success 201 {object} models.Comment "Successfully created comment"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id}/comments [post]
func (h *AnnouncementHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var body CommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.userService.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	comment, err := h.announcementService.AddComment(id, author, body.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListComments handles GET /announcements/:id/comments
// @Summary List comments
// @Description Lists an announcement's comments, oldest first
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {array} models.Comment "Successfully retrieved comments"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id}/comments [get]
func (h *AnnouncementHandler) ListComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.announcementService.ListComments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DeleteComment handles DELETE /announcements/comments/:comment_id
// @Summary Delete a comment
// @Tags announcements
// @Param comment_id path string true "Comment ID (UUID)"
// @Success 204 "Successfully deleted comment"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /announcements/comments/{comment_id} [delete]
func (h *AnnouncementHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	if err := h.announcementService.DeleteComment(commentID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
