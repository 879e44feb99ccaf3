package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agricoop-backend/internal/service"
)

// CertificationHandler handles HTTP requests for member certifications
type CertificationHandler struct {
	certService service.CertificationServiceInterface
}

// NewCertificationHandler creates a new certification handler
func NewCertificationHandler(certService service.CertificationServiceInterface) *CertificationHandler {
	return &CertificationHandler{certService: certService}
}

// Create handles POST /certifications
// @Summary Record a certification
// @Description Records a certification held by the authenticated member
// @Tags certifications
// @Accept json
// @Produce json
// @Param certification body service.CertificationRequest true "Certification data"
// @Success 201 {object} models.Certification "Successfully created certification"
// @Failure 400 {object} ErrorResponse "Invalid request body or certification type"
// @Security BearerAuth
// @Router /certifications [post]
func (h *CertificationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cert, err := h.certService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

// List handles GET /certifications
// @Summary List own certifications
// @Description Lists the authenticated member's certifications with expiry annotations
// @Tags certifications
// @Produce json
// @Success 200 {array} service.CertificationResponse "Successfully retrieved certifications"
// @Security BearerAuth
// @Router /certifications [get]
func (h *CertificationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	certs, err := h.certService.ListByOwner(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

// ListExpiring handles GET /certifications/expiring
// @Summary List certifications expiring soon
// @Description Lists the authenticated member's certifications expiring within the next 30 days
// @Tags certifications
// @Produce json
// @Success 200 {array} service.CertificationResponse "Successfully retrieved expiring certifications"
// @Security BearerAuth
// @Router /certifications/expiring [get]
func (h *CertificationHandler) ListExpiring(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	certs, err := h.certService.ListExpiring(userID, service.ExpiringSoonWindow)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

// Update handles PUT /certifications/:id
// @Summary Update a certification
// @Description Replaces a certification's fields; owner only
// @Tags certifications
// @Accept json
// @Produce json
// @Param id path string true "Certification ID (UUID)"
// @Param certification body service.CertificationRequest true "Certification data"
// @Success 200 {object} models.Certification "Successfully updated certification"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Certification not found"
// @Security BearerAuth
// @Router /certifications/{id} [put]
func (h *CertificationHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cert, err := h.certService.Update(id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

// Delete handles DELETE /certifications/:id
// @Summary Delete a certification
// @Tags certifications
// @Param id path string true "Certification ID (UUID)"
// @Success 204 "Successfully deleted certification"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Certification not found"
// @Security BearerAuth
// @Router /certifications/{id} [delete]
func (h *CertificationHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.certService.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
