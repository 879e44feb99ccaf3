package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"agricoop-backend/internal/auth"
	apperrors "agricoop-backend/internal/errors"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// currentUserID extracts the authenticated user's id from the Gin context.
// Writes the 401 response itself when the context is missing or malformed.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	idStr, ok := auth.GetUserID(c)
	if !ok || idStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a UUID path parameter, writing the 400 response on failure
func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors to HTTP status codes. Handlers call it
// for errors they don't map explicitly.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isBadRequest(err error) bool {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return true
	}
	return errors.Is(err, apperrors.ErrInvalidStatus) ||
		errors.Is(err, apperrors.ErrInvalidBusinessType) ||
		errors.Is(err, apperrors.ErrInvalidCertificationType) ||
		errors.Is(err, apperrors.ErrInvalidConflictDate) ||
		errors.Is(err, apperrors.ErrInvalidPaginationParams)
}
