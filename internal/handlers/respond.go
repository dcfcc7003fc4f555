package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/talentflow-hq/talentflow/internal/errors"
)

// respondError maps domain errors onto the HTTP surface. Not-found is a
// navigational failure for the caller; everything unexpected is a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if de, ok := err.(*apperrors.DomainError); ok {
		switch de.Type {
		case apperrors.ErrTypeNotFound:
			status = http.StatusNotFound
		case apperrors.ErrTypeInvalidInput:
			status = http.StatusBadRequest
		case apperrors.ErrTypeConflict:
			status = http.StatusConflict
		case apperrors.ErrTypeUnavailable:
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": de.Message})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// idParam parses the numeric :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// intQuery reads an integer query parameter with a default.
func intQuery(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return defaultValue
	}
	return n
}
