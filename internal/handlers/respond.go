package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio_backend/internal/media"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError translates domain errors into the HTTP taxonomy: 400 for
// validation and wrong-old-password, 404 for lookup misses, 415 for rejected
// resume types, 500 for everything unexpected.
func (h *Handler) respondError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, media.ErrUnsupportedMedia):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// idParam parses the :id route segment; writes a 400 and returns false when
// it is not a number.
func (h *Handler) idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
