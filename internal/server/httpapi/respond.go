package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courseledger/internal/apperr"
	"courseledger/internal/logging"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal error and is logged, not leaked.
func respondError(c *gin.Context, log logging.Logger, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		status := http.StatusInternalServerError
		switch e.Kind {
		case apperr.KindNotFound:
			status = http.StatusNotFound
		case apperr.KindNotCreator:
			status = http.StatusForbidden
		case apperr.KindInvalidInput:
			status = http.StatusBadRequest
		case apperr.KindPartialWrite:
			// The caller must see that a partial write is not a clean
			// failure.
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": e.Error()})
		return
	}

	log.Error(c.Request.Context(), "request failed", "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}

func requirePrincipal(c *gin.Context) (string, bool) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return principal, true
}
