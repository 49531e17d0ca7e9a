package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courseledger/internal/apperr"
	"courseledger/internal/logging"
	"courseledger/internal/server/models"
)

type CertificateService interface {
	Get(ctx context.Context, id uint64) (models.Certificate, error)
	Issue(ctx context.Context, principal string, userID, courseID uint64) (models.Certificate, error)
	Verify(ctx context.Context, userID, certID uint64) (bool, error)
}

type CertificateHandler struct {
	log     logging.Logger
	service CertificateService
}

func NewCertificateHandler(log logging.Logger, service CertificateService) *CertificateHandler {
	return &CertificateHandler{log: log, service: service}
}

type issueCertificatePayload struct {
	UserID   uint64 `json:"user_id"`
	CourseID uint64 `json:"course_id"`
}

func (h *CertificateHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "certificate_id")
	if !ok {
		return
	}

	cert, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificateHandler) Issue(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var payload issueCertificatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.log, apperr.InvalidInput(err.Error()))
		return
	}

	cert, err := h.service.Issue(c.Request.Context(), principal, payload.UserID, payload.CourseID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

// Verify answers whether the certificate in the path was issued to the user
// in the user_id query parameter.
func (h *CertificateHandler) Verify(c *gin.Context) {
	certID, ok := parseID(c, "certificate_id")
	if !ok {
		return
	}
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	valid, err := h.service.Verify(c.Request.Context(), userID, certID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}
