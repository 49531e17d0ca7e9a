package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"courseledger/internal/apperr"
	"courseledger/internal/logging"
	"courseledger/internal/server/models"
)

type UserService interface {
	Get(ctx context.Context, id uint64) (models.User, error)
	Register(ctx context.Context, username, publicKey string) (models.User, error)
	Delete(ctx context.Context, id uint64) error
}

type UserHandler struct {
	log     logging.Logger
	service UserService
}

func NewUserHandler(log logging.Logger, service UserService) *UserHandler {
	return &UserHandler{log: log, service: service}
}

type registerUserPayload struct {
	Username  string `json:"username" binding:"required"`
	PublicKey string `json:"public_key" binding:"required"`
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Register is open: no token is needed to create a user record.
func (h *UserHandler) Register(c *gin.Context) {
	var payload registerUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.log, apperr.InvalidInput(err.Error()))
		return
	}

	user, err := h.service.Register(c.Request.Context(), payload.Username, payload.PublicKey)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
