package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"courseledger/internal/apperr"
	"courseledger/internal/logging"
	"courseledger/internal/server/models"
)

type CourseService interface {
	Get(ctx context.Context, id uint64) (models.Course, error)
	Add(ctx context.Context, principal, title, description string) (models.Course, error)
	Update(ctx context.Context, principal string, id uint64, title, description string) (models.Course, error)
	Delete(ctx context.Context, principal string, id uint64) error
}

type CourseHandler struct {
	log     logging.Logger
	service CourseService
}

func NewCourseHandler(log logging.Logger, service CourseService) *CourseHandler {
	return &CourseHandler{log: log, service: service}
}

type coursePayload struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "course_id")
	if !ok {
		return
	}

	course, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) Create(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var payload coursePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.log, apperr.InvalidInput(err.Error()))
		return
	}

	course, err := h.service.Add(c.Request.Context(), principal, payload.Title, payload.Description)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "course_id")
	if !ok {
		return
	}
	var payload coursePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.log, apperr.InvalidInput(err.Error()))
		return
	}

	course, err := h.service.Update(c.Request.Context(), principal, id, payload.Title, payload.Description)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "course_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), principal, id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
