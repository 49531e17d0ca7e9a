package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"courseledger/internal/apperr"
	"courseledger/internal/logging"
	"courseledger/internal/server/models"
)

type LessonService interface {
	Get(ctx context.Context, id uint64) (models.Lesson, error)
	Add(ctx context.Context, principal string, courseID uint64, title, content string) error
	Update(ctx context.Context, principal string, id uint64, title, content string) (models.Lesson, error)
	Delete(ctx context.Context, principal string, id uint64) error
}

type LessonHandler struct {
	log     logging.Logger
	service LessonService
}

func NewLessonHandler(log logging.Logger, service LessonService) *LessonHandler {
	return &LessonHandler{log: log, service: service}
}

type lessonPayload struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *LessonHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "lesson_id")
	if !ok {
		return
	}

	lesson, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// Create adds a lesson under the course in the path. The operation has no
// return payload; on success the client gets a bare 201.
func (h *LessonHandler) Create(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	courseID, ok := parseID(c, "course_id")
	if !ok {
		return
	}
	var payload lessonPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.log, apperr.InvalidInput(err.Error()))
		return
	}

	if err := h.service.Add(c.Request.Context(), principal, courseID, payload.Title, payload.Content); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *LessonHandler) Update(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "lesson_id")
	if !ok {
		return
	}
	var payload lessonPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.log, apperr.InvalidInput(err.Error()))
		return
	}

	lesson, err := h.service.Update(c.Request.Context(), principal, id, payload.Title, payload.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) Delete(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "lesson_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), principal, id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
