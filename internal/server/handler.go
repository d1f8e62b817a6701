// Package server exposes the curriculum over a JSON HTTP API.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/catalog"
	"github.com/dante-library/dante/internal/curriculum"
)

// Handler serves the read API from a catalog.Service.
type Handler struct {
	catalog *catalog.Service
	logger  *zap.Logger
}

func NewHandler(svc *catalog.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{catalog: svc, logger: logger}
}

type gradeRequest struct {
	GradeID string `json:"grade_id" binding:"required"`
}

type lessonRequest struct {
	LessonID string `json:"lesson_id" binding:"required"`
}

type chapterRequest struct {
	ChapterID string `json:"chapter_id" binding:"required"`
}

func (h *Handler) ListGrades(c *gin.Context) {
	grades, err := h.catalog.Grades(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	respond(c, "grade find success", grades)
}

func (h *Handler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalog.Subjects(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	respond(c, "", subjects)
}

// ListLessons answers GET /grades/:grade_id/lessons and POST /lessons {"grade_id"}.
func (h *Handler) ListLessons(c *gin.Context) {
	var req gradeRequest
	id, ok := idFrom(c, "grade_id", &req, &req.GradeID)
	if !ok {
		return
	}
	lessons, err := h.catalog.LessonsByGrade(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, err)
		return
	}
	respond(c, "lessons find success", lessons)
}

// ListChapters answers GET /lessons/:lesson_id/chapters and POST /chapters {"lesson_id"}.
func (h *Handler) ListChapters(c *gin.Context) {
	var req lessonRequest
	id, ok := idFrom(c, "lesson_id", &req, &req.LessonID)
	if !ok {
		return
	}
	chapters, err := h.catalog.ChaptersByLesson(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, err)
		return
	}
	respond(c, "", chapters)
}

// ListParts answers GET /chapters/:chapter_id/parts and POST /parts {"chapter_id"}.
func (h *Handler) ListParts(c *gin.Context) {
	var req chapterRequest
	id, ok := idFrom(c, "chapter_id", &req, &req.ChapterID)
	if !ok {
		return
	}
	parts, err := h.catalog.PartsByChapter(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, err)
		return
	}
	respond(c, "", parts)
}

func (h *Handler) GetPart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "part not found")
		return
	}
	part, err := h.catalog.Part(c.Request.Context(), id)
	if errors.Is(err, curriculum.ErrNotFound) {
		fail(c, http.StatusNotFound, "part not found")
		return
	}
	if err != nil {
		h.internalError(c, err)
		return
	}
	respond(c, "", part)
}

func (h *Handler) Health(c *gin.Context) {
	respond(c, "", gin.H{"status": "ok"})
}

// idFrom reads a UUID from the path parameter name or, when the route has no
// such parameter, from the JSON body bound into req.
func idFrom(c *gin.Context, name string, req any, field *string) (uuid.UUID, bool) {
	raw := c.Param(name)
	if raw == "" {
		if err := c.ShouldBindJSON(req); err != nil {
			fail(c, http.StatusBadRequest, name+" is required")
			return uuid.Nil, false
		}
		raw = *field
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	fail(c, http.StatusInternalServerError, "")
}
