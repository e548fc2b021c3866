package resumes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/render"
	"resume-builder-backend/internal/resume"
	"resume-builder-backend/internal/schemas"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.GET("/resumes/:id/preview", h.preview)
}

type createRequest struct {
	Title string `json:"title"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	// Body is optional; an empty request creates an untitled resume.
	_ = c.ShouldBindJSON(&req)

	doc, err := h.Svc.Create(c.Request.Context(), userID, req.Title)
	if err != nil {
		respondServiceError(c, err, "failed to create resume")
		return
	}
	respond.JSON(c, http.StatusCreated, doc)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	docs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "failed to list resumes")
		return
	}

	out := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		out = append(out, gin.H{
			"id":              doc.ID,
			"title":           doc.Title,
			"templateId":      doc.Template,
			"publishedDomain": doc.PublishedDomain,
			"publishedAt":     doc.PublishedAt,
			"createdAt":       doc.CreatedAt,
			"updatedAt":       doc.UpdatedAt,
		})
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	raw, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := schemas.ValidateResume(raw); err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume payload is invalid", verr.Errors)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	var doc resume.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), doc)
	if err != nil {
		respondServiceError(c, err, "failed to update resume")
		return
	}
	respond.OK(c, updated)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err, "failed to delete resume")
		return
	}
	c.Status(http.StatusNoContent)
}

// preview returns the rendered section tree for the live preview. The
// template query parameter overrides the stored template; unknown values
// fall back to Modern.
func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to fetch resume")
		return
	}

	templateID := doc.Template
	if raw := c.Query("template"); raw != "" {
		templateID = resume.ParseTemplateID(raw)
	}

	respond.OK(c, render.Render(doc, templateID))
}

func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
