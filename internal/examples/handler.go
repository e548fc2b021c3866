package examples

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/render"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/site"
)

// Handler serves the bundled sample resumes. The routes are public; samples
// carry no user data.
type Handler struct {
	samples []Sample
	byID    map[string]Sample
}

// NewHandler constructs a Handler from loaded samples.
func NewHandler(samples []Sample) *Handler {
	byID := make(map[string]Sample, len(samples))
	for _, s := range samples {
		byID[s.ID] = s
	}
	return &Handler{samples: samples, byID: byID}
}

// RegisterRoutes attaches example routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/examples", h.list)
	rg.GET("/examples/:id", h.get)
	rg.GET("/examples/:id/preview", h.preview)
}

func (h *Handler) list(c *gin.Context) {
	out := make([]gin.H, 0, len(h.samples))
	for _, s := range h.samples {
		out = append(out, gin.H{
			"id":         s.ID,
			"title":      s.Title,
			"templateId": s.Document.Template,
			"fullName":   s.Document.PersonalInfo.FullName,
		})
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	s, ok := h.byID[c.Param("id")]
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "example not found", nil)
		return
	}
	respond.OK(c, gin.H{
		"id":       s.ID,
		"title":    s.Title,
		"resume":   s.Document,
		"rendered": render.Render(s.Document, s.Document.Template),
	})
}

func (h *Handler) preview(c *gin.Context) {
	s, ok := h.byID[c.Param("id")]
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "example not found", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(site.Generate(s.Document)))
}
