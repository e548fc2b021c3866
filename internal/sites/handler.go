package sites

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/respond"
)

// Handler serves published resume websites.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches the public site routes. These are served outside
// the authenticated API group: published sites are world-readable.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/sites/:domain", h.serve)
}

// serve returns the stored document byte-for-byte. The artifact was escaped
// at generation time; it is intentionally not re-processed here.
func (h *Handler) serve(c *gin.Context) {
	domain := strings.ToLower(strings.TrimSpace(c.Param("domain")))
	if domain == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "domain is required", nil)
		return
	}

	s, err := h.Repo.GetByDomain(c.Request.Context(), domain)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(notFoundPage))
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load website", nil)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(s.HTML))
}

const notFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Website Not Found</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 80px;">
<h1>Website Not Found</h1>
<p>No resume website is published at this address.</p>
</body>
</html>
`
