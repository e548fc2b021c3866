package export

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires the export endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/export", h.export)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	res, err := h.Svc.Export(c.Request.Context(), userID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "export_error", "failed to export resume", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	if res.Pages > 0 {
		c.Header("X-Page-Count", strconv.Itoa(res.Pages))
	}
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}
