package assist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires the assist endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assist routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai-assist", h.suggest)
}

func (h *Handler) suggest(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	content, err := h.Svc.Suggest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUnknownType) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown suggestion type", nil)
			return
		}
		respond.Error(c, http.StatusBadGateway, "assist_error", "failed to generate content", nil)
		return
	}

	respond.OK(c, gin.H{"content": content})
}
