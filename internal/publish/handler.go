package publish

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the publication service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches publication routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/check-domain", h.checkDomain)
	rg.POST("/publish", h.publish)
}

type checkDomainRequest struct {
	DomainName string `json:"domainName"`
	Extension  string `json:"extension"`
}

func (h *Handler) checkDomain(c *gin.Context) {
	var req checkDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	avail, err := h.Svc.CheckDomain(c.Request.Context(), req.DomainName, req.Extension)
	if err != nil {
		if errors.Is(err, ErrInvalidDomain) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "domain name is invalid", nil)
			return
		}
		respond.Error(c, http.StatusBadGateway, "registrar_error", "domain availability check failed", nil)
		return
	}

	c.Set("siteDomain", avail.Domain)
	respond.OK(c, avail)
}

type publishRequest struct {
	ResumeID   string `json:"resumeId"`
	DomainName string `json:"domainName"`
	Extension  string `json:"extension"`
}

func (h *Handler) publish(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ResumeID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId is required", nil)
		return
	}
	c.Set("resumeId", req.ResumeID)

	res, err := h.Svc.Publish(c.Request.Context(), userID, req.ResumeID, req.DomainName, req.Extension)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDomain):
			respond.Error(c, http.StatusBadRequest, "validation_error", "domain name is invalid", nil)
		case errors.Is(err, ErrDomainUnavailable):
			respond.Error(c, http.StatusConflict, "domain_unavailable", "domain is not available", nil)
		case errors.Is(err, ErrAlreadyPublished):
			respond.Error(c, http.StatusConflict, "already_published", "resume is already published", nil)
		case errors.Is(err, ErrPublishInProgress):
			respond.Error(c, http.StatusConflict, "publish_in_progress", "publication already in progress", nil)
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to publish resume", nil)
		}
		return
	}

	c.Set("siteDomain", res.Domain)
	c.Set("publishTransition", string(StatePublished))
	respond.OK(c, res)
}
