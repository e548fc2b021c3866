package publish

import (
	"context"
	"strings"
	"sync"
	"time"

	"resume-builder-backend/internal/registrar"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/telemetry"
	"resume-builder-backend/internal/site"
	"resume-builder-backend/internal/sites"
)

// Result describes a completed publication.
type Result struct {
	Success     bool      `json:"success"`
	Domain      string    `json:"domain"`
	URL         string    `json:"websiteUrl"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Service orchestrates the publication flow: availability check, domain
// registration, site generation, artifact storage and resume bookkeeping.
type Service struct {
	Resumes   resumes.Repo
	Sites     sites.Repo
	Registrar registrar.Client
	// Env relaxes registration failures outside production: in dev-like
	// environments the sandbox registrar often refuses to purchase, which
	// must not block publishing.
	Env string

	mu       sync.Mutex
	inflight map[string]struct{} // resume ids mid-publish
}

// NewService constructs a Service.
func NewService(resumeRepo resumes.Repo, siteRepo sites.Repo, reg registrar.Client, env string) *Service {
	return &Service{
		Resumes:   resumeRepo,
		Sites:     siteRepo,
		Registrar: reg,
		Env:       env,
		inflight:  make(map[string]struct{}),
	}
}

// CheckDomain normalizes the requested name and asks the registrar whether
// it can be purchased.
func (s *Service) CheckDomain(ctx context.Context, label, extension string) (registrar.Availability, error) {
	domain, err := FullDomain(label, extension)
	if err != nil {
		return registrar.Availability{}, err
	}

	metrics.IncDomainChecks()
	avail, err := s.Registrar.CheckAvailability(ctx, domain)
	if err != nil {
		return registrar.Availability{}, err
	}
	return avail, nil
}

// Publish runs the full flow for one resume. A resume is published at most
// once: concurrent calls for the same resume are rejected, as are calls for
// a resume that already has a live site. If recording the publication on the
// resume fails after the site artifact was stored, the artifact is removed
// again so no orphaned site keeps serving.
func (s *Service) Publish(ctx context.Context, userID, resumeID, label, extension string) (Result, error) {
	domain, err := FullDomain(label, extension)
	if err != nil {
		return Result{}, err
	}

	if !s.acquire(resumeID) {
		return Result{}, ErrPublishInProgress
	}
	defer s.release(resumeID)

	doc, err := s.Resumes.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Result{}, err
	}
	if doc.PublishedDomain != "" {
		return Result{}, ErrAlreadyPublished
	}

	metrics.IncPublishStarted()
	flow := NewFlow()

	if err := flow.BeginCheck(domain); err != nil {
		return Result{}, err
	}
	avail, err := s.Registrar.CheckAvailability(ctx, domain)
	if err != nil {
		return Result{}, s.fail(flow, resumeID, domain, "availability check failed", err)
	}
	if err := flow.CompleteCheck(avail.Available); err != nil {
		return Result{}, err
	}

	if err := flow.BeginPublish(); err != nil {
		metrics.IncPublishFailed()
		return Result{}, err
	}

	if err := s.Registrar.Register(ctx, domain); err != nil {
		if !s.devLike() {
			return Result{}, s.fail(flow, resumeID, domain, "domain registration failed", err)
		}
		// Sandbox registrars reject purchases; the site still goes live.
		telemetry.Info("publish.registration_skipped", map[string]any{
			"resume_id": resumeID,
			"domain":    domain,
			"error":     err.Error(),
		})
	}

	start := time.Now()
	html := site.Generate(doc)
	metrics.ObserveSiteGenerationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	now := time.Now().UTC()
	record := sites.Site{
		Domain:      domain,
		ResumeID:    doc.ID,
		HTML:        html,
		TemplateID:  string(doc.Template),
		PublishedAt: now,
	}
	if err := s.Sites.Upsert(ctx, record); err != nil {
		return Result{}, s.fail(flow, resumeID, domain, "site storage failed", err)
	}

	if err := s.Resumes.RecordPublication(ctx, userID, resumeID, domain, now); err != nil {
		// Compensate: the stored artifact must not outlive a failed publish.
		if cleanupErr := s.Sites.DeleteByDomain(ctx, domain); cleanupErr != nil {
			telemetry.Error("publish.cleanup_failed", map[string]any{
				"resume_id": resumeID,
				"domain":    domain,
				"error":     cleanupErr.Error(),
			})
		}
		return Result{}, s.fail(flow, resumeID, domain, "publication bookkeeping failed", err)
	}

	if err := flow.CompletePublish(); err != nil {
		return Result{}, err
	}
	metrics.IncPublishCompleted()
	telemetry.Info("publish.complete", map[string]any{
		"resume_id": resumeID,
		"domain":    domain,
	})

	return Result{
		Success:     true,
		Domain:      domain,
		URL:         "https://" + domain,
		PublishedAt: now,
	}, nil
}

func (s *Service) fail(flow *Flow, resumeID, domain, msg string, err error) error {
	_ = flow.Fail()
	metrics.IncPublishFailed()
	telemetry.Error("publish.failed", map[string]any{
		"resume_id": resumeID,
		"domain":    domain,
		"reason":    msg,
		"error":     err.Error(),
	})
	return err
}

func (s *Service) acquire(resumeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[resumeID]; busy {
		return false
	}
	s.inflight[resumeID] = struct{}{}
	return true
}

func (s *Service) release(resumeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, resumeID)
}

func (s *Service) devLike() bool {
	switch strings.ToLower(strings.TrimSpace(s.Env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
