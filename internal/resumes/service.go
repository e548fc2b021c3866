package resumes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder-backend/internal/resume"
)

// Service contains business logic for resume documents.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create makes a new empty resume for the user: blank personal info, empty
// lists, default template.
func (s *Service) Create(ctx context.Context, userID, title string) (resume.Document, error) {
	if userID == "" {
		return resume.Document{}, ErrInvalidInput
	}
	doc := resume.NewDocument(uuid.NewString(), userID)
	if strings.TrimSpace(title) != "" {
		doc.Title = title
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return resume.Document{}, err
	}
	return doc, nil
}

// Get fetches a resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, id string) (resume.Document, error) {
	if userID == "" || id == "" {
		return resume.Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]resume.Document, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Update stores the edited content of a resume. An unrecognized template id
// falls back to the default rather than failing the save.
func (s *Service) Update(ctx context.Context, userID, id string, doc resume.Document) (resume.Document, error) {
	if userID == "" || id == "" {
		return resume.Document{}, ErrInvalidInput
	}

	existing, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return resume.Document{}, err
	}

	doc.ID = existing.ID
	doc.UserID = existing.UserID
	doc.CreatedAt = existing.CreatedAt
	doc.PublishedDomain = existing.PublishedDomain
	doc.PublishedAt = existing.PublishedAt
	doc.UpdatedAt = time.Now().UTC()
	doc.Template = resume.ParseTemplateID(string(doc.Template))
	if strings.TrimSpace(doc.Title) == "" {
		doc.Title = existing.Title
	}

	if err := s.Repo.Update(ctx, doc); err != nil {
		return resume.Document{}, err
	}
	return doc, nil
}

// Delete removes a resume owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, id)
}
