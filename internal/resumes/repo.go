package resumes

import (
	"context"
	"time"

	"resume-builder-backend/internal/resume"
)

// Repo defines persistence operations for resume documents.
type Repo interface {
	Create(ctx context.Context, doc resume.Document) error
	GetByID(ctx context.Context, userID, id string) (resume.Document, error)
	ListByUser(ctx context.Context, userID string) ([]resume.Document, error)
	Update(ctx context.Context, doc resume.Document) error
	Delete(ctx context.Context, userID, id string) error
	// RecordPublication stores the published domain and timestamp on the
	// resume row after a successful publish.
	RecordPublication(ctx context.Context, userID, id, domain string, at time.Time) error
}
