package resumes

import (
	"context"
	"sort"
	"sync"
	"time"

	"resume-builder-backend/internal/resume"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]resume.Document // id -> document
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]resume.Document)}
}

// Create stores a new resume document.
func (r *MemoryRepo) Create(ctx context.Context, doc resume.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.ID] = doc
	return nil
}

// GetByID returns a resume owned by the user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (resume.Document, error) {
	if err := ctx.Err(); err != nil {
		return resume.Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.data[id]
	if !ok || doc.UserID != userID {
		return resume.Document{}, ErrNotFound
	}
	return doc, nil
}

// ListByUser returns the user's resumes, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]resume.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]resume.Document, 0)
	for _, doc := range r.data {
		if doc.UserID == userID {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces a stored resume.
func (r *MemoryRepo) Update(ctx context.Context, doc resume.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[doc.ID]
	if !ok || existing.UserID != doc.UserID {
		return ErrNotFound
	}
	r.data[doc.ID] = doc
	return nil
}

// Delete removes a resume owned by the user.
func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.data[id]
	if !ok || doc.UserID != userID {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// RecordPublication stores the published domain and timestamp.
func (r *MemoryRepo) RecordPublication(ctx context.Context, userID, id, domain string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.data[id]
	if !ok || doc.UserID != userID {
		return ErrNotFound
	}
	doc.PublishedDomain = domain
	doc.PublishedAt = &at
	doc.UpdatedAt = at
	r.data[id] = doc
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
