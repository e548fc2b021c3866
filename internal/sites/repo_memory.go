package sites

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Site // domain -> site
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Site)}
}

// Upsert stores/overwrites the site for a domain.
func (r *MemoryRepo) Upsert(ctx context.Context, s Site) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[s.Domain] = s
	return nil
}

// GetByDomain returns the site published at a domain.
func (r *MemoryRepo) GetByDomain(ctx context.Context, domain string) (Site, error) {
	if err := ctx.Err(); err != nil {
		return Site{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[domain]
	if !ok {
		return Site{}, ErrNotFound
	}
	return s, nil
}

// DeleteByDomain removes the site for a domain if present.
func (r *MemoryRepo) DeleteByDomain(ctx context.Context, domain string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, domain)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
