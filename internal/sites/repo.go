package sites

import "context"

// Repo defines persistence operations for published websites.
type Repo interface {
	// Upsert stores the site record, replacing any previous publication of
	// the same domain.
	Upsert(ctx context.Context, s Site) error
	GetByDomain(ctx context.Context, domain string) (Site, error)
	// DeleteByDomain removes a stored artifact; used as compensation when a
	// publish fails after the artifact write.
	DeleteByDomain(ctx context.Context, domain string) error
}
