package sites

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces the published website for a domain.
func (r *PGRepo) Upsert(ctx context.Context, s Site) error {
	const query = `
INSERT INTO published_websites (domain, resume_id, html_content, template_id, published_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (domain) DO UPDATE SET
    resume_id = EXCLUDED.resume_id,
    html_content = EXCLUDED.html_content,
    template_id = EXCLUDED.template_id,
    published_at = EXCLUDED.published_at`
	_, err := r.DB.ExecContext(ctx, query, s.Domain, s.ResumeID, s.HTML, s.TemplateID, s.PublishedAt)
	return err
}

// GetByDomain fetches the published website for a domain.
func (r *PGRepo) GetByDomain(ctx context.Context, domain string) (Site, error) {
	const query = `
SELECT domain, resume_id, html_content, template_id, published_at
FROM published_websites
WHERE domain = $1`
	var s Site
	err := r.DB.QueryRowContext(ctx, query, domain).Scan(
		&s.Domain,
		&s.ResumeID,
		&s.HTML,
		&s.TemplateID,
		&s.PublishedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Site{}, ErrNotFound
		}
		return Site{}, err
	}
	return s, nil
}

// DeleteByDomain removes the published website for a domain.
func (r *PGRepo) DeleteByDomain(ctx context.Context, domain string) error {
	const query = `DELETE FROM published_websites WHERE domain = $1`
	_, err := r.DB.ExecContext(ctx, query, domain)
	return err
}

var _ Repo = (*PGRepo)(nil)
