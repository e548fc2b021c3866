package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"resume-builder-backend/internal/resume"
)

// PGRepo implements Repo using Postgres. Structured resume content is
// stored as JSONB columns, mirroring the builder payload.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume row.
func (r *PGRepo) Create(ctx context.Context, doc resume.Document) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    title,
    template_id,
    personal_info,
    experiences,
    education,
    skills,
    published_domain,
    published_at,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL, NULL, $9, $10)`

	personalInfo, experiences, education, skills, err := marshalContent(doc)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.Title,
		string(doc.Template),
		personalInfo,
		experiences,
		education,
		skills,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return err
}

const selectColumns = `
SELECT id, user_id, title, template_id, personal_info, experiences, education, skills, published_domain, published_at, created_at, updated_at
FROM resumes`

// GetByID fetches a resume by id for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (resume.Document, error) {
	const query = selectColumns + `
WHERE user_id = $1 AND id = $2
LIMIT 1`
	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resume.Document{}, ErrNotFound
		}
		return resume.Document{}, err
	}
	return doc, nil
}

// ListByUser lists resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]resume.Document, error) {
	const query = selectColumns + `
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []resume.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Update replaces the editable content of a resume row.
func (r *PGRepo) Update(ctx context.Context, doc resume.Document) error {
	const query = `
UPDATE resumes
SET title = $1, template_id = $2, personal_info = $3, experiences = $4, education = $5, skills = $6, updated_at = $7
WHERE user_id = $8 AND id = $9`

	personalInfo, experiences, education, skills, err := marshalContent(doc)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		doc.Title,
		string(doc.Template),
		personalInfo,
		experiences,
		education,
		skills,
		doc.UpdatedAt,
		doc.UserID,
		doc.ID,
	)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume row for a user.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM resumes WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordPublication stores the published domain and timestamp on the row.
func (r *PGRepo) RecordPublication(ctx context.Context, userID, id, domain string, at time.Time) error {
	const query = `
UPDATE resumes
SET published_domain = $1, published_at = $2, updated_at = $2
WHERE user_id = $3 AND id = $4`
	res, err := r.DB.ExecContext(ctx, query, domain, at, userID, id)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (resume.Document, error) {
	var doc resume.Document
	var templateID string
	var personalInfo, experiences, education, skills []byte
	var publishedDomain sql.NullString
	var publishedAt sql.NullTime

	if err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&templateID,
		&personalInfo,
		&experiences,
		&education,
		&skills,
		&publishedDomain,
		&publishedAt,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	); err != nil {
		return resume.Document{}, err
	}

	doc.Template = resume.ParseTemplateID(templateID)
	if err := json.Unmarshal(personalInfo, &doc.PersonalInfo); err != nil {
		return resume.Document{}, err
	}
	if err := json.Unmarshal(experiences, &doc.Experiences); err != nil {
		return resume.Document{}, err
	}
	if err := json.Unmarshal(education, &doc.Education); err != nil {
		return resume.Document{}, err
	}
	if err := json.Unmarshal(skills, &doc.Skills); err != nil {
		return resume.Document{}, err
	}
	if publishedDomain.Valid {
		doc.PublishedDomain = publishedDomain.String
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		doc.PublishedAt = &t
	}
	return doc, nil
}

func marshalContent(doc resume.Document) (personalInfo, experiences, education, skills []byte, err error) {
	if personalInfo, err = json.Marshal(doc.PersonalInfo); err != nil {
		return
	}
	if experiences, err = json.Marshal(emptyIfNilExperiences(doc.Experiences)); err != nil {
		return
	}
	if education, err = json.Marshal(emptyIfNilEducation(doc.Education)); err != nil {
		return
	}
	skills, err = json.Marshal(emptyIfNilStrings(doc.Skills))
	return
}

func emptyIfNilExperiences(in []resume.ExperienceEntry) []resume.ExperienceEntry {
	if in == nil {
		return []resume.ExperienceEntry{}
	}
	return in
}

func emptyIfNilEducation(in []resume.EducationEntry) []resume.EducationEntry {
	if in == nil {
		return []resume.EducationEntry{}
	}
	return in
}

func emptyIfNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

var _ Repo = (*PGRepo)(nil)
