package resume

import "time"

// PersonalInfo captures top-of-resume identity and contact details.
// All fields are optional free text; values are rendered as typed.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
}

// ExperienceEntry represents a work history entry. ID is assigned once at
// creation and stays stable across edits; it is never reused after removal.
type ExperienceEntry struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationEntry represents an education entry. Unlike experience there is
// no "current" flag; both dates are plain partial dates.
type EducationEntry struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Document is the aggregate resume: the data the renderers consume plus the
// persistence metadata owned by the resumes store.
type Document struct {
	ID           string            `json:"id,omitempty"`
	UserID       string            `json:"-"`
	Title        string            `json:"title"`
	Template     TemplateID        `json:"templateId"`
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Experiences  []ExperienceEntry `json:"experiences"`
	Education    []EducationEntry  `json:"education"`
	Skills       []string          `json:"skills"`

	PublishedDomain string     `json:"publishedDomain,omitempty"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt,omitempty"`
	UpdatedAt       time.Time  `json:"updatedAt,omitempty"`
}

// NewDocument returns an empty resume: blank personal info, empty lists,
// the default template.
func NewDocument(id, userID string) Document {
	now := time.Now().UTC()
	return Document{
		ID:          id,
		UserID:      userID,
		Title:       "Untitled Resume",
		Template:    TemplateModern,
		Experiences: []ExperienceEntry{},
		Education:   []EducationEntry{},
		Skills:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
