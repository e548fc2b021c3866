package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder-backend/internal/resume"
)

func fixtureDocument() resume.Document {
	doc := resume.NewDocument("r1", "u1")
	doc.PersonalInfo = resume.PersonalInfo{
		FullName: "Jane Smith",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "Denver, CO",
		Title:    "Staff Engineer",
		Summary:  "Engineer with a decade of experience.",
	}
	expID := doc.AddExperience()
	doc.UpdateExperience(expID, resume.ExperienceEntry{
		Company:     "Initech",
		Position:    "Staff Engineer",
		StartDate:   "2019-04",
		EndDate:     "",
		Current:     true,
		Description: "Led the platform team\nShipped the v2 API",
	})
	eduID := doc.AddEducation()
	doc.UpdateEducation(eduID, resume.EducationEntry{
		School:    "CU Boulder",
		Degree:    "B.S.",
		Field:     "Computer Science",
		StartDate: "2008-09",
		EndDate:   "2012-05",
	})
	doc.AddSkill("Go")
	doc.AddSkill("PostgreSQL")
	return doc
}

func TestRenderIsDeterministic(t *testing.T) {
	doc := fixtureDocument()

	first := Render(doc, resume.TemplateModern)
	second := Render(doc, resume.TemplateModern)

	assert.Equal(t, first, second)
}

func TestRenderUnknownTemplateFallsBackToModern(t *testing.T) {
	doc := fixtureDocument()

	fallback := Render(doc, resume.TemplateID("does-not-exist"))
	modern := Render(doc, resume.TemplateModern)

	assert.Equal(t, modern, fallback)
	assert.Equal(t, resume.TemplateModern, fallback.Template)
}

func TestRenderModernSections(t *testing.T) {
	doc := fixtureDocument()
	out := Render(doc, resume.TemplateModern)

	header := out.Find(SectionHeader)
	require.NotNil(t, header)
	require.NotNil(t, header.Header)
	assert.Equal(t, "Jane Smith", header.Header.Name)
	assert.Equal(t, "Staff Engineer", header.Header.Title)
	assert.Equal(t, "jane@example.com • +1 555 0100 • Denver, CO", header.Header.Contact)

	summary := out.Find(SectionSummary)
	require.NotNil(t, summary)
	assert.Equal(t, "Professional Summary", summary.Title)

	exp := out.Find(SectionExperience)
	require.NotNil(t, exp)
	require.Len(t, exp.Entries, 1)
	assert.Equal(t, "Apr 2019 - Present", exp.Entries[0].DateRange)
	assert.Equal(t, []string{"Led the platform team", "Shipped the v2 API"}, exp.Entries[0].Body)

	edu := out.Find(SectionEducation)
	require.NotNil(t, edu)
	require.Len(t, edu.Entries, 1)
	assert.Equal(t, "B.S.", edu.Entries[0].Heading)
	assert.Equal(t, "CU Boulder • Computer Science", edu.Entries[0].Subheading)

	skills := out.Find(SectionSkills)
	require.NotNil(t, skills)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, skills.Tags)
	assert.Empty(t, skills.Line)
}

func TestRenderClassicJoinsSkills(t *testing.T) {
	doc := fixtureDocument()
	out := Render(doc, resume.TemplateClassic)

	skills := out.Find(SectionSkills)
	require.NotNil(t, skills)
	assert.Empty(t, skills.Tags)
	assert.Equal(t, "Go, PostgreSQL", skills.Line)

	summary := out.Find(SectionSummary)
	require.NotNil(t, summary)
	assert.Equal(t, "Summary", summary.Title)

	header := out.Find(SectionHeader)
	require.NotNil(t, header)
	assert.Equal(t, "jane@example.com | +1 555 0100 | Denver, CO", header.Header.Contact)
}

func TestRenderMinimalTitles(t *testing.T) {
	doc := fixtureDocument()
	out := Render(doc, resume.TemplateMinimal)

	summary := out.Find(SectionSummary)
	require.NotNil(t, summary)
	assert.Equal(t, "About", summary.Title)

	header := out.Find(SectionHeader)
	require.NotNil(t, header)
	assert.Equal(t, "jane@example.com · +1 555 0100 · Denver, CO", header.Header.Contact)
}

func TestRenderOmitsEmptySections(t *testing.T) {
	doc := resume.NewDocument("r1", "u1")
	out := Render(doc, resume.TemplateModern)

	require.Len(t, out.Sections, 1)
	header := out.Find(SectionHeader)
	require.NotNil(t, header)
	assert.Equal(t, "Your Name", header.Header.Name)
	assert.Empty(t, header.Header.Contact)

	assert.Nil(t, out.Find(SectionSummary))
	assert.Nil(t, out.Find(SectionExperience))
	assert.Nil(t, out.Find(SectionEducation))
	assert.Nil(t, out.Find(SectionSkills))
}

func TestRenderSameContentAcrossTemplates(t *testing.T) {
	doc := fixtureDocument()

	for _, id := range []resume.TemplateID{resume.TemplateModern, resume.TemplateClassic, resume.TemplateMinimal} {
		out := Render(doc, id)

		exp := out.Find(SectionExperience)
		require.NotNil(t, exp, "template %s", id)
		assert.Equal(t, "Initech", exp.Entries[0].Subheading, "template %s", id)
		assert.Equal(t, "Staff Engineer", exp.Entries[0].Heading, "template %s", id)

		edu := out.Find(SectionEducation)
		require.NotNil(t, edu, "template %s", id)
		assert.Equal(t, "B.S.", edu.Entries[0].Heading, "template %s", id)
	}
}
