package render

import (
	"strings"

	"resume-builder-backend/internal/resume"
)

// Modern is the default variant: bullet-separated contact line, full section
// titles, skills as discrete tags.
const modernSeparator = " • "

func renderModern(doc resume.Document) Document {
	out := Document{Template: resume.TemplateModern}

	header := headerBlock(doc.PersonalInfo, modernSeparator)
	out.Sections = append(out.Sections, Section{Kind: SectionHeader, Header: &header})

	if strings.TrimSpace(doc.PersonalInfo.Summary) != "" {
		out.Sections = append(out.Sections, Section{
			Kind:       SectionSummary,
			Title:      "Professional Summary",
			Paragraphs: []string{doc.PersonalInfo.Summary},
		})
	}

	if len(doc.Experiences) > 0 {
		out.Sections = append(out.Sections, Section{
			Kind:    SectionExperience,
			Title:   "Work Experience",
			Entries: experienceEntries(doc.Experiences),
		})
	}

	if len(doc.Education) > 0 {
		out.Sections = append(out.Sections, Section{
			Kind:    SectionEducation,
			Title:   "Education",
			Entries: educationEntries(doc.Education, modernSeparator),
		})
	}

	if len(doc.Skills) > 0 {
		out.Sections = append(out.Sections, Section{
			Kind:  SectionSkills,
			Title: "Skills",
			Tags:  append([]string(nil), doc.Skills...),
		})
	}

	return out
}
