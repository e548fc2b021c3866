package render

import (
	"strings"

	"resume-builder-backend/internal/resume"
)

// Minimal keeps the same data selection with a sparse arrangement: middle-dot
// separators and terse section titles.
const minimalSeparator = " · "

func renderMinimal(doc resume.Document) Document {
	out := Document{Template: resume.TemplateMinimal}

	header := headerBlock(doc.PersonalInfo, minimalSeparator)
	out.Sections = append(out.Sections, Section{Kind: SectionHeader, Header: &header})

	if strings.TrimSpace(doc.PersonalInfo.Summary) != "" {
		out.Sections = append(out.Sections, Section{
			Kind:       SectionSummary,
			Title:      "About",
			Paragraphs: []string{doc.PersonalInfo.Summary},
		})
	}

	if len(doc.Experiences) > 0 {
		out.Sections = append(out.Sections, Section{
			Kind:    SectionExperience,
			Title:   "Experience",
			Entries: experienceEntries(doc.Experiences),
		})
	}

	if len(doc.Education) > 0 {
		out.Sections = append(out.Sections, Section{
			Kind:    SectionEducation,
			Title:   "Education",
			Entries: educationEntries(doc.Education, minimalSeparator),
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
