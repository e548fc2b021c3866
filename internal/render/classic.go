package render

import (
	"strings"

	"resume-builder-backend/internal/resume"
)

// Classic uses pipe separators, shorter section titles, and renders skills
// as one comma-joined line instead of discrete tags. The joined line is a
// deliberate per-template divergence.
const (
	classicSeparator      = " | "
	classicSkillDelimiter = ", "
)

func renderClassic(doc resume.Document) Document {
	out := Document{Template: resume.TemplateClassic}

	header := headerBlock(doc.PersonalInfo, classicSeparator)
	out.Sections = append(out.Sections, Section{Kind: SectionHeader, Header: &header})

	if strings.TrimSpace(doc.PersonalInfo.Summary) != "" {
		out.Sections = append(out.Sections, Section{
			Kind:       SectionSummary,
			Title:      "Summary",
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
			Entries: educationEntries(doc.Education, classicSeparator),
		})
	}

	if len(doc.Skills) > 0 {
		out.Sections = append(out.Sections, Section{
			Kind:  SectionSkills,
			Title: "Skills",
			Line:  strings.Join(doc.Skills, classicSkillDelimiter),
		})
	}

	return out
}
