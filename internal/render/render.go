// Package render turns a resume document into an abstract tree of labeled
// sections. The tree is what both the interactive preview projection and the
// static export build from; rendering is pure, so equal input always yields
// an equal tree.
package render

import (
	"strings"

	"resume-builder-backend/internal/resume"
)

// SectionKind labels a section of the rendered tree.
type SectionKind string

const (
	SectionHeader     SectionKind = "header"
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
)

// Document is the rendered resume: an ordered list of sections for one
// template variant.
type Document struct {
	Template resume.TemplateID
	Sections []Section
}

// Section is one block of the rendered resume. Exactly one of the content
// fields is populated depending on Kind: Header for the header block,
// Paragraphs for summary, Entries for experience/education, Tags or Line
// for skills.
type Section struct {
	Kind       SectionKind
	Title      string
	Header     *Header
	Paragraphs []string
	Entries    []Entry
	Tags       []string
	Line       string
}

// Header is the name/title/contact block every template renders first.
type Header struct {
	Name    string
	Title   string
	Contact string
}

// Entry is a dated list item: an experience or education record.
type Entry struct {
	Heading    string
	Subheading string
	DateRange  string
	Body       []string
}

// Render produces the section tree for the given template. An unrecognized
// template id resolves to Modern.
func Render(doc resume.Document, id resume.TemplateID) Document {
	switch resume.ParseTemplateID(string(id)) {
	case resume.TemplateClassic:
		return renderClassic(doc)
	case resume.TemplateMinimal:
		return renderMinimal(doc)
	default:
		return renderModern(doc)
	}
}

// Section lookup helpers used by the static generator and tests.

// Find returns the first section of the given kind, or nil.
func (d Document) Find(kind SectionKind) *Section {
	for i := range d.Sections {
		if d.Sections[i].Kind == kind {
			return &d.Sections[i]
		}
	}
	return nil
}

// Data-selection rules shared by every variant. The templates differ only in
// arrangement and separators, never in which data they pick.

const namePlaceholder = "Your Name"

func headerBlock(info resume.PersonalInfo, sep string) Header {
	name := info.FullName
	if strings.TrimSpace(name) == "" {
		name = namePlaceholder
	}
	return Header{
		Name:    name,
		Title:   info.Title,
		Contact: joinNonBlank(sep, info.Email, info.Phone, info.Location),
	}
}

func experienceEntries(entries []resume.ExperienceEntry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, exp := range entries {
		out = append(out, Entry{
			Heading:    exp.Position,
			Subheading: exp.Company,
			DateRange:  resume.FormatDateRange(exp.StartDate, exp.EndDate, exp.Current),
			Body:       descriptionLines(exp.Description),
		})
	}
	return out
}

func educationEntries(entries []resume.EducationEntry, sep string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, edu := range entries {
		out = append(out, Entry{
			Heading:    edu.Degree,
			Subheading: joinNonBlank(sep, edu.School, edu.Field),
			DateRange:  resume.FormatDateRange(edu.StartDate, edu.EndDate, false),
		})
	}
	return out
}

// descriptionLines splits free text on embedded line breaks so projections
// can keep them as visual breaks instead of collapsing them.
func descriptionLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func joinNonBlank(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
