// Package site generates the published-website artifact: a single
// self-contained HTML document with inline styling and no external
// references, suitable for hosting independently of the builder.
package site

import (
	"html"
	"strings"

	"resume-builder-backend/internal/render"
	"resume-builder-backend/internal/resume"
)

// Generate renders a resume into a standalone HTML document. Content
// selection mirrors the Modern template tree exactly, so the published site
// and the in-app preview never diverge in content; only the fixed
// professional layout below differs. Every user-supplied string is escaped
// before it reaches the markup.
func Generate(doc resume.Document) string {
	tree := render.Render(doc, resume.TemplateModern)

	var b strings.Builder
	b.Grow(len(siteStyles) + 2048)

	header := tree.Find(render.SectionHeader).Header

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("<meta name=\"description\" content=\"" + escape(metaDescription(doc.PersonalInfo)) + "\">\n")
	b.WriteString("<title>" + escape(header.Name) + " - Resume</title>\n")
	b.WriteString("<style>\n" + siteStyles + "</style>\n")
	b.WriteString("</head>\n<body>\n<div class=\"container\">\n")

	writeHeader(&b, doc.PersonalInfo, header)

	for _, section := range tree.Sections {
		switch section.Kind {
		case render.SectionSummary:
			writeSummary(&b, section)
		case render.SectionExperience:
			writeEntries(&b, section, "experience")
		case render.SectionEducation:
			writeEntries(&b, section, "education")
		case render.SectionSkills:
			writeSkills(&b, section)
		}
	}

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func metaDescription(info resume.PersonalInfo) string {
	title := info.Title
	if strings.TrimSpace(title) == "" {
		title = "Professional Resume"
	}
	if strings.TrimSpace(info.FullName) == "" {
		return title
	}
	return title + " - " + info.FullName
}

func writeHeader(b *strings.Builder, info resume.PersonalInfo, header *render.Header) {
	b.WriteString("<header>\n")
	b.WriteString("<h1>" + escape(header.Name) + "</h1>\n")
	if strings.TrimSpace(header.Title) != "" {
		b.WriteString("<div class=\"title\">" + escape(header.Title) + "</div>\n")
	}
	b.WriteString("<div class=\"contact-info\">\n")
	if strings.TrimSpace(info.Email) != "" {
		b.WriteString("<span>&#9993; " + escape(info.Email) + "</span>\n")
	}
	if strings.TrimSpace(info.Phone) != "" {
		b.WriteString("<span>&#9742; " + escape(info.Phone) + "</span>\n")
	}
	if strings.TrimSpace(info.Location) != "" {
		b.WriteString("<span>&#9906; " + escape(info.Location) + "</span>\n")
	}
	b.WriteString("</div>\n</header>\n")
}

func writeSummary(b *strings.Builder, section render.Section) {
	b.WriteString("<section>\n<h2>" + escape(section.Title) + "</h2>\n")
	b.WriteString("<div class=\"summary\">" + escapeLines(section.Paragraphs) + "</div>\n")
	b.WriteString("</section>\n")
}

func writeEntries(b *strings.Builder, section render.Section, class string) {
	b.WriteString("<section>\n<h2>" + escape(section.Title) + "</h2>\n")
	for _, entry := range section.Entries {
		b.WriteString("<div class=\"" + class + "-item\">\n")
		b.WriteString("<h3>" + escape(entry.Heading) + "</h3>\n")
		meta := entry.Subheading
		if entry.DateRange != " - " {
			if meta != "" {
				meta += " • "
			}
			meta += entry.DateRange
		}
		if meta != "" {
			b.WriteString("<div class=\"" + class + "-meta\">" + escape(meta) + "</div>\n")
		}
		if len(entry.Body) > 0 {
			b.WriteString("<div class=\"" + class + "-description\">" + escapeLines(entry.Body) + "</div>\n")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</section>\n")
}

func writeSkills(b *strings.Builder, section render.Section) {
	b.WriteString("<section>\n<h2>" + escape(section.Title) + "</h2>\n")
	b.WriteString("<div class=\"skills-list\">\n")
	for _, skill := range section.Tags {
		b.WriteString("<span class=\"skill-tag\">" + escape(skill) + "</span>\n")
	}
	b.WriteString("</div>\n</section>\n")
}

// escape neutralizes markup-significant characters in user content. Every
// string interpolated into the document goes through here.
func escape(s string) string {
	return html.EscapeString(s)
}

// escapeLines escapes each line separately and rejoins with <br> so embedded
// line breaks survive as visual breaks.
func escapeLines(lines []string) string {
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = escape(line)
	}
	return strings.Join(escaped, "<br>")
}
