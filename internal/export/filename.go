package export

import (
	"strings"

	"resume-builder-backend/internal/shared/util"
)

const fallbackBaseName = "resume"

// FileName derives the download name from the resume owner's full name,
// falling back to "resume.pdf" when the name is blank or unusable.
func FileName(fullName string) string {
	base := strings.TrimSpace(fullName)
	if base == "" {
		return fallbackBaseName + ".pdf"
	}
	sanitized, err := util.SanitizeFileName(base)
	if err != nil {
		return fallbackBaseName + ".pdf"
	}
	return sanitized + ".pdf"
}
