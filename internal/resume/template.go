package resume

import "strings"

// TemplateID selects one of the fixed rendering variants.
type TemplateID string

const (
	TemplateModern  TemplateID = "modern"
	TemplateClassic TemplateID = "classic"
	TemplateMinimal TemplateID = "minimal"
)

// ParseTemplateID resolves a raw template id. Anything unrecognized falls
// back to the Modern template; an unknown id is a safe default, not an error.
func ParseTemplateID(raw string) TemplateID {
	switch TemplateID(strings.ToLower(strings.TrimSpace(raw))) {
	case TemplateClassic:
		return TemplateClassic
	case TemplateMinimal:
		return TemplateMinimal
	default:
		return TemplateModern
	}
}

// Valid reports whether the id is one of the known variants.
func (t TemplateID) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateMinimal:
		return true
	default:
		return false
	}
}
