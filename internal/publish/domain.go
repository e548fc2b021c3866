package publish

import "strings"

// DefaultExtension is used when the caller does not pick one.
const DefaultExtension = ".me"

// allowedExtensions are the TLDs offered for resume sites.
var allowedExtensions = map[string]struct{}{
	".me": {},
	".cv": {},
}

// NormalizeLabel lowercases the requested name and strips every character
// that is not a letter, digit or hyphen. "John Doe!" becomes "johndoe".
func NormalizeLabel(raw string) string {
	lowered := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FullDomain combines a normalized label with an extension. An empty
// extension falls back to the default; anything outside the allowed set is
// rejected, as is a label that normalizes to nothing.
func FullDomain(label, extension string) (string, error) {
	normalized := NormalizeLabel(label)
	if normalized == "" {
		return "", ErrInvalidDomain
	}

	ext := strings.ToLower(strings.TrimSpace(extension))
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrInvalidDomain
	}

	return normalized + ext, nil
}
