package sites

import "time"

// Site is a published resume website record keyed by domain. HTML is served
// back byte-for-byte, so it is stored exactly as generated.
type Site struct {
	Domain      string
	ResumeID    string
	HTML        string
	TemplateID  string
	PublishedAt time.Time
}
