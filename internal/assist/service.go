package assist

import (
	"context"
	"errors"
)

// Suggestion types accepted by the service.
const (
	TypeExperience = "experience"
	TypeSummary    = "summary"
)

// ErrUnknownType indicates an unsupported suggestion type.
var ErrUnknownType = errors.New("unknown suggestion type")

// Request carries the context the model writes from. Only the fields
// relevant to the requested type are read.
type Request struct {
	Type string `json:"type"`
	Data struct {
		Position             string `json:"position"`
		Company              string `json:"company"`
		Description          string `json:"description"`
		FullName             string `json:"fullName"`
		Title                string `json:"title"`
		ExperienceHighlights string `json:"experienceHighlights"`
	} `json:"data"`
}

// Service turns suggestion requests into prompts and runs them through the
// generator.
type Service struct {
	Gen Generator
}

// NewService constructs a Service.
func NewService(gen Generator) *Service {
	return &Service{Gen: gen}
}

// Suggest generates content for the request.
func (s *Service) Suggest(ctx context.Context, req Request) (string, error) {
	switch req.Type {
	case TypeExperience:
		return s.Gen.Generate(ctx, experienceSystemPrompt, experiencePrompt(req.Data.Position, req.Data.Company, req.Data.Description))
	case TypeSummary:
		return s.Gen.Generate(ctx, summarySystemPrompt, summaryPrompt(req.Data.FullName, req.Data.Title, req.Data.ExperienceHighlights))
	default:
		return "", ErrUnknownType
	}
}
