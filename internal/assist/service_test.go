package assist

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGenerator struct {
	lastSystem string
	lastPrompt string
	out        string
	err        error
}

func (f *fakeGenerator) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastPrompt = prompt
	return f.out, f.err
}

func (f *fakeGenerator) Close() error { return nil }

func TestSuggestExperience(t *testing.T) {
	gen := &fakeGenerator{out: "- Led the team"}
	svc := NewService(gen)

	var req Request
	req.Type = TypeExperience
	req.Data.Position = "Staff Engineer"
	req.Data.Company = "Initech"

	content, err := svc.Suggest(context.Background(), req)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if content != "- Led the team" {
		t.Fatalf("got %q", content)
	}
	if !strings.Contains(gen.lastPrompt, "Position: Staff Engineer") {
		t.Fatalf("prompt missing position: %s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "Company: Initech") {
		t.Fatalf("prompt missing company: %s", gen.lastPrompt)
	}
	// blank description falls back to a readable placeholder
	if !strings.Contains(gen.lastPrompt, "Current description: None provided") {
		t.Fatalf("prompt missing description fallback: %s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastSystem, "bullet points") {
		t.Fatalf("wrong system prompt: %s", gen.lastSystem)
	}
}

func TestSuggestSummary(t *testing.T) {
	gen := &fakeGenerator{out: "A seasoned engineer."}
	svc := NewService(gen)

	var req Request
	req.Type = TypeSummary
	req.Data.FullName = "Jane Smith"
	req.Data.Title = "Staff Engineer"

	if _, err := svc.Suggest(context.Background(), req); err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, "Name: Jane Smith") {
		t.Fatalf("prompt missing name: %s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "Experience highlights: Various professional experiences") {
		t.Fatalf("prompt missing highlights fallback: %s", gen.lastPrompt)
	}
}

func TestSuggestUnknownType(t *testing.T) {
	svc := NewService(&fakeGenerator{})

	var req Request
	req.Type = "cover-letter"
	if _, err := svc.Suggest(context.Background(), req); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestSuggestPropagatesGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("rate limited")}
	svc := NewService(gen)

	var req Request
	req.Type = TypeSummary
	if _, err := svc.Suggest(context.Background(), req); err == nil {
		t.Fatalf("expected error")
	}
}
