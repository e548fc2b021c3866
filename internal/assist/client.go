// Package assist generates suggested resume content with Gemini. Suggestions
// are advisory: a failure here never touches stored resume data.
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator is the LLM abstraction used by the assist service.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, prompt string) (string, error)
	Close() error
}

// GeminiGenerator implements Generator on the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate produces text for the prompt under the given system instruction.
func (g *GeminiGenerator) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.7)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from model")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("no text in model response")
	}
	return out, nil
}

// PlaceholderGenerator stands in when no API key is configured; every call
// fails without touching the network.
type PlaceholderGenerator struct{}

// Generate always reports the generator as unconfigured.
func (PlaceholderGenerator) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	_ = ctx
	_ = systemPrompt
	_ = prompt
	return "", errors.New("assist generator not configured")
}

// Close is a no-op.
func (PlaceholderGenerator) Close() error { return nil }

var (
	_ Generator = (*GeminiGenerator)(nil)
	_ Generator = PlaceholderGenerator{}
)
