package utils

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator produces free text from prompt parts.
type TextGenerator interface {
	GenerateText(ctx context.Context, parts ...string) (string, error)
}

type AIConfig struct {
	APIKey   string
	GenModel string
}

// GeminiGenerator holds one client for the life of the process.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, cfg AIConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client, model: cfg.GenModel}, nil
}

func (g *GeminiGenerator) Close() error { return g.client.Close() }

func (g *GeminiGenerator) GenerateText(ctx context.Context, parts ...string) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	in := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		in = append(in, genai.Text(p))
	}
	resp, err := m.GenerateContent(ctx, in...)
	if err != nil {
		return "", err
	}
	text := extractText(resp)
	if text == "" {
		return "", errors.New("model returned no text")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	if resp != nil {
		for _, c := range resp.Candidates {
			if c == nil || c.Content == nil {
				continue
			}
			for _, p := range c.Content.Parts {
				if t, ok := p.(genai.Text); ok {
					b.WriteString(string(t))
				}
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// StripFences removes markdown code fences a model may wrap around JSON.
func StripFences(s string) string {
	t := strings.TrimSpace(s)
	t = strings.ReplaceAll(t, "```json", "")
	t = strings.ReplaceAll(t, "```JSON", "")
	t = strings.ReplaceAll(t, "```", "")
	return strings.TrimSpace(t)
}
