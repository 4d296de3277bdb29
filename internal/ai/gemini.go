package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements TextGenerator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Matches the creative-but-structured balance the planning prompts were tuned for.
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(3000)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Generate sends the prompt pair to Gemini and returns the concatenated text parts.
// Gemini has no separate system-message channel worth the indirection here, so the
// system prompt is prepended to the user prompt in one request.
func (p *GeminiProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	fullPrompt := fmt.Sprintf("%s\n\n%s", systemPrompt, userPrompt)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return responseText.String(), nil
}
