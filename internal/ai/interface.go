package ai

import (
	"context"
)

// TextGenerator defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type TextGenerator interface {
	// Generate sends a system instruction and a user instruction to the model
	// and returns the raw generated text. The pipeline always asks for a bare
	// JSON value, but callers must still run the result through Strip before
	// decoding because models occasionally wrap output in Markdown fences.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
