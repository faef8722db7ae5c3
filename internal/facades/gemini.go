package facades

import (
	"context"

	"github.com/svolkov/ainotes/internal/logger"
	"google.golang.org/genai"
)

// GeminiFacade implements text generation using the Gemini API.
type GeminiFacade struct {
	client *genai.Client
	model  string
}

// NewGeminiFacade creates a facade bound to one model.
func NewGeminiFacade(ctx context.Context, apiKey, model string) (*GeminiFacade, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Log.Errorw("failed to create Gemini client", "error", err)
		return nil, err
	}

	return &GeminiFacade{client: client, model: model}, nil
}

// Generate sends the prompt to the model and returns the generated text
// verbatim. Cancellation and deadlines come from the caller's context.
func (f *GeminiFacade) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := f.client.Models.GenerateContent(ctx, f.model, genai.Text(prompt), nil)
	if err != nil {
		logger.Log.Errorw("failed to generate content via Gemini",
			"model", f.model, "error", err)
		return "", err
	}

	return resp.Text(), nil
}
