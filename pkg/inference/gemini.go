package inference

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"

	"storyboard/pkg/prompt"
)

const DefaultGeminiModel = "gemini-3-pro-preview"

type GeminiInferencer struct {
	client *genai.Client
	model  string

	MaxOutputTokens int32
	Temperature     *float32
}

// NewGeminiInferencer creates a Gemini API client for model, falling back to DefaultGeminiModel.
func NewGeminiInferencer(ctx context.Context, apiKey string, model string) (*GeminiInferencer, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiInferencer{
		client: client,
		model:  model,
	}, nil
}

func (o *GeminiInferencer) Model() string { return o.model }

// Generate sends one GenerateContent request constrained to JSON output.
// Blocked or empty candidates come back as empty text for the parser to reject.
func (o *GeminiInferencer) Generate(ctx context.Context, payload prompt.Payload) (string, error) {
	result, err := o.client.Models.GenerateContent(
		ctx,
		o.model,
		genai.Text(payload.User),
		o.config(payload),
	)
	if err != nil {
		return "", err
	}

	text := result.Text()
	if text == "" && len(result.Candidates) > 0 {
		log.Warn("empty completion", "model", o.model, "finishReason", result.Candidates[0].FinishReason)
	}
	return text, nil
}

func (o *GeminiInferencer) config(payload prompt.Payload) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SystemInstruction:  genai.NewContentFromText(payload.System, genai.RoleUser),
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: payload.Schema,
		Temperature:        o.Temperature,
	}
	if o.MaxOutputTokens > 0 {
		config.MaxOutputTokens = o.MaxOutputTokens
	}
	return config
}
