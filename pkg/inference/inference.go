package inference

import (
	"context"

	"storyboard/pkg/prompt"
)

// Inferencer performs the single outbound generation call and returns the raw model text.
type Inferencer interface {
	Generate(ctx context.Context, payload prompt.Payload) (string, error)
}

// InferencerFunc adapts a function to Inferencer.
type InferencerFunc func(ctx context.Context, payload prompt.Payload) (string, error)

func (f InferencerFunc) Generate(ctx context.Context, payload prompt.Payload) (string, error) {
	return f(ctx, payload)
}
