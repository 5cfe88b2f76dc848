// Package storyboard sequences one generation: validate, compose, call the
// model once, parse, and check continuity. It keeps no state between calls.
package storyboard

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"storyboard/pkg/continuity"
	"storyboard/pkg/inference"
	"storyboard/pkg/parse"
	"storyboard/pkg/prompt"
	"storyboard/pkg/schema"
	"storyboard/pkg/utils"
)

// Record is one completed generation. It is replaced wholesale, never merged.
type Record struct {
	ID        string                   `json:"id"`
	CreatedAt time.Time                `json:"createdAt"`
	Request   schema.GenerationRequest `json:"request"`
	Policy    schema.SceneCountPolicy  `json:"policy"`
	Result    schema.GenerationResult  `json:"result"`
	Warnings  []continuity.Warning     `json:"warnings,omitempty"`
}

type Generator struct {
	Inferencer inference.Inferencer
	Now        func() time.Time
	// CountTokens, when set, adds a prompt size estimate to the logs.
	CountTokens func(string) (int, error)
}

func NewGenerator(inf inference.Inferencer) *Generator {
	return &Generator{
		Inferencer:  inf,
		Now:         time.Now,
		CountTokens: utils.CountTokens,
	}
}

// Generate makes exactly one external call for a valid request and none for an invalid one.
// Errors are ErrEmptyInput, schema.ErrInvalidOption, *ExternalCallError or a parse error.
func (g *Generator) Generate(ctx context.Context, req schema.GenerationRequest) (*Record, error) {
	payload, err := prompt.Compose(req)
	if err != nil {
		return nil, err
	}
	policy, err := schema.PolicyFor(req.VideoType)
	if err != nil {
		return nil, err
	}

	fields := []any{"videoType", req.VideoType, "language", req.Language, "chars", len(req.Script)}
	if g.CountTokens != nil {
		if tokens, err := g.CountTokens(payload.System + payload.User); err == nil {
			fields = append(fields, "tokens", tokens)
		}
	}
	log.Info("generating storyboard", fields...)

	start := time.Now()
	raw, err := g.Inferencer.Generate(ctx, payload)
	if err != nil {
		log.Error("storyboard generation failed", "error", err, "elapsed", time.Since(start))
		return nil, &ExternalCallError{Err: err}
	}

	result, err := parse.Result(raw)
	if err != nil {
		log.Warn("model returned malformed storyboard", "error", err, "chars", len(raw))
		log.Debug("raw output", "output", raw)
		return nil, err
	}

	warnings := continuity.Check(result, policy)
	for _, w := range warnings {
		log.Warn("continuity drift", "kind", w.Kind, "scene", w.Scene, "message", w.Message)
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	rec := &Record{
		ID:        ksuid.New().String(),
		CreatedAt: now(),
		Request:   req,
		Policy:    policy,
		Result:    *result,
		Warnings:  warnings,
	}
	log.Info("storyboard ready", "id", rec.ID, "title", strings.TrimSpace(result.Title), "scenes", len(result.Scenes), "warnings", len(warnings), "elapsed", time.Since(start))
	return rec, nil
}
