package storyboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyboard/pkg/continuity"
	"storyboard/pkg/parse"
	"storyboard/pkg/prompt"
	"storyboard/pkg/schema"
)

const anchor = "A 40-year-old fisherman with a white beard, deep-set blue eyes and a yellow oilskin coat"

type fakeInferencer struct {
	calls    int
	payloads []prompt.Payload
	reply    string
	err      error
}

func (f *fakeInferencer) Generate(_ context.Context, p prompt.Payload) (string, error) {
	f.calls++
	f.payloads = append(f.payloads, p)
	return f.reply, f.err
}

func resultJSON(t *testing.T, scenes int) string {
	t.Helper()
	r := schema.GenerationResult{
		Title:              "Salt and Thunder",
		Summary:            "Seorang nelayan melawan badai.",
		CharacterReference: anchor,
		ThumbnailPrompt:    anchor + ", facing a wave",
		Tags:               []string{"storm"},
		Hashtags:           []string{"#sea"},
	}
	for i := range scenes {
		r.Scenes = append(r.Scenes, schema.Scene{
			SceneNumber:     i + 1,
			Timeframe:       fmt.Sprintf("0:%02d-0:%02d", i*5, i*5+5),
			VisualPrompt:    anchor + ", on the deck of a small boat",
			VoiceOver:       "Ombak datang.",
			Soundscape:      "thunder",
			ContinuityNotes: "same boat",
		})
	}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	return string(b)
}

func newGenerator(inf *fakeInferencer) *Generator {
	g := NewGenerator(inf)
	g.CountTokens = nil
	g.Now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }
	return g
}

func shortRequest() schema.GenerationRequest {
	req := schema.DefaultRequest()
	req.Script = "An old fisherman sails into a storm to find his lost son."
	return req
}

func TestGenerateShortEndToEnd(t *testing.T) {
	inf := &fakeInferencer{reply: resultJSON(t, 8)}
	rec, err := newGenerator(inf).Generate(context.Background(), shortRequest())
	require.NoError(t, err)

	require.Equal(t, 1, inf.calls)
	assert.Contains(t, inf.payloads[0].System, "Exactly 8 scenes")
	assert.Contains(t, inf.payloads[0].System, "9:16")

	assert.Len(t, rec.Result.Scenes, 8)
	assert.Equal(t, anchor, rec.Result.CharacterReference)
	assert.Empty(t, rec.Warnings)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 2026, rec.CreatedAt.Year())
	assert.Equal(t, 8, rec.Policy.Max)
}

func TestGenerateEmptyScriptNeverCalls(t *testing.T) {
	for _, script := range []string{"", "   ", "\n\t"} {
		inf := &fakeInferencer{reply: resultJSON(t, 8)}
		req := shortRequest()
		req.Script = script
		rec, err := newGenerator(inf).Generate(context.Background(), req)
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Zero(t, inf.calls)
	}
}

func TestGenerateInvalidOptionNeverCalls(t *testing.T) {
	inf := &fakeInferencer{reply: resultJSON(t, 8)}
	req := shortRequest()
	req.MusicStyle = "polka"
	_, err := newGenerator(inf).Generate(context.Background(), req)
	assert.ErrorIs(t, err, schema.ErrInvalidOption)
	assert.Zero(t, inf.calls)
}

func TestGenerateExternalFailureMessage(t *testing.T) {
	inf := &fakeInferencer{err: errors.New("quota exceeded")}
	_, err := newGenerator(inf).Generate(context.Background(), shortRequest())
	require.Error(t, err)
	assert.Equal(t, "quota exceeded", err.Error())
	assert.ErrorIs(t, err, ErrExternalCall)

	var callErr *ExternalCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, 1, inf.calls)
}

func TestGenerateExternalFailureFallback(t *testing.T) {
	inf := &fakeInferencer{err: errors.New("  ")}
	_, err := newGenerator(inf).Generate(context.Background(), shortRequest())
	require.Error(t, err)
	assert.Equal(t, FallbackMessage, err.Error())
}

func TestGenerateExternalFailureKeepsCause(t *testing.T) {
	inf := &fakeInferencer{err: fmt.Errorf("failed to generate content: %w", context.DeadlineExceeded)}
	_, err := newGenerator(inf).Generate(context.Background(), shortRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrExternalCall)
}

func TestGenerateNoJSONObject(t *testing.T) {
	inf := &fakeInferencer{reply: "I cannot comply."}
	rec, err := newGenerator(inf).Generate(context.Background(), shortRequest())
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, parse.ErrNoJSONObject)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "no JSON object found")
	assert.NotErrorIs(t, err, ErrExternalCall)
}

func TestGenerateEmptyReplyIsMalformed(t *testing.T) {
	for _, reply := range []string{"", "null"} {
		inf := &fakeInferencer{reply: reply}
		rec, err := newGenerator(inf).Generate(context.Background(), shortRequest())
		assert.Nil(t, rec, reply)
		assert.ErrorIs(t, err, parse.ErrNoJSONObject, reply)
		assert.NotErrorIs(t, err, ErrExternalCall, reply)
		assert.Equal(t, 1, inf.calls)
	}
}

func TestGenerateRecoversEmbeddedJSON(t *testing.T) {
	inf := &fakeInferencer{reply: "Here is your storyboard:\n" + resultJSON(t, 8) + "\nEnjoy!"}
	rec, err := newGenerator(inf).Generate(context.Background(), shortRequest())
	require.NoError(t, err)
	assert.Len(t, rec.Result.Scenes, 8)
}

func TestGenerateReportsDrift(t *testing.T) {
	req := shortRequest()
	req.VideoType = schema.VideoLong
	inf := &fakeInferencer{reply: resultJSON(t, 8)}
	rec, err := newGenerator(inf).Generate(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, rec.Warnings, 1)
	assert.Equal(t, continuity.KindSceneCount, rec.Warnings[0].Kind)
	assert.Contains(t, inf.payloads[0].System, "16:9")
}
