package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyFor(t *testing.T) {
	short, err := PolicyFor(VideoShort)
	require.NoError(t, err)
	assert.Equal(t, 8, short.Min)
	assert.Equal(t, 8, short.Max)
	assert.Equal(t, "9:16", short.AspectRatio)
	assert.True(t, short.Exact())

	long, err := PolicyFor(VideoLong)
	require.NoError(t, err)
	assert.Equal(t, 18, long.Min)
	assert.Equal(t, 22, long.Max)
	assert.Equal(t, "16:9", long.AspectRatio)
	assert.True(t, long.Allows(20))
	assert.False(t, long.Allows(23))

	_, err = PolicyFor("vertical")
	assert.ErrorIs(t, err, ErrUnknownVideoType)
}

func TestPreviewsAreExhaustive(t *testing.T) {
	for _, v := range VisualStyles() {
		assert.NotEmpty(t, v.Preview(), "visual style %q has no preview", v)
		assert.NotEmpty(t, v.Label(), "visual style %q has no label", v)
	}
	for _, m := range MusicStyles() {
		assert.NotEmpty(t, m.Preview(), "music style %q has no preview", m)
		assert.NotEmpty(t, m.Label(), "music style %q has no label", m)
	}
	for _, l := range Languages() {
		assert.NotEmpty(t, l.Label())
	}
	for _, v := range VideoTypes() {
		assert.NotEmpty(t, v.Label())
		_, err := PolicyFor(v)
		assert.NoError(t, err)
	}
	for _, g := range Genders() {
		assert.NotEmpty(t, g.Label())
	}
}

func TestValidate(t *testing.T) {
	req := DefaultRequest()
	req.Script = "  \n\t "
	assert.ErrorIs(t, req.Validate(), ErrEmptyInput)

	req.Script = "A lighthouse keeper finds a letter."
	assert.NoError(t, req.Validate())

	bad := req
	bad.Gender = "robot"
	err := bad.Validate()
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Contains(t, err.Error(), "gender")

	// Blank script wins over invalid selections.
	bad.Script = ""
	assert.ErrorIs(t, bad.Validate(), ErrEmptyInput)
}

func TestWithDefaults(t *testing.T) {
	req := GenerationRequest{Script: "x", Language: LanguageJapanese}.WithDefaults()
	assert.Equal(t, LanguageJapanese, req.Language)
	assert.Equal(t, VisualCinematic, req.VisualStyle)
	assert.Equal(t, VideoShort, req.VideoType)
	assert.Equal(t, GenderFemale, req.Gender)
}

func TestResultSchemaRequiredFields(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"title", "summary", "characterReference", "scenes", "tags", "hashtags", "thumbnailPrompt"},
		ResultSchema.Required)

	scenes, ok := ResultSchema.Properties.Get("scenes")
	require.True(t, ok)
	require.NotNil(t, scenes.Items)
	assert.ElementsMatch(t,
		[]string{"sceneNumber", "timeframe", "visualPrompt", "voiceOver", "soundscape", "continuityNotes"},
		scenes.Items.Required)

	number, ok := scenes.Items.Properties.Get("sceneNumber")
	require.True(t, ok)
	assert.Equal(t, "integer", number.Type)
}
