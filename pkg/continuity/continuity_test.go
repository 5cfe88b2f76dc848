package continuity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyboard/pkg/schema"
)

const anchor = "A young woman with short silver hair and a red scarf"

func result(n int) *schema.GenerationResult {
	r := &schema.GenerationResult{CharacterReference: anchor}
	for i := range n {
		r.Scenes = append(r.Scenes, schema.Scene{
			SceneNumber:  i + 1,
			VisualPrompt: anchor + ", standing on a pier",
		})
	}
	return r
}

func shortPolicy(t *testing.T) schema.SceneCountPolicy {
	p, err := schema.PolicyFor(schema.VideoShort)
	require.NoError(t, err)
	return p
}

func TestCheckClean(t *testing.T) {
	assert.Empty(t, Check(result(8), shortPolicy(t)))
}

func TestCheckSceneCount(t *testing.T) {
	ws := Check(result(7), shortPolicy(t))
	require.Len(t, ws, 1)
	assert.Equal(t, KindSceneCount, ws[0].Kind)
	assert.Equal(t, "got 7 scenes, want 8", ws[0].Message)

	long, err := schema.PolicyFor(schema.VideoLong)
	require.NoError(t, err)
	assert.Empty(t, Check(result(20), long))
	ws = Check(result(8), long)
	require.Len(t, ws, 1)
	assert.Equal(t, "got 8 scenes, want 18-22", ws[0].Message)
}

func TestCheckPrefixDrift(t *testing.T) {
	r := result(8)
	r.Scenes[3].VisualPrompt = "A young woman with long silver hair and a red scarf, running"
	r.Scenes[5].VisualPrompt = "She runs along the pier"

	ws := Check(r, shortPolicy(t))
	require.Len(t, ws, 2)

	assert.Equal(t, KindPrefix, ws[0].Kind)
	assert.Equal(t, 4, ws[0].Scene)
	assert.Equal(t, []string{"short"}, ws[0].Missing)
	assert.Equal(t, []string{"long"}, ws[0].Added)

	assert.Equal(t, 6, ws[1].Scene)
	assert.NotEmpty(t, ws[1].Missing)
	assert.Contains(t, ws[1].String(), "scene 6:")
}

func TestCheckNumberingAndAnchor(t *testing.T) {
	r := result(8)
	r.Scenes[2].SceneNumber = 7
	ws := Check(r, shortPolicy(t))
	require.Len(t, ws, 1)
	assert.Equal(t, KindNumbering, ws[0].Kind)
	assert.Equal(t, 3, ws[0].Scene)

	r = result(8)
	r.CharacterReference = " "
	ws = Check(r, shortPolicy(t))
	require.Len(t, ws, 1)
	assert.Equal(t, KindAnchor, ws[0].Kind)

	assert.Nil(t, Check(nil, shortPolicy(t)))
}
