// Package continuity reports where a generated storyboard drifts from the
// rules the model was asked to follow. Findings are warnings, never errors:
// the model is outside our control and a drifting storyboard is still usable.
package continuity

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aryann/difflib"

	"storyboard/pkg/schema"
)

type Kind string

const (
	KindAnchor     Kind = "anchor"
	KindPrefix     Kind = "prefix"
	KindSceneCount Kind = "scene_count"
	KindNumbering  Kind = "numbering"
)

type Warning struct {
	Kind    Kind   `json:"kind"`
	Scene   int    `json:"scene,omitempty"`
	Message string `json:"message"`
	// Missing and Added describe how a scene's opening words differ from the anchor.
	Missing []string `json:"missing,omitempty"`
	Added   []string `json:"added,omitempty"`
}

func (w Warning) String() string {
	if w.Scene > 0 {
		return fmt.Sprintf("scene %d: %s", w.Scene, w.Message)
	}
	return w.Message
}

// Check inspects result against the verbatim prefix rule, the scene count policy
// and scene numbering.
func Check(result *schema.GenerationResult, policy schema.SceneCountPolicy) []Warning {
	if result == nil {
		return nil
	}
	var out []Warning

	anchor := strings.TrimSpace(result.CharacterReference)
	if anchor == "" {
		out = append(out, Warning{Kind: KindAnchor, Message: "character reference is empty"})
	}

	if n := len(result.Scenes); !policy.Allows(n) {
		want := fmt.Sprintf("%d", policy.Min)
		if !policy.Exact() {
			want = fmt.Sprintf("%d-%d", policy.Min, policy.Max)
		}
		out = append(out, Warning{
			Kind:    KindSceneCount,
			Message: fmt.Sprintf("got %d scenes, want %s", n, want),
		})
	}

	for i, scene := range result.Scenes {
		if scene.SceneNumber != i+1 {
			out = append(out, Warning{
				Kind:    KindNumbering,
				Scene:   i + 1,
				Message: fmt.Sprintf("scene number is %d", scene.SceneNumber),
			})
		}
		if anchor == "" || strings.HasPrefix(strings.TrimSpace(scene.VisualPrompt), anchor) {
			continue
		}
		missing, added := Drift(anchor, scene.VisualPrompt)
		out = append(out, Warning{
			Kind:    KindPrefix,
			Scene:   i + 1,
			Message: "visual prompt does not start with the character reference",
			Missing: missing,
			Added:   added,
		})
	}
	return out
}

// Drift diffs the anchor words against the same number of opening words of prompt.
func Drift(anchor, prompt string) (missing, added []string) {
	want := words(anchor)
	got := words(prompt)
	if len(got) > len(want) {
		got = got[:len(want)]
	}
	for _, rec := range difflib.Diff(want, got) {
		switch rec.Delta {
		case difflib.LeftOnly:
			missing = append(missing, rec.Payload)
		case difflib.RightOnly:
			added = append(added, rec.Payload)
		}
	}
	return missing, added
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'')
	})
}
