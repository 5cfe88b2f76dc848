package schema

import "fmt"

// SceneCountPolicy is derived from a VideoType and never stored.
type SceneCountPolicy struct {
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	AspectRatio string `json:"aspectRatio"`
	Orientation string `json:"orientation"`
}

// PolicyFor maps the two video formats to their scene range and aspect ratio.
// Any other value is a configuration error.
func PolicyFor(v VideoType) (SceneCountPolicy, error) {
	switch v {
	case VideoShort:
		return SceneCountPolicy{Min: 8, Max: 8, AspectRatio: "9:16", Orientation: "Vertical"}, nil
	case VideoLong:
		return SceneCountPolicy{Min: 18, Max: 22, AspectRatio: "16:9", Orientation: "Cinematic"}, nil
	}
	return SceneCountPolicy{}, fmt.Errorf("%w %q", ErrUnknownVideoType, v)
}

func (p SceneCountPolicy) Exact() bool { return p.Min == p.Max }

// Allows reports whether n scenes satisfy the policy.
func (p SceneCountPolicy) Allows(n int) bool { return n >= p.Min && n <= p.Max }
