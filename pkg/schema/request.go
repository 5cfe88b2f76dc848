package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is returned for a blank or whitespace-only script.
	ErrEmptyInput = errors.New("please enter a story script first")

	// ErrInvalidOption is returned when a selection is outside its closed set.
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnknownVideoType means no scene count policy exists for the video type.
	ErrUnknownVideoType = errors.New("no scene count policy for video type")
)

// GenerationRequest carries one user action. It is built per request and discarded after use.
type GenerationRequest struct {
	Script      string      `json:"script"`
	VisualStyle VisualStyle `json:"visualStyle" validate:"enum"`
	MusicStyle  MusicStyle  `json:"musicStyle" validate:"enum"`
	Language    Language    `json:"language" validate:"enum"`
	VideoType   VideoType   `json:"videoType" validate:"enum"`
	Gender      Gender      `json:"gender" validate:"enum"`
}

// DefaultRequest holds the selections a fresh session starts with.
func DefaultRequest() GenerationRequest {
	return GenerationRequest{
		VisualStyle: VisualCinematic,
		MusicStyle:  MusicCinematic,
		Language:    LanguageIndonesian,
		VideoType:   VideoShort,
		Gender:      GenderFemale,
	}
}

// WithDefaults fills unset selections from DefaultRequest.
func (r GenerationRequest) WithDefaults() GenerationRequest {
	d := DefaultRequest()
	if r.VisualStyle == "" {
		r.VisualStyle = d.VisualStyle
	}
	if r.MusicStyle == "" {
		r.MusicStyle = d.MusicStyle
	}
	if r.Language == "" {
		r.Language = d.Language
	}
	if r.VideoType == "" {
		r.VideoType = d.VideoType
	}
	if r.Gender == "" {
		r.Gender = d.Gender
	}
	return r
}

// Validate reports ErrEmptyInput before anything else, then the first invalid selection.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Script) == "" {
		return ErrEmptyInput
	}
	opts := []struct {
		name string
		opt  Option
		raw  string
	}{
		{"visualStyle", r.VisualStyle, string(r.VisualStyle)},
		{"musicStyle", r.MusicStyle, string(r.MusicStyle)},
		{"language", r.Language, string(r.Language)},
		{"videoType", r.VideoType, string(r.VideoType)},
		{"gender", r.Gender, string(r.Gender)},
	}
	for _, o := range opts {
		if !o.opt.IsValid() {
			return fmt.Errorf("%w: %s %q", ErrInvalidOption, o.name, o.raw)
		}
	}
	return nil
}
