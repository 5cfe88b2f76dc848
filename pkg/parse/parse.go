// Package parse turns raw model output into a storyboard result.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"storyboard/pkg/schema"
)

var (
	// ErrMalformedResponse is the parent of every parse failure.
	ErrMalformedResponse = errors.New("invalid AI output")

	// ErrNoJSONObject means the text holds no {...} candidate at all.
	ErrNoJSONObject = fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)

	// ErrInvalidJSONObject means a {...} candidate was found but does not parse.
	ErrInvalidJSONObject = fmt.Errorf("%w: JSON object in response is invalid", ErrMalformedResponse)
)

// Result parses the whole text first, then the span from the first '{' to the last '}'.
// Only a JSON object is accepted; null or any other top-level value has no candidate.
// Field values are trusted as returned by the model.
func Result(raw string) (*schema.GenerationResult, error) {
	var result schema.GenerationResult
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			return &result, nil
		}
	}

	candidate, ok := Candidate(raw)
	if !ok {
		return nil, ErrNoJSONObject
	}

	// Start over so nothing from the first attempt leaks through.
	result = schema.GenerationResult{}
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSONObject, err)
	}
	return &result, nil
}

// Candidate returns the greedy brace-delimited block of s.
func Candidate(s string) (string, bool) {
	i := strings.Index(s, "{")
	if i == -1 {
		return "", false
	}
	j := strings.LastIndex(s, "}")
	if j < i {
		return "", false
	}
	return s[i : j+1], true
}
