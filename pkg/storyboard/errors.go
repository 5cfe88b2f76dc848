package storyboard

import (
	"errors"

	"storyboard/pkg/inference"
	"storyboard/pkg/parse"
	"storyboard/pkg/schema"
)

// FallbackMessage is surfaced when an external failure carries no message of its own.
const FallbackMessage = "failed to build a consistent storyboard; try a shorter script or another style"

var (
	ErrEmptyInput        = schema.ErrEmptyInput
	ErrMalformedResponse = parse.ErrMalformedResponse

	// ErrExternalCall matches every *ExternalCallError.
	ErrExternalCall = errors.New("generation call failed")
)

// ExternalCallError wraps a failure of the generative call itself. Its message
// is the provider's message, or FallbackMessage when there is none.
type ExternalCallError struct {
	Err error
}

func (e *ExternalCallError) Error() string {
	if msg := inference.Message(e.Err); msg != "" {
		return msg
	}
	return FallbackMessage
}

func (e *ExternalCallError) Unwrap() []error {
	return []error{ErrExternalCall, e.Err}
}
