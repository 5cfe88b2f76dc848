package inference

import (
	"errors"
	"strings"

	"google.golang.org/genai"
)

// Message returns the provider's own error message when err carries one,
// otherwise err's text. A nil error yields "".
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	var apiPtr *genai.APIError
	if errors.As(err, &apiPtr) && apiPtr != nil && strings.TrimSpace(apiPtr.Message) != "" {
		return apiPtr.Message
	}
	return strings.TrimSpace(err.Error())
}
