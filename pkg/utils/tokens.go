package utils

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// tokenEncoding is only an estimate for Gemini prompts; cl100k is close enough for logging.
var tokenEncoding = sync.OnceValues(func() (*tiktoken.Tiktoken, error) {
	return tiktoken.GetEncoding("cl100k_base")
})

// CountTokens estimates the token count of text.
func CountTokens(text string) (int, error) {
	tkm, err := tokenEncoding()
	if err != nil {
		return 0, err
	}
	return len(tkm.Encode(text, nil, nil)), nil
}
