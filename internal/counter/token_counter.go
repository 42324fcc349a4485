package counter

import (
	"fmt"
	"log/slog"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter implements token counting using tiktoken w/ cl100k_base encoding.
// It contributes totals to the aggregate summary; tokens are not a frequency
// unit, so TokenCounter implements only the Counter side.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter creates a new TokenCounter w/ cl100k_base encoding.
// Initialization fails when the encoding cannot be loaded; callers should
// treat token totals as best-effort and omit them rather than abort.
func NewTokenCounter() (Counter, error) {
	slog.Debug("Initializing TokenCounter with cl100k_base encoding")

	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cl100k_base encoding: %w", err)
	}

	return &TokenCounter{encoding: encoding}, nil
}

// Count returns the number of tokens in the given text using cl100k_base encoding.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	// encode text to tokens (nil params mean no special tokens allowed/disallowed)
	tokens := tc.encoding.Encode(text, nil, nil)
	tokenCount := len(tokens)

	slog.Debug("Token count calculated", "textLength", len(text), "tokenCount", tokenCount)
	return tokenCount
}

// Name returns the name of this counting method (for logging and debugging).
func (tc *TokenCounter) Name() string {
	return "tokens (cl100k_base)"
}
