package filingest

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// defaultEncoding is used when no tiktoken encoding name is given.
const defaultEncoding = "cl100k_base"

// TokenCounter estimates the token count of a text for the statistics in
// [Stats]. The default is [HeuristicCounter]; use [NewTiktokenCounter] for
// exact BPE counts.
type TokenCounter interface {
	Count(text string) int
}

// HeuristicCounter approximates tokens as len(text)/4, the usual
// chars-per-token rule of thumb for English prose. It needs no external
// resources.
type HeuristicCounter struct{}

func (HeuristicCounter) Count(text string) int {
	return (len(text) + 3) / 4
}

// TiktokenCounter counts tokens with a tiktoken BPE encoding. The encoding
// is loaded once at construction; tiktoken-go may fetch encoding data on
// first use, so construction fails fast when the resource is unavailable
// rather than degrading silently.
type TiktokenCounter struct {
	encoding string
	tke      *tiktoken.Tiktoken
}

// NewTiktokenCounter creates a counter for the named encoding
// (e.g. "cl100k_base", the default when empty).
func NewTiktokenCounter(encoding string) (*TiktokenCounter, error) {
	if encoding == "" {
		encoding = defaultEncoding
	}
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encoding, err)
	}
	return &TiktokenCounter{encoding: encoding, tke: tke}, nil
}

// Count returns the number of BPE tokens in text.
func (tc *TiktokenCounter) Count(text string) int {
	return len(tc.tke.Encode(text, nil, nil))
}

// Encoding returns the name of the encoding in use.
func (tc *TiktokenCounter) Encoding() string { return tc.encoding }

var _ TokenCounter = HeuristicCounter{}
var _ TokenCounter = (*TiktokenCounter)(nil)
