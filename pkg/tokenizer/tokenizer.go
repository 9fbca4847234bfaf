// Package tokenizer counts text tokens against tiktoken BPE encodings.
package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Encodings lists the encoding names promptcat supports.
var Encodings = []string{
	"o200k_base",
	"cl100k_base",
	"p50k_base",
	"p50k_edit",
	"r50k_base",
}

// DefaultEncoding is used when the caller does not select an encoding.
const DefaultEncoding = "cl100k_base"

// Tiktoken counts tokens against one BPE encoding. It is a single
// encoding-scoped resource: construct it with New before the run and
// release it with Close afterwards. The zero value counts nothing.
// Safe for concurrent use.
type Tiktoken struct {
	mu  sync.RWMutex
	enc *tiktoken.Tiktoken
}

// New initializes a counter for the named encoding. An unknown
// encoding is an error; there is no fallback encoding.
func New(encoding string) (*Tiktoken, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize encoding %q: %w", encoding, err)
	}
	return &Tiktoken{enc: enc}, nil
}

// Count returns the number of tokens in text. After Close it returns 0.
func (t *Tiktoken) Count(text string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.enc == nil {
		return 0
	}
	return len(t.enc.Encode(text, nil, nil))
}

// Close releases the encoding. Calling Close more than once is safe.
func (t *Tiktoken) Close() {
	t.mu.Lock()
	t.enc = nil
	t.mu.Unlock()
}
