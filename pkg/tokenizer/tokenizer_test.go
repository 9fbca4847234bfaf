package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownEncoding(t *testing.T) {
	_, err := New("latin-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latin-1")
}

func TestCountAfterCloseReturnsZero(t *testing.T) {
	var tk Tiktoken
	tk.Close()
	tk.Close()
	assert.Zero(t, tk.Count("some text"))
}

func TestDefaultEncodingIsSupported(t *testing.T) {
	assert.Contains(t, Encodings, DefaultEncoding)
}
