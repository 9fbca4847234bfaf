package aggregate

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDeliverWritesFileWhenOutputPathSet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "combined.txt")
	result := &Result{Document: "doc body\n", Tokens: 3}

	copied := false
	err := Deliver(result, SinkOptions{
		OutputPath: out,
		CopyFunc:   func(string) error { copied = true; return nil },
	}, zap.NewNop())
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "doc body\n", string(data))
	assert.False(t, copied, "file output and clipboard are alternatives")
}

func TestDeliverCopiesToClipboardWithoutOutputPath(t *testing.T) {
	var copied string
	err := Deliver(&Result{Document: "clip me"}, SinkOptions{
		CopyFunc: func(s string) error { copied = s; return nil },
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "clip me", copied)
}

func TestDeliverPrintCombinesWithFileOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "combined.txt")
	var stdout bytes.Buffer

	err := Deliver(&Result{Document: "both\n"}, SinkOptions{
		OutputPath: out,
		Print:      true,
		Stdout:     &stdout,
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "both\n", stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "both\n", string(data))
}

func TestDeliverReportsSinkFailure(t *testing.T) {
	err := Deliver(&Result{Document: "x"}, SinkOptions{
		CopyFunc: func(string) error { return errors.New("no display") },
	}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clipboard")
}
