package aggregate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		patterns []string
		want     bool
	}{
		{"no patterns", "main.go", nil, false},
		{"exact match", "main.go", []string{"main.go"}, true},
		{"suffix match", "cmd/main.go", []string{"main.go"}, true},
		{"substring match", "src/generated/api.go", []string{"generated"}, true},
		{"directory prefix", "vendor/lib/util.go", []string{"vendor"}, true},
		{"trailing separator pattern", "vendor/lib/util.go", []string{"vendor/"}, true},
		{"one character pattern is very broad", "cmd/main.go", []string{"a"}, true},
		{"no match", "cmd/main.go", []string{"test", ".md"}, false},
		{"later pattern matches", "notes.md", []string{"test", ".md"}, true},
		{"pattern longer than path", "a.txt", []string{"deep/a.txt"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excluded(tt.path, tt.patterns))
		})
	}
}

func TestLoadPatternFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore.txt")
	body := "# tooling\n\nnode_modules\n  .git  \n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	patterns, err := LoadPatternFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"node_modules", ".git"}, patterns)
}

func TestLoadPatternFileMissing(t *testing.T) {
	patterns, err := LoadPatternFile(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Nil(t, patterns)
}
