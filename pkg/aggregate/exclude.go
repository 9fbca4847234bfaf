// File: pkg/aggregate/exclude.go
package aggregate

import (
	"fmt"
	"os"
	"strings"
)

// Excluded reports whether path matches any pattern in patterns. A
// pattern matches when the path equals it, ends with it, contains it
// anywhere as a substring, or starts with the pattern normalized to end
// with a path separator. Patterns are evaluated in order and the first
// match wins. Matching is purely textual; no filesystem access.
//
// Substring matching makes short patterns very broad: a one-character
// pattern can exclude nearly every path.
func Excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if path == pattern ||
			strings.HasSuffix(path, pattern) ||
			strings.Contains(path, pattern) ||
			strings.HasPrefix(path, ensureTrailingSlash(pattern)) {
			return true
		}
	}
	return false
}

// ensureTrailingSlash normalizes a path or pattern to end with a
// separator, for directory-prefix matching and directory listing lines.
func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

// LoadPatternFile reads exclusion patterns from a plain text file, one
// pattern per line. Blank lines and lines starting with '#' are
// skipped. A file that does not exist yields no patterns and no error.
func LoadPatternFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}

	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}
