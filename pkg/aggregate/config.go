// File: pkg/aggregate/config.go
package aggregate

import (
	"errors"
	"fmt"
)

// Fatal configuration errors. Both abort a run before any task is
// dispatched.
var (
	// ErrBadThreadCount reports a requested worker count below one.
	ErrBadThreadCount = errors.New("invalid thread count")
	// ErrNoTargets reports that expansion produced nothing to aggregate.
	ErrNoTargets = errors.New("no aggregatable targets")
)

// DefaultMaxFileBytes is the per-file read bound. A file larger than
// this is recorded as an inline error instead of content.
const DefaultMaxFileBytes int64 = 10 * 1024 * 1024

// Config holds the settings for a single aggregation run.
type Config struct {
	Targets         []string // File paths, directory paths, and http(s) URLs to aggregate.
	ExcludePatterns []string // Patterns suppressing paths from listing and content alike.
	Threads         int      // Upper bound on concurrent workers; the effective count never exceeds the task count.
	MaxFileBytes    int64    // Per-file size ceiling; zero selects DefaultMaxFileBytes.
}

// Validate checks the fatal configuration preconditions and fills in
// defaults.
func (c *Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("%w: %d", ErrBadThreadCount, c.Threads)
	}
	if c.MaxFileBytes <= 0 {
		c.MaxFileBytes = DefaultMaxFileBytes
	}
	return nil
}
