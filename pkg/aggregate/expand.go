// File: pkg/aggregate/expand.go
package aggregate

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Expansion is the sequential first phase of a run: the structure
// listing plus the task list, both derived from the same targets under
// the same exclusion patterns.
type Expansion struct {
	Listing []string
	Tasks   []FileTask
}

// Expand resolves every target into listing lines and tasks, preserving
// target order. Directory targets are traversed depth-first in sorted
// entry order, so two runs over an unchanged tree produce identical
// listings. A target that cannot be stat'ed is recorded verbatim in the
// listing and produces no task.
func Expand(targets, patterns []string, logger *zap.Logger) *Expansion {
	exp := &Expansion{}
	logger.Debug("Expanding targets",
		zap.Int("targetCount", len(targets)),
		zap.Int("patternCount", len(patterns)))

	for _, target := range targets {
		display := filepath.ToSlash(target)
		if Excluded(display, patterns) {
			logger.Debug("Skipping excluded target", zap.String("target", target))
			continue
		}

		if isURL(target) {
			exp.Listing = append(exp.Listing, target)
			exp.Tasks = append(exp.Tasks, FileTask{Path: target, Origin: target, FullPath: true, URL: true})
			continue
		}

		info, err := os.Stat(target)
		if err != nil {
			logger.Warn("Cannot stat target; recording it unexpanded",
				zap.String("target", target), zap.Error(err))
			exp.Listing = append(exp.Listing, display)
			continue
		}

		if info.IsDir() {
			exp.Listing = append(exp.Listing, ensureTrailingSlash(display))
			exp.walkDirectory(target, "", patterns, logger)
			continue
		}

		exp.Listing = append(exp.Listing, display)
		exp.Tasks = append(exp.Tasks, FileTask{Path: target, Origin: target, FullPath: true})
	}

	logger.Debug("Expansion complete",
		zap.Int("listingLines", len(exp.Listing)),
		zap.Int("tasks", len(exp.Tasks)))
	return exp
}

// walkDirectory emits listing lines and tasks for every retained entry
// under the directory target root. rel is the subdirectory currently
// being read, relative to root ("" at the top). Entries are checked
// against the patterns twice, as the root-joined path and as their own
// relative path, and retained only when both checks pass; this covers
// patterns authored root-relative as well as bare fragments. Excluded
// directories are pruned without being descended.
func (exp *Expansion) walkDirectory(root, rel string, patterns []string, logger *zap.Logger) {
	current := root
	if rel != "" {
		current = filepath.Join(root, rel)
	}

	// os.ReadDir returns entries sorted by name.
	entries, err := os.ReadDir(current)
	if err != nil {
		logger.Warn("Failed to read directory", zap.String("directory", current), zap.Error(err))
		return
	}

	for _, entry := range entries {
		entryRel := entry.Name()
		if rel != "" {
			entryRel = rel + "/" + entry.Name()
		}
		joined := joinDisplay(root, entryRel)

		if Excluded(joined, patterns) || Excluded(entryRel, patterns) {
			logger.Debug("Skipping excluded entry", zap.String("path", joined))
			continue
		}

		if entry.IsDir() {
			exp.Listing = append(exp.Listing, joined+"/")
			exp.walkDirectory(root, entryRel, patterns, logger)
			continue
		}

		exp.Listing = append(exp.Listing, joined)
		exp.Tasks = append(exp.Tasks, FileTask{Path: entryRel, Origin: root})
	}
}

// joinDisplay joins a directory target with an entry path for listing
// lines and fragment headers, keeping the target's spelling as given.
func joinDisplay(root, rel string) string {
	return strings.TrimSuffix(filepath.ToSlash(root), "/") + "/" + rel
}

// isURL reports whether a target names a remote resource rather than a
// local path.
func isURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}
