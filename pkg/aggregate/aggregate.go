// Package aggregate implements the concurrent aggregation engine:
// target expansion with exclusion filtering, task distribution across a
// worker pool, shared-buffer merging, and token accounting.
package aggregate

import (
	"time"

	"go.uber.org/zap"
)

// TokenCounter tallies tokens for aggregated content. Implementations
// must be safe for concurrent use; workers call Count in parallel.
type TokenCounter interface {
	Count(text string) int
}

// Result is the outcome of a run: the assembled document and the token
// total across every successfully loaded fragment.
type Result struct {
	Document string
	Tokens   int
}

// Run executes one aggregation. It expands the targets into the
// structure listing and the task list, seeds the document with the
// listing, then drains the tasks across the worker pool and returns the
// merged document. The token counter must already be initialized; Run
// never tears it down.
//
// Fragment order in the content section follows task completion order
// and is not deterministic; the listing always is.
func Run(cfg Config, counter TokenCounter, logger *zap.Logger) (*Result, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", zap.Error(err))
		return nil, err
	}

	exp := Expand(cfg.Targets, cfg.ExcludePatterns, logger)
	if len(exp.Tasks) == 0 {
		logger.Error("Nothing to aggregate", zap.Int("targetCount", len(cfg.Targets)))
		return nil, ErrNoTargets
	}

	r := &runner{cfg: cfg, counter: counter, logger: logger}

	// The listing is written before any worker starts, so it precedes
	// every content fragment in the document.
	for _, line := range exp.Listing {
		r.agg.buf.WriteString(line)
		r.agg.buf.WriteString("\n")
	}
	r.agg.buf.WriteString("\n")

	r.dispatch(newTaskQueue(exp.Tasks))

	logger.Info("Aggregation complete",
		zap.Int("tasks", len(exp.Tasks)),
		zap.Int("tokens", r.agg.tokens),
		zap.Int("bytes", r.agg.buf.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{Document: r.agg.buf.String(), Tokens: r.agg.tokens}, nil
}
