// File: pkg/aggregate/sink.go
package aggregate

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// SinkOptions selects where a finished document goes. Print may be
// combined with either destination; writing to a file and copying to
// the clipboard are alternatives chosen by whether OutputPath is set.
type SinkOptions struct {
	OutputPath string             // Write the document to this file when non-empty.
	Print      bool               // Also print the document.
	Stdout     io.Writer          // Destination for Print; defaults to os.Stdout.
	CopyFunc   func(string) error // Clipboard writer; defaults to clipboard.WriteAll.
}

// Deliver hands the finished result to its destination. A delivery
// failure is returned to the caller but leaves the in-memory result
// intact.
func Deliver(result *Result, opts SinkOptions, logger *zap.Logger) error {
	if opts.Print {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := fmt.Fprint(out, result.Document); err != nil {
			return fmt.Errorf("failed to print document: %w", err)
		}
	}

	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, []byte(result.Document), 0o644); err != nil {
			logger.Error("Failed to write output file",
				zap.String("file", opts.OutputPath), zap.Error(err))
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("Wrote combined document",
			zap.String("file", opts.OutputPath),
			zap.Int("tokens", result.Tokens))
		return nil
	}

	copyFunc := opts.CopyFunc
	if copyFunc == nil {
		copyFunc = clipboard.WriteAll
	}
	if err := copyFunc(result.Document); err != nil {
		logger.Error("Failed to copy document to clipboard", zap.Error(err))
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logger.Info("Copied combined document to clipboard", zap.Int("tokens", result.Tokens))
	return nil
}
