// File: pkg/aggregate/worker.go
package aggregate

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// aggregator owns the shared document buffer and the running token
// total. One mutex guards both; workers hold it only while appending an
// already-built fragment, never during reads, fetches, or counting.
type aggregator struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	tokens int
}

func (a *aggregator) merge(fragment string, tokens int) {
	a.mu.Lock()
	a.buf.WriteString(fragment)
	a.tokens += tokens
	a.mu.Unlock()
}

// runner carries the state shared by every worker of one run.
type runner struct {
	cfg     Config
	counter TokenCounter
	agg     aggregator
	logger  *zap.Logger
}

// dispatch drains the queue with min(threads, task count) workers. A
// single effective worker runs on the calling goroutine with no pool;
// otherwise the pool is spawned and the caller waits unconditionally
// for every worker to finish.
func (r *runner) dispatch(queue *taskQueue) {
	workers := r.cfg.Threads
	if queue.size() < workers {
		workers = queue.size()
	}

	switch {
	case workers == 0:
		return
	case workers == 1:
		r.runWorker(queue, r.logger)
		return
	}

	r.logger.Debug("Starting worker pool",
		zap.Int("workers", workers),
		zap.Int("tasks", queue.size()))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		workerLogger := r.logger.With(zap.Int("workerID", w))
		go func() {
			defer wg.Done()
			r.runWorker(queue, workerLogger)
		}()
	}
	wg.Wait()
}

// runWorker claims tasks until the queue is drained. Each claim is an
// atomic cursor increment, so no task is handed out twice.
func (r *runner) runWorker(queue *taskQueue, logger *zap.Logger) {
	for {
		task, ok := queue.next()
		if !ok {
			return
		}
		fragment, tokens := r.processTask(task, logger)
		r.agg.merge(fragment, tokens)
	}
}

// processTask builds the private fragment for one task: a bracketed
// source header line, the content or an inline diagnostic, and a
// blank-line terminator. Tokens are counted only for content that was
// actually loaded; a failed task contributes zero and never aborts the
// batch.
func (r *runner) processTask(task FileTask, logger *zap.Logger) (string, int) {
	source := task.Display()

	content, err := r.loadTask(task)
	if err != nil {
		logger.Warn("Task failed; recording inline error",
			zap.String("source", source), zap.Error(err))
		return fmt.Sprintf("[%s]\n%v\n\n", source, err), 0
	}

	tokens := r.counter.Count(content)
	logger.Debug("Processed task",
		zap.String("source", source),
		zap.Int("bytes", len(content)),
		zap.Int("tokens", tokens))
	return fmt.Sprintf("[%s]\n%s\n\n", source, content), tokens
}

// loadTask reads the task's file or fetches its URL.
func (r *runner) loadTask(task FileTask) (string, error) {
	if task.URL {
		return fetchURL(task.Path)
	}
	return readFileBounded(task.Resolve(), r.cfg.MaxFileBytes)
}

// readFileBounded reads a whole file, rejecting anything larger than
// maxBytes before reading a single byte of it.
func readFileBounded(path string, maxBytes int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	if info.Size() > maxBytes {
		return "", fmt.Errorf("file %s exceeds maximum size (%d > %d bytes)", path, info.Size(), maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	return string(data), nil
}
