package aggregate

import "path/filepath"

// FileTask is one unit of aggregation work: a single file or a single
// remote resource. Tasks are created during expansion and each one is
// claimed by exactly one worker.
type FileTask struct {
	Path     string // File path or URL. Relative to Origin unless FullPath or URL is set.
	Origin   string // The target this task was discovered under.
	FullPath bool   // Path is complete on its own and must not be joined with Origin.
	URL      bool   // Path is a remote resource fetched over HTTP.
}

// Resolve returns the location a worker reads: the URL itself, the
// path itself for full-path tasks, or Origin joined with Path.
func (t FileTask) Resolve() string {
	if t.URL || t.FullPath {
		return t.Path
	}
	return filepath.Join(t.Origin, t.Path)
}

// Display returns the label used in the bracketed source header of the
// task's fragment. It matches the task's structure listing line.
func (t FileTask) Display() string {
	if t.URL || t.FullPath {
		return filepath.ToSlash(t.Path)
	}
	return joinDisplay(t.Origin, t.Path)
}
