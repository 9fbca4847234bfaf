package aggregate

import "sync/atomic"

// taskQueue hands out pre-enumerated tasks through an atomic claim
// cursor. Every index in [0, len(tasks)) is claimed exactly once across
// all callers, and claiming never blocks.
type taskQueue struct {
	tasks  []FileTask
	cursor atomic.Int64
}

func newTaskQueue(tasks []FileTask) *taskQueue {
	return &taskQueue{tasks: tasks}
}

// next claims the next unclaimed task. ok is false once the queue is
// drained; a drained queue never hands out another task.
func (q *taskQueue) next() (task FileTask, ok bool) {
	idx := q.cursor.Add(1) - 1
	if idx >= int64(len(q.tasks)) {
		return FileTask{}, false
	}
	return q.tasks[idx], true
}

func (q *taskQueue) size() int {
	return len(q.tasks)
}
