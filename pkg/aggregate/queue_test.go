package aggregate

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskQueueClaimsEachTaskExactlyOnce(t *testing.T) {
	const taskCount = 200
	const workers = 8

	list := make([]FileTask, taskCount)
	for i := range list {
		list[i] = FileTask{Path: strconv.Itoa(i)}
	}
	queue := newTaskQueue(list)

	visits := make([]atomic.Int32, taskCount)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				task, ok := queue.next()
				if !ok {
					return
				}
				idx, err := strconv.Atoi(task.Path)
				if err != nil {
					t.Error(err)
					return
				}
				visits[idx].Add(1)
			}
		}()
	}
	wg.Wait()

	for i := range visits {
		assert.Equal(t, int32(1), visits[i].Load(), "task %d", i)
	}
}

func TestTaskQueueDrainedStaysDrained(t *testing.T) {
	queue := newTaskQueue(nil)

	_, ok := queue.next()
	assert.False(t, ok)
	_, ok = queue.next()
	assert.False(t, ok)
}
