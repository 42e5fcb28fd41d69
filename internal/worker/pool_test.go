package worker_test

import (
	"fmt"
	"testing"

	"github.com/verbdrill/backend/internal/worker"
)

func TestPool_RunsAllTasks(t *testing.T) {
	pool := worker.NewPool[int](3, 10)
	for i := 0; i < 10; i++ {
		n := i
		pool.Submit(fmt.Sprintf("task-%d", n), func() int { return n * n })
	}
	pool.Close()

	got := make(map[string]int)
	for i := 0; i < 10; i++ {
		res := <-pool.Results()
		got[res.ID] = res.Value
	}

	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("task-%d", i)
		if got[id] != i*i {
			t.Errorf("expected %s = %d, got %d", id, i*i, got[id])
		}
	}
}

func TestPool_SingleWorkerPreservesOrder(t *testing.T) {
	pool := worker.NewPool[int](1, 5)
	for i := 0; i < 5; i++ {
		n := i
		pool.Submit(fmt.Sprintf("task-%d", n), func() int { return n })
	}
	pool.Close()

	for i := 0; i < 5; i++ {
		res := <-pool.Results()
		if res.Value != i {
			t.Errorf("expected result %d in order, got %d", i, res.Value)
		}
	}
}
