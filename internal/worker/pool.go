package worker

// Task produces a value of type T.
type Task[T any] func() T

// Result pairs a task's output with the id it was submitted under.
type Result[T any] struct {
	ID    string
	Value T
}

// Pool runs tasks on a fixed number of goroutines. Submit tasks, then
// read exactly as many results as were submitted; results arrive in
// completion order, not submission order.
type Pool[T any] struct {
	tasks   chan taskWrapper[T]
	results chan Result[T]
}

type taskWrapper[T any] struct {
	id string
	fn Task[T]
}

// NewPool starts workerCount workers with the given channel buffer size.
func NewPool[T any](workerCount, bufferSize int) *Pool[T] {
	p := &Pool[T]{
		tasks:   make(chan taskWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool[T]) worker() {
	for t := range p.tasks {
		p.results <- Result[T]{ID: t.id, Value: t.fn()}
	}
}

// Submit queues a task under the given id.
func (p *Pool[T]) Submit(id string, fn Task[T]) {
	p.tasks <- taskWrapper[T]{id: id, fn: fn}
}

// Results returns the channel task outputs are delivered on.
func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Close stops the workers once all submitted tasks have drained.
// No Submit may follow a Close.
func (p *Pool[T]) Close() {
	close(p.tasks)
}
