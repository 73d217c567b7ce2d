// Package parallel provides the bounded worker pool used to execute
// independent annealing attempts concurrently. Attempts share no mutable
// state, so the pool only has to bound goroutine fan-out and honor
// cancellation; there is no result plumbing here.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolClosed is returned when submitting to a pool after Close.
var ErrPoolClosed = errors.New("parallel: pool is closed")

// Pool runs submitted tasks on a fixed set of workers. Submission
// blocks when all workers are busy, which keeps the number of
// simultaneously running attempts bounded regardless of how many are
// queued.
type Pool struct {
	tasks  chan func()
	closed chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// NewPool starts a pool with the given number of workers. Values <= 0
// default to the number of CPU cores.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		tasks:  make(chan func()),
		closed: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		case <-p.closed:
			return
		}
	}
}

// Submit hands a task to the pool, blocking until a worker accepts it.
// It fails with ctx.Err() on cancellation and ErrPoolClosed after Close;
// in both cases the task is not run.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case <-p.closed:
		return ErrPoolClosed
	default:
	}
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.closed:
		return ErrPoolClosed
	}
}

// Close stops the workers after their current tasks finish. Close is
// idempotent and waits for the workers to exit.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.closed)
		p.wg.Wait()
	})
}
