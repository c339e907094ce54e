package pool

import (
	"context"
	"math"
	"scanbuf/util/log"
	"sync/atomic"
)

type worker struct {
	taskQueue chan func()
	id        int
}

// WorkerPool runs submitted tasks on n goroutines. Tasks given to the same worker run in
// submission order.
type WorkerPool struct {
	next    uint64 // first field keeps 64-bit alignment for atomic access
	n       int
	workers []*worker
}

func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = 1
	}
	p := &WorkerPool{n: n}
	p.workers = make([]*worker, n)
	for i := 0; i < n; i++ {
		p.workers[i] = &worker{taskQueue: make(chan func(), 1024), id: i}
	}
	return p
}

func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.n; i++ {
		go p.workers[i].work(ctx)
	}
	log.Debug("worker pool started, total %d goroutines", p.n)
}

// Submit hands task to the workers in round robin order
func (p *WorkerPool) Submit(task func()) {
	i := atomic.AddUint64(&p.next, 1) % uint64(p.n)
	p.workers[i].taskQueue <- task
}

func (p *WorkerPool) SubmitHashBalance(task func(), hash int) {
	i := (hash & math.MaxInt) % p.n
	p.workers[i].taskQueue <- task
}

func (w *worker) work(ctx context.Context) {
	for {
		select {
		case task := <-w.taskQueue:
			w.run(task)
		case <-ctx.Done():
			return
		}
	}
}

// run keeps the worker alive when a task panics
func (w *worker) run(task func()) {
	defer func() {
		if err := recover(); err != nil {
			log.Warn("worker-%d error: %v", w.id, err)
		}
	}()
	task()
}
