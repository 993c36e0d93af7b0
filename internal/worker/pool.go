// Package worker provides a fan-out/fan-in pool for independent jobs.
package worker

import (
	"context"
	"sync"
)

// Pool runs independent jobs on a fixed set of goroutines and collects their
// results. Jobs share only read-only state; results arrive in completion
// order, so callers needing determinism must sort afterward.
type Pool[J, R any] struct {
	workers int
	run     func(context.Context, J) R
	jobs    chan J
	results chan R
	wg      sync.WaitGroup
}

// New creates a pool executing run on each submitted job.
func New[J, R any](workers int, run func(context.Context, J) R) *Pool[J, R] {
	if workers <= 0 {
		workers = 1
	}
	return &Pool[J, R]{
		workers: workers,
		run:     run,
		jobs:    make(chan J, workers*2),
		results: make(chan R, workers*2),
	}
}

// Start launches the workers. They exit when the job channel is closed or the
// context is canceled.
func (p *Pool[J, R]) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					result := p.run(ctx, job)
					select {
					case p.results <- result:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
}

// Submit queues a job. It blocks while the queue is full, so submission must
// happen concurrently with Wait when the job count exceeds the queue size.
func (p *Pool[J, R]) Submit(ctx context.Context, job J) {
	select {
	case <-ctx.Done():
	case p.jobs <- job:
	}
}

// Close signals that no further jobs will be submitted.
func (p *Pool[J, R]) Close() {
	close(p.jobs)
}

// Wait drains results until all workers have finished.
func (p *Pool[J, R]) Wait() []R {
	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	var results []R
	for result := range p.results {
		results = append(results, result)
	}
	return results
}
