package worker

import (
	"context"
	"sort"
	"testing"
	"time"
)

func TestPool_AllJobsComplete(t *testing.T) {
	pool := New(4, func(_ context.Context, n int) int {
		return n * n
	})
	pool.Start(context.Background())

	go func() {
		for i := 0; i < 100; i++ {
			pool.Submit(context.Background(), i)
		}
		pool.Close()
	}()

	results := pool.Wait()
	if len(results) != 100 {
		t.Fatalf("Expected 100 results, got %d", len(results))
	}

	sort.Ints(results)
	for i, r := range results {
		if r != i*i {
			t.Fatalf("Expected %d at position %d, got %d", i*i, i, r)
		}
	}
}

func TestPool_SingleWorkerFallback(t *testing.T) {
	pool := New(0, func(_ context.Context, n int) int { return n })
	pool.Start(context.Background())

	go func() {
		pool.Submit(context.Background(), 42)
		pool.Close()
	}()

	results := pool.Wait()
	if len(results) != 1 || results[0] != 42 {
		t.Errorf("Expected [42], got %v", results)
	}
}

func TestPool_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	pool := New(2, func(ctx context.Context, n int) int {
		select {
		case <-ctx.Done():
		case <-time.After(10 * time.Millisecond):
		}
		return n
	})
	pool.Start(ctx)

	go func() {
		for i := 0; i < 1000; i++ {
			pool.Submit(ctx, i)
		}
		pool.Close()
	}()

	cancel()

	done := make(chan struct{})
	go func() {
		pool.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Pool did not shut down after cancellation")
	}
}
