package resilience

import (
	"context"
	"sync"
)

// Flight coalesces concurrent calls for the same key into one execution.
// The shared call runs on a context detached from every caller's
// cancellation, so a caller that gives up only stops its own wait.
type Flight[T any] struct {
	mu    sync.Mutex
	calls map[string]*flightCall[T]
}

type flightCall[T any] struct {
	done    chan struct{}
	val     T
	err     error
	callers int
}

// Do runs fn once per key at a time. fn receives ctx without its
// cancellation; bound it with a timeout of its own. shared is true when
// more than one caller waited on the same execution.
func (g *Flight[T]) Do(ctx context.Context, key string, fn func(context.Context) (T, error)) (val T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flightCall[T])
	}

	c, joined := g.calls[key]
	if joined {
		c.callers++
	} else {
		c = &flightCall[T]{done: make(chan struct{}), callers: 1}
		g.calls[key] = c
		go g.run(context.WithoutCancel(ctx), key, c, fn)
	}
	g.mu.Unlock()

	select {
	case <-c.done:
		g.mu.Lock()
		shared = c.callers > 1
		g.mu.Unlock()
		return c.val, c.err, shared
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err(), joined
	}
}

func (g *Flight[T]) run(ctx context.Context, key string, c *flightCall[T], fn func(context.Context) (T, error)) {
	c.val, c.err = fn(ctx)

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
	close(c.done)
}

// InFlight reports how many keys are currently executing.
func (g *Flight[T]) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}
