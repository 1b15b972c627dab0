package walker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// group joins the tasks spawned for one traversal level. Every task
// failure is kept so Wait can report all of them, not only the first.
type group struct {
	eg  *errgroup.Group
	ctx context.Context

	mu   sync.Mutex
	errs []error
}

// newGroup returns a group bound to ctx. With failFast the group's context is
// cancelled as soon as one task fails.
func newGroup(ctx context.Context, failFast bool) *group {
	if failFast {
		eg, gctx := errgroup.WithContext(ctx)
		return &group{eg: eg, ctx: gctx}
	}
	return &group{eg: new(errgroup.Group), ctx: ctx}
}

// Go runs fn in a new goroutine. A panic inside fn is converted into a join
// failure for path.
func (g *group) Go(path string, fn func(context.Context) error) {
	g.eg.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &TaskError{Op: "join", Path: path, Err: fmt.Errorf("task panicked: %v", r)}
			}
			g.record(err)
		}()
		return fn(g.ctx)
	})
}

func (g *group) record(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait blocks until every task has returned.
func (g *group) Wait() error {
	first := g.eg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.errs) > 0 {
		return errors.Join(g.errs...)
	}
	return first
}
