// Package navigation moves the client between views. A transition either
// happens at once (Go) or after the display delay (Defer), which leaves the
// success message of a form on screen before the next view loads.
package navigation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/models"
)

// ErrTransitionPending is returned by Defer while an earlier deferred
// transition has not fired yet.
var ErrTransitionPending = errors.New("a page transition is already pending")

// LoadFunc renders view after the navigator switched to it.
type LoadFunc func(ctx context.Context, view models.View)

// afterFunc is a test seam for time.AfterFunc.
var afterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }

type Navigator struct {
	mu      sync.Mutex
	current models.View
	pending bool
	wg      sync.WaitGroup

	delay  time.Duration
	onLoad LoadFunc
	log    logging.Logger
}

// New returns a navigator positioned on start. The start view is not loaded
// until the first Go.
func New(start models.View, delay time.Duration, onLoad LoadFunc, log logging.Logger) *Navigator {
	if log == nil {
		log = logging.Discard()
	}
	if onLoad == nil {
		onLoad = func(context.Context, models.View) {}
	}
	return &Navigator{current: start, delay: delay, onLoad: onLoad, log: log}
}

func (n *Navigator) Current() models.View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Go switches to view and runs its loader on the calling goroutine.
func (n *Navigator) Go(ctx context.Context, view models.View) {
	n.mu.Lock()
	from := n.current
	n.current = view
	n.mu.Unlock()

	n.log.Debug(ctx, "navigate", "from", from, "to", view)
	n.onLoad(ctx, view)
}

// Defer schedules a switch to view after the display delay. Once scheduled
// the transition always happens; cancelling ctx does not stop it.
func (n *Navigator) Defer(ctx context.Context, view models.View) error {
	n.mu.Lock()
	if n.pending {
		n.mu.Unlock()
		return ErrTransitionPending
	}
	n.pending = true
	n.wg.Add(1)
	n.mu.Unlock()

	n.log.Debug(ctx, "transition scheduled", "to", view, "delay", n.delay)

	ctx = context.WithoutCancel(ctx)
	afterFunc(n.delay, func() {
		defer n.wg.Done()
		n.Go(ctx, view)

		n.mu.Lock()
		n.pending = false
		n.mu.Unlock()
	})
	return nil
}

// Busy reports whether a deferred transition is waiting to fire.
func (n *Navigator) Busy() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pending
}

// Wait blocks until every scheduled transition has fired.
func (n *Navigator) Wait() {
	n.wg.Wait()
}
