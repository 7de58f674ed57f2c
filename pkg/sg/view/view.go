// Package view holds the analysis view state machine.
//
// A View moves Idle -> Analyzing -> Complete (or Failed) each time
// RequestAnalysis is called. Observers registered with Subscribe receive an
// immutable Snapshot after every transition; partial commits are never
// observable.
package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/komsit37/sg/pkg/sg/source"
	"github.com/komsit37/sg/pkg/sg/types"
)

// DefaultDelay is the artificial analysis delay.
const DefaultDelay = 2000 * time.Millisecond

var (
	// ErrBusy is returned when an analysis is already in flight.
	ErrBusy = errors.New("analysis already in progress")
	// ErrClosed is returned once the view has been closed.
	ErrClosed = errors.New("view closed")
)

// State is a node of the view state machine.
type State int

const (
	Idle State = iota
	Analyzing
	Complete
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Analyzing:
		return "analyzing"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the view state.
type Snapshot struct {
	State   State
	Results types.ResultSet
	Err     error
	// Generation counts successful commits.
	Generation uint64
}

// Busy reports whether the analyze action must be disabled.
func (s Snapshot) Busy() bool { return s.State == Analyzing }

// Completed reports whether a committed result set is on display.
func (s Snapshot) Completed() bool { return s.State == Complete }

// Option configures a View.
type Option func(*View)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(v *View) { v.delay = d }
}

// WithAfter replaces time.After, mainly for tests.
func WithAfter(after func(time.Duration) <-chan time.Time) Option {
	return func(v *View) { v.after = after }
}

// View is the analysis view. The zero value is not usable; call New.
type View struct {
	src   source.Source
	delay time.Duration
	after func(time.Duration) <-chan time.Time

	mu        sync.Mutex
	snap      Snapshot
	observers map[int]func(Snapshot)
	nextID    int
	closed    bool
	done      chan struct{}
}

// New returns an idle view backed by src.
func New(src source.Source, opts ...Option) *View {
	v := &View{
		src:       src,
		delay:     DefaultDelay,
		after:     time.After,
		observers: map[int]func(Snapshot){},
		done:      make(chan struct{}),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Snapshot returns the current state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.copyLocked()
}

// Subscribe registers fn to receive a Snapshot after every transition.
// fn is called outside the view lock and may call Snapshot.
func (v *View) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.observers[id] = fn
	v.mu.Unlock()
	return func() {
		v.mu.Lock()
		delete(v.observers, id)
		v.mu.Unlock()
	}
}

// RequestAnalysis runs one analysis cycle and blocks until it commits.
//
// It returns ErrBusy without touching state while another cycle is running.
// Cancelling ctx during the delay restores the state held before the call.
// A source error moves the view to Failed. Closing the view mid-cycle drops
// the commit and returns ErrClosed.
func (v *View) RequestAnalysis(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.snap.State == Analyzing {
		v.mu.Unlock()
		return ErrBusy
	}
	prev := v.snap
	v.snap = Snapshot{State: Analyzing, Results: prev.Results, Generation: prev.Generation}
	v.publishLocked()

	set, err := v.run(ctx)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	switch {
	case err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()):
		v.snap = prev
	case err != nil:
		v.snap = Snapshot{State: Failed, Results: prev.Results, Err: err, Generation: prev.Generation}
	default:
		v.snap = Snapshot{State: Complete, Results: set.Clone(), Generation: prev.Generation + 1}
	}
	v.publishLocked()
	return err
}

func (v *View) run(ctx context.Context) (types.ResultSet, error) {
	select {
	case <-v.after(v.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-v.done:
		return nil, ErrClosed
	}
	return v.src.Load(ctx)
}

// Close disposes the view. Pending cycles wake up without committing and
// later calls to RequestAnalysis return ErrClosed. Close is idempotent.
func (v *View) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	v.closed = true
	v.observers = map[int]func(Snapshot){}
	close(v.done)
	return nil
}

// publishLocked releases v.mu and notifies observers of the current state.
func (v *View) publishLocked() {
	snap := v.copyLocked()
	fns := make([]func(Snapshot), 0, len(v.observers))
	for _, fn := range v.observers {
		fns = append(fns, fn)
	}
	v.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

func (v *View) copyLocked() Snapshot {
	s := v.snap
	s.Results = s.Results.Clone()
	return s
}
