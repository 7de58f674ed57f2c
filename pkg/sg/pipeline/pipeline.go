package pipeline

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/komsit37/sg/pkg/sg/filter"
	"github.com/komsit37/sg/pkg/sg/render"
	"github.com/komsit37/sg/pkg/sg/view"
)

// Runner drives one analysis cycle on a View and renders its frames.
type Runner struct {
	View     *view.View
	Renderer render.Renderer
	Writer   io.Writer
	// Now defaults to time.Now.
	Now func() time.Time
}

type ExecuteOptions struct {
	Filter filter.Filter
	// ShowProgress renders the idle and busy frames before the result.
	ShowProgress bool
	Render       render.RenderOptions
}

// Execute requests one analysis and renders the resulting frame. With
// ShowProgress, the idle frame and the busy frame observed from the view
// are rendered first, in order. An analysis error is returned after the
// failed frame has been written.
func (r *Runner) Execute(ctx context.Context, opts ExecuteOptions) error {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	var (
		mu     sync.Mutex
		rndErr error
	)
	frame := func(snap view.Snapshot) {
		p := render.Build(snap, render.BuildOptions{Filter: opts.Filter, Now: now()})
		mu.Lock()
		defer mu.Unlock()
		if rndErr != nil {
			return
		}
		rndErr = r.Renderer.Render(r.Writer, p, opts.Render)
	}

	if opts.ShowProgress {
		frame(r.View.Snapshot())
		unsubscribe := r.View.Subscribe(func(snap view.Snapshot) {
			if snap.Busy() {
				frame(snap)
			}
		})
		defer unsubscribe()
	}

	err := r.View.RequestAnalysis(ctx)
	if errors.Is(err, view.ErrBusy) || errors.Is(err, view.ErrClosed) {
		return err
	}
	frame(r.View.Snapshot())

	mu.Lock()
	defer mu.Unlock()
	if err != nil {
		return err
	}
	return rndErr
}
