package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gizak/termui/v3"
	log "github.com/sirupsen/logrus"

	"github.com/komsit37/sg/pkg/sg/filter"
	"github.com/komsit37/sg/pkg/sg/render"
	"github.com/komsit37/sg/pkg/sg/view"
)

type Options struct {
	Filter filter.Filter
	Now    func() time.Time
	Logger log.FieldLogger
}

// Run shows v in the terminal until the user quits or ctx ends. The view is
// closed on return so an in-flight analysis cannot commit afterwards.
func Run(ctx context.Context, v *view.View, opts Options) error {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}
	if err := termui.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer termui.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer v.Close()

	// Observers only signal; snapshots are read and drawn on this goroutine.
	wake := make(chan struct{}, 1)
	unsubscribe := v.Subscribe(func(view.Snapshot) {
		select {
		case wake <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	var screen *Screen
	draw := func() {
		w, h := termui.TerminalDimensions()
		selected := 0
		if screen != nil {
			selected = screen.Body.SelectedRow
		}
		p := render.Build(v.Snapshot(), render.BuildOptions{Filter: opts.Filter, Now: opts.Now()})
		screen = Layout(p, w, h)
		if selected < len(screen.Body.Rows) {
			screen.Body.SelectedRow = selected
		}
		termui.Clear()
		termui.Render(screen.Drawables()...)
	}
	draw()

	events := termui.PollEvents()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-wake:
			draw()
		case e := <-events:
			switch e.ID {
			case "q", "<C-c>":
				return nil
			case "a", "<Enter>":
				if v.Snapshot().Busy() {
					continue
				}
				go analyze(ctx, v, opts.Logger)
			case "j", "<Down>":
				screen.Body.ScrollDown()
				termui.Render(screen.Body)
			case "k", "<Up>":
				screen.Body.ScrollUp()
				termui.Render(screen.Body)
			case "g", "<Home>":
				screen.Body.ScrollTop()
				termui.Render(screen.Body)
			case "<Resize>":
				draw()
			}
		}
	}
}

func analyze(ctx context.Context, v *view.View, logger log.FieldLogger) {
	err := v.RequestAnalysis(ctx)
	switch {
	case err == nil:
	case errors.Is(err, view.ErrBusy), errors.Is(err, view.ErrClosed), errors.Is(err, context.Canceled):
		logger.Debugf("analysis not run: %v", err)
	default:
		logger.Errorf("analysis: %v", err)
	}
}
