package chooserui

import (
	"context"
	"errors"

	"github.com/datatug/filechooser/pkg/chooser"
	"github.com/datatug/filechooser/pkg/files"
)

type RunOptions struct {
	Theme Theme
}

type RunOption func(o *RunOptions)

func WithTheme(theme Theme) RunOption {
	return func(o *RunOptions) {
		o.Theme = theme
	}
}

// Run shows a chooser for cfg and blocks until the user picks a path or cancels.
// Cancelling ctx cancels the session from the UI event loop.
func Run(ctx context.Context, app App, provider files.Provider, cfg chooser.Config, options ...RunOption) (chooser.Result, error) {
	var o RunOptions
	for _, option := range options {
		option(&o)
	}
	browser, initErr := chooser.Initialize(ctx, provider, cfg)
	if initErr != nil && !errors.Is(initErr, chooser.ErrPermissionDenied) {
		return chooser.Result{}, initErr
	}
	ApplyTheme(o.Theme)
	session := chooser.NewSession(browser)
	picker := NewPicker(ctx, app, session, func(chooser.Result) {
		app.Stop()
	})
	app.SetRoot(picker, true)
	app.EnableMouse(true)
	picker.Start(initErr)

	if _, done := session.Result(); !done {
		stopWatching := abortOnDone(ctx, app, picker)
		err := app.Run()
		stopWatching()
		if err != nil {
			return chooser.Result{}, err
		}
	}
	if result, done := session.Result(); done {
		return result, nil
	}
	return chooser.Result{Cancelled: true}, nil
}

// abortOnDone queues picker.abort once ctx is done.
// The returned func waits for the watcher to exit.
func abortOnDone(ctx context.Context, app App, picker *Picker) (stop func()) {
	stopped := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			app.QueueUpdateDraw(picker.abort)
		case <-stopped:
		}
	}()
	return func() {
		close(stopped)
		<-exited
	}
}
