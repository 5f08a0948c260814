package platform

import (
	"errors"
	"fmt"
	"github.com/Yeicor/winhelp"
	"os"
	"os/signal"
)

// Run runs app on a new goroutine while window (the platform loop, which must own the main goroutine) blocks the
// caller. OS signals become Quit events. When the window loop exits, the app receives a Quit event and its Flip
// calls fail, so it should return soon after.
//
// A window error before the first Flip is reported as winhelp.ErrProviderUnavailable. An app stopped by
// winhelp.ErrClosed is a normal exit.
func Run(b *Bridge, app func() error, window func() error) error {
	stop := notifyQuit(b.Input)
	defer stop()

	appDone := make(chan error, 1)
	go func() {
		defer b.Close()
		appDone <- app()
	}()

	windowErr := window()
	b.Input.Push(winhelp.Event{Type: winhelp.Quit})
	b.Close()
	appErr := <-appDone

	if windowErr != nil {
		if !b.Presented() {
			return fmt.Errorf("%w: %w", winhelp.ErrProviderUnavailable, windowErr)
		}
		return fmt.Errorf("window loop: %w", windowErr)
	}
	if errors.Is(appErr, winhelp.ErrClosed) {
		return nil
	}
	return appErr
}

func notifyQuit(in *winhelp.Input) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals()...)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-ch:
				winhelp.LogInfo("received %s, quitting", sig)
				in.Push(winhelp.Event{Type: winhelp.Quit})
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
