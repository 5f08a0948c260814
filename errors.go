package winhelp

import (
	"errors"
)

var (
	// ErrProviderUnavailable is returned when the platform window/surface could not be created. Startup should abort.
	ErrProviderUnavailable = errors.New("platform surface provider unavailable")
	// ErrClosed is returned when presenting to a display that was already closed.
	ErrClosed = errors.New("display closed")
)
