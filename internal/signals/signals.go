// Package signals controls when termination-signal handlers are installed
// for a runtime run.
//
// A run started from the process main goroutine owns signal handling and
// installs the usual handlers. A run started from any other goroutine is
// embedded in a larger program whose main goroutine already owns them, so
// installation is skipped entirely instead of fighting over process-global
// state.
package signals

import (
	"bytes"
	"context"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
)

// Installer installs termination-signal handling on top of ctx and returns
// the derived context together with a cancel that releases the handlers.
type Installer func(ctx context.Context) (context.Context, context.CancelFunc)

// Notify is the default [Installer]. The returned context is cancelled on
// SIGTERM, SIGINT or SIGQUIT.
func Notify(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
}

// Guarded wraps install so it only takes effect when onControl reports that
// the caller owns process signal handling. When it does, install receives
// the identical context argument. When it does not, the context is returned
// untouched with a cancel that does nothing, and install is never invoked.
func Guarded(install Installer, onControl func() bool) Installer {
	return func(ctx context.Context) (context.Context, context.CancelFunc) {
		if onControl() {
			return install(ctx)
		}

		return ctx, func() {}
	}
}

// Policy selects when a run installs termination-signal handlers.
type Policy int

const (
	// PolicyMainOnly installs handlers only when the run starts on the
	// process main goroutine. This is the default.
	PolicyMainOnly Policy = iota
	// PolicyAlways installs handlers unconditionally.
	PolicyAlways
	// PolicyNever skips handler installation entirely.
	PolicyNever
)

// String returns the policy name for logging.
func (p Policy) String() string {
	switch p {
	case PolicyAlways:
		return "always"
	case PolicyNever:
		return "never"
	default:
		return "main-only"
	}
}

// ForPolicy maps a policy to the installer a run should use. The mapping is
// resolved once per run, before the server starts.
func ForPolicy(p Policy) Installer {
	switch p {
	case PolicyAlways:
		return Notify
	case PolicyNever:
		return Guarded(Notify, func() bool { return false })
	default:
		return Guarded(Notify, OnMainGoroutine)
	}
}

// mainGoroutineID is captured while the runtime initializes packages, which
// always happens on the process main goroutine.
var mainGoroutineID = currentGoroutineID()

// OnMainGoroutine reports whether the caller runs on the goroutine that
// executed package initialization, i.e. the process main goroutine.
func OnMainGoroutine() bool {
	return currentGoroutineID() == mainGoroutineID
}

// currentGoroutineID parses the goroutine id out of the first stack trace
// line, which reads "goroutine N [running]:".
func currentGoroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)

	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}

	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}

	return id
}
