// Package bootstrap runs the slipway runtime server.
//
// It owns the process lifecycle between configuration resolution and exit:
// signal-policy installation, listener binding, the HTTP server loop, the
// opt-in telemetry workers, and graceful shutdown of all of it when the run
// context ends.
package bootstrap
