// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/slipway/internal/config"
	"github.com/MKhiriev/slipway/internal/handler"
	"github.com/MKhiriev/slipway/internal/logger"
	"github.com/MKhiriev/slipway/internal/signals"
	"github.com/MKhiriev/slipway/internal/telemetry"
	"github.com/MKhiriev/slipway/internal/utils"
	"github.com/MKhiriev/slipway/internal/workers"
	"github.com/MKhiriev/slipway/models"
)

// shutdownTimeout bounds the graceful drain of in-flight requests once the
// run context has ended.
const shutdownTimeout = 30 * time.Second

// Run is the runtime's blocking bootstrap entry point. It validates the
// application bundle (unless opts.Hello), installs termination-signal
// handling per the signal policy, binds the listener, starts the opt-in
// telemetry workers, and serves HTTP until the run context ends, finishing
// with a graceful shutdown.
//
// The logger is taken from ctx ([logger.FromContext]); callers attach one
// with WithContext. Bind failures, a missing bundle, and serve errors all
// propagate to the caller.
func Run(ctx context.Context, appPath string, opts Options) error {
	log := logger.FromContext(ctx)

	if !opts.Hello {
		if _, err := os.Stat(appPath); err != nil {
			return fmt.Errorf("application bundle %q: %w", appPath, err)
		}
	}

	// the installer is resolved exactly once per run
	install := signals.ForPolicy(opts.SignalPolicy)
	ctx, stop := install(ctx)
	defer stop()

	addr := net.JoinHostPort(opts.Address, strconv.Itoa(opts.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}

	instanceID := utils.NewUUIDGenerator().Generate()
	log.Info().Str("address", addr).Str("instance_id", instanceID).Msg("server listening")

	if !opts.Headless {
		fmt.Print(localURLBanner(opts.Address, opts.Port))
	}

	if opts.GatherUsageStats {
		go reportUsage(ctx, opts, instanceID, log)
	}

	h := handler.NewHandler(opts.Build, instanceID, appPath, opts.Hello, log)
	srv := &http.Server{
		Handler:           h.Init(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	idleConnectionsClosed := make(chan struct{})

	// listen for the run context ending
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http server shutdown failed")
		}

		close(idleConnectionsClosed)
	}()

	log.Info().Msg("launching http server")
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server serve: %w", err)
	}

	<-idleConnectionsClosed
	log.Info().Msg("server shutdown gracefully")

	return nil
}

// RunFromEnv is the command-style runner for the env invocation variant: it
// rebuilds the options from the environment via [OptionsFromEnv], applies the
// caller's build metadata and hello toggle, and calls [Run].
func RunFromEnv(ctx context.Context, build models.AppBuildInfo, appPath string, hello bool) error {
	opts, err := OptionsFromEnv()
	if err != nil {
		return err
	}
	opts.Build = build
	opts.Hello = hello

	return Run(ctx, appPath, opts)
}

// reportUsage wires the telemetry heartbeat into the worker aggregate and
// blocks until the run context ends. A reporter that cannot be constructed is
// downgraded to the no-op reporter; delivery stays fire and forget either way.
func reportUsage(ctx context.Context, opts Options, instanceID string, log *logger.Logger) {
	reporter, err := telemetry.NewReporter(telemetry.Config{StatsURL: opts.StatsURL}, log)
	if err != nil {
		log.Debug().Err(err).Msg("usage reporting disabled")
		reporter = telemetry.Nop()
	}

	event := telemetry.LaunchEvent(opts.Build, instanceID, opts.Hello, opts.Headless)
	heartbeat := telemetry.NewHeartbeat(reporter, event, opts.HeartbeatInterval, log)

	workers.NewWorkers(heartbeat).Run(ctx)
}

// localURLBanner renders the interactive startup banner. A wildcard bind
// address is shown as localhost.
func localURLBanner(address string, port int) string {
	host := address
	if host == "" || host == config.DefaultAddress {
		host = "localhost"
	}

	return fmt.Sprintf("\n  You can now view your app in your browser.\n\n  Local URL: http://%s\n\n",
		net.JoinHostPort(host, strconv.Itoa(port)))
}
