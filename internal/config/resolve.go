// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Deployment is the resolved, typed launch configuration produced from a
// merged [DeployConfig]. Once built it is never mutated; the bootstrap and
// the exported environment both derive from it.
type Deployment struct {
	// Address is the bind address for the runtime server.
	Address string
	// Port is the bind port. Always a valid integer after resolution.
	Port int
	// Headless disables any interactive launch behaviour.
	Headless bool
	// GatherUsageStats enables the usage statistics reporter.
	GatherUsageStats bool
	// UsageStatsURL is the collector endpoint for usage statistics.
	UsageStatsURL string
	// AppPath is the application bundle to serve.
	AppPath string
	// Hello selects the built-in hello application instead of AppPath.
	Hello bool
	// Invoke selects the invocation variant, InvokeOptions or InvokeEnv.
	Invoke string
}

// Resolve converts the merged raw configuration into a typed [Deployment].
//
// The port is parsed with surrounding whitespace stripped; a value that is
// not an integer silently resolves to the default port. The platform owns
// that variable and a malformed value must not fail the launch. Booleans
// are true only when the raw value case-insensitively equals "true".
func (cfg *DeployConfig) Resolve() *Deployment {
	invoke := cfg.Launch.Invoke
	if invoke == "" {
		invoke = InvokeOptions
	}

	return &Deployment{
		Address:          cfg.Server.Address,
		Port:             parsePort(cfg.Server.Port),
		Headless:         isTrue(cfg.Server.Headless),
		GatherUsageStats: isTrue(cfg.Telemetry.GatherUsageStats),
		UsageStatsURL:    cfg.Telemetry.UsageStatsURL,
		AppPath:          cfg.Launch.AppPath,
		Hello:            cfg.Launch.Hello,
		Invoke:           invoke,
	}
}

// ExportEnv writes the resolved deployment values back into the process
// environment, so that anything reading the canonical variables later in
// the process lifetime observes the values actually in effect. The
// platform port variable is rewritten to the bound port.
func (d *Deployment) ExportEnv() error {
	port := strconv.Itoa(d.Port)

	vars := map[string]string{
		EnvServerAddress:    d.Address,
		EnvServerPort:       port,
		EnvPlatformPort:     port,
		EnvServerHeadless:   strconv.FormatBool(d.Headless),
		EnvGatherUsageStats: strconv.FormatBool(d.GatherUsageStats),
	}

	for name, value := range vars {
		if err := os.Setenv(name, value); err != nil {
			return fmt.Errorf("error exporting %s: %w", name, err)
		}
	}

	return nil
}

// ListenAddress returns the host:port pair the runtime server binds to.
func (d *Deployment) ListenAddress() string {
	return d.Address + ":" + strconv.Itoa(d.Port)
}

func parsePort(raw string) int {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultPort
	}

	return port
}

func isTrue(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "true")
}
