// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Environment variable names forming the deployment contract between the
// hosting platform, the launcher, and the runtime. PORT is the literal
// platform contract; the prefixed variables belong to slipway itself.
const (
	EnvPlatformPort     = "PORT"
	EnvServerAddress    = "SLIPWAY_SERVER_ADDRESS"
	EnvServerPort       = "SLIPWAY_SERVER_PORT"
	EnvServerHeadless   = "SLIPWAY_SERVER_HEADLESS"
	EnvGatherUsageStats = "SLIPWAY_GATHER_USAGE_STATS"
	EnvUsageStatsURL    = "SLIPWAY_USAGE_STATS_URL"
	EnvAppPath          = "SLIPWAY_APP"
	EnvJSONConfig       = "SLIPWAY_CONFIG"
)

// Defaults applied by the last builder stage when a value is still unset
// after the environment, flag, and JSON layers have been merged.
const (
	// DefaultAddress binds all interfaces, which is what container hosts
	// expect from a single foreground server process.
	DefaultAddress = "0.0.0.0"

	// DefaultPort is used when neither SLIPWAY_SERVER_PORT nor PORT carries
	// a usable value.
	DefaultPort = 8501

	defaultHeadless         = "true"
	defaultGatherUsageStats = "false"

	// DefaultUsageStatsURL receives anonymous launch events when usage
	// statistics gathering has been explicitly enabled.
	DefaultUsageStatsURL = "https://telemetry.slipway.dev/v1/launch"

	// DefaultAppPath is the application bundle served when no explicit
	// path is given.
	DefaultAppPath = "app"
)

// Invocation variants for handing the resolved configuration to the
// bootstrap: either as an explicit options value, or indirectly through the
// environment after ExportEnv has written the resolved values back.
const (
	InvokeOptions = "options"
	InvokeEnv     = "env"
)

// DeployConfig is the raw, pre-resolution deployment configuration.
//
// Every scalar that can come from the platform is kept as a string so that
// "absent" stays distinguishable from any explicit value and the
// case-insensitive boolean contract survives layer merging. Conversion to
// typed values happens once, in [DeployConfig.Resolve].
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type DeployConfig struct {
	// Server holds the bind address, bind port, and headless flag of the
	// runtime server, all raw.
	Server Server `envPrefix:"SLIPWAY_SERVER_"`

	// Telemetry holds the raw usage statistics opt-in and endpoint.
	Telemetry Telemetry `envPrefix:"SLIPWAY_"`

	// Launch holds launcher-level settings that are not part of the
	// platform's environment contract: the application bundle path, the
	// built-in demo toggle, and the bootstrap invocation variant.
	Launch Launch `envPrefix:"SLIPWAY_"`

	// PlatformPort is the listen port supplied by the hosting platform via
	// PORT. It is read only as a fallback source for Server.Port and is
	// rewritten to the final resolved value by [ExportEnv].
	PlatformPort string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the SLIPWAY_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"SLIPWAY_CONFIG"`
}

// Server holds the raw network settings of the runtime server.
type Server struct {
	// Address is the interface the server binds to.
	// Env: SLIPWAY_SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// Port is the TCP port the server binds to, still unparsed. Malformed
	// values never fail the launch; resolution substitutes [DefaultPort].
	// Env: SLIPWAY_SERVER_PORT
	Port string `env:"PORT"`

	// Headless suppresses the interactive local-URL banner when it
	// case-insensitively equals "true".
	// Env: SLIPWAY_SERVER_HEADLESS
	Headless string `env:"HEADLESS"`
}

// Telemetry holds the raw usage statistics settings.
type Telemetry struct {
	// GatherUsageStats enables anonymous usage reporting when it
	// case-insensitively equals "true". Off by default.
	// Env: SLIPWAY_GATHER_USAGE_STATS
	GatherUsageStats string `env:"GATHER_USAGE_STATS"`

	// UsageStatsURL overrides the endpoint launch events are posted to.
	// Env: SLIPWAY_USAGE_STATS_URL
	UsageStatsURL string `env:"USAGE_STATS_URL"`
}

// Launch holds launcher-level settings outside the platform contract.
type Launch struct {
	// AppPath is the path of the application bundle served by the runtime.
	// Env: SLIPWAY_APP
	AppPath string `env:"APP"`

	// Hello switches the runtime to the built-in demo application.
	// Flag-only; deployment platforms have no reason to set it.
	Hello bool

	// Invoke selects the bootstrap invocation variant, [InvokeOptions] or
	// [InvokeEnv]. Flag-only, defaulting to [InvokeOptions].
	Invoke string
}

// GetDeployConfig loads and merges the deployment configuration from all
// sources in the following priority order (earlier sources win for fields
// they set; the defaults stage only fills what is still empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults, with the port default taken from PORT when present
//
// Returns the merged raw *DeployConfig, still unresolved, or an error if any
// source fails to load or the result fails validation.
func GetDeployConfig() (*DeployConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetEnvDeployConfig loads the deployment configuration from the environment
// alone: the env layer plus the defaults stage, with no flag or JSON source.
// The env invocation variant uses it to rebuild the deployment from values
// previously written back by [Deployment.ExportEnv].
func GetEnvDeployConfig() (*DeployConfig, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}
