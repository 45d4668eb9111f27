package bootstrap

import (
	"time"

	"github.com/MKhiriev/slipway/internal/config"
	"github.com/MKhiriev/slipway/internal/signals"
	"github.com/MKhiriev/slipway/models"
)

// Options carries everything [Run] needs beyond the application path.
type Options struct {
	// Address is the interface the server binds to.
	Address string

	// Port is the TCP port the server binds to.
	Port int

	// Headless suppresses the interactive local-URL banner.
	Headless bool

	// GatherUsageStats enables the anonymous usage heartbeat.
	GatherUsageStats bool

	// StatsURL is the endpoint usage events are posted to.
	StatsURL string

	// HeartbeatInterval is the delay between usage events; zero means the
	// telemetry package default.
	HeartbeatInterval time.Duration

	// SignalPolicy decides whether termination-signal handlers are installed
	// for this run. The zero value is signals.PolicyMainOnly.
	SignalPolicy signals.Policy

	// Hello switches the runtime to the built-in demo application and skips
	// the bundle check.
	Hello bool

	// Build is the launcher's build metadata, exposed by the version
	// endpoint and attached to usage events.
	Build models.AppBuildInfo
}

// DefaultOptions returns the runtime's own interactive defaults: all
// interfaces on port 8501, banner on, usage statistics off.
func DefaultOptions() Options {
	return Options{
		Address:  config.DefaultAddress,
		Port:     config.DefaultPort,
		StatsURL: config.DefaultUsageStatsURL,
	}
}

// FromDeployment maps a resolved deployment onto bootstrap options. Build
// metadata is not part of the deployment and is set by the caller.
func FromDeployment(d config.Deployment) Options {
	return Options{
		Address:          d.Address,
		Port:             d.Port,
		Headless:         d.Headless,
		GatherUsageStats: d.GatherUsageStats,
		StatsURL:         d.UsageStatsURL,
		Hello:            d.Hello,
	}
}

// OptionsFromEnv rebuilds options from the environment alone (env layer plus
// defaults, no flags, no JSON file). After [config.Deployment.ExportEnv] has
// run, the result matches the deployment that was exported.
func OptionsFromEnv() (Options, error) {
	cfg, err := config.GetEnvDeployConfig()
	if err != nil {
		return Options{}, err
	}

	return FromDeployment(*cfg.Resolve()), nil
}
