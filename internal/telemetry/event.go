package telemetry

import (
	"runtime"

	"github.com/MKhiriev/slipway/models"
)

// LaunchEvent assembles the usage event describing the current process.
// OS and architecture come from the Go runtime; everything else is supplied
// by the caller.
func LaunchEvent(build models.AppBuildInfo, instanceID string, hello, headless bool) models.UsageEvent {
	return models.UsageEvent{
		InstanceID: instanceID,
		AppVersion: build.BuildVersion(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Hello:      hello,
		Headless:   headless,
	}
}
