package models

// UsageEvent is the anonymous payload reported by the runtime when usage
// statistics gathering has been explicitly enabled.
//
// The event intentionally carries no request data and nothing that could
// identify the hosted application beyond its serving mode.
type UsageEvent struct {
	// InstanceID is a random per-process identifier generated at startup.
	// It only correlates events of a single run and is never persisted.
	InstanceID string `json:"instance_id"`

	// AppVersion is the slipway build version serving the event.
	AppVersion string `json:"app_version"`

	// OS and Arch describe the platform the runtime is executing on,
	// as reported by the Go runtime (e.g. "linux"/"amd64").
	OS   string `json:"os"`
	Arch string `json:"arch"`

	// Hello reports whether the built-in demo app is being served instead
	// of a user application bundle.
	Hello bool `json:"hello"`

	// Headless reports whether the server was started in headless mode.
	Headless bool `json:"headless"`
}
