package config

import "errors"

// Validation errors returned by [DeployConfig.validate] when the merged
// configuration cannot drive a launch.
var (
	// ErrUnknownInvokeVariant indicates an -invoke value other than
	// "options" or "env".
	ErrUnknownInvokeVariant = errors.New("unknown invoke variant")
)
