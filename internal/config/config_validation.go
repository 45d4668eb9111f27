// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [DeployConfig] satisfies all
// launcher invariants before it is used at startup.
//
// Deployment values (address, port, booleans) are deliberately not
// validated here: the platform may hand over anything, and [Resolve]
// substitutes canonical fallbacks instead of failing the launch. Only
// operator mistakes on the command line are rejected.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *DeployConfig) validate() error {
	switch cfg.Launch.Invoke {
	case "", InvokeOptions, InvokeEnv:
		return nil
	default:
		return ErrUnknownInvokeVariant
	}
}
