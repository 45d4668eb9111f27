// Package config provides configuration loading, merging, and resolution
// facilities for the launcher.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, later sources fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetDeployConfig]. The merged raw configuration is
// converted into a typed [Deployment] via [DeployConfig.Resolve], and the
// resolved values are written back to the process environment via
// [Deployment.ExportEnv].
package config
