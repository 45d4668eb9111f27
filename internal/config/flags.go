package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server bind address (host only, e.g. "0.0.0.0")
//	-p server port
//	-headless headless mode ("true"/"false")
//	-gather-usage-stats usage statistics reporting ("true"/"false")
//	-stats-url usage statistics collector URL
//	-app application bundle path
//	-hello serve the built-in hello application
//	-invoke invocation variant ("options" or "env")
//	-c/-config json file path with configs
func ParseFlags() *DeployConfig {
	var serverAddress string
	var serverPort string
	var headless string
	var gatherUsageStats string
	var usageStatsURL string
	var appPath string
	var hello bool
	var invoke string
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Server bind address (host only)")
	flag.StringVar(&serverPort, "p", "", "Server port")
	flag.StringVar(&headless, "headless", "", "Headless mode (true/false)")
	flag.StringVar(&gatherUsageStats, "gather-usage-stats", "", "Usage statistics reporting (true/false)")
	flag.StringVar(&usageStatsURL, "stats-url", "", "Usage statistics collector URL")
	flag.StringVar(&appPath, "app", "", "Application bundle path")
	flag.BoolVar(&hello, "hello", false, "Serve the built-in hello application")
	flag.StringVar(&invoke, "invoke", "", "Invocation variant (options/env)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &DeployConfig{
		Server: Server{
			Address:  serverAddress,
			Port:     serverPort,
			Headless: headless,
		},
		Telemetry: Telemetry{
			GatherUsageStats: gatherUsageStats,
			UsageStatsURL:    usageStatsURL,
		},
		Launch: Launch{
			AppPath: appPath,
			Hello:   hello,
			Invoke:  invoke,
		},
		JSONFilePath: jsonConfigPath,
	}
}
