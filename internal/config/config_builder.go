package config

import (
	"errors"
	"fmt"
	"strconv"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*DeployConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*DeployConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*DeployConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(DeployConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &DeployConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults as the final, lowest-priority
// layer. The port default is chained through the platform's PORT variable
// when any earlier layer carries one. Defaults therefore never override a
// value an operator or the platform set explicitly.
func (b *configBuilder) withDefaults() *configBuilder {
	var platformPort string
	for _, cfg := range b.configs {
		if cfg.PlatformPort != "" {
			platformPort = cfg.PlatformPort
		}
	}

	b.configs = append(b.configs, defaultConfig(platformPort))
	return b
}

func defaultConfig(platformPort string) *DeployConfig {
	port := platformPort
	if port == "" {
		port = strconv.Itoa(DefaultPort)
	}

	return &DeployConfig{
		Server: Server{
			Address:  DefaultAddress,
			Port:     port,
			Headless: defaultHeadless,
		},
		Telemetry: Telemetry{
			GatherUsageStats: defaultGatherUsageStats,
			UsageStatsURL:    DefaultUsageStatsURL,
		},
		Launch: Launch{
			AppPath: DefaultAppPath,
			Invoke:  InvokeOptions,
		},
	}
}
