package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type DeployJSONConfig struct {
	Server struct {
		Address  EnvString `json:"address"`
		Port     EnvString `json:"port"`
		Headless EnvString `json:"headless"`
	} `json:"server,omitempty"`

	Telemetry struct {
		GatherUsageStats EnvString `json:"gather_usage_stats"`
		UsageStatsURL    EnvString `json:"usage_stats_url"`
	} `json:"telemetry,omitempty"`

	Launch struct {
		App EnvString `json:"app"`
	} `json:"launch,omitempty"`
}

func parseJSON(jsonFilePath string) (*DeployConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg DeployJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &DeployConfig{
		Server: Server{
			Address:  string(jsonCfg.Server.Address),
			Port:     string(jsonCfg.Server.Port),
			Headless: string(jsonCfg.Server.Headless),
		},
		Telemetry: Telemetry{
			GatherUsageStats: string(jsonCfg.Telemetry.GatherUsageStats),
			UsageStatsURL:    string(jsonCfg.Telemetry.UsageStatsURL),
		},
		Launch: Launch{
			AppPath: string(jsonCfg.Launch.App),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// EnvString is a wrapper around string that supports JSON unmarshaling from
// strings, numbers and booleans, so `"port": 9000` and `"headless": true`
// land in the same raw-string pipeline as their environment counterparts.
type EnvString string

func (s *EnvString) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*s = EnvString(value)
		return nil
	case float64:
		*s = EnvString(strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	case bool:
		*s = EnvString(strconv.FormatBool(value))
		return nil
	default:
		return json.Unmarshal(b, (*string)(s))
	}
}

func (s EnvString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}
