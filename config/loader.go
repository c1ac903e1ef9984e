package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied after load.
const (
	DefaultPort         = 8080
	DefaultFleetBaseURL = "https://api.fm-track.com"
	DefaultCacheTTLSec  = 300
	DefaultTimezone     = "Europe/Bucharest"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml, then applies defaults and environment overrides.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	applyDefaults(&Config)
	applyEnvOverrides(&Config)
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.FleetAPI.BaseURL == "" {
		cfg.FleetAPI.BaseURL = DefaultFleetBaseURL
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = DefaultCacheTTLSec
	}
	if cfg.Display.Timezone == "" {
		cfg.Display.Timezone = DefaultTimezone
	}
}

// applyEnvOverrides lets secrets come from the environment instead of the
// config file.
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("FM_API_KEY"); v != "" {
		cfg.FleetAPI.APIKey = v
	}
	if v := os.Getenv("EVENTS_USER_ID"); v != "" {
		cfg.EventsAPI.UserID = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
}
