package config

import (
	"os"
	"path/filepath"
	"testing"
)

func loadFromDir(t *testing.T, dir string) error {
	t.Helper()
	origConfig := Config
	origDir, _ := os.Getwd()
	t.Cleanup(func() {
		Config = origConfig
		_ = os.Chdir(origDir)
	})
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return LoadAppConfig()
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return dir
}

func TestLoadAppConfigDefaults(t *testing.T) {
	dir := writeConfig(t, "eventsAPI:\n  baseURL: http://localhost:9877/api\n")
	if err := loadFromDir(t, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Config.Server.Port != DefaultPort {
		t.Errorf("port default = %d", Config.Server.Port)
	}
	if Config.FleetAPI.BaseURL != DefaultFleetBaseURL {
		t.Errorf("fleet base default = %q", Config.FleetAPI.BaseURL)
	}
	if Config.Cache.TTLSeconds != DefaultCacheTTLSec {
		t.Errorf("cache ttl default = %d", Config.Cache.TTLSeconds)
	}
	if Config.Display.Timezone != DefaultTimezone {
		t.Errorf("timezone default = %q", Config.Display.Timezone)
	}
	if Config.EventsAPI.BaseURL != "http://localhost:9877/api" {
		t.Errorf("events base = %q", Config.EventsAPI.BaseURL)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	if err := loadFromDir(t, t.TempDir()); err == nil {
		t.Error("loading with no config.yml should fail")
	}
}

func TestLoadAppConfigValidation(t *testing.T) {
	dir := writeConfig(t, "fleetAPI:\n  baseURL: not-a-url\n")
	if err := loadFromDir(t, dir); err == nil {
		t.Error("invalid baseURL should fail validation")
	}
}

func TestLoadAppConfigEnvOverrides(t *testing.T) {
	t.Setenv("FM_API_KEY", "env-key")
	t.Setenv("EVENTS_USER_ID", "user_2")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	dir := writeConfig(t, "fleetAPI:\n  api_key: file-key\n")
	if err := loadFromDir(t, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Config.FleetAPI.APIKey != "env-key" {
		t.Errorf("api key = %q", Config.FleetAPI.APIKey)
	}
	if Config.EventsAPI.UserID != "user_2" {
		t.Errorf("user id = %q", Config.EventsAPI.UserID)
	}
	if Config.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("redis addr = %q", Config.Cache.RedisAddr)
	}
}
