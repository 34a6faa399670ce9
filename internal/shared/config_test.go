package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./onboard.db" {
			t.Errorf("expected database path ./onboard.db, got %s", config.Database.Path)
		}
		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}
		if config.Server.Addr() != "127.0.0.1:3000" {
			t.Errorf("expected addr 127.0.0.1:3000, got %s", config.Server.Addr())
		}
		if config.Data.BaseURL != "" || config.Data.Dir != "" {
			t.Error("expected embedded datasets by default")
		}
		if config.Data.Timeout() != 0 {
			t.Errorf("expected no fetch timeout by default, got %v", config.Data.Timeout())
		}
		if config.Database.RecordSubmissions {
			t.Error("expected submission recording to be off by default")
		}
		if config.Server.SessionTTL() != 30*time.Minute || config.Server.MaxSessions != 10000 {
			t.Errorf("unexpected session limits %v / %d", config.Server.SessionTTL(), config.Server.MaxSessions)
		}
		if err := config.Validate(); err != nil {
			t.Errorf("expected default config to be valid, got %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[data]
base_url = "http://localhost:9090/data"
timeout_seconds = 5

[server]
host = "0.0.0.0"
port = 8080

[database]
path = "/custom/path.db"
record_submissions = true

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Data.BaseURL != "http://localhost:9090/data" {
			t.Errorf("expected base_url http://localhost:9090/data, got %s", config.Data.BaseURL)
		}
		if config.Data.Timeout().Seconds() != 5 {
			t.Errorf("expected 5s timeout, got %v", config.Data.Timeout())
		}
		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}
		if config.Database.Path != "/custom/path.db" || !config.Database.RecordSubmissions {
			t.Errorf("unexpected database config %+v", config.Database)
		}
		if config.Server.Burst != 20 {
			t.Errorf("expected burst to keep its default 20, got %d", config.Server.Burst)
		}
	})

	t.Run("LoadConfig Errors", func(t *testing.T) {
		tt := []struct {
			name    string
			content string
		}{
			{"malformed toml", "[server\nport = 1"},
			{"port out of range", "[server]\nport = 70000"},
			{"negative timeout", "[data]\ntimeout_seconds = -1"},
			{"unknown log level", "[log]\nlevel = \"loud\""},
			{"negative session ttl", "[server]\nsession_ttl_minutes = -5"},
			{"negative max sessions", "[server]\nmax_sessions = -1"},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				configPath := filepath.Join(t.TempDir(), "config.toml")
				if err := os.WriteFile(configPath, []byte(tc.content), 0644); err != nil {
					t.Fatalf("failed to write test config: %v", err)
				}

				_, err := LoadConfig(configPath)
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}

		if _, err := LoadConfig("/nonexistent/config.toml"); !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig for missing file, got %v", err)
		}
	})
}
