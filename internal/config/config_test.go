package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 4245 {
		t.Errorf("expected default port 4245, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host localhost, got %s", cfg.Server.Host)
	}
	if cfg.Storage.ReportsFile != "./data/investment_reports.json" {
		t.Errorf("unexpected default reports file: %s", cfg.Storage.ReportsFile)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("unexpected default model: %s", cfg.Gemini.Model)
	}
	if cfg.Gemini.MaxOutputTokens != 1000 {
		t.Errorf("expected default max_output_tokens 1000, got %d", cfg.Gemini.MaxOutputTokens)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vire-reports.toml")
	content := `
[server]
port = 9090
host = "0.0.0.0"

[gemini]
model = "gemini-test"
max_output_tokens = 512
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Gemini.Model != "gemini-test" {
		t.Errorf("expected model gemini-test, got %s", cfg.Gemini.Model)
	}
	// Values absent from the file keep their defaults.
	if cfg.Storage.ReportsFile != "./data/investment_reports.json" {
		t.Errorf("expected default reports file, got %s", cfg.Storage.ReportsFile)
	}
}

func TestLoadFromFile_MissingFileFails(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/vire-reports.toml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFromFiles_LaterFilesOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")

	if err := os.WriteFile(base, []byte("[server]\nport = 1111\nhost = \"first\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(override, []byte("[server]\nport = 2222\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(base, override)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 2222 {
		t.Errorf("expected later file to win, got port %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "first" {
		t.Errorf("expected host from first file preserved, got %s", cfg.Server.Host)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VIRE_SERVER_PORT", "7777")
	t.Setenv("VIRE_GEMINI_MODEL", "gemini-env")
	t.Setenv("GEMINI_API_KEY", "secret-key")
	t.Setenv("VIRE_LOG_LEVEL", "debug")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("expected env port 7777, got %d", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-env" {
		t.Errorf("expected env model, got %s", cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey != "secret-key" {
		t.Errorf("expected env API key, got %s", cfg.Gemini.APIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env log level, got %s", cfg.Logging.Level)
	}
}

func TestEnvOverride_InvalidPortIgnored(t *testing.T) {
	t.Setenv("VIRE_SERVER_PORT", "not-a-number")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if cfg.Server.Port != 4245 {
		t.Errorf("invalid env port should keep default, got %d", cfg.Server.Port)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 8081, "example.internal")
	if cfg.Server.Port != 8081 {
		t.Errorf("expected flag port 8081, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "example.internal" {
		t.Errorf("expected flag host, got %s", cfg.Server.Host)
	}

	// Zero values leave config untouched.
	ApplyFlagOverrides(cfg, 0, "")
	if cfg.Server.Port != 8081 || cfg.Server.Host != "example.internal" {
		t.Error("zero flag values should not override config")
	}
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("default config should validate cleanly, got: %v", issues)
	}

	cfg.Gemini.URL = ""
	cfg.Server.Port = 99999
	cfg.Storage.ReportsFile = ""
	issues := cfg.Validate()
	if len(issues) != 3 {
		t.Errorf("expected 3 issues, got %d: %v", len(issues), issues)
	}
}
