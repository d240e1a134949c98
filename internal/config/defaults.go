package config

import "github.com/bobmcallan/vire-reports/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4245,
			Host: "localhost",
		},
		Storage: StorageConfig{
			ReportsFile: "./data/investment_reports.json",
		},
		Gemini: GeminiConfig{
			URL:             "https://generativelanguage.googleapis.com/v1beta/models",
			Model:           "gemini-2.0-flash",
			MaxOutputTokens: 1000,
			TimeoutSeconds:  120,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/vire-reports.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
