package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Dataset     DatasetConfig    `toml:"dataset"`
	Reports     ReportsConfig    `toml:"reports"`
	Escalation  EscalationConfig `toml:"escalation"`
	Auth        AuthConfig       `toml:"auth"`
	Sweep       SweepConfig      `toml:"sweep"`
	Logging     LoggingConfig    `toml:"logging"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"min=0,max=65535"`
	Host string `toml:"host"`
}

// DatasetConfig points at the CSV files the dataset is loaded from at startup.
type DatasetConfig struct {
	Dir string `toml:"dir" validate:"required"` // Directory containing companies.csv, financials.csv, exposure.csv, covenants.csv, ews.csv
}

// ReportsConfig controls where generated report artifacts are written and how
// they are exposed publicly.
type ReportsConfig struct {
	Dir           string `toml:"dir"`             // Artifact directory (default: "reports/generated_reports")
	PublicBaseURL string `toml:"public_base_url"` // Optional base URL; empty disables public URL derivation
	PDFEnabled    bool   `toml:"pdf_enabled"`     // Render a PDF copy of each report (best-effort)
}

// EscalationConfig configures the outbound chat webhook for high-risk alerts.
type EscalationConfig struct {
	WebhookURL string `toml:"webhook_url"` // Teams-style incoming webhook; empty disables escalation
	Timeout    string `toml:"timeout"`     // HTTP timeout as duration string (default: "10s")
	RateLimit  string `toml:"rate_limit"`  // Minimum interval between deliveries (default: "1s")
}

// AuthConfig configures agent credential validation.
type AuthConfig struct {
	AgentKeyPrefix string `toml:"agent_key_prefix"` // Required prefix for agent keys (default: "agent-")
}

// SweepConfig configures the scheduled portfolio risk sweep.
type SweepConfig struct {
	Enabled  bool   `toml:"enabled"`  // Disabled by default
	Schedule string `toml:"schedule"` // Cron schedule (default: "0 6 * * *" - daily at 06:00)
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Output []string `toml:"output"` // "stdout", "file"
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Dataset: DatasetConfig{
			Dir: "./data",
		},
		Reports: ReportsConfig{
			Dir:        "reports/generated_reports",
			PDFEnabled: true,
		},
		Escalation: EscalationConfig{
			Timeout:   "10s",
			RateLimit: "1s",
		},
		Auth: AuthConfig{
			AgentKeyPrefix: "agent-",
		},
		Sweep: SweepConfig{
			Enabled:  false,
			Schedule: "0 6 * * *",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
	}
}

// LoadFromFiles loads configuration by merging defaults, config files (later
// files override earlier ones), and environment variables, in that order.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies RISKINTEL_* environment variable overrides
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("RISKINTEL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("RISKINTEL_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("RISKINTEL_DATA_DIR"); v != "" {
		config.Dataset.Dir = v
	}
	if v := os.Getenv("RISKINTEL_WEBHOOK_URL"); v != "" {
		config.Escalation.WebhookURL = v
	}
	if v := os.Getenv("RISKINTEL_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}

// ApplyFlagOverrides applies command-line flag values on top of the loaded
// configuration. Zero values leave the config untouched.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
