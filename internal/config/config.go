package config

// #region imports
import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/metrics"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/route"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/tone"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/value"
)

// #endregion

// #region config

// Config is the full external configuration surface: every named
// threshold, keyword set, and band from the scoring stages, plus process
// settings for the batch driver.
type Config struct {
	Tone    tone.Config    `yaml:"tone"`
	Value   value.Config   `yaml:"value"`
	Route   route.Config   `yaml:"route"`
	Metrics metrics.Config `yaml:"metrics"`
	Store   StoreConfig    `yaml:"store"`
}

// StoreConfig locates the optional SQLite results database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// #endregion config

// #region load

// Load builds the configuration from compiled defaults, then an optional
// YAML file, then environment overrides, in that precedence order.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Tone:    tone.DefaultConfig(),
		Value:   value.DefaultConfig(),
		Route:   route.DefaultConfig(),
		Metrics: metrics.DefaultConfig(),
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// Override from environment
	if v := os.Getenv("TRIAGE_DB"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("TRIAGE_HIGH_PRIORITY_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse TRIAGE_HIGH_PRIORITY_THRESHOLD: %w", err)
		}
		cfg.Metrics.HighPriorityThreshold = f
	}
	if v := os.Getenv("TRIAGE_HIGH_VALUE_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse TRIAGE_HIGH_VALUE_THRESHOLD: %w", err)
		}
		cfg.Route.HighValueThreshold = f
	}

	return cfg, nil
}

// #endregion load
