package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Ranking
	SkillMatchWeight    *float64 `json:"skill_match_weight,omitempty"`    // Override for the skill-match factor
	ExperienceFitWeight *float64 `json:"experience_fit_weight,omitempty"` // Override for the experience-fit factor
	LocationWeight      *float64 `json:"location_weight,omitempty"`       // Override for the location factor
	RecencyWeight       *float64 `json:"recency_weight,omitempty"`        // Override for the recency factor

	// Ingestion
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job boards

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	for name, w := range map[string]*float64{
		"skill_match_weight":    c.SkillMatchWeight,
		"experience_fit_weight": c.ExperienceFitWeight,
		"location_weight":       c.LocationWeight,
		"recency_weight":        c.RecencyWeight,
	} {
		if w != nil && *w < 0 {
			return fmt.Errorf("config error: '%s' must be non-negative", name)
		}
	}

	return nil
}
