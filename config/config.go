package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// FileName is the configuration file looked up in the working and home directories.
const FileName = ".revlog.json"

// Backend selects how history queries are answered.
type Backend string

const (
	BackendCLI   Backend = "cli"   // run the git binary
	BackendGoGit Backend = "gogit" // read the repository in-process
)

// Config is the root configuration structure.
type Config struct {
	Git    GitConfig    `json:"git"`
	Output OutputConfig `json:"output"`
	Log    LogConfig    `json:"log"`
}

// GitConfig holds repository access options.
type GitConfig struct {
	RepoPath     string   `json:"repoPath"`     // Default: "."
	Binary       string   `json:"binary"`       // Default: "git"
	Backend      Backend  `json:"backend"`      // Default: "cli"
	DefaultUntil string   `json:"defaultUntil"` // Default: "HEAD"
	Paths        []string `json:"paths"`        // Glob patterns for range queries
}

// OutputConfig holds report output options.
type OutputConfig struct {
	Format string `json:"format"` // Default: "console"
	Top    int    `json:"top"`    // 0 means no limit
}

// LogConfig holds logging options.
type LogConfig struct {
	Level  string `json:"level"`  // Default: "warn"
	Format string `json:"format"` // "json" or "text"
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			RepoPath:     ".",
			Binary:       "git",
			Backend:      BackendCLI,
			DefaultUntil: "HEAD",
			Paths:        []string{},
		},
		Output: OutputConfig{
			Format: "console",
			Top:    0,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// Environment overrides are applied afterwards.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{FileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, FileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, FileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides values from REVLOG_* environment variables.
// A .env file in the working directory is loaded first if present.
func (c *Config) ApplyEnv() {
	// Optional; a missing .env is not an error.
	_ = godotenv.Load(".env")

	c.Git.RepoPath = getEnv("REVLOG_REPO", c.Git.RepoPath)
	c.Git.Binary = getEnv("REVLOG_GIT_BINARY", c.Git.Binary)
	c.Git.Backend = Backend(getEnv("REVLOG_BACKEND", string(c.Git.Backend)))
	c.Log.Level = getEnv("REVLOG_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("REVLOG_LOG_FORMAT", c.Log.Format)
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Git.Backend {
	case BackendCLI, BackendGoGit:
	default:
		return fmt.Errorf("unknown backend %q (expected %q or %q)", c.Git.Backend, BackendCLI, BackendGoGit)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q (expected json or text)", c.Log.Format)
	}

	if strings.TrimSpace(c.Git.RepoPath) == "" {
		return fmt.Errorf("repository path is required")
	}
	return nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
