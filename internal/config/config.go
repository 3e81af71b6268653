// Package config loads the ts configuration file and resolves the handful of
// well-known paths the tool writes to.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for ts, stored in
// $XDG_CONFIG_HOME/ts/config.yaml (or ~/.config/ts/config.yaml).
type Config struct {
	// LogPath overrides the default timesheet location
	// (~/Documents/timesheet.log). Empty uses the default.
	LogPath string `yaml:"log_path"`

	// DefaultActivity is used when start is invoked without one.
	DefaultActivity string `yaml:"default_activity"`

	// PromptTimeoutSecs bounds how long a reminder prompt stays on screen
	// before counting as a timeout.
	PromptTimeoutSecs int `yaml:"prompt_timeout_secs"`

	Outlook OutlookConfig `yaml:"outlook"`
}

// OutlookConfig holds Microsoft Graph / Outlook calendar sync settings.
type OutlookConfig struct {
	// TenantID is the Azure AD tenant. Use "common" for personal/multi-tenant accounts.
	TenantID string `yaml:"tenant_id"`
	// ClientID is the Azure app (client) ID for the OAuth2 device code flow.
	ClientID string `yaml:"client_id"`
	// DefaultActivity is assigned to imported Outlook events.
	DefaultActivity string `yaml:"default_activity"`
	// Timezone is the IANA timezone for event times (e.g. "Europe/Berlin"). Empty = UTC.
	Timezone string `yaml:"timezone"`
}

const (
	// DefaultActivity is logged when start is given no activity.
	DefaultActivity = "misc/unspecified"
	// DefaultPromptTimeoutSecs is how long a reminder prompt waits for an answer.
	DefaultPromptTimeoutSecs = 300
	// DefaultTenantID is the Microsoft "common" tenant (supports personal and
	// multi-tenant organisational accounts without additional registration).
	DefaultTenantID = "common"
	// DefaultClientID is the well-known public Azure CLI app ID.
	// It supports device code flow without a client secret and requires no
	// app registration. Replace with your own registered app ID for
	// organisational or production deployments.
	DefaultClientID = "04b07795-8542-4c4a-95af-30b2c573d5ab"
	// DefaultOutlookActivity is the activity used for imported calendar events.
	DefaultOutlookActivity = "meetings"
)

// DefaultConfig returns a Config pre-filled with built-in defaults.
func DefaultConfig() Config {
	return Config{
		DefaultActivity:   DefaultActivity,
		PromptTimeoutSecs: DefaultPromptTimeoutSecs,
		Outlook: OutlookConfig{
			TenantID:        DefaultTenantID,
			ClientID:        DefaultClientID,
			DefaultActivity: DefaultOutlookActivity,
		},
	}
}

// Load reads the config file, falling back to defaults when it does not
// exist. Zero-value fields are filled with defaults so callers always get a
// usable Config even from a partially filled file.
func Load() (Config, error) {
	path, err := filePath()
	if err != nil {
		return DefaultConfig(), err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.DefaultActivity == "" {
		cfg.DefaultActivity = DefaultActivity
	}
	if cfg.PromptTimeoutSecs <= 0 {
		cfg.PromptTimeoutSecs = DefaultPromptTimeoutSecs
	}
	if cfg.Outlook.TenantID == "" {
		cfg.Outlook.TenantID = DefaultTenantID
	}
	if cfg.Outlook.ClientID == "" {
		cfg.Outlook.ClientID = DefaultClientID
	}
	if cfg.Outlook.DefaultActivity == "" {
		cfg.Outlook.DefaultActivity = DefaultOutlookActivity
	}
	return cfg, nil
}

func filePath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ts", "config.yaml"), nil
}

// TimesheetPath resolves the active timesheet location, honoring the config
// override when one is set.
func (c Config) TimesheetPath() (string, error) {
	if c.LogPath != "" {
		return c.LogPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "timesheet.log"), nil
}

// CacheDir resolves the directory for the daemon's runtime files, honoring
// XDG_CACHE_HOME with a ~/.cache fallback.
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".cache"), nil
}

// PidPath is the reminder daemon's PID file.
func PidPath() (string, error) {
	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ts-reminder.pid"), nil
}

// IntervalPath is the persisted reminder interval.
func IntervalPath() (string, error) {
	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ts-reminder-interval"), nil
}
