package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tsheet/ts/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultActivity != config.DefaultActivity {
		t.Errorf("DefaultActivity = %q, want %q", cfg.DefaultActivity, config.DefaultActivity)
	}
	if cfg.PromptTimeoutSecs != config.DefaultPromptTimeoutSecs {
		t.Errorf("PromptTimeoutSecs = %d, want %d", cfg.PromptTimeoutSecs, config.DefaultPromptTimeoutSecs)
	}
	if cfg.Outlook.TenantID != config.DefaultTenantID {
		t.Errorf("Outlook.TenantID = %q, want %q", cfg.Outlook.TenantID, config.DefaultTenantID)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	content := `log_path: /tmp/work.log
default_activity: research
prompt_timeout_secs: 120
outlook:
  tenant_id: contoso
  timezone: Europe/Berlin
`
	if err := os.MkdirAll(filepath.Join(dir, "ts"), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ts", "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogPath != "/tmp/work.log" {
		t.Errorf("LogPath = %q, want /tmp/work.log", cfg.LogPath)
	}
	if cfg.DefaultActivity != "research" {
		t.Errorf("DefaultActivity = %q, want research", cfg.DefaultActivity)
	}
	if cfg.PromptTimeoutSecs != 120 {
		t.Errorf("PromptTimeoutSecs = %d, want 120", cfg.PromptTimeoutSecs)
	}
	if cfg.Outlook.TenantID != "contoso" {
		t.Errorf("Outlook.TenantID = %q, want contoso", cfg.Outlook.TenantID)
	}
	if cfg.Outlook.Timezone != "Europe/Berlin" {
		t.Errorf("Outlook.Timezone = %q, want Europe/Berlin", cfg.Outlook.Timezone)
	}
	// Fields the file leaves out still get defaults.
	if cfg.Outlook.ClientID != config.DefaultClientID {
		t.Errorf("Outlook.ClientID = %q, want default", cfg.Outlook.ClientID)
	}
	if cfg.Outlook.DefaultActivity != config.DefaultOutlookActivity {
		t.Errorf("Outlook.DefaultActivity = %q, want %q", cfg.Outlook.DefaultActivity, config.DefaultOutlookActivity)
	}
}

func TestTimesheetPathOverride(t *testing.T) {
	cfg := config.Config{LogPath: "/tmp/custom.log"}
	got, err := cfg.TimesheetPath()
	if err != nil {
		t.Fatalf("TimesheetPath: %v", err)
	}
	if got != "/tmp/custom.log" {
		t.Errorf("TimesheetPath = %q, want /tmp/custom.log", got)
	}
}

func TestTimesheetPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.Config{}.TimesheetPath()
	if err != nil {
		t.Fatalf("TimesheetPath: %v", err)
	}
	want := filepath.Join(home, "Documents", "timesheet.log")
	if got != want {
		t.Errorf("TimesheetPath = %q, want %q", got, want)
	}
}

func TestCachePaths(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)

	pid, err := config.PidPath()
	if err != nil {
		t.Fatalf("PidPath: %v", err)
	}
	if want := filepath.Join(cache, "ts-reminder.pid"); pid != want {
		t.Errorf("PidPath = %q, want %q", pid, want)
	}
	ivl, err := config.IntervalPath()
	if err != nil {
		t.Fatalf("IntervalPath: %v", err)
	}
	if want := filepath.Join(cache, "ts-reminder-interval"); ivl != want {
		t.Errorf("IntervalPath = %q, want %q", ivl, want)
	}
}
