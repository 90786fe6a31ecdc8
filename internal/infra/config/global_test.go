// Where: internal/infra/config/global_test.go
// What: Tests for global config handling.
// Why: Ensure config round-trips and invalid files are rejected.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadGlobalConfigParsesAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	emoji := false
	cfg := GlobalConfig{
		Version:  1,
		EnvFile:  "/work/alpaca.env",
		Emoji:    &emoji,
		LogLevel: "debug",
	}

	payload := "version: 1\nenv_file: /work/alpaca.env\nemoji: false\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write global config: %v", err)
	}

	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loaded) {
		t.Fatalf("config mismatch: expected %#v, got %#v", cfg, loaded)
	}
	if loaded.EmojiEnabled() {
		t.Fatalf("expected emoji disabled")
	}
}

func TestLoadGlobalConfigMissingFileReturnsDefault(t *testing.T) {
	cfg, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGlobalConfig()) {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
	if !cfg.EmojiEnabled() || cfg.EnvFileDisabled() {
		t.Fatalf("unexpected default preferences: %#v", cfg)
	}
}

func TestLoadGlobalConfigEmptyFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("unexpected version: %d", cfg.Version)
	}
}

func TestLoadGlobalConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\nbase_url: https://api.alpaca.markets\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadGlobalConfig(path)
	if err == nil {
		t.Fatalf("expected schema validation error")
	}
	if !strings.Contains(err.Error(), "validate global config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadGlobalConfigRejectsBadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadGlobalConfig(path); err == nil {
		t.Fatalf("expected schema validation error")
	}
}

func TestEnvFileDisabled(t *testing.T) {
	if !(GlobalConfig{EnvFile: " None "}).EnvFileDisabled() {
		t.Fatalf("expected env file disabled")
	}
}

func TestGlobalConfigPathOverride(t *testing.T) {
	t.Setenv("APCACHECK_CONFIG", "/etc/apcacheck.yaml")
	got, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if got != "/etc/apcacheck.yaml" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestGlobalConfigPathUsesHome(t *testing.T) {
	t.Setenv("APCACHECK_CONFIG", "")
	orig := userHomeDir
	t.Cleanup(func() { userHomeDir = orig })
	userHomeDir = func() (string, error) { return "/home/trader", nil }

	got, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if got != filepath.Join("/home/trader", ".apcacheck", "config.yaml") {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestSaveGlobalConfigCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".apcacheck", "config.yaml")

	if err := SaveGlobalConfig(path, DefaultGlobalConfig()); err != nil {
		t.Fatalf("save global config: %v", err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if err := validateConfig(payload); err != nil {
		t.Fatalf("saved config does not validate: %v", err)
	}
	if got := strings.TrimSpace(string(payload)); got != "version: 1" {
		t.Fatalf("unexpected saved config: %q", got)
	}
}
