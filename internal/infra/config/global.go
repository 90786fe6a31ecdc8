// Where: internal/infra/config/global.go
// What: Global config load/save.
// Why: Manage ~/.apcacheck/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/apcacheck/internal/infra/envutil"
	"github.com/poruru-code/apcacheck/internal/meta"
	"gopkg.in/yaml.v3"
)

// EnvFileNone as env_file turns off dotenv loading entirely.
const EnvFileNone = "none"

var userHomeDir = os.UserHomeDir

// GlobalConfig represents ~/.apcacheck/config.yaml.
// It never carries credentials or the API base URL.
type GlobalConfig struct {
	Version  int    `yaml:"version"`
	EnvFile  string `yaml:"env_file,omitempty"`
	Emoji    *bool  `yaml:"emoji,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// EmojiEnabled reports the emoji preference, defaulting to enabled.
func (c GlobalConfig) EmojiEnabled() bool {
	return c.Emoji == nil || *c.Emoji
}

// EnvFileDisabled reports whether dotenv loading is turned off.
func (c GlobalConfig) EnvFileDisabled() bool {
	return strings.EqualFold(strings.TrimSpace(c.EnvFile), EnvFileNone)
}

// GlobalConfigPath resolves the config path, honoring APCACHECK_CONFIG.
func GlobalConfigPath() (string, error) {
	if override := envutil.GetHostEnv("CONFIG"); override != "" {
		return override, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFileName), nil
}

// LoadGlobalConfig reads, validates and parses the config file.
// A missing file yields DefaultGlobalConfig and no error.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, fmt.Errorf("read global config: %w", err)
	}
	if strings.TrimSpace(string(payload)) == "" {
		return DefaultGlobalConfig(), nil
	}

	if err := validateConfig(payload); err != nil {
		return GlobalConfig{}, fmt.Errorf("validate global config %s: %w", path, err)
	}

	cfg := DefaultGlobalConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("decode global config: %w", err)
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode global config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create global config dir: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write global config: %w", err)
	}
	return nil
}
