// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru-code/apcacheck/internal/meta"
)

// HostEnvKey constructs a CLI-scoped environment variable name
// by combining meta.EnvPrefix with the given suffix.
// Example: HostEnvKey("LOG_LEVEL") returns "APCACHECK_LOG_LEVEL".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a CLI-scoped environment variable, trimmed.
// Example: GetHostEnv("CONFIG") returns the value of APCACHECK_CONFIG.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}
