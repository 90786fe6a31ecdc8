// Where: internal/infra/logging/logger.go
// What: Diagnostic logger construction.
// Why: Keep debug traces on stderr so stdout stays the human-readable check result.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured or the value is unknown.
const DefaultLevel = zerolog.WarnLevel

// New returns a console logger writing to out at the parsed level.
func New(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = DefaultLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(writer).Level(lvl)
}
