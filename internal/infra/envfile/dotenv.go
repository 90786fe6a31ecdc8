// Where: internal/infra/envfile/dotenv.go
// What: .env file source for credential overrides.
// Why: Let users keep APCA_* values in a local file without exporting them.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poruru-code/apcacheck/internal/meta"
)

// DotenvSource reads key/value pairs from a dotenv file.
// Path names the file explicitly; when empty, the nearest meta.DotenvFileName
// at or above SearchFrom is used.
type DotenvSource struct {
	Path       string
	SearchFrom string
}

// Resolve returns the file the source would read, or "" when none exists.
func (s DotenvSource) Resolve() string {
	if path := strings.TrimSpace(s.Path); path != "" {
		return path
	}
	if strings.TrimSpace(s.SearchFrom) == "" {
		return ""
	}
	path, ok := FindUpward(s.SearchFrom, meta.DotenvFileName)
	if !ok {
		return ""
	}
	return path
}

// LoadOverrides parses the resolved file. A missing default file yields an
// empty map; a missing explicit file or a parse failure is an error.
func (s DotenvSource) LoadOverrides() (map[string]string, error) {
	path := s.Resolve()
	if path == "" {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && strings.TrimSpace(s.Path) == "" {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}

// FindUpward searches for name in start and each of its parents.
func FindUpward(start, name string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
