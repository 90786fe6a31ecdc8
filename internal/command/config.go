// Where: internal/command/config.go
// What: Config subcommands.
// Why: Let operators create ~/.apcacheck/config.yaml without hand-writing YAML.
package command

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/poruru-code/apcacheck/internal/infra/config"
)

type (
	ConfigCmd struct {
		Init ConfigInitCmd `cmd:"" help:"Write a default config file"`
	}

	ConfigInitCmd struct {
		Force bool `help:"Overwrite an existing config file"`
	}
)

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")

// runConfigInit writes the default config to the resolved config path.
func runConfigInit(cli CLI, deps Dependencies, out io.Writer) int {
	path, err := deps.ConfigPath()
	if err != nil {
		return exitWithError(out, fmt.Errorf("resolve config path: %w", err))
	}

	if !cli.Config.Init.Force {
		if _, err := os.Stat(path); err == nil {
			return exitWithError(out, fmt.Errorf("%s: %w", path, errConfigExists))
		} else if !errors.Is(err, fs.ErrNotExist) {
			return exitWithError(out, fmt.Errorf("stat config: %w", err))
		}
	}

	if err := config.SaveGlobalConfig(path, config.DefaultGlobalConfig()); err != nil {
		return exitWithError(out, err)
	}
	legacyUI(out).Success(fmt.Sprintf("Wrote %s", path))
	return 0
}
