// Where: internal/command/check.go
// What: Check command adapter.
// Why: Translate flags, config and environment into a credcheck.Checker run.
package command

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/poruru-code/apcacheck/internal/infra/config"
	"github.com/poruru-code/apcacheck/internal/infra/envfile"
	"github.com/poruru-code/apcacheck/internal/infra/envutil"
	"github.com/poruru-code/apcacheck/internal/infra/logging"
	"github.com/poruru-code/apcacheck/internal/infra/ui"
	"github.com/poruru-code/apcacheck/internal/meta"
	"github.com/poruru-code/apcacheck/internal/usecase/credcheck"
)

func runCheck(cli CLI, deps Dependencies, out io.Writer) int {
	cfg, cfgErr := deps.LoadConfig()
	logger := logging.New(deps.ErrOut, resolveLogLevel(cli, deps, cfg))
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("ignoring global config")
		cfg = config.DefaultGlobalConfig()
	}

	cwd, err := deps.Getwd()
	if err != nil {
		logger.Debug().Err(err).Msg("working directory unavailable, skipping .env discovery")
		cwd = ""
	}

	source, hint := selectEnvSource(cli, cfg, cwd)
	shellEnv, _ := deps.Lookup("SHELL")
	emoji := !cli.NoEmoji && cfg.EmojiEnabled()

	checker := credcheck.Checker{
		Env:         source,
		Lookup:      deps.Lookup,
		NewClient:   deps.NewClient,
		Guidance:    ui.Guidance{Shell: ui.DetectShell(deps.GOOS, shellEnv), EnvFile: hint},
		UI:          ui.NewCheckUI(out, emoji),
		Logger:      logger,
		IsAuthError: deps.IsAuthError,
	}

	result := checker.Run(context.Background())
	logger.Debug().Str("outcome", result.Outcome.String()).Int("exit_code", result.ExitCode()).Msg("check finished")
	return result.ExitCode()
}

// selectEnvSource picks the env-file source once at startup. The returned
// hint names the file suggested in missing-credential guidance.
func selectEnvSource(cli CLI, cfg config.GlobalConfig, cwd string) (credcheck.EnvSource, string) {
	if cli.NoEnvFile || (cli.EnvFile == "" && cfg.EnvFileDisabled()) {
		return credcheck.NoopEnvSource{}, ""
	}
	if path := strings.TrimSpace(cli.EnvFile); path != "" {
		return envfile.DotenvSource{Path: path}, path
	}
	if path := strings.TrimSpace(cfg.EnvFile); path != "" {
		return envfile.DotenvSource{Path: path}, path
	}

	source := envfile.DotenvSource{SearchFrom: cwd}
	hint := source.Resolve()
	if hint == "" && cwd != "" {
		hint = filepath.Join(cwd, meta.DotenvFileName)
	}
	return source, hint
}

func resolveLogLevel(cli CLI, deps Dependencies, cfg config.GlobalConfig) string {
	if cli.Verbose {
		return "debug"
	}
	if level, ok := deps.Lookup(envutil.HostEnvKey("LOG_LEVEL")); ok && strings.TrimSpace(level) != "" {
		return level
	}
	return cfg.LogLevel
}
