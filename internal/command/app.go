// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/poruru-code/apcacheck/internal/domain/credential"
	"github.com/poruru-code/apcacheck/internal/infra/config"
	"github.com/poruru-code/apcacheck/internal/meta"
	"github.com/poruru-code/apcacheck/internal/usecase/credcheck"
	"github.com/poruru-code/apcacheck/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// This structure enables dependency injection for testing and allows swapping
// the trading client for a fake.
type Dependencies struct {
	Out    io.Writer
	ErrOut io.Writer
	Getwd  func() (string, error)

	// Lookup reads the process environment; defaults to os.LookupEnv.
	Lookup credential.Lookup

	// NewClient is nil when no trading SDK is wired into the build.
	NewClient   credcheck.ClientFactory
	IsAuthError func(error) bool
	LoadConfig  func() (config.GlobalConfig, error)
	ConfigPath  func() (string, error)
	GOOS        string
}

// CLI defines the command-line interface structure parsed by Kong.
// Running without arguments performs the credential check.
type CLI struct {
	EnvFile   string     `name:"env-file" help:"Path to .env file (default: nearest .env at or above the working directory)"`
	NoEnvFile bool       `name:"no-env-file" help:"Do not load any .env file"`
	NoEmoji   bool       `name:"no-emoji" help:"Disable emoji output"`
	Verbose   bool       `short:"v" help:"Write diagnostic logs to stderr"`
	Check     CheckCmd   `cmd:"" default:"1" help:"Verify credentials by fetching account info (default)"`
	Config    ConfigCmd  `cmd:"" help:"Manage the CLI config file"`
	Version   VersionCmd `cmd:"" help:"Show version information"`
}

type (
	// CheckCmd runs the credential check.
	CheckCmd struct{}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments and dispatches to the matching
// handler. The returned value is the process exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	if deps.Lookup == nil {
		deps.Lookup = os.LookupEnv
	}
	if deps.ConfigPath == nil {
		deps.ConfigPath = config.GlobalConfigPath
	}
	if deps.LoadConfig == nil {
		configPath := deps.ConfigPath
		deps.LoadConfig = func() (config.GlobalConfig, error) {
			return loadGlobalConfig(configPath)
		}
	}
	if deps.GOOS == "" {
		deps.GOOS = runtime.GOOS
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description(meta.AppName+" verifies that Alpaca API credentials can authenticate."),
		kong.Writers(out, deps.ErrOut),
		kong.Exit(func(code int) { panic(parserExit{code: code}) }),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, exitCode, exited, err := parseArgs(parser, args)
	if exited {
		return exitCode
	}
	if err != nil {
		return exitWithError(out, err)
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	legacyUI(out).Warn("unknown command")
	return 1
}

// parserExit carries the code kong asks to exit with (e.g. after --help).
type parserExit struct {
	code int
}

func parseArgs(parser *kong.Kong, args []string) (ctx *kong.Context, exitCode int, exited bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			exit, ok := r.(parserExit)
			if !ok {
				panic(r)
			}
			ctx, exitCode, exited, err = nil, exit.code, true, nil
		}
	}()
	ctx, err = parser.Parse(args)
	return ctx, 0, false, err
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"check":       runCheck,
		"config init": runConfigInit,
		"version":     runVersion,
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, _ Dependencies, out io.Writer) int {
	legacyUI(out).Info(fmt.Sprintf("%s %s", cliName(), version.GetVersion()))
	return 0
}

func loadGlobalConfig(configPath func() (string, error)) (config.GlobalConfig, error) {
	path, err := configPath()
	if err != nil {
		return config.DefaultGlobalConfig(), err
	}
	return config.LoadGlobalConfig(path)
}
