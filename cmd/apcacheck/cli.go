// Where: cmd/apcacheck/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/apcacheck/internal/command"
	"github.com/poruru-code/apcacheck/internal/domain/credential"
	"github.com/poruru-code/apcacheck/internal/infra/alpaca"
	"github.com/poruru-code/apcacheck/internal/usecase/credcheck"
)

var (
	getwd            = os.Getwd
	newTradingClient = func(settings credential.Settings) (credcheck.TradingClient, error) {
		client, err := alpaca.NewClient(settings)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// The Alpaca SDK adapter is wired as the trading client factory. The working
// directory is resolved lazily so a failing getwd only skips .env discovery.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		Getwd:       getwd,
		Lookup:      os.LookupEnv,
		NewClient:   newTradingClient,
		IsAuthError: alpaca.IsAuthError,
	}
}
