// Where: internal/usecase/credcheck/check.go
// What: One-shot credential check against the trading API.
// Why: Run env load -> credential check -> client -> get account as a linear flow with a typed result.
package credcheck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/poruru-code/apcacheck/internal/domain/credential"
	"github.com/poruru-code/apcacheck/internal/infra/ui"
	"github.com/rs/zerolog"
)

var (
	// ErrDependencyUnavailable is reported when no trading client implementation is wired.
	ErrDependencyUnavailable = errors.New("trading SDK is unavailable")
	errNilClient             = errors.New("client factory returned no client")
)

const (
	progressNotice = "Found API keys in environment, attempting to create client and fetch account info (this will contact Alpaca)..."
	successNotice  = "Successfully retrieved account:"
	failurePrefix  = "Error when contacting Alpaca API: "
)

// Checker wires the collaborators of a single check run.
type Checker struct {
	Env       EnvSource
	Lookup    credential.Lookup
	NewClient ClientFactory
	Guidance  GuidanceRenderer
	UI        ui.UserInterface
	Logger    zerolog.Logger

	// IsAuthError optionally flags errors caused by rejected credentials.
	IsAuthError func(error) bool
}

// Run executes the check and reports the outcome. It never panics on
// collaborator failure and never calls NewClient when credentials are missing.
func (c Checker) Run(ctx context.Context) credential.Result {
	out := c.UI
	if out == nil {
		out = ui.NewLegacyUI(os.Stdout)
	}
	lookup := c.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	overrides := c.loadOverrides()
	settings := credential.Resolve(lookup, overrides)
	result := credential.Result{Settings: settings}

	if missing := settings.Credentials.Missing(); len(missing) > 0 {
		c.Logger.Debug().Strs("missing", missing).Msg("credentials incomplete, skipping client construction")
		c.reportMissing(out, missing)
		result.Outcome = credential.OutcomeMissingCredentials
		return result
	}

	if c.NewClient == nil {
		out.Warn(fmt.Sprintf("Failed to load the trading SDK: %v", ErrDependencyUnavailable))
		out.Info("This build has no Alpaca client wired in; rebuild apcacheck with the default dependencies.")
		result.Outcome = credential.OutcomeDependencyUnavailable
		result.Err = ErrDependencyUnavailable
		return result
	}

	out.Info(progressNotice)
	out.Block("🔑", "Alpaca connection", []ui.KeyValue{
		{Key: "Key ID", Value: credential.MaskKeyID(settings.Credentials.KeyID)},
		{Key: "Base URL", Value: fmt.Sprintf("%s (%s)", settings.BaseURL, settings.BaseURLSource)},
	})

	account, err := c.fetchAccount(ctx, settings)
	if err != nil {
		c.Logger.Debug().Err(err).Str("base_url", settings.BaseURL).Msg("account request failed")
		c.reportFailure(out, settings, err)
		result.Outcome = credential.OutcomeClientError
		result.Err = err
		return result
	}

	out.Success(successNotice)
	out.Info(strings.TrimRight(account.String(), "\n"))
	result.Outcome = credential.OutcomeSuccess
	result.Account = account
	return result
}

func (c Checker) loadOverrides() map[string]string {
	if c.Env == nil {
		return nil
	}
	overrides, err := c.Env.LoadOverrides()
	if err != nil {
		// Env-file problems never fail the run.
		c.Logger.Debug().Err(err).Msg("env file not loaded")
		return nil
	}
	c.Logger.Debug().Int("keys", len(overrides)).Msg("env file loaded")
	return overrides
}

func (c Checker) fetchAccount(ctx context.Context, settings credential.Settings) (account fmt.Stringer, err error) {
	defer func() {
		if r := recover(); r != nil {
			account = nil
			err = fmt.Errorf("trading client panicked: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	client, err := c.NewClient(settings)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	if client == nil {
		return nil, errNilClient
	}
	account, err = client.GetAccount(ctx)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.New("empty account response")
	}
	return account, nil
}

func (c Checker) reportMissing(out ui.UserInterface, missing []string) {
	if c.Guidance != nil {
		text, err := c.Guidance.MissingCredentials(missing)
		if err == nil {
			out.Info(strings.TrimRight(text, "\n"))
			return
		}
		c.Logger.Debug().Err(err).Msg("render guidance")
	}
	out.Info(fmt.Sprintf("%s and %s are not set in the environment.", credential.EnvKeyID, credential.EnvSecretKey))
	out.Info("Set them and re-run.")
}

func (c Checker) reportFailure(out ui.UserInterface, settings credential.Settings, err error) {
	out.Warn(failurePrefix + err.Error())
	if c.IsAuthError != nil && c.IsAuthError(err) {
		out.Info(fmt.Sprintf("The API rejected the key pair; check that it was issued for %s.", settings.BaseURL))
	}
	out.Info(fmt.Sprintf("If you are using paper trading, ensure %s is set to %s", credential.EnvBaseURL, credential.DefaultBaseURL))
	if !credential.IsPaper(settings.BaseURL) {
		out.Info(fmt.Sprintf("Current base URL is %s; paper and live keys are not interchangeable.", settings.BaseURL))
	}
}
