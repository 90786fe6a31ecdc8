// Where: internal/usecase/credcheck/ports.go
// What: Collaborator contracts for the credential check.
// Why: Keep the check runnable against fakes without contacting any real service.
package credcheck

import (
	"context"
	"fmt"

	"github.com/poruru-code/apcacheck/internal/domain/credential"
)

// EnvSource supplies key/value overrides from an optional environment file.
// Implementations that find nothing return an empty map and a nil error.
type EnvSource interface {
	LoadOverrides() (map[string]string, error)
}

// TradingClient is the single read operation the check needs.
type TradingClient interface {
	GetAccount(ctx context.Context) (fmt.Stringer, error)
}

// ClientFactory constructs a TradingClient from resolved settings.
type ClientFactory func(credential.Settings) (TradingClient, error)

// GuidanceRenderer produces the instructions shown when credentials are missing.
type GuidanceRenderer interface {
	MissingCredentials(missing []string) (string, error)
}

// NoopEnvSource is selected when environment-file loading is disabled.
type NoopEnvSource struct{}

func (NoopEnvSource) LoadOverrides() (map[string]string, error) {
	return nil, nil
}
