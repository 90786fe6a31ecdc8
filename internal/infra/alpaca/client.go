// Where: internal/infra/alpaca/client.go
// What: Trading client adapter over the Alpaca Go SDK.
// Why: Expose only the get-account call the credential check needs.
package alpaca

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	alpacaclient "github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/poruru-code/apcacheck/internal/domain/credential"
)

var errEmptyBaseURL = errors.New("base URL is empty")

// accountGetter is the subset of *alpacaclient.Client used here.
type accountGetter interface {
	GetAccount() (*alpacaclient.Account, error)
}

var newSDKClient = func(opts alpacaclient.ClientOpts) accountGetter {
	return alpacaclient.NewClient(opts)
}

// Client wraps an SDK client bound to one key pair and base URL.
type Client struct {
	baseURL string
	sdk     accountGetter
}

// NewClient constructs a Client. The base URL is passed through unchanged;
// an empty one is rejected so the SDK never falls back to its own env lookup.
func NewClient(settings credential.Settings) (*Client, error) {
	baseURL := strings.TrimSpace(settings.BaseURL)
	if baseURL == "" {
		return nil, errEmptyBaseURL
	}
	sdk := newSDKClient(alpacaclient.ClientOpts{
		APIKey:    settings.Credentials.KeyID,
		APISecret: settings.Credentials.Secret,
		BaseURL:   baseURL,
	})
	return &Client{baseURL: baseURL, sdk: sdk}, nil
}

// GetAccount fetches the account bound to the credentials.
func (c *Client) GetAccount(ctx context.Context) (fmt.Stringer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	acct, err := c.sdk.GetAccount()
	if err != nil {
		return nil, fmt.Errorf("get account from %s: %w", c.baseURL, err)
	}
	if acct == nil {
		return nil, fmt.Errorf("get account from %s: empty response", c.baseURL)
	}
	return NewAccount(acct), nil
}

// IsAuthError reports whether err carries an HTTP 401 or 403 from the API.
func IsAuthError(err error) bool {
	var apiErr *alpacaclient.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}
