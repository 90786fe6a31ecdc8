// Where: internal/domain/credential/credentials.go
// What: Credential pair and connection settings for the trading API.
// Why: Keep environment resolution rules independent of any SDK or loader.
package credential

import (
	"strings"
)

const (
	EnvKeyID     = "APCA_API_KEY_ID"
	EnvSecretKey = "APCA_API_SECRET_KEY"
	EnvBaseURL   = "APCA_API_BASE_URL"

	DefaultBaseURL = "https://paper-api.alpaca.markets"
	LiveBaseURL    = "https://api.alpaca.markets"
)

// Credentials is the key id / secret pair used to authenticate requests.
// Neither value is validated beyond presence.
type Credentials struct {
	KeyID  string
	Secret string
}

// Complete reports whether both values are present.
func (c Credentials) Complete() bool {
	return c.KeyID != "" && c.Secret != ""
}

// Missing lists the environment keys whose values are absent, in a stable order.
func (c Credentials) Missing() []string {
	var missing []string
	if c.KeyID == "" {
		missing = append(missing, EnvKeyID)
	}
	if c.Secret == "" {
		missing = append(missing, EnvSecretKey)
	}
	return missing
}

// Settings is everything needed to construct a trading client.
type Settings struct {
	Credentials Credentials
	BaseURL     string

	// BaseURLSource names where BaseURL came from: "env", "env file" or "default".
	BaseURLSource string
}

// Lookup reads a single variable. The bool is false when the key is unset.
type Lookup func(key string) (string, bool)

// Resolve builds Settings from the process environment and optional
// env-file overrides. A key present in the process environment always
// shadows the override, even when its value is empty. Emptiness is judged
// after the merge.
func Resolve(lookup Lookup, overrides map[string]string) Settings {
	keyID, _ := pick(lookup, overrides, EnvKeyID)
	secret, _ := pick(lookup, overrides, EnvSecretKey)
	baseURL, source := pick(lookup, overrides, EnvBaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
		source = "default"
	}
	return Settings{
		Credentials:   Credentials{KeyID: keyID, Secret: secret},
		BaseURL:       baseURL,
		BaseURLSource: source,
	}
}

func pick(lookup Lookup, overrides map[string]string, key string) (string, string) {
	if lookup != nil {
		if value, ok := lookup(key); ok {
			return value, "env"
		}
	}
	if value, ok := overrides[key]; ok {
		return value, "env file"
	}
	return "", ""
}

// MaskKeyID hides all but the first four characters of a key id.
func MaskKeyID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "(unset)"
	}
	if len(id) <= 4 {
		return "****"
	}
	return id[:4] + "****"
}

// IsPaper reports whether baseURL points at the paper-trading endpoint.
func IsPaper(baseURL string) bool {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return strings.EqualFold(trimmed, DefaultBaseURL)
}
