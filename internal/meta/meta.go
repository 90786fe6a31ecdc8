// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep brand-dependent names in one place.
package meta

const (
	// Project Identity
	AppName   = "apcacheck"
	Slug      = "apcacheck"
	EnvPrefix = "APCACHECK"

	// Directory Layout
	HomeDir        = ".apcacheck"
	ConfigFileName = "config.yaml"
	DotenvFileName = ".env"
)
