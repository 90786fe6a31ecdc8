// Where: internal/infra/ui/guidance.go
// What: Shell-specific instructions for setting missing credentials.
// Why: Show copy-pasteable commands for the user's own shell.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru-code/apcacheck/internal/domain/credential"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

const (
	ShellPowerShell = "powershell"
	ShellPOSIX      = "posix"
	ShellFish       = "fish"
)

// DetectShell picks a guidance flavor from GOOS and $SHELL.
func DetectShell(goos, shellEnv string) string {
	shell := strings.ToLower(filepath.Base(strings.TrimSpace(shellEnv)))
	switch {
	case shell == "fish":
		return ShellFish
	case shell == "pwsh" || shell == "powershell":
		return ShellPowerShell
	case shell != "" && shell != ".":
		return ShellPOSIX
	case goos == "windows":
		return ShellPowerShell
	default:
		return ShellPOSIX
	}
}

// Guidance renders missing-credential instructions for one shell.
type Guidance struct {
	Shell string

	// EnvFile, when set, is mentioned as an alternative place for the values.
	EnvFile string
}

type guidanceVar struct {
	Name    string
	Example string
}

type guidanceData struct {
	KeyIDVar   string
	SecretVar  string
	Missing    []string
	EnvFile    string
	ShellLabel string
	Vars       []guidanceVar
}

// MissingCredentials renders the guidance text.
func (g Guidance) MissingCredentials(missing []string) (string, error) {
	shell := g.Shell
	if shell == "" {
		shell = ShellPOSIX
	}
	tmpl, err := loadTemplate(shell)
	if err != nil {
		return "", err
	}
	data := guidanceData{
		KeyIDVar:   credential.EnvKeyID,
		SecretVar:  credential.EnvSecretKey,
		Missing:    missing,
		EnvFile:    g.EnvFile,
		ShellLabel: "bash/zsh",
		Vars: []guidanceVar{
			{Name: credential.EnvKeyID, Example: "your_key_here"},
			{Name: credential.EnvSecretKey, Example: "your_secret_here"},
			{Name: credential.EnvBaseURL, Example: credential.DefaultBaseURL},
		},
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, shell+".tmpl", data); err != nil {
		return "", fmt.Errorf("render %s guidance: %w", shell, err)
	}
	return buf.String(), nil
}

func loadTemplate(shell string) (*template.Template, error) {
	if value, ok := templateCache.Load(shell); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", shell)
		}
		return cached, nil
	}
	switch shell {
	case ShellPowerShell, ShellPOSIX, ShellFish:
	default:
		return nil, fmt.Errorf("unknown shell %q", shell)
	}
	tmpl, err := template.New(shell + ".tmpl").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(templateFS, "templates/header.tmpl", "templates/"+shell+".tmpl")
	if err != nil {
		return nil, err
	}
	templateCache.Store(shell, tmpl)
	return tmpl, nil
}
