// Where: internal/infra/ui/guidance_test.go
// What: Tests for missing-credential guidance rendering.
// Why: Ensure every shell flavor names the variables and the default base URL.
package ui

import (
	"strings"
	"testing"
)

func TestDetectShell(t *testing.T) {
	cases := []struct {
		goos  string
		shell string
		want  string
	}{
		{goos: "linux", shell: "/bin/bash", want: ShellPOSIX},
		{goos: "darwin", shell: "/usr/local/bin/fish", want: ShellFish},
		{goos: "linux", shell: "/usr/bin/pwsh", want: ShellPowerShell},
		{goos: "windows", shell: "", want: ShellPowerShell},
		{goos: "linux", shell: "", want: ShellPOSIX},
	}
	for _, tc := range cases {
		if got := DetectShell(tc.goos, tc.shell); got != tc.want {
			t.Fatalf("DetectShell(%q, %q) = %q, want %q", tc.goos, tc.shell, got, tc.want)
		}
	}
}

func TestGuidancePowerShell(t *testing.T) {
	text, err := Guidance{Shell: ShellPowerShell}.MissingCredentials([]string{"APCA_API_KEY_ID", "APCA_API_SECRET_KEY"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"APCA_API_KEY_ID and APCA_API_SECRET_KEY are not set in the environment.",
		"Example (PowerShell):",
		"  $env:APCA_API_KEY_ID = 'your_key_here'",
		"  $env:APCA_API_BASE_URL = 'https://paper-api.alpaca.markets'",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in guidance:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Missing:") {
		t.Fatalf("did not expect a missing list when both are absent:\n%s", text)
	}
}

func TestGuidancePOSIXSingleMissingAndEnvFile(t *testing.T) {
	text, err := Guidance{Shell: ShellPOSIX, EnvFile: "/work/.env"}.MissingCredentials([]string{"APCA_API_SECRET_KEY"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"are not set",
		"Missing: APCA_API_SECRET_KEY",
		"Values may also be placed in /work/.env.",
		"  export APCA_API_SECRET_KEY='your_secret_here'",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in guidance:\n%s", want, text)
		}
	}
}

func TestGuidanceFish(t *testing.T) {
	text, err := Guidance{Shell: ShellFish}.MissingCredentials(nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(text, "  set -gx APCA_API_KEY_ID 'your_key_here'") {
		t.Fatalf("unexpected fish guidance:\n%s", text)
	}
}

func TestGuidanceUnknownShell(t *testing.T) {
	if _, err := (Guidance{Shell: "tcsh"}).MissingCredentials(nil); err == nil {
		t.Fatalf("expected error for unknown shell")
	}
}
