// Where: internal/version/version_test.go
// What: Tests for version string derivation.
// Why: Keep `apcacheck version` output stable across build modes.
package version

import (
	"runtime/debug"
	"testing"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
}

func TestGetVersionWithoutBuildInfo(t *testing.T) {
	withBuildInfo(t, nil, false)
	if got := GetVersion(); got != "dev" {
		t.Fatalf("expected dev, got %q", got)
	}
}

func TestGetVersionPrefersModuleVersion(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}}, true)
	if got := GetVersion(); got != "v1.2.3" {
		t.Fatalf("unexpected version: %q", got)
	}
}

func TestGetVersionUsesShortRevision(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}, true)
	if got := GetVersion(); got != "0123456 (dirty)" {
		t.Fatalf("unexpected version: %q", got)
	}
}
