package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version, GitCommit, BuildDate = "1.2.3-rc.1", "", ""
	if got := String(false); got != "xlc 1.2.3-rc.1" {
		t.Fatalf("got %q", got)
	}

	GitCommit, BuildDate = "abc123", "2024-01-15"
	if got := String(false); got != "xlc 1.2.3-rc.1 (abc123) built 2024-01-15" {
		t.Fatalf("got %q", got)
	}
}

func TestColored(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3-dev"
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Fatalf("expected ANSI colouring, got %q", got)
	}

	Version = "nightly"
	if got := Colored(true); got != "nightly" {
		t.Fatalf("non-semver must stay plain, got %q", got)
	}
}
