package version

import (
	"strings"
	"testing"
)

func TestVersion_HasDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version must not be empty")
	}
	// Two separators regardless of the color escapes around each part.
	if strings.Count(Version, ".") != 2 {
		t.Errorf("Version %q is not major.minor.patch", Version)
	}
}

func TestVersion_LdflagsOverride(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3"
	if Version != "1.2.3" {
		t.Errorf("Version = %q after override, want 1.2.3", Version)
	}
}
