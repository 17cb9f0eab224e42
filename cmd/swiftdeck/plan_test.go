package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/swift-nav/rules-swiftnav-test/internal/manifest"
)

func TestLoadWorkspaceManifest(t *testing.T) {
	dir := t.TempDir()
	content := `
[workspace]
name = "nav"

[[library]]
name = "core"
srcs = ["core.cc"]
`
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, raw, err := loadWorkspaceManifest(dir)
	if err != nil {
		t.Fatalf("loadWorkspaceManifest failed: %v", err)
	}
	if m.Workspace != "nav" {
		t.Errorf("expected workspace nav, got %q", m.Workspace)
	}
	if string(raw) != content {
		t.Error("raw bytes do not match the manifest file")
	}
}

func TestLoadWorkspaceManifest_Missing(t *testing.T) {
	_, _, err := loadWorkspaceManifest(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), manifest.FileName) {
		t.Errorf("expected missing manifest error, got %v", err)
	}
}
