// Package manifest loads the declarative target manifest that drives the
// policy layer. The manifest is pure data: loading it declares nothing.
package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Target is one declared build target. Field names mirror the engine's
// rule attributes; Category is only meaningful on [[test]] tables.
type Target struct {
	Name       string   `toml:"name"`
	Srcs       []string `toml:"srcs"`
	Hdrs       []string `toml:"hdrs"`
	Deps       []string `toml:"deps"`
	Data       []string `toml:"data"`
	Copts      []string `toml:"copts"`
	NoCopts    []string `toml:"no_copts"`
	LinkOpts   []string `toml:"linkopts"`
	Tags       []string `toml:"tags"`
	Visibility []string `toml:"visibility"`
	Category   string   `toml:"category"`
}

type workspaceConfig struct {
	Name string `toml:"name"`
}

type config struct {
	Workspace     workspaceConfig `toml:"workspace"`
	Libraries     []Target        `toml:"library"`
	ToolLibraries []Target        `toml:"tool_library"`
	Binaries      []Target        `toml:"binary"`
	ToolBinaries  []Target        `toml:"tool_binary"`
	TestLibraries []Target        `toml:"test_library"`
	Tests         []Target        `toml:"test"`
}

// Manifest is a loaded, validated target manifest.
type Manifest struct {
	Path      string
	Root      string
	Workspace string

	Libraries     []Target
	ToolLibraries []Target
	Binaries      []Target
	ToolBinaries  []Target
	TestLibraries []Target
	Tests         []Target
}

// Load reads and validates the manifest at path. Unknown keys are
// rejected so a typo in a target table fails loudly instead of silently
// dropping an attribute.
func Load(path string) (*Manifest, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("workspace") {
		return nil, fmt.Errorf("%s: missing [workspace]", path)
	}
	if strings.TrimSpace(cfg.Workspace.Name) == "" {
		return nil, fmt.Errorf("%s: missing [workspace].name", path)
	}

	m := &Manifest{
		Path:          path,
		Root:          filepath.Dir(path),
		Workspace:     cfg.Workspace.Name,
		Libraries:     cfg.Libraries,
		ToolLibraries: cfg.ToolLibraries,
		Binaries:      cfg.Binaries,
		ToolBinaries:  cfg.ToolBinaries,
		TestLibraries: cfg.TestLibraries,
		Tests:         cfg.Tests,
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (m *Manifest) validate() error {
	seen := make(map[string]string)
	check := func(table string, targets []Target) error {
		for _, t := range targets {
			if strings.TrimSpace(t.Name) == "" {
				return fmt.Errorf("[[%s]] entry with empty name", table)
			}
			if prev, ok := seen[t.Name]; ok {
				return fmt.Errorf("duplicate target name %q (in [[%s]] and [[%s]])", t.Name, prev, table)
			}
			seen[t.Name] = table
			if table != "test" && t.Category != "" {
				return fmt.Errorf("[[%s]] %q: category is only valid on [[test]] targets", table, t.Name)
			}
		}
		return nil
	}

	for _, grp := range []struct {
		table   string
		targets []Target
	}{
		{"library", m.Libraries},
		{"tool_library", m.ToolLibraries},
		{"binary", m.Binaries},
		{"tool_binary", m.ToolBinaries},
		{"test_library", m.TestLibraries},
		{"test", m.Tests},
	} {
		if err := check(grp.table, grp.targets); err != nil {
			return err
		}
	}
	return nil
}

// TargetCount returns the number of declared targets across all tables.
func (m *Manifest) TargetCount() int {
	return len(m.Libraries) + len(m.ToolLibraries) + len(m.Binaries) +
		len(m.ToolBinaries) + len(m.TestLibraries) + len(m.Tests)
}
