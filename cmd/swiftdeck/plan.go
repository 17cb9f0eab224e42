package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swift-nav/rules-swiftnav-test/internal/manifest"
	"github.com/swift-nav/rules-swiftnav-test/internal/plan"
	"github.com/swift-nav/rules-swiftnav-test/internal/plancache"
	"github.com/swift-nav/rules-swiftnav-test/internal/rules"
)

const noManifestMessage = "no " + manifest.FileName + " found\nrun swiftdeck from inside a workspace, or pass the workspace directory explicitly"

var planCmd = &cobra.Command{
	Use:   "plan [flags] [dir]",
	Short: "Evaluate the workspace manifest and print the declarations",
	Long:  "Evaluate every target in " + manifest.FileName + " through the option policy and print the resulting rule declarations.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  planExecution,
}

func init() {
	planCmd.Flags().Bool("no-cache", false, "re-evaluate even when a cached plan exists")
	planCmd.Flags().Bool("drop-cache", false, "discard all cached plans before evaluating")
}

func planExecution(cmd *cobra.Command, args []string) error {
	if err := applyColorMode(cmd); err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	startDir := ""
	if len(args) == 1 {
		startDir = args[0]
	}
	m, raw, err := loadWorkspaceManifest(startDir)
	if err != nil {
		return err
	}

	cache, err := plancache.Open("swiftdeck")
	if err != nil {
		// The cache is an optimization; a missing cache dir must not
		// block evaluation.
		cache = nil
	}
	if dropCache {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop plan cache: %w", err)
		}
		cache = nil
	}

	key := plancache.Key(raw)
	if cache != nil && !noCache {
		if declared, hit, err := cache.Get(key); err == nil && hit {
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "plan: %d targets (cached)\n", len(declared))
			}
			return renderRules(cmd, declared)
		}
	}

	recorder := &plan.RecordingSink{}
	if err := plan.Build(cmd.Context(), m, recorder, jobs); err != nil {
		return err
	}
	declared := recorder.Rules()

	if cache != nil {
		// Best effort: a failed cache write must not fail the plan.
		_ = cache.Put(key, m.Workspace, declared)
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "plan: %d targets\n", len(declared))
	}
	return renderRules(cmd, declared)
}

func renderRules(cmd *cobra.Command, declared []rules.Rule) error {
	out := cmd.OutOrStdout()
	for _, rule := range declared {
		if err := plan.WriteRule(out, rule); err != nil {
			return err
		}
	}
	return nil
}

// loadWorkspaceManifest locates, reads and parses the manifest, returning
// the raw bytes alongside for cache keying.
func loadWorkspaceManifest(startDir string) (*manifest.Manifest, []byte, error) {
	path, ok, err := manifest.Find(startDir)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, fmt.Errorf("%s", noManifestMessage)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return m, raw, nil
}
