package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/swift-nav/rules-swiftnav-test/internal/plan"
	"github.com/swift-nav/rules-swiftnav-test/internal/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Validate the workspace manifest against the policy",
	Long:  "Load the manifest and dry-run every target through the policy layer without declaring anything to an engine.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  checkExecution,
}

func checkExecution(cmd *cobra.Command, args []string) error {
	if err := applyColorMode(cmd); err != nil {
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
	m, _, err := loadWorkspaceManifest(startDir)
	if err != nil {
		return err
	}

	recorder := &plan.RecordingSink{}
	if err := plan.Build(cmd.Context(), m, recorder, jobs); err != nil {
		var cfgErr *rules.ConfigurationError
		if errors.As(err, &cfgErr) {
			color.New(color.FgRed, color.Bold).Fprintln(cmd.ErrOrStderr(), cfgErr.Error())
			return fmt.Errorf("manifest rejected")
		}
		return err
	}

	if !quiet {
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "ok: %d targets pass the policy\n", len(recorder.Rules()))
	}
	return nil
}
