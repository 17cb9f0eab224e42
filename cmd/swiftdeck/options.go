package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swift-nav/rules-swiftnav-test/internal/copts"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the effective compiler option list",
	Long:  "Print the option list a target would receive, given its exclusions and strictness mode.",
	Args:  cobra.NoArgs,
	RunE:  optionsExecution,
}

func init() {
	optionsCmd.Flags().StringSlice("exclude", nil, "catalog entries to exclude (repeatable)")
	optionsCmd.Flags().Bool("pedantic", false, "resolve under the pedantic strictness mode")
}

func optionsExecution(cmd *cobra.Command, _ []string) error {
	if err := applyColorMode(cmd); err != nil {
		return err
	}
	exclusions, err := cmd.Flags().GetStringSlice("exclude")
	if err != nil {
		return err
	}
	pedantic, err := cmd.Flags().GetBool("pedantic")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, opt := range copts.Effective(exclusions, pedantic) {
		fmt.Fprintln(out, opt)
	}
	return nil
}
