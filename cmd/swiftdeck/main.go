// Package main implements the swiftdeck CLI, the workstation front end of
// the build-rule policy layer.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/swift-nav/rules-swiftnav-test/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "swiftdeck",
	Short: "Build-target policy tool",
	Long:  `Swiftdeck applies the organizational compiler-option policy to declared build targets.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of concurrent workers (0 = number of CPUs)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
