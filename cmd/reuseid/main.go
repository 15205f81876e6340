package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "reuseid",
	Short:         "Reuse identifier generator",
	Long:          `reuseid synthesizes reuse identifiers for structs annotated with //reuseid:identifier`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errDiagnostics is returned by commands that emitted error diagnostics. They are
// already printed, so main only sets the exit code.
var errDiagnostics = errors.New("declarations were rejected")

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(expandCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a YAML or TOML config")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().Int("jobs", 0, "packages processed at once, GOMAXPROCS if not positive")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			newLogger(os.Stderr, false).Error().Err(err).Msg("reuseid failed")
		}
		os.Exit(1)
	}
}
