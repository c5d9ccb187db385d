// Package cli wires the cobra command surface of the tedparse tool.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tedparse/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "tedparse",
	Short: "Convert TED bulletin archives into structured records",
	Long: `tedparse converts directories of compressed TED procurement bulletin
archives into a JSON array of structured contract records.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a TOML config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// parseFilterFlags turns repeated "key=value" flags into a predicate map.
// Malformed entries are ignored with a warning rather than failing the
// run.
func parseFilterFlags(flags []string) map[string]string {
	if len(flags) == 0 {
		return nil
	}
	filters := make(map[string]string, len(flags))
	for _, flag := range flags {
		key, value, ok := strings.Cut(flag, "=")
		if !ok || key == "" {
			logger.Warn("ignoring malformed filter %q", flag)
			continue
		}
		filters[key] = value
	}
	return filters
}
