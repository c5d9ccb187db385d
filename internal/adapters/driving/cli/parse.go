package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tedparse/internal/adapters/driven/archive"
	"github.com/custodia-labs/tedparse/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tedparse/internal/adapters/driven/jsonout"
	"github.com/custodia-labs/tedparse/internal/core/services"
	"github.com/custodia-labs/tedparse/internal/parser"
)

var (
	outputFlag  string
	filterFlags []string
	jobsFlag    int
)

var parseCmd = &cobra.Command{
	Use:   "parse [dir]",
	Short: "Parse all bulletin archives under a directory",
	Long: `Walks the directory for bulletin archives, parses every retained
document and writes one JSON array to the output.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the JSON array to a file instead of stdout")
	parseCmd.Flags().StringArrayVarP(&filterFlags, "filter", "f", nil, "Inclusion predicate as key=value (repeatable; replaces the default)")
	parseCmd.Flags().IntVarP(&jobsFlag, "jobs", "j", 1, "Number of archives parsed concurrently")
	rootCmd.AddCommand(parseCmd)
}

// buildPipeline assembles source, parser and sink from config and flags.
func buildPipeline(dir string, out io.Writer) (*services.Runner, *archive.Source, *jsonout.Writer, error) {
	cfg, err := file.Load(configFlag)
	if err != nil {
		return nil, nil, nil, err
	}

	filters := parser.DefaultFilters()
	if cfg.Filters != nil {
		filters = cfg.Filters
	}
	if flagged := parseFilterFlags(filterFlags); flagged != nil {
		filters = flagged
	}

	source := archive.New(dir,
		archive.WithGlob(cfg.ArchiveGlob),
		archive.WithCharset(cfg.DefaultCharset),
		archive.WithHints(cfg.CharsetHints),
	)
	sink := jsonout.New(out)
	return services.NewRunner(source, sink, parser.New(filters), jobsFlag), source, sink, nil
}

func openOutput() (io.WriteCloser, error) {
	if outputFlag == "" {
		return os.Stdout, nil
	}
	return os.Create(outputFlag)
}

func runParse(cmd *cobra.Command, args []string) error {
	out, err := openOutput()
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	runner, _, sink, err := buildPipeline(args[0], out)
	if err != nil {
		return err
	}
	if err := runner.Run(context.Background()); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}
	if err := sink.Close(); err != nil {
		return err
	}
	if out != os.Stdout {
		return out.Close()
	}
	return nil
}
