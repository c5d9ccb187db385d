package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tedparse/internal/adapters/driven/archive"
	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Parse a directory, then keep parsing archives as they arrive",
	Long: `Performs a full parse of the directory, then watches it for newly
created archives and appends their records to the stream until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the JSON array to a file instead of stdout")
	watchCmd.Flags().StringArrayVarP(&filterFlags, "filter", "f", nil, "Inclusion predicate as key=value (repeatable; replaces the default)")
	watchCmd.Flags().IntVarP(&jobsFlag, "jobs", "j", 1, "Number of archives parsed concurrently")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	out, err := openOutput()
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	runner, source, sink, err := buildPipeline(args[0], out)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	watcher, err := archive.NewWatcher(source)
	if err != nil {
		return fmt.Errorf("watch %s: %w", args[0], err)
	}
	defer watcher.Close()

	logger.Info("watching %s", args[0])
	err = watcher.Run(ctx, func(p domain.Payload) error {
		return runner.Process(p)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := sink.Close(); err != nil {
		return err
	}
	if out != os.Stdout {
		return out.Close()
	}
	return nil
}
