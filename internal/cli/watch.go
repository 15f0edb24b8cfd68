package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lokistudio/detell/internal/watch"
)

var flagWatchOutput string

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&flagWatchOutput, "output", "o", "", "output file path (required, must differ from input)")
	watchCmd.MarkFlagRequired("output")
}

var watchCmd = &cobra.Command{
	Use:   "watch <input-file> -o <output-file>",
	Short: "Rewrite a file on every change",
	Long: "Watches the input file and rewrites it into the output path whenever\n" +
		"it changes. The output must be a different file so saves do not loop.\n" +
		"Stop with Ctrl-C.",
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	inputPath := args[0]
	absIn, err := filepath.Abs(inputPath)
	if err != nil {
		return err
	}
	absOut, err := filepath.Abs(flagWatchOutput)
	if err != nil {
		return err
	}
	if absIn == absOut {
		return fmt.Errorf("output path must differ from the watched input")
	}

	rewrite := func() error {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", inputPath, err)
		}
		result := a.engine.Apply(string(data), a.ct)
		if err := os.WriteFile(flagWatchOutput, []byte(result), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", flagWatchOutput, err)
		}
		a.log.Info("File rewritten",
			zap.String("input", inputPath),
			zap.String("output", flagWatchOutput),
			zap.Int("bytes", len(result)),
		)
		return nil
	}

	// Process once up front so the output exists before the first change.
	if err := rewrite(); err != nil {
		return err
	}

	w, err := watch.New(inputPath, a.cfg.Watch.Debounce, a.log.WithComponent("watch"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.log.Info("Watching for changes",
		zap.String("input", inputPath),
		zap.String("output", flagWatchOutput),
	)
	return w.Run(ctx, rewrite)
}
