package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/philipparndt/govec/pkg/batch"
	"github.com/philipparndt/govec/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchWatch bool

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Evaluate a YAML job of vector and rotation steps",
	Long: `Evaluate every step of a YAML job file and print one line per step.
A failing step is reported and the remaining steps still run.

  tolerance: 1e-7          # optional, overrides --tolerance
  steps:
    - name: sum
      op: add
      vectors: ["1,2,3", "4,5,6"]
    - op: slerp
      rotations: ["axis:0,0,1@30", "axis:0,0,1@80"]
      t: 0.3

With --watch the job is evaluated again whenever the file changes, until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVarP(&batchWatch, "watch", "w", false, "re-evaluate when the file changes")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()
	runner := batch.NewRunner(cfg.Tolerance, formatter(), logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	failed, err := evaluateFile(ctx, runner, path, out)
	if !batchWatch {
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of the steps failed", failed)
		}
		return nil
	}
	if err != nil {
		logger.Error("job could not be evaluated", zap.String("path", path), zap.Error(err))
	}

	fw, err := watcher.NewFileWatcher(cfg.WatchDebounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	err = fw.Watch([]string{path}, func(string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out)
		if _, err := evaluateFile(ctx, runner, path, out); err != nil {
			logger.Error("job could not be evaluated", zap.String("path", path), zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	logger.Info("watching for changes", zap.String("path", path))
	fw.Run(ctx)
	return nil
}

// evaluateFile runs the job at path and prints its results, returning the number
// of failed steps
func evaluateFile(ctx context.Context, runner *batch.Runner, path string, out io.Writer) (int, error) {
	job, err := batch.Load(path)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, result := range runner.Run(ctx, job) {
		if result.Err != nil {
			failed++
			fmt.Fprintf(out, "%s: error: %v\n", result.Step.Label(), result.Err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", result.Step.Label(), result.Value)
	}
	return failed, nil
}
