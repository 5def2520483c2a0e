package main

import (
	"context"
	"fmt"

	"github.com/philipparndt/govec/pkg/batch"
	"github.com/spf13/cobra"
)

var vectorScalar float64

var vectorCmd = &cobra.Command{
	Use:   "vector <op> <v> [w]",
	Short: "Vector arithmetic and comparisons",
	Long: `Evaluate a single vector operation. Vectors are written as x,y,z.

Operations: add, sub, scale, div, length, normalize, dot, cross, angle (degrees),
parallel, perpendicular. scale and div take --scalar.`,
	Example: `  govec vector add 1,2,3 4,5,6
  govec vector div 1,2,3 --scalar 2
  govec vector parallel 1,0,0 -2,0,0`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runVector,
}

func init() {
	rootCmd.AddCommand(vectorCmd)

	vectorCmd.Flags().Float64VarP(&vectorScalar, "scalar", "s", 0, "scalar operand for scale and div")
}

func runVector(cmd *cobra.Command, args []string) error {
	step := batch.Step{Op: args[0], Vectors: args[1:]}
	if cmd.Flags().Changed("scalar") {
		step.Scalar = &vectorScalar
	}

	result := runSingle(cmd.Context(), step)
	if result.Err != nil {
		return result.Err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Value)
	return nil
}

// runSingle evaluates one step with the configured tolerance and precision
func runSingle(ctx context.Context, step batch.Step) batch.Result {
	if ctx == nil {
		ctx = context.Background()
	}
	runner := batch.NewRunner(cfg.Tolerance, formatter(), logger)
	return runner.Run(ctx, &batch.Job{Steps: []batch.Step{step}})[0]
}
