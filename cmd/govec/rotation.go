package main

import (
	"fmt"

	"github.com/philipparndt/govec/pkg/analysis"
	"github.com/philipparndt/govec/pkg/batch"
	"github.com/philipparndt/govec/pkg/geometry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	applyVectors []string
	composeFixed bool
	slerpT       float64
)

var rotationCmd = &cobra.Command{
	Use:   "rotation <rotation>",
	Short: "Show every description of a rotation and optionally apply it",
	Example: `  govec rotation axis:1,1,1@120
  govec rotation euler:10,20,30 --apply 1,0,0 --apply 0,1,0`,
	Args: cobra.ExactArgs(1),
	RunE: runRotation,
}

var composeCmd = &cobra.Command{
	Use:   "compose <rotation> <rotation>...",
	Short: "Compose rotations",
	Long: `Multiply rotations left to right. Read as successive rotations about the body's
own (intrinsic) axes, the first argument is applied first. With --fixed the
arguments are successive rotations about the fixed world axes instead, which
reverses the multiplication order.`,
	Example: `  govec compose axis:0,0,1@90 axis:1,0,0@90
  govec compose --fixed axis:1,0,0@90 axis:0,0,1@90`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompose,
}

var sameCmd = &cobra.Command{
	Use:   "same <rotation> <rotation>",
	Short: "Check whether two rotations act identically (within --tolerance)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSame,
}

var slerpCmd = &cobra.Command{
	Use:   "slerp <from> <to>",
	Short: "Interpolate along the shortest arc between two rotations",
	Args:  cobra.ExactArgs(2),
	RunE:  runSlerp,
}

func init() {
	rootCmd.AddCommand(rotationCmd, composeCmd, sameCmd, slerpCmd)

	rotationCmd.Flags().StringArrayVarP(&applyVectors, "apply", "a", nil, "vector to rotate (repeatable)")
	composeCmd.Flags().BoolVar(&composeFixed, "fixed", false, "treat arguments as rotations about fixed world axes")
	slerpCmd.Flags().Float64Var(&slerpT, "t", 0.5, "interpolation fraction, 0 gives <from> and 1 gives <to>")
}

func runRotation(cmd *cobra.Command, args []string) error {
	r, err := batch.ParseRotation(args[0])
	if err != nil {
		return err
	}

	f := formatter()
	report := analysis.DescribeRotation(r)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Rotation")
	fmt.Fprintln(out, "========")
	fmt.Fprintf(out, "Quaternion (a, b, c, d): %s\n", f.Rotation(r))
	fmt.Fprintf(out, "Axis: %s\n", f.Vector(report.Axis))
	fmt.Fprintf(out, "Angle: %s deg\n", f.Scalar(report.AngleDegrees))
	fmt.Fprintf(out, "Yaw, Pitch, Roll: %s, %s, %s deg\n", f.Scalar(report.Yaw), f.Scalar(report.Pitch), f.Scalar(report.Roll))
	fmt.Fprintln(out, "Matrix:")
	fmt.Fprint(out, f.Matrix(report.Matrix, "  "))

	if len(applyVectors) > 0 {
		fmt.Fprintln(out, "\nApplied:")
		for _, s := range applyVectors {
			v, err := batch.ParseVector(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %s -> %s\n", f.Vector(v), f.Vector(r.MultVec(v)))
		}
	}
	return nil
}

func runCompose(cmd *cobra.Command, args []string) error {
	rotations, err := parseRotations(args)
	if err != nil {
		return err
	}

	result := geometry.IdentityRotation()
	for i := range rotations {
		if composeFixed {
			result = rotations[i].Multiply(result)
		} else {
			result = result.Multiply(rotations[i])
		}
	}
	logger.Debug("composed rotations", zap.Int("count", len(rotations)), zap.Bool("fixed", composeFixed))

	axis, angle := result.AxisAngleDegrees()
	f := formatter()
	fmt.Fprintf(cmd.OutOrStdout(), "%s  axis %s angle %s deg\n", f.Rotation(result), f.Vector(axis), f.Scalar(angle))
	return nil
}

func runSame(cmd *cobra.Command, args []string) error {
	rotations, err := parseRotations(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), rotations[0].IsSame(rotations[1], cfg.Tolerance))
	return nil
}

func runSlerp(cmd *cobra.Command, args []string) error {
	rotations, err := parseRotations(args)
	if err != nil {
		return err
	}

	r := rotations[0].Slerp(rotations[1], slerpT)
	axis, angle := r.AxisAngleDegrees()
	f := formatter()
	fmt.Fprintf(cmd.OutOrStdout(), "%s  axis %s angle %s deg\n", f.Rotation(r), f.Vector(axis), f.Scalar(angle))
	return nil
}

func parseRotations(args []string) ([]geometry.Rotation, error) {
	rotations := make([]geometry.Rotation, len(args))
	for i, s := range args {
		r, err := batch.ParseRotation(s)
		if err != nil {
			return nil, err
		}
		rotations[i] = r
	}
	return rotations, nil
}
