package main

import (
	"fmt"

	"github.com/philipparndt/govec/pkg/analysis"
	"github.com/philipparndt/govec/pkg/batch"
	"github.com/philipparndt/govec/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	linePoint, lineDir      string
	segStart, segEnd        string
	planePoint, planeNormal string
)

var distanceCmd = &cobra.Command{
	Use:   "distance <point>",
	Short: "Measure a point against a line, a segment and/or a plane",
	Long: `Measure the distance from a point to an infinite line, a line segment and a plane.
The segment result is the displacement vector to the closest point of the segment.
The plane distance is signed: positive on the side the normal points toward.`,
	Example: `  govec distance 4,3,5 --line-point 0,0,5 --line-dir 1,0,0
  govec distance 4,3,5 --seg-start 0,0,0 --seg-end 2,0,0 --plane-point 0,0,1 --plane-normal 0,0,1`,
	Args: cobra.ExactArgs(1),
	RunE: runDistance,
}

func init() {
	rootCmd.AddCommand(distanceCmd)

	flags := distanceCmd.Flags()
	flags.StringVar(&linePoint, "line-point", "", "point on the line")
	flags.StringVar(&lineDir, "line-dir", "", "direction of the line")
	flags.StringVar(&segStart, "seg-start", "", "start of the segment")
	flags.StringVar(&segEnd, "seg-end", "", "end of the segment")
	flags.StringVar(&planePoint, "plane-point", "", "point on the plane")
	flags.StringVar(&planeNormal, "plane-normal", "", "normal of the plane")

	distanceCmd.MarkFlagsRequiredTogether("line-point", "line-dir")
	distanceCmd.MarkFlagsRequiredTogether("seg-start", "seg-end")
	distanceCmd.MarkFlagsRequiredTogether("plane-point", "plane-normal")
	distanceCmd.MarkFlagsOneRequired("line-point", "seg-start", "plane-point")
}

func runDistance(cmd *cobra.Command, args []string) error {
	point, err := batch.ParseVector(args[0])
	if err != nil {
		return err
	}

	var q analysis.Query
	if linePoint != "" {
		base, dir, err := parsePair(linePoint, lineDir)
		if err != nil {
			return err
		}
		q.Line = &analysis.Line{Point: base, Direction: dir}
	}
	if segStart != "" {
		start, end, err := parsePair(segStart, segEnd)
		if err != nil {
			return err
		}
		q.Segment = &analysis.Segment{Start: start, End: end}
	}
	if planePoint != "" {
		base, normal, err := parsePair(planePoint, planeNormal)
		if err != nil {
			return err
		}
		q.Plane = &analysis.Plane{Point: base, Normal: normal}
	}

	report, err := analysis.AnalyzePoint(point, q)
	if err != nil {
		return err
	}

	f := formatter()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Point Measurement")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "Point: %s\n", f.Vector(report.Point))
	if report.Line != nil {
		fmt.Fprintln(out, "\nLine:")
		fmt.Fprintf(out, "  Distance: %s\n", f.Scalar(report.Line.Distance))
		fmt.Fprintf(out, "  Foot: %s\n", f.Vector(report.Line.Foot))
	}
	if report.Segment != nil {
		fmt.Fprintln(out, "\nSegment:")
		fmt.Fprintf(out, "  Offset: %s\n", f.Vector(report.Segment.Offset))
		fmt.Fprintf(out, "  Closest: %s\n", f.Vector(report.Segment.Closest))
		fmt.Fprintf(out, "  Distance: %s\n", f.Scalar(report.Segment.Distance))
	}
	if report.Plane != nil {
		fmt.Fprintln(out, "\nPlane:")
		fmt.Fprintf(out, "  Signed distance: %s\n", f.Scalar(report.Plane.SignedDistance))
		fmt.Fprintf(out, "  Projection: %s\n", f.Vector(report.Plane.Projection))
	}
	return nil
}

func parsePair(a, b string) (geometry.Vector3, geometry.Vector3, error) {
	va, err := batch.ParseVector(a)
	if err != nil {
		return geometry.Vector3{}, geometry.Vector3{}, err
	}
	vb, err := batch.ParseVector(b)
	if err != nil {
		return geometry.Vector3{}, geometry.Vector3{}, err
	}
	return va, vb, nil
}
