package analysis

import (
	"fmt"

	"github.com/philipparndt/govec/pkg/geometry"
	"gonum.org/v1/gonum/mat"
)

// Line is an infinite line through Point along Direction
type Line struct {
	Point     geometry.Vector3
	Direction geometry.Vector3
}

// Segment is the closed segment between Start and End
type Segment struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Plane passes through Point and is oriented by Normal
type Plane struct {
	Point  geometry.Vector3
	Normal geometry.Vector3
}

// Query selects which references a point is measured against; nil entries are skipped
type Query struct {
	Line    *Line
	Segment *Segment
	Plane   *Plane
}

// LineRelation describes a point relative to a line
type LineRelation struct {
	Distance float64
	Foot     geometry.Vector3 // Closest point on the line
}

// SegmentRelation describes a point relative to a segment
type SegmentRelation struct {
	Offset   geometry.Vector3 // Displacement from the point to the closest point
	Closest  geometry.Vector3
	Distance float64
}

// PlaneRelation describes a point relative to a plane
type PlaneRelation struct {
	SignedDistance float64
	Projection     geometry.Vector3
}

// PointReport contains the measurements of a point against the queried references
type PointReport struct {
	Point   geometry.Vector3
	Line    *LineRelation
	Segment *SegmentRelation
	Plane   *PlaneRelation
}

// AnalyzePoint measures point against every reference set in q
func AnalyzePoint(point geometry.Vector3, q Query) (*PointReport, error) {
	report := &PointReport{Point: point}

	if q.Line != nil {
		d, err := point.DistanceToLine(q.Line.Point, q.Line.Direction)
		if err != nil {
			return nil, fmt.Errorf("line: %w", err)
		}
		foot, err := point.ProjectToLine(q.Line.Point, q.Line.Direction)
		if err != nil {
			return nil, fmt.Errorf("line: %w", err)
		}
		report.Line = &LineRelation{Distance: d, Foot: foot}
	}

	if q.Segment != nil {
		offset := point.DistanceToLineSegment(q.Segment.Start, q.Segment.End)
		report.Segment = &SegmentRelation{
			Offset:   offset,
			Closest:  point.Add(offset),
			Distance: offset.Length(),
		}
	}

	if q.Plane != nil {
		d, err := point.DistanceToPlane(q.Plane.Point, q.Plane.Normal)
		if err != nil {
			return nil, fmt.Errorf("plane: %w", err)
		}
		proj, err := point.ProjectToPlane(q.Plane.Point, q.Plane.Normal)
		if err != nil {
			return nil, fmt.Errorf("plane: %w", err)
		}
		report.Plane = &PlaneRelation{SignedDistance: d, Projection: proj}
	}

	return report, nil
}

// RotationReport lists the equivalent descriptions of a rotation
type RotationReport struct {
	Quaternion   [4]float64 // a, b, c, d with d the scalar part
	Axis         geometry.Vector3
	AngleDegrees float64
	Yaw          float64
	Pitch        float64
	Roll         float64
	Matrix       *mat.Dense
}

// DescribeRotation collects the quaternion, axis/angle, Euler and matrix forms of r
func DescribeRotation(r geometry.Rotation) *RotationReport {
	a, b, c, d := r.Quaternion()
	axis, angle := r.AxisAngleDegrees()
	yaw, pitch, roll := r.ToEuler()
	return &RotationReport{
		Quaternion:   [4]float64{a, b, c, d},
		Axis:         axis,
		AngleDegrees: angle,
		Yaw:          yaw,
		Pitch:        pitch,
		Roll:         roll,
		Matrix:       r.ToMatrix(),
	}
}
