package geometry

import "fmt"

// DistanceToLine returns the perpendicular distance from v to the infinite line
// through base with direction dir.
func (v Vector3) DistanceToLine(base, dir Vector3) (float64, error) {
	d, err := dir.Normalize()
	if err != nil {
		return 0, fmt.Errorf("distance to line: direction: %w", ErrZeroLengthVector)
	}
	return v.Sub(base).Cross(d).Length(), nil
}

// DistanceToLineSegment returns the displacement from v to the closest point of the
// segment [p1, p2]. Despite the name the result is a vector, not a scalar; take its
// Length for the distance. For a degenerate segment (p1 == p2) it points at p1.
func (v Vector3) DistanceToLineSegment(p1, p2 Vector3) Vector3 {
	seg := p2.Sub(p1)
	rel := v.Sub(p1)
	len2 := seg.Dot(seg)
	if len2 == 0 {
		return rel.Neg()
	}

	t := rel.Dot(seg) / len2
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return seg.Mul(t).Sub(rel)
}

// DistanceToPlane returns the signed distance from v to the plane through base with
// the given normal. The result is positive on the side the normal points toward.
func (v Vector3) DistanceToPlane(base, normal Vector3) (float64, error) {
	n, err := normal.Normalize()
	if err != nil {
		return 0, fmt.Errorf("distance to plane: normal: %w", ErrZeroLengthVector)
	}
	return v.Sub(base).Dot(n), nil
}

// ProjectToLine returns the foot of the perpendicular from v onto the line through
// base with direction dir.
func (v Vector3) ProjectToLine(base, dir Vector3) (Vector3, error) {
	len2 := dir.Dot(dir)
	if len2 == 0 {
		return Vector3{}, fmt.Errorf("project to line: direction: %w", ErrZeroLengthVector)
	}
	return base.Add(dir.Mul(v.Sub(base).Dot(dir) / len2)), nil
}

// ProjectToPlane returns the orthogonal projection of v onto the plane through base
// with the given normal.
func (v Vector3) ProjectToPlane(base, normal Vector3) (Vector3, error) {
	d, err := v.DistanceToPlane(base, normal)
	if err != nil {
		return Vector3{}, err
	}
	n, _ := normal.Normalize()
	return v.Sub(n.Mul(d)), nil
}
