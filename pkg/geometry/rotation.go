package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"gonum.org/v1/gonum/num/quat"
)

// quaternionDriftEpsilon bounds how far |q| may drift from 1 before it is rescaled
const quaternionDriftEpsilon = 1e-14

// parallelEpsilon is the cross product length below which two unit vectors are
// treated as parallel when building a rotation between them
const parallelEpsilon = 1e-12

// Rotation is an orientation stored as a unit quaternion (a, b, c, d) where
// (a, b, c) = sin(θ/2)·axis and d = cos(θ/2).
//
// The zero value is the identity rotation. A quaternion and its negation describe
// the same rotation, so two Rotations holding different numbers may still be the
// same; compare them with IsSame.
type Rotation struct {
	q quat.Number
}

// IdentityRotation returns the rotation that leaves every vector unchanged
func IdentityRotation() Rotation {
	return Rotation{q: quat.Number{Real: 1}}
}

// NewRotationFromQuaternion builds a rotation from raw quaternion components,
// scaling them to unit length. Most callers want NewRotationAxisAngle or
// NewRotationFromEuler instead.
func NewRotationFromQuaternion(a, b, c, d float64) (Rotation, error) {
	q, err := unit(quat.Number{Real: d, Imag: a, Jmag: b, Kmag: c})
	if err != nil {
		return Rotation{}, fmt.Errorf("quaternion (%g, %g, %g, %g): %w", a, b, c, d, err)
	}
	return Rotation{q: q}, nil
}

// NewRotationAxisAngle builds the rotation of angle degrees about axis (right-hand
// rule). The axis does not need to be normalized. A NaN or infinite angle fails
// with ErrDegenerateRotation.
func NewRotationAxisAngle(axis Vector3, degrees float64) (Rotation, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return Rotation{}, fmt.Errorf("rotation angle %g: %w", degrees, ErrDegenerateRotation)
	}
	n, err := axis.Normalize()
	if err != nil {
		return Rotation{}, fmt.Errorf("rotation axis: %w", err)
	}
	return axisAngleRadians(n, (s1.Angle(degrees) * s1.Degree).Radians()), nil
}

func axisAngleRadians(unitAxis Vector3, radians float64) Rotation {
	s, c := math.Sincos(radians / 2)
	return Rotation{q: renormalize(quat.Number{
		Real: c,
		Imag: s * unitAxis.X,
		Jmag: s * unitAxis.Y,
		Kmag: s * unitAxis.Z,
	})}
}

// NewRotationFromEuler builds a rotation from yaw, pitch and roll in degrees.
// The result is Rz(yaw)·Ry(pitch)·Rx(roll): a turn about z, then about the new y,
// then about the newest x. The angles must be finite; callers parsing untrusted
// input check them first.
func NewRotationFromEuler(yaw, pitch, roll float64) Rotation {
	rz := axisAngleRadians(NewVector3(0, 0, 1), (s1.Angle(yaw) * s1.Degree).Radians())
	ry := axisAngleRadians(NewVector3(0, 1, 0), (s1.Angle(pitch) * s1.Degree).Radians())
	rx := axisAngleRadians(NewVector3(1, 0, 0), (s1.Angle(roll) * s1.Degree).Radians())
	return rz.Multiply(ry.Multiply(rx))
}

// NewRotationBetween returns the shortest-arc rotation taking the direction of from
// onto the direction of to. Zero vectors and opposite directions have no unique
// answer and fail with ErrDegenerateRotation.
func NewRotationBetween(from, to Vector3) (Rotation, error) {
	u, err := from.Normalize()
	if err != nil {
		return Rotation{}, fmt.Errorf("rotation from %s: %w", from, ErrDegenerateRotation)
	}
	w, err := to.Normalize()
	if err != nil {
		return Rotation{}, fmt.Errorf("rotation to %s: %w", to, ErrDegenerateRotation)
	}

	axis := u.Cross(w)
	dot := u.Dot(w)
	if axis.Length() <= parallelEpsilon {
		if dot > 0 {
			return IdentityRotation(), nil
		}
		return Rotation{}, fmt.Errorf("rotation from %s to %s: opposite directions: %w", from, to, ErrDegenerateRotation)
	}

	// (u×w, 1+u·w) is the half-angle quaternion up to scale.
	q, err := unit(quat.Number{Real: 1 + dot, Imag: axis.X, Jmag: axis.Y, Kmag: axis.Z})
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{q: q}, nil
}

func (r Rotation) number() quat.Number {
	if r.q == (quat.Number{}) {
		return quat.Number{Real: 1}
	}
	return r.q
}

// Quaternion returns the stored components (a, b, c, d) with d the scalar part
func (r Rotation) Quaternion() (a, b, c, d float64) {
	q := r.number()
	return q.Imag, q.Jmag, q.Kmag, q.Real
}

// Axis returns the unit rotation axis as stored. It may point opposite to the axis
// the rotation was built from; the identity reports (0, 0, 1).
func (r Rotation) Axis() Vector3 {
	q := r.number()
	v := NewVector3(q.Imag, q.Jmag, q.Kmag)
	l := v.Length()
	if l == 0 {
		return NewVector3(0, 0, 1)
	}
	return v.Mul(1 / l)
}

// Angle returns the rotation angle in radians, in [0, 2π], derived from the stored
// quaternion as 2·atan2(|(a,b,c)|, d).
func (r Rotation) Angle() float64 {
	q := r.number()
	return 2 * math.Atan2(NewVector3(q.Imag, q.Jmag, q.Kmag).Length(), q.Real)
}

// AxisAngleDegrees returns Axis and Angle with the angle in degrees
func (r Rotation) AxisAngleDegrees() (Vector3, float64) {
	return r.Axis(), (s1.Angle(r.Angle()) * s1.Radian).Degrees()
}

func (r Rotation) String() string {
	a, b, c, d := r.Quaternion()
	return fmt.Sprintf("Rotation (%g, %g, %g, %g)", a, b, c, d)
}

func unit(q quat.Number) (quat.Number, error) {
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return quat.Number{}, ErrDegenerateRotation
	}
	return quat.Scale(1/n, q), nil
}

func renormalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if math.Abs(n-1) > quaternionDriftEpsilon {
		return quat.Scale(1/n, q)
	}
	return q
}
