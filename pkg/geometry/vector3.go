package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the relative tolerance used by IsParallel and IsPerpendicular
const DefaultTolerance = 1e-7

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Scale multiplies v by a scalar given on the left
func Scale(scalar float64, v Vector3) Vector3 {
	return v.Mul(scalar)
}

// Div divides the vector by a scalar
func (v Vector3) Div(scalar float64) (Vector3, error) {
	if scalar == 0 {
		return Vector3{}, fmt.Errorf("divide %s by 0: %w", v, ErrDivideByZero)
	}
	return Vector3{
		X: v.X / scalar,
		Y: v.Y / scalar,
		Z: v.Z / scalar,
	}, nil
}

// Neg returns the vector pointing the opposite way
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector. Components are scaled before squaring,
// so the result neither overflows nor underflows for any finite vector.
func (v Vector3) Length() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// IsZero reports whether all components are exactly zero
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalize returns a unit vector in the same direction.
// Only an exactly zero length fails; any representable non-zero length is scaled to 1.
func (v Vector3) Normalize() (Vector3, error) {
	length := v.Length()
	if length == 0 {
		return Vector3{}, fmt.Errorf("normalize: %w", ErrZeroLengthVector)
	}
	return Vector3{
		X: v.X / length,
		Y: v.Y / length,
		Z: v.Z / length,
	}, nil
}

// Angle returns the angle between two vectors in radians, in [0, π]
func (v Vector3) Angle(other Vector3) (float64, error) {
	a, err := v.Normalize()
	if err != nil {
		return 0, fmt.Errorf("angle between %s and %s: %w", v, other, ErrZeroLengthVector)
	}
	b, err := other.Normalize()
	if err != nil {
		return 0, fmt.Errorf("angle between %s and %s: %w", v, other, ErrZeroLengthVector)
	}
	return math.Atan2(a.Cross(b).Length(), a.Dot(b)), nil
}

// AngleDegrees is Angle expressed in degrees
func (v Vector3) AngleDegrees(other Vector3) (float64, error) {
	rad, err := v.Angle(other)
	if err != nil {
		return 0, err
	}
	return (s1.Angle(rad) * s1.Radian).Degrees(), nil
}

// IsParallel reports whether the vectors are parallel (or anti-parallel) within
// a tolerance relative to their lengths. A zero vector is parallel to everything.
func (v Vector3) IsParallel(other Vector3, tol float64) bool {
	return v.Cross(other).Length() <= tol*v.Length()*other.Length()
}

// IsPerpendicular reports whether the vectors are perpendicular within a tolerance
// relative to their lengths. A zero vector is perpendicular to everything.
func (v Vector3) IsPerpendicular(other Vector3, tol float64) bool {
	return math.Abs(v.Dot(other)) <= tol*v.Length()*other.Length()
}

// ApproxEqual reports whether every component differs by at most tol
func (v Vector3) ApproxEqual(other Vector3, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, tol) &&
		scalar.EqualWithinAbs(v.Y, other.Y, tol) &&
		scalar.EqualWithinAbs(v.Z, other.Z, tol)
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
	}
}

func (v Vector3) String() string {
	return fmt.Sprintf("Vector3 (%g, %g, %g)", v.X, v.Y, v.Z)
}
