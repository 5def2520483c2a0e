package analysis

import (
	"fmt"
	"strings"

	"github.com/philipparndt/govec/pkg/geometry"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// DefaultPrecision is the number of decimals used by the package-level helpers
const DefaultPrecision = 6

// Formatter renders values with a fixed number of decimals
type Formatter struct {
	Precision int
}

// NewFormatter creates a formatter; a negative precision falls back to DefaultPrecision
func NewFormatter(precision int) Formatter {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return Formatter{Precision: precision}
}

// Scalar formats a single value. Results that round to zero print without a sign.
func (f Formatter) Scalar(x float64) string {
	r := scalar.Round(x, f.Precision)
	if r == 0 {
		r = 0
	}
	return fmt.Sprintf("%.*f", f.Precision, r)
}

// Vector formats a 3D vector
func (f Formatter) Vector(v geometry.Vector3) string {
	return fmt.Sprintf("(%s, %s, %s)", f.Scalar(v.X), f.Scalar(v.Y), f.Scalar(v.Z))
}

// Rotation formats a rotation as its quaternion components
func (f Formatter) Rotation(r geometry.Rotation) string {
	a, b, c, d := r.Quaternion()
	return fmt.Sprintf("(%s, %s, %s, %s)", f.Scalar(a), f.Scalar(b), f.Scalar(c), f.Scalar(d))
}

// Matrix formats a matrix one row per line, each row indented by indent
func (f Formatter) Matrix(m mat.Matrix, indent string) string {
	rows, cols := m.Dims()
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.WriteString(indent)
		sb.WriteString("[")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Scalar(m.At(i, j)))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return NewFormatter(DefaultPrecision).Vector(v)
}

// FormatRotation formats a rotation as its quaternion components
func FormatRotation(r geometry.Rotation) string {
	return NewFormatter(DefaultPrecision).Rotation(r)
}
