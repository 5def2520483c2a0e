package geometry

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// MatrixTolerance is the largest deviation of MᵀM from the identity accepted
// when reading a rotation matrix
const MatrixTolerance = 1e-7

// DefaultPriority is the axis order used by NewRotationFromAxes for an empty priority
const DefaultPriority = "ZXY"

// NewRotationFromMatrix extracts the rotation from a 3×3 rotation matrix or from
// the upper-left block of a 4×4 placement matrix; the translation column and the
// bottom row of a 4×4 matrix are ignored. Matrices that are not orthogonal with
// determinant +1 fail with ErrInvalidRotationMatrix.
func NewRotationFromMatrix(m mat.Matrix) (Rotation, error) {
	rows, cols := m.Dims()
	if rows != cols || (rows != 3 && rows != 4) {
		return Rotation{}, fmt.Errorf("matrix is %dx%d, want 3x3 or 4x4: %w", rows, cols, ErrInvalidRotationMatrix)
	}

	block := mat.DenseCopyOf(m).Slice(0, 3, 0, 3)

	var gram mat.Dense
	gram.Mul(block.T(), block)
	if !mat.EqualApprox(&gram, mat.NewDiagDense(3, []float64{1, 1, 1}), MatrixTolerance) {
		return Rotation{}, fmt.Errorf("matrix is not orthogonal: %w", ErrInvalidRotationMatrix)
	}
	if det := mat.Det(block); det <= 0 {
		return Rotation{}, fmt.Errorf("matrix determinant %g is not +1: %w", det, ErrInvalidRotationMatrix)
	}

	var e [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			e[i][j] = block.At(i, j)
		}
	}
	q, err := unit(quaternionFromMatrix(e))
	if err != nil {
		return Rotation{}, fmt.Errorf("matrix: %w", ErrInvalidRotationMatrix)
	}
	return Rotation{q: q}, nil
}

// ToMatrix returns the 3×3 matrix of r; its columns are the images of the x, y
// and z axes.
func (r Rotation) ToMatrix() *mat.Dense {
	q := r.number()
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	})
}

// NewRotationFromAxes builds the rotation that carries the world x, y and z axes
// onto the given directions. The directions need not be exactly orthogonal:
// priority (a permutation of "XYZ", e.g. "ZXY") names the axis kept as given, the
// one orthogonalized against it, and the one derived last. A zero or parallel
// second-priority direction is replaced by the third-priority one, and if that
// fails too by a world axis. Only a zero first-priority direction is an error.
func NewRotationFromAxes(x, y, z Vector3, priority string) (Rotation, error) {
	order, err := parsePriority(priority)
	if err != nil {
		return Rotation{}, err
	}
	dirs := [3]Vector3{x, y, z}

	main, err := dirs[order[0]].Normalize()
	if err != nil {
		return Rotation{}, fmt.Errorf("%c axis: %w", axisNames[order[0]], ErrDegenerateRotation)
	}

	var axes [3]Vector3
	axes[order[0]] = main

	switch {
	case orthogonalizeInto(&axes, order[1], dirs[order[1]], main):
		completeAxis(&axes, order[2])
	case orthogonalizeInto(&axes, order[2], dirs[order[2]], main):
		completeAxis(&axes, order[1])
	default:
		for k := 0; k < 3; k++ {
			hint := worldAxis((order[1] + k) % 3)
			if orthogonalizeInto(&axes, order[1], hint, main) {
				break
			}
		}
		completeAxis(&axes, order[2])
	}

	var e [3][3]float64
	for col, a := range axes {
		e[0][col], e[1][col], e[2][col] = a.X, a.Y, a.Z
	}
	q, err := unit(quaternionFromMatrix(e))
	if err != nil {
		return Rotation{}, fmt.Errorf("axes: %w", ErrDegenerateRotation)
	}
	return Rotation{q: q}, nil
}

var axisNames = [3]byte{'X', 'Y', 'Z'}

func parsePriority(priority string) ([3]int, error) {
	if priority == "" {
		priority = DefaultPriority
	}
	var order [3]int
	var seen [3]bool
	p := strings.ToUpper(priority)
	if len(p) != 3 {
		return order, fmt.Errorf("priority %q is not a permutation of XYZ: %w", priority, ErrDegenerateRotation)
	}
	for i := 0; i < 3; i++ {
		idx := strings.IndexByte("XYZ", p[i])
		if idx < 0 || seen[idx] {
			return order, fmt.Errorf("priority %q is not a permutation of XYZ: %w", priority, ErrDegenerateRotation)
		}
		seen[idx] = true
		order[i] = idx
	}
	return order, nil
}

func worldAxis(i int) Vector3 {
	switch i {
	case 0:
		return NewVector3(1, 0, 0)
	case 1:
		return NewVector3(0, 1, 0)
	default:
		return NewVector3(0, 0, 1)
	}
}

// orthogonalizeInto stores the unit component of v perpendicular to main in
// axes[slot], reporting false if v has no usable perpendicular part.
func orthogonalizeInto(axes *[3]Vector3, slot int, v, main Vector3) bool {
	w := v.Sub(main.Mul(v.Dot(main)))
	if w.Length() <= DefaultTolerance*v.Length() {
		return false
	}
	n, err := w.Normalize()
	if err != nil {
		return false
	}
	axes[slot] = n
	return true
}

// completeAxis derives axes[slot] from the other two so the frame is right-handed
func completeAxis(axes *[3]Vector3, slot int) {
	axes[slot] = axes[(slot+1)%3].Cross(axes[(slot+2)%3])
}

// quaternionFromMatrix is Shepperd's extraction, branching on the largest diagonal
// term to keep the square root well away from zero.
func quaternionFromMatrix(m [3][3]float64) quat.Number {
	trace := m[0][0] + m[1][1] + m[2][2]
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		return quat.Number{
			Real: 0.25 * s,
			Imag: (m[2][1] - m[1][2]) / s,
			Jmag: (m[0][2] - m[2][0]) / s,
			Kmag: (m[1][0] - m[0][1]) / s,
		}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		return quat.Number{
			Real: (m[2][1] - m[1][2]) / s,
			Imag: 0.25 * s,
			Jmag: (m[0][1] + m[1][0]) / s,
			Kmag: (m[0][2] + m[2][0]) / s,
		}
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		return quat.Number{
			Real: (m[0][2] - m[2][0]) / s,
			Imag: (m[0][1] + m[1][0]) / s,
			Jmag: 0.25 * s,
			Kmag: (m[1][2] + m[2][1]) / s,
		}
	default:
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		return quat.Number{
			Real: (m[1][0] - m[0][1]) / s,
			Imag: (m[0][2] + m[2][0]) / s,
			Jmag: (m[1][2] + m[2][1]) / s,
			Kmag: 0.25 * s,
		}
	}
}
