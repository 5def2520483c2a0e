package geometry

import (
	"math"

	"github.com/golang/geo/s1"
	"gonum.org/v1/gonum/num/quat"
)

// slerpLinearThreshold is the cosine above which Slerp falls back to a normalized
// linear blend because sin(Ω) is too small to divide by
const slerpLinearThreshold = 1 - 1e-9

// gimbalLockThreshold is the |sin(pitch)| above which ToEuler pins roll to zero
const gimbalLockThreshold = 1 - 1e-12

// Multiply returns the composition r·other.
//
// Acting on vectors, other is applied first and r second, both about the fixed
// world axes. Read the other way round, r is applied first and other second about
// the axes carried along by the body, so successive intrinsic rotations A, B, C
// compose as A.Multiply(B.Multiply(C)) while the same rotations about fixed axes
// compose as C.Multiply(B.Multiply(A)).
func (r Rotation) Multiply(other Rotation) Rotation {
	return Rotation{q: renormalize(quat.Mul(r.number(), other.number()))}
}

// Inverse returns the rotation that undoes r
func (r Rotation) Inverse() Rotation {
	return Rotation{q: quat.Conj(r.number())}
}

// MultVec rotates v by r
func (r Rotation) MultVec(v Vector3) Vector3 {
	q := r.number()
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return NewVector3(p.Imag, p.Jmag, p.Kmag)
}

// IsSame reports whether r and other rotate every vector the same way. The check
// is 2 - 2|q1·q2| <= tol, computed as the squared distance between q1 and the
// nearer of ±q2, so q and -q (and angles that differ by whole turns) compare equal.
func (r Rotation) IsSame(other Rotation, tol float64) bool {
	p, q := r.number(), other.number()
	d := math.Min(quat.Abs(quat.Sub(p, q)), quat.Abs(quat.Add(p, q)))
	return d*d <= tol
}

// Slerp interpolates along the shortest great arc from r (t = 0) to other (t = 1).
// Values of t outside [0, 1] extrapolate along the same arc. A NaN or infinite t
// has no point on the arc and returns r unchanged.
func (r Rotation) Slerp(other Rotation, t float64) Rotation {
	switch t {
	case 0:
		return r
	case 1:
		return other
	}

	p, q := r.number(), other.number()
	cos := p.Real*q.Real + p.Imag*q.Imag + p.Jmag*q.Jmag + p.Kmag*q.Kmag
	if cos < 0 {
		q = quat.Scale(-1, q)
		cos = -cos
	}

	var res quat.Number
	if cos > slerpLinearThreshold {
		res = quat.Add(quat.Scale(1-t, p), quat.Scale(t, q))
	} else {
		omega := math.Acos(cos)
		sin := math.Sin(omega)
		res = quat.Add(
			quat.Scale(math.Sin((1-t)*omega)/sin, p),
			quat.Scale(math.Sin(t*omega)/sin, q),
		)
	}
	n, err := unit(res)
	if err != nil {
		return r
	}
	return Rotation{q: n}
}

// ToEuler decomposes r into yaw, pitch and roll in degrees such that
// NewRotationFromEuler(yaw, pitch, roll) is the same rotation. Pitch lies in
// [-90, 90]; yaw and roll in (-180, 180]. At pitch ±90 only yaw∓roll is defined,
// and roll is reported as 0.
func (r Rotation) ToEuler() (yaw, pitch, roll float64) {
	q := r.number()
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	sinPitch := 2 * (w*y - z*x)
	if math.Abs(sinPitch) >= gimbalLockThreshold {
		pitch = math.Copysign(90, sinPitch)
		yaw = wrapDegrees((s1.Angle(2*math.Atan2(z, w)) * s1.Radian).Degrees())
		return yaw, pitch, 0
	}

	yaw = (s1.Angle(math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))) * s1.Radian).Degrees()
	pitch = (s1.Angle(math.Asin(sinPitch)) * s1.Radian).Degrees()
	roll = (s1.Angle(math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))) * s1.Radian).Degrees()
	return yaw, pitch, roll
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	switch {
	case deg > 180:
		deg -= 360
	case deg <= -180:
		deg += 360
	}
	return deg
}
