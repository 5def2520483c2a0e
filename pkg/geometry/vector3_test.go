package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3ScaleAndDivide(t *testing.T) {
	half, err := NewVector3(1, 2, 3).Div(2)
	if err != nil {
		t.Fatalf("Div failed: %v", err)
	}
	result := Scale(2, NewVector3(4, 5, 6)).Sub(half)

	expected := NewVector3(7.5, 9, 10.5)
	if result != expected {
		t.Errorf("Scale/Div failed: expected %v, got %v", expected, result)
	}
	if NewVector3(4, 5, 6).Mul(2) != Scale(2, NewVector3(4, 5, 6)) {
		t.Errorf("left and right scalar multiplication differ")
	}
}

func TestVector3DivideByZero(t *testing.T) {
	_, err := NewVector3(1, 2, 3).Div(0)
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Div by zero: expected ErrDivideByZero, got %v", err)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	for _, v := range []Vector3{
		NewVector3(3, 4, 0),
		NewVector3(-1e-100, 0, 0),
		NewVector3(1e150, 2e150, -3e150),
		NewVector3(1e200, 0, 0),
		NewVector3(1e200, -1e200, 1e200),
		NewVector3(1e-170, 0, 0),
		NewVector3(0.1, 0.2, 0.3),
	} {
		normalized, err := v.Normalize()
		if err != nil {
			t.Fatalf("Normalize %v failed: %v", v, err)
		}
		if math.Abs(normalized.Length()-1) > 1e-10 {
			t.Errorf("Normalize %v failed: expected length 1, got %v", v, normalized.Length())
		}
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	_, err := Vector3{}.Normalize()
	if !errors.Is(err, ErrZeroLengthVector) {
		t.Errorf("Normalize zero: expected ErrZeroLengthVector, got %v", err)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3ProductSymmetry(t *testing.T) {
	pairs := [][2]Vector3{
		{NewVector3(1, 2, 3), NewVector3(4, 5, 6)},
		{NewVector3(-1.5, 0.25, 7), NewVector3(3, -2, 0.5)},
		{NewVector3(0, 0, 0), NewVector3(1, 1, 1)},
	}
	for _, p := range pairs {
		if p[0].Dot(p[1]) != p[1].Dot(p[0]) {
			t.Errorf("Dot not commutative for %v, %v", p[0], p[1])
		}
		if p[0].Cross(p[1]) != p[1].Cross(p[0]).Neg() {
			t.Errorf("Cross not anti-commutative for %v, %v", p[0], p[1])
		}
	}
}

func TestVector3Angle(t *testing.T) {
	angle, err := NewVector3(1, 0, 0).Angle(NewVector3(0, 2, 0))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}
	if math.Abs(angle-math.Pi/2) > 1e-12 {
		t.Errorf("Angle failed: expected %v, got %v", math.Pi/2, angle)
	}

	deg, err := NewVector3(1, 0, 0).AngleDegrees(NewVector3(-1, 0, 0))
	if err != nil {
		t.Fatalf("AngleDegrees failed: %v", err)
	}
	if math.Abs(deg-180) > 1e-12 {
		t.Errorf("AngleDegrees failed: expected 180, got %v", deg)
	}

	if _, err := NewVector3(1, 0, 0).Angle(Vector3{}); !errors.Is(err, ErrZeroLengthVector) {
		t.Errorf("Angle with zero vector: expected ErrZeroLengthVector, got %v", err)
	}
}

func TestVector3AngleExtremes(t *testing.T) {
	angle, err := NewVector3(1e200, 0, 0).Angle(NewVector3(1, 0, 0))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}
	if angle != 0 {
		t.Errorf("Angle of huge parallel vectors: expected 0, got %v", angle)
	}

	angle, err = NewVector3(1e-170, 0, 0).Angle(NewVector3(0, 1e-170, 0))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}
	if math.Abs(angle-math.Pi/2) > 1e-15 {
		t.Errorf("Angle of tiny vectors: expected %v, got %v", math.Pi/2, angle)
	}

	// the cosine rounds to exactly 1 here
	small := 1e-9
	angle, err = NewVector3(1, 0, 0).Angle(NewVector3(math.Cos(small), math.Sin(small), 0))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}
	if math.Abs(angle-small) > 1e-20 {
		t.Errorf("Angle near zero: expected %v, got %v", small, angle)
	}
}

func TestVector3ParallelPerpendicular(t *testing.T) {
	x := NewVector3(1, 0, 0)
	if !x.IsParallel(NewVector3(-3, 0, 0), DefaultTolerance) {
		t.Errorf("IsParallel: anti-parallel vectors should be parallel")
	}
	if x.IsParallel(NewVector3(1, 1, 0), DefaultTolerance) {
		t.Errorf("IsParallel: 45 degree vectors reported parallel")
	}
	if !x.IsPerpendicular(NewVector3(0, 5, 5), DefaultTolerance) {
		t.Errorf("IsPerpendicular: orthogonal vectors not perpendicular")
	}
	if x.IsPerpendicular(NewVector3(-1, 1, 0), DefaultTolerance) {
		t.Errorf("IsPerpendicular: negative dot product reported perpendicular")
	}
}

func TestVector3ZeroIsParallelAndPerpendicular(t *testing.T) {
	zero := Vector3{}
	v := NewVector3(1, 2, 3)
	if !zero.IsParallel(v, DefaultTolerance) || !v.IsParallel(zero, DefaultTolerance) {
		t.Errorf("zero vector should be parallel to everything")
	}
	if !zero.IsPerpendicular(v, DefaultTolerance) || !v.IsPerpendicular(zero, DefaultTolerance) {
		t.Errorf("zero vector should be perpendicular to everything")
	}
}

func TestVector3MinMax(t *testing.T) {
	v1 := NewVector3(1, 5, -3)
	v2 := NewVector3(2, -4, -3)

	if got := v1.Min(v2); got != NewVector3(1, -4, -3) {
		t.Errorf("Min failed: got %v", got)
	}
	if got := v1.Max(v2); got != NewVector3(2, 5, -3) {
		t.Errorf("Max failed: got %v", got)
	}
	if !(Vector3{}).IsZero() || v1.IsZero() {
		t.Errorf("IsZero failed")
	}
}
