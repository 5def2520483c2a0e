package batch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/govec/pkg/geometry"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidLiteral is returned when a vector or rotation literal cannot be parsed
var ErrInvalidLiteral = errors.New("invalid literal")

// ParseVector parses "x,y,z"
func ParseVector(s string) (geometry.Vector3, error) {
	nums, err := parseNumbers(s, 3)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("vector %q: %w", s, err)
	}
	return geometry.NewVector3(nums[0], nums[1], nums[2]), nil
}

// ParseRotation parses a rotation literal:
//
//	identity
//	axis:X,Y,Z@DEG
//	euler:YAW,PITCH,ROLL
//	quat:A,B,C,D
//	arc:X,Y,Z>X,Y,Z
//	matrix:M00,M01,...      (9 or 16 values, row major)
//	axes:X,Y,Z|X,Y,Z|X,Y,Z|PRIORITY
func ParseRotation(s string) (geometry.Rotation, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "identity") {
		return geometry.IdentityRotation(), nil
	}

	kind, body, ok := strings.Cut(s, ":")
	if !ok {
		return geometry.Rotation{}, fmt.Errorf("rotation %q: missing kind prefix: %w", s, ErrInvalidLiteral)
	}

	r, err := parseRotationBody(strings.ToLower(strings.TrimSpace(kind)), body)
	if err != nil {
		return geometry.Rotation{}, fmt.Errorf("rotation %q: %w", s, err)
	}
	return r, nil
}

func parseRotationBody(kind, body string) (geometry.Rotation, error) {
	switch kind {
	case "axis":
		axisText, angleText, ok := strings.Cut(body, "@")
		if !ok {
			return geometry.Rotation{}, fmt.Errorf("missing @angle: %w", ErrInvalidLiteral)
		}
		axis, err := ParseVector(axisText)
		if err != nil {
			return geometry.Rotation{}, err
		}
		angle, err := parseNumber(angleText)
		if err != nil {
			return geometry.Rotation{}, err
		}
		return geometry.NewRotationAxisAngle(axis, angle)

	case "euler":
		nums, err := parseNumbers(body, 3)
		if err != nil {
			return geometry.Rotation{}, err
		}
		return geometry.NewRotationFromEuler(nums[0], nums[1], nums[2]), nil

	case "quat":
		nums, err := parseNumbers(body, 4)
		if err != nil {
			return geometry.Rotation{}, err
		}
		return geometry.NewRotationFromQuaternion(nums[0], nums[1], nums[2], nums[3])

	case "arc":
		fromText, toText, ok := strings.Cut(body, ">")
		if !ok {
			return geometry.Rotation{}, fmt.Errorf("missing >target: %w", ErrInvalidLiteral)
		}
		from, err := ParseVector(fromText)
		if err != nil {
			return geometry.Rotation{}, err
		}
		to, err := ParseVector(toText)
		if err != nil {
			return geometry.Rotation{}, err
		}
		return geometry.NewRotationBetween(from, to)

	case "matrix":
		nums, err := parseNumbers(body, -1)
		if err != nil {
			return geometry.Rotation{}, err
		}
		switch len(nums) {
		case 9:
			return geometry.NewRotationFromMatrix(mat.NewDense(3, 3, nums))
		case 16:
			return geometry.NewRotationFromMatrix(mat.NewDense(4, 4, nums))
		}
		return geometry.Rotation{}, fmt.Errorf("matrix needs 9 or 16 values, got %d: %w", len(nums), ErrInvalidLiteral)

	case "axes":
		parts := strings.Split(body, "|")
		if len(parts) != 3 && len(parts) != 4 {
			return geometry.Rotation{}, fmt.Errorf("axes needs X|Y|Z[|PRIORITY]: %w", ErrInvalidLiteral)
		}
		var dirs [3]geometry.Vector3
		for i := 0; i < 3; i++ {
			v, err := ParseVector(parts[i])
			if err != nil {
				return geometry.Rotation{}, err
			}
			dirs[i] = v
		}
		priority := ""
		if len(parts) == 4 {
			priority = strings.TrimSpace(parts[3])
		}
		return geometry.NewRotationFromAxes(dirs[0], dirs[1], dirs[2], priority)
	}

	return geometry.Rotation{}, fmt.Errorf("unknown kind %q: %w", kind, ErrInvalidLiteral)
}

// parseNumbers parses a comma separated list; want < 0 accepts any count
func parseNumbers(s string, want int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if want >= 0 && len(fields) != want {
		return nil, fmt.Errorf("want %d numbers, got %d: %w", want, len(fields), ErrInvalidLiteral)
	}
	nums := make([]float64, len(fields))
	for i, f := range fields {
		n, err := parseNumber(f)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%q is not finite: %w", s, ErrInvalidLiteral)
	}
	return n, nil
}
