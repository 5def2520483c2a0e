package batch

import (
	"testing"

	"github.com/philipparndt/govec/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector(t *testing.T) {
	v, err := ParseVector(" 1, -2.5 ,3e2")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(1, -2.5, 300), v)

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c", "1,NaN,3", "1,2,Inf"} {
		_, err := ParseVector(bad)
		assert.ErrorIs(t, err, ErrInvalidLiteral, "input %q", bad)
	}
}

func TestParseRotationForms(t *testing.T) {
	quarterZ, err := geometry.NewRotationAxisAngle(geometry.NewVector3(0, 0, 1), 90)
	require.NoError(t, err)

	for _, literal := range []string{
		"axis:0,0,1@90",
		"AXIS: 0,0,2 @ 90",
		"axis:0,0,-1@-90",
		"euler:90,0,0",
		"quat:0,0,1,1",
		"arc:1,0,0>0,3,0",
		"matrix:0,-1,0,1,0,0,0,0,1",
		"matrix:0,-1,0,5,1,0,0,6,0,0,1,7,0,0,0,1",
		"axes:0,1,0|-1,0,0|0,0,1|ZXY",
		"axes:0,1,0|-1,0,0|0,0,1",
	} {
		r, err := ParseRotation(literal)
		require.NoError(t, err, literal)
		assert.True(t, r.IsSame(quarterZ, 1e-14), "%s gave %v", literal, r)
	}

	r, err := ParseRotation("identity")
	require.NoError(t, err)
	assert.True(t, r.IsSame(geometry.IdentityRotation(), 0))
}

func TestParseRotationErrors(t *testing.T) {
	tests := []struct {
		literal string
		want    error
	}{
		{"0,0,1@90", ErrInvalidLiteral},
		{"spin:0,0,1", ErrInvalidLiteral},
		{"axis:0,0,1", ErrInvalidLiteral},
		{"axis:0,0,0@90", geometry.ErrZeroLengthVector},
		{"euler:1,2", ErrInvalidLiteral},
		{"quat:0,0,0,0", geometry.ErrDegenerateRotation},
		{"arc:1,0,0", ErrInvalidLiteral},
		{"arc:1,0,0>-1,0,0", geometry.ErrDegenerateRotation},
		{"matrix:1,0,0,1", ErrInvalidLiteral},
		{"matrix:2,0,0,0,2,0,0,0,2", geometry.ErrInvalidRotationMatrix},
		{"axes:1,0,0|0,1,0", ErrInvalidLiteral},
		{"axes:1,0,0|0,1,0|0,0,1|XXY", geometry.ErrDegenerateRotation},
	}
	for _, tt := range tests {
		_, err := ParseRotation(tt.literal)
		assert.ErrorIs(t, err, tt.want, "literal %q", tt.literal)
	}
}
