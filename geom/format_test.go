// Package geom_test pins the fixed-width text rendering of vectors and matrices.
package geom_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestPrettyString(t *testing.T) {
	inf := geom.Scalar(1) / geom.Vec3{}.X()
	nan := inf - inf

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"vec3", geom.Vec3{1, 2, 3}.String(), "vec3 (  1.0000,   2.0000,   3.0000 )"},
		{"vec3 unnamed", geom.Vec3{1, 2, 3}.PrettyString(false), "(  1.0000,   2.0000,   3.0000 )"},
		{"vec2 wide", geom.Vec2{-1.5, 12345.6789}.String(), "vec2 ( -1.5000, 12345.6787 )"},
		{"vec4", geom.Vec4{0.5, 0, -0.25, 1}.String(), "vec4 (  0.5000,   0.0000,  -0.2500,   1.0000 )"},
		{"rounding", geom.Vec2{0.00004, 2.99996}.String(), "vec2 (  0.0000,   3.0000 )"},
		{"non-finite", geom.Vec2{nan, inf}.String(), "vec2 (     NaN,     +Inf )"},
		{"mat3", geom.Identity3().String(), "mat3 (\n" +
			"  (  1.0000,   0.0000,   0.0000 )\n" +
			"  (  0.0000,   1.0000,   0.0000 )\n" +
			"  (  0.0000,   0.0000,   1.0000 )\n" +
			")"},
		{"mat4 rows", geom.Identity4().Translated(geom.Vec3{1, 2, 3}).PrettyString(false), "(\n" +
			"  (  1.0000,   0.0000,   0.0000,   1.0000 )\n" +
			"  (  0.0000,   1.0000,   0.0000,   2.0000 )\n" +
			"  (  0.0000,   0.0000,   1.0000,   3.0000 )\n" +
			"  (  0.0000,   0.0000,   0.0000,   1.0000 )\n" +
			")"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestStringer(t *testing.T) {
	v := geom.Vec3{1, 2, 3}
	require.Equal(t, v.String(), fmt.Sprint(v))
	require.Equal(t, "[vec3 (  1.0000,   2.0000,   3.0000 )]", fmt.Sprint([]geom.Vec3{v}))
	require.Equal(t, "rodrigues", geom.Rodrigues.String())
	require.Equal(t, "[0,1]", geom.DepthZeroToOne.String())
}
