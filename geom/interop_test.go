// Package geom_test cross-checks geom against github.com/go-gl/mathgl/mgl32.
package geom_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestMglRoundTrip(t *testing.T) {
	m := sampleTransform()
	require.Equal(t, m, geom.Mat4FromMgl(m.Mgl()))

	m3 := m.Mat3()
	require.Equal(t, m3, geom.Mat3FromMgl(m3.Mgl()))
	require.Equal(t, m3.Mgl(), m.Mgl().Mat3())

	v := geom.Vec3{1, 2, 3}
	require.Equal(t, v, geom.Vec3(mgl32.Vec3(v)))
}

func TestMatchesMgl(t *testing.T) {
	eye, target, up := geom.Vec3{3, 4, 5}, geom.Vec3{0, 1, 0}, geom.Vec3{0, 1, 0}
	axis := geom.Vec3{1, 2, 2}.Normalized()

	tests := []struct {
		name string
		got  geom.Mat4
		want mgl32.Mat4
	}{
		{"translate", geom.Identity4().Translated(geom.Vec3{1, 2, 3}), mgl32.Translate3D(1, 2, 3)},
		{"scale", geom.Identity4().Scaled(geom.Vec3{2, 3, 4}), mgl32.Scale3D(2, 3, 4)},
		{"rotate", geom.Identity4().Rotated(0.8, axis), mgl32.HomogRotate3D(0.8, mgl32.Vec3(axis))},
		{"lookAt", geom.LookAt(eye, target, up), mgl32.LookAtV(mgl32.Vec3(eye), mgl32.Vec3(target), mgl32.Vec3(up))},
		{"perspective", geom.Perspective(0.9, 1.6, 0.1, 100), mgl32.Perspective(0.9, 1.6, 0.1, 100)},
		{"ortho", geom.Ortho(-4, 4, -3, 3, 0.5, 20), mgl32.Ortho(-4, 4, -3, 3, 0.5, 20)},
		{"inverse", sampleTransform().Inverted(), sampleTransform().Mgl().Inv()},
		{"multiply", sampleTransform().Mul(geom.Perspective(1, 1, 1, 10)),
			sampleTransform().Mgl().Mul4(mgl32.Perspective(1, 1, 1, 10))},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			requireMat4Near(t, geom.Mat4FromMgl(tc.want), tc.got, looseDelta)
		})
	}
}

func TestDeterminantMatchesMgl(t *testing.T) {
	for i := uint64(0); i < propertyRounds; i++ {
		m := wellConditioned4(i)
		require.InDelta(t, m.Mgl().Det(), m.Determinant(), 1e-2, "seed %d", i)
	}
}
