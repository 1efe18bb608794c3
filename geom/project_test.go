// Package geom_test verifies window-space projection and unprojection.
package geom_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/stretchr/testify/require"
)

var viewport = geom.Vec4{0, 0, 800, 600}

func TestProjected_Identity(t *testing.T) {
	id := geom.Identity4()

	tests := []struct {
		name  string
		in    geom.Vec3
		depth geom.DepthConvention
		want  geom.Vec3
	}{
		{"origin", geom.Vec3{}, geom.DepthNegOneToOne, geom.Vec3{400, 300, 0.5}},
		{"corner", geom.Vec3{1, 1, 1}, geom.DepthNegOneToOne, geom.Vec3{800, 600, 1}},
		{"far corner", geom.Vec3{-1, -1, -1}, geom.DepthNegOneToOne, geom.Vec3{0, 0, 0}},
		{"zero-to-one passes z", geom.Vec3{0, 0, 0.25}, geom.DepthZeroToOne, geom.Vec3{400, 300, 0.25}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.ProjectedDepth(id, id, viewport, tc.depth))
		})
	}

	require.Equal(t, geom.Vec3{400, 300, 0.5}, geom.Vec3{}.Projected(id, id, viewport))

	// viewport offset shifts x and y only
	off := geom.Vec4{10, 20, 800, 600}
	require.Equal(t, geom.Vec3{410, 320, 0.5}, geom.Vec3{}.Projected(id, id, off))
}

func TestProjected_MatchesMgl(t *testing.T) {
	model := geom.LookAt(geom.Vec3{0, 0, 10}, geom.Vec3{}, geom.Vec3{0, 1, 0}).Mul(sampleTransform())
	proj := geom.Perspective(1, 640.0/480.0, 1, 50)
	vp := geom.Vec4{0, 0, 640, 480}

	for i := uint64(0); i < propertyRounds; i++ {
		p := randomVec3(i)
		want := mgl32.Project(mgl32.Vec3(p), model.Mgl(), proj.Mgl(), 0, 0, 640, 480)
		requireVec3Near(t, geom.Vec3(want), p.Projected(model, proj, vp), 1e-3, "seed %d", i)
	}
}

func TestUnprojected_RoundTrip(t *testing.T) {
	t.Parallel()

	model := geom.LookAt(geom.Vec3{0, 0, 10}, geom.Vec3{}, geom.Vec3{0, 1, 0}).Mul(sampleTransform())
	proj := geom.Perspective(1, 4.0/3.0, 1, 50)

	for _, d := range []geom.DepthConvention{geom.DepthNegOneToOne, geom.DepthZeroToOne} {
		for i := uint64(0); i < propertyRounds; i++ {
			p := randomVec3(i)
			win := p.ProjectedDepth(model, proj, viewport, d)
			back := win.UnprojectedDepth(model, proj, viewport, d)
			requireVec3Near(t, p, back, 1e-3, "%s seed %d", d, i)
		}
	}
}

func TestProjectedWith_DepthOption(t *testing.T) {
	proj := geom.Identity4()
	vp := geom.Vec4{0, 0, 2, 2}
	p := geom.Vec3{0, 0, 0.5}

	require.Equal(t, p.Projected(geom.Identity4(), proj, vp), p.ProjectedWith(geom.Identity4(), proj, vp))
	require.Equal(t, geom.Vec3{1, 1, 0.75}, p.ProjectedWith(geom.Identity4(), proj, vp))
	require.Equal(t, geom.Vec3{1, 1, 0.5},
		p.ProjectedWith(geom.Identity4(), proj, vp, geom.WithDepthConvention(geom.DepthZeroToOne)))

	model := geom.LookAt(geom.Vec3{0, 0, 10}, geom.Vec3{}, geom.Vec3{0, 1, 0}).Mul(sampleTransform())
	persp := geom.Perspective(1, 4.0/3.0, 1, 50)
	for _, d := range []geom.DepthConvention{geom.DepthNegOneToOne, geom.DepthZeroToOne} {
		opt := geom.WithDepthConvention(d)
		win := p.ProjectedWith(model, persp, viewport, opt)
		require.Equal(t, p.ProjectedDepth(model, persp, viewport, d), win, "%s", d)
		requireVec3Near(t, p, win.UnprojectedWith(model, persp, viewport, opt), 1e-3, "%s", d)
	}
}

func TestProjectInPlace(t *testing.T) {
	model := sampleTransform()
	proj := geom.Ortho(-10, 10, -10, 10, -10, 10)
	p := geom.Vec3{0.25, -0.5, 0.75}

	v := p
	require.Same(t, &v, v.Project(model, proj, viewport))
	require.Equal(t, p.Projected(model, proj, viewport), v)

	v.Unproject(model, proj, viewport)
	requireVec3Near(t, p, v, looseDelta)
}

// TestUnprojected_Degenerate: an empty viewport is not guarded.
func TestUnprojected_Degenerate(t *testing.T) {
	id := geom.Identity4()
	got := geom.Vec3{1, 1, 0.5}.Unprojected(id, id, geom.Vec4{})
	require.False(t, got.IsFinite())
}
