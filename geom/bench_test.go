// Package geom_test provides benchmarks for the hot-path operations, using
// deterministic random fill.
package geom_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/geom"
)

// Package-level sinks keep the compiler from eliding the work.
var (
	sinkMat3 geom.Mat3
	sinkMat4 geom.Mat4
	sinkVec3 geom.Vec3
	sinkVec4 geom.Vec4
)

func BenchmarkMat4_Inverted(b *testing.B) {
	m := wellConditioned4(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.Inverted()
	}
}

func BenchmarkMat4_InvertedTransposed(b *testing.B) {
	m := wellConditioned4(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.InvertedTransposed()
	}
}

func BenchmarkMat4_Mul(b *testing.B) {
	m, o := wellConditioned4(1), wellConditioned4(2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.Mul(o)
	}
}

func BenchmarkVec4_Cross(b *testing.B) {
	x, y, z := randomVec4(1), randomVec4(2), randomVec4(3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec4 = x.Cross(y, z)
	}
}

func BenchmarkRotationTo(b *testing.B) {
	from, to := randomUnit(1), randomUnit(2)
	for _, s := range []geom.RotationStrategy{geom.Quaternion, geom.Rodrigues} {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkMat3 = from.RotationTo(to, s)
			}
		})
	}
}

func BenchmarkProjected(b *testing.B) {
	model := sampleTransform()
	proj := geom.Perspective(1, 4.0/3.0, 0.1, 100)
	p := randomVec3(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec3 = p.Projected(model, proj, viewport)
	}
}
