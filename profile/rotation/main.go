// Profiling:
// go build ./profile/rotation
// go tool pprof -http=":8000" -nodefraction=0.001 ./rotation cpu.pprof

package main

import (
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/pkg/profile"
	"golang.org/x/exp/rand"
)

var (
	sinkMat3 geom.Mat3
	sinkMat4 geom.Mat4
	sinkVec3 geom.Vec3
)

func main() {
	rounds := 50
	iters := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters)
	p.Stop()
}

func run(rounds, iters int) {
	var a, b geom.Vec3
	src := geom.WithSource(rand.NewSource(1))
	model := geom.Identity4().Translated(geom.Vec3{1, -2, 3}).Rotated(0.7, geom.Vec3{1, 1, 0})
	proj := geom.Perspective(1, 16.0/9.0, 0.1, 100)
	viewport := geom.Vec4{0, 0, 1920, 1080}

	for range rounds {
		a.FillRandom(src).Normalize()
		b.FillRandom(src).Normalize()

		for range iters {
			sinkMat3 = a.RotationTo(b, geom.Quaternion)
			sinkMat3 = a.RotationTo(b, geom.Rodrigues)
			sinkMat4 = model.InvertedTransposed()
			sinkVec3 = a.Projected(model, proj, viewport)
		}
	}
}
