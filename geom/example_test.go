package geom_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/geom"
)

func ExampleVec3_String() {
	fmt.Println(geom.Vec3{1, 2, 3})
	// Output: vec3 (  1.0000,   2.0000,   3.0000 )
}

func ExampleVec4_Cross() {
	a, b, c := geom.Vec4{1, 2, 3, 4}, geom.Vec4{0, 1, 0, 2}, geom.Vec4{3, 0, 1, 0}
	x := a.Cross(b, c)
	fmt.Println(x)
	fmt.Println(x.Dot(a), x.Dot(b), x.Dot(c))
	// Output:
	// vec4 (  0.0000, -16.0000,   0.0000,   8.0000 )
	// 0 0 0
}

func ExampleLookAt() {
	view := geom.LookAt(geom.Vec3{0, 0, 5}, geom.Vec3{}, geom.Vec3{0, 1, 0})
	fmt.Println(view.MulVec(geom.Vec4{0, 0, 0, 1}))
	fmt.Println(view.IsAffine())
	// Output:
	// vec4 (  0.0000,   0.0000,  -5.0000,   1.0000 )
	// true
}

func ExampleRotationBetween() {
	_, err := geom.RotationBetween(
		geom.Vec3{0, 1, 0}, geom.Vec3{0, -2, 0},
		geom.WithRotationStrategy(geom.Rodrigues),
	)
	fmt.Println(errors.Is(err, geom.ErrAntiparallel))
	fmt.Println(err)
	// Output:
	// true
	// RotationBetween: geom: vectors are antiparallel
}

func ExampleMat4_Translated() {
	m := geom.Identity4().Translated(geom.Vec3{1, 2, 3})
	fmt.Println(m.MulVec(geom.Vec4{0, 0, 0, 1}))
	// Output: vec4 (  1.0000,   2.0000,   3.0000,   1.0000 )
}
