// SPDX-License-Identifier: MIT

package geom

import "github.com/chewxy/math32"

// Vec4 is a 4-component vector, typically a homogeneous point (w=1),
// direction (w=0) or RGBA color.
type Vec4 [4]Scalar

// Splat4 returns a Vec4 with every component set to s.
func Splat4(s Scalar) Vec4 { return Vec4{s, s, s, s} }

// X returns the x component.
func (v Vec4) X() Scalar { return v[0] }

// Y returns the y component.
func (v Vec4) Y() Scalar { return v[1] }

// Z returns the z component.
func (v Vec4) Z() Scalar { return v[2] }

// W returns the w component.
func (v Vec4) W() Scalar { return v[3] }

// At is the checked counterpart of v[i]; it returns ErrOutOfRange instead of panicking.
func (v Vec4) At(i int) (Scalar, error) { return componentAt(v[:], i) }

// Vec3 drops w without dividing.
func (v Vec4) Vec3() Vec3 { return Vec3{v[0], v[1], v[2]} }

// Homogenized returns xyz / w. w == 0 yields Inf/NaN.
func (v Vec4) Homogenized() Vec3 {
	inv := 1 / v[3]
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// Add returns the component-wise sum v+o.
func (v Vec4) Add(o Vec4) Vec4 { return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]} }

// Sub returns the component-wise difference v-o.
func (v Vec4) Sub(o Vec4) Vec4 { return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]} }

// Mul returns the component-wise product.
func (v Vec4) Mul(o Vec4) Vec4 { return Vec4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]} }

// Div returns the component-wise quotient.
func (v Vec4) Div(o Vec4) Vec4 { return Vec4{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]} }

// AddScalar adds s to every component.
func (v Vec4) AddScalar(s Scalar) Vec4 { return Vec4{v[0] + s, v[1] + s, v[2] + s, v[3] + s} }

// SubScalar subtracts s from every component.
func (v Vec4) SubScalar(s Scalar) Vec4 { return Vec4{v[0] - s, v[1] - s, v[2] - s, v[3] - s} }

// Scale returns v·s.
func (v Vec4) Scale(s Scalar) Vec4 { return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }

// DivScalar returns v/s.
func (v Vec4) DivScalar(s Scalar) Vec4 { return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s} }

// Negated returns -v.
func (v Vec4) Negated() Vec4 { return Vec4{-v[0], -v[1], -v[2], -v[3]} }

// Dot returns the sum of the component-wise products over all four components.
func (v Vec4) Dot(o Vec4) Scalar { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3] }

// Cross is the four-dimensional analogue of the cross product: the vector X
// orthogonal to v (A), b and c, built from the 3x3 cofactors of the stacked
// rows [A; B; C]:
//
//	X[k] = (-1)^k · det(minor of [A; B; C] without column k)
//
// so X·D equals the 4x4 determinant of rows [D; A; B; C].
func (v Vec4) Cross(b, c Vec4) Vec4 {
	a := v
	col := func(k int) Vec3 { return Vec3{a[k], b[k], c[k]} }
	c0, c1, c2, c3 := col(0), col(1), col(2), col(3)

	return Vec4{
		+det3(c1, c2, c3),
		-det3(c0, c2, c3),
		+det3(c0, c1, c3),
		-det3(c0, c1, c2),
	}
}

// LengthSquared returns v·v.
func (v Vec4) LengthSquared() Scalar { return v.Dot(v) }

// Length returns the Euclidean norm of v.
func (v Vec4) Length() Scalar { return math32.Sqrt(v.Dot(v)) }

// Normalized returns v / |v| over all four components. A zero vector yields NaN.
func (v Vec4) Normalized() Vec4 { return v.DivScalar(v.Length()) }

// Normalize normalizes v in place and returns it.
func (v *Vec4) Normalize() *Vec4 {
	*v = v.Normalized()
	return v
}

// MaxValue returns the largest of x, y, z. The w (homogeneous/alpha)
// component never participates.
func (v Vec4) MaxValue() Scalar { return componentsMax(v[:3]) }

// MinValue returns the smallest of x, y, z; w is excluded as in MaxValue.
func (v Vec4) MinValue() Scalar { return componentsMin(v[:3]) }

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec4) IsFinite() bool { return componentsFinite(v[:]) }

// HasNaN reports whether any component is NaN.
func (v Vec4) HasNaN() bool { return componentsHaveNaN(v[:]) }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4) ApproxEqual(o Vec4, eps Scalar) bool { return componentsClose(v[:], o[:], eps) }

// FillRandom overwrites every component with a uniform value; see WithRandomRange.
func (v *Vec4) FillRandom(opts ...Option) *Vec4 {
	fillComponents(v[:], opts)
	return v
}

// PrettyString renders "vec4 (  x.xxxx,   y.yyyy,   z.zzzz,   w.wwww )".
func (v Vec4) PrettyString(named bool) string { return prettyVector("vec4", named, v[:]) }

// String implements fmt.Stringer.
func (v Vec4) String() string { return v.PrettyString(true) }

// det3 is the determinant of the 3x3 matrix with columns a, b, c.
func det3(a, b, c Vec3) Scalar { return a.Dot(b.Cross(c)) }
