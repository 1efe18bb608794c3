// SPDX-License-Identifier: MIT

package geom

import "github.com/chewxy/math32"

// Vec3 is a 3-component vector. Index with v[0]..v[2]; the array is the
// storage, so v[i] = s writes in place.
type Vec3 [3]Scalar

// Splat3 returns a Vec3 with every component set to s.
func Splat3(s Scalar) Vec3 { return Vec3{s, s, s} }

// X returns the x component.
func (v Vec3) X() Scalar { return v[0] }

// Y returns the y component.
func (v Vec3) Y() Scalar { return v[1] }

// Z returns the z component.
func (v Vec3) Z() Scalar { return v[2] }

// At is the checked counterpart of v[i]; it returns ErrOutOfRange instead of panicking.
func (v Vec3) At(i int) (Scalar, error) { return componentAt(v[:], i) }

// Vec4 widens v with the given w (1 for points, 0 for directions).
func (v Vec3) Vec4(w Scalar) Vec4 { return Vec4{v[0], v[1], v[2], w} }

// Vec2 drops z.
func (v Vec3) Vec2() Vec2 { return Vec2{v[0], v[1]} }

// Add returns the component-wise sum v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Sub returns the component-wise difference v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Mul returns the component-wise product.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }

// Div returns the component-wise quotient.
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v[0] / o[0], v[1] / o[1], v[2] / o[2]} }

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s Scalar) Vec3 { return Vec3{v[0] + s, v[1] + s, v[2] + s} }

// SubScalar subtracts s from every component.
func (v Vec3) SubScalar(s Scalar) Vec3 { return Vec3{v[0] - s, v[1] - s, v[2] - s} }

// Scale returns v·s.
func (v Vec3) Scale(s Scalar) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// DivScalar returns v/s.
func (v Vec3) DivScalar(s Scalar) Vec3 { return Vec3{v[0] / s, v[1] / s, v[2] / s} }

// Negated returns -v.
func (v Vec3) Negated() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Dot returns the sum of the component-wise products.
func (v Vec3) Dot(o Vec3) Scalar { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// SkewSymmetricCross returns the matrix S with S.MulVec(w) == v.Cross(w).
// Columns: (0, v2, -v1), (-v2, 0, v0), (v1, -v0, 0).
func (v Vec3) SkewSymmetricCross() Mat3 {
	return Mat3{
		{0, v[2], -v[1]},
		{-v[2], 0, v[0]},
		{v[1], -v[0], 0},
	}
}

// LengthSquared returns v·v.
func (v Vec3) LengthSquared() Scalar { return v.Dot(v) }

// Length returns the Euclidean norm of v.
func (v Vec3) Length() Scalar { return math32.Sqrt(v.Dot(v)) }

// Normalized returns v / |v|. A zero vector yields NaN components.
func (v Vec3) Normalized() Vec3 { return v.DivScalar(v.Length()) }

// Normalize normalizes v in place and returns it.
func (v *Vec3) Normalize() *Vec3 {
	*v = v.Normalized()
	return v
}

// MaxValue returns the largest component.
func (v Vec3) MaxValue() Scalar { return componentsMax(v[:]) }

// MinValue returns the smallest component.
func (v Vec3) MinValue() Scalar { return componentsMin(v[:]) }

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec3) IsFinite() bool { return componentsFinite(v[:]) }

// HasNaN reports whether any component is NaN.
func (v Vec3) HasNaN() bool { return componentsHaveNaN(v[:]) }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3) ApproxEqual(o Vec3, eps Scalar) bool { return componentsClose(v[:], o[:], eps) }

// FillRandom overwrites every component with a uniform value; see WithRandomRange.
func (v *Vec3) FillRandom(opts ...Option) *Vec3 {
	fillComponents(v[:], opts)
	return v
}

// PrettyString renders "vec3 (  1.0000,   2.0000,   3.0000 )"; named=false drops the prefix.
func (v Vec3) PrettyString(named bool) string { return prettyVector("vec3", named, v[:]) }

// String implements fmt.Stringer.
func (v Vec3) String() string { return v.PrettyString(true) }
