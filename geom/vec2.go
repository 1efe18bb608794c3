// SPDX-License-Identifier: MIT

package geom

import "github.com/chewxy/math32"

// Vec2 is a 2-component vector. Index with v[0], v[1].
type Vec2 [2]Scalar

// Splat2 returns a Vec2 with every component set to s.
func Splat2(s Scalar) Vec2 { return Vec2{s, s} }

// X returns v[0].
func (v Vec2) X() Scalar { return v[0] }

// Y returns v[1].
func (v Vec2) Y() Scalar { return v[1] }

// At is the checked counterpart of v[i]; it returns ErrOutOfRange instead of panicking.
func (v Vec2) At(i int) (Scalar, error) { return componentAt(v[:], i) }

// Vec3 widens v with the given z.
func (v Vec2) Vec3(z Scalar) Vec3 { return Vec3{v[0], v[1], z} }

// Add returns the component-wise sum v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }

// Sub returns the component-wise difference v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v[0] - o[0], v[1] - o[1]} }

// Mul returns the component-wise product.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v[0] * o[0], v[1] * o[1]} }

// Div returns the component-wise quotient.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v[0] / o[0], v[1] / o[1]} }

// AddScalar adds s to every component.
func (v Vec2) AddScalar(s Scalar) Vec2 { return Vec2{v[0] + s, v[1] + s} }

// SubScalar subtracts s from every component.
func (v Vec2) SubScalar(s Scalar) Vec2 { return Vec2{v[0] - s, v[1] - s} }

// Scale returns v·s.
func (v Vec2) Scale(s Scalar) Vec2 { return Vec2{v[0] * s, v[1] * s} }

// DivScalar returns v/s.
func (v Vec2) DivScalar(s Scalar) Vec2 { return Vec2{v[0] / s, v[1] / s} }

// Negated returns -v.
func (v Vec2) Negated() Vec2 { return Vec2{-v[0], -v[1]} }

// Dot returns the sum of the component-wise products.
func (v Vec2) Dot(o Vec2) Scalar { return v[0]*o[0] + v[1]*o[1] }

// LengthSquared returns v·v.
func (v Vec2) LengthSquared() Scalar { return v.Dot(v) }

// Length returns the Euclidean norm of v.
func (v Vec2) Length() Scalar { return math32.Sqrt(v.Dot(v)) }

// Normalized returns v / |v|. A zero vector yields NaN components.
func (v Vec2) Normalized() Vec2 { return v.DivScalar(v.Length()) }

// Normalize normalizes v in place and returns it.
func (v *Vec2) Normalize() *Vec2 {
	*v = v.Normalized()
	return v
}

// MaxValue returns the largest component.
func (v Vec2) MaxValue() Scalar { return componentsMax(v[:]) }

// MinValue returns the smallest component.
func (v Vec2) MinValue() Scalar { return componentsMin(v[:]) }

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec2) IsFinite() bool { return componentsFinite(v[:]) }

// HasNaN reports whether any component is NaN.
func (v Vec2) HasNaN() bool { return componentsHaveNaN(v[:]) }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec2) ApproxEqual(o Vec2, eps Scalar) bool { return componentsClose(v[:], o[:], eps) }

// FillRandom overwrites every component with a uniform value; see WithRandomRange.
func (v *Vec2) FillRandom(opts ...Option) *Vec2 {
	fillComponents(v[:], opts)
	return v
}

// PrettyString renders "vec2 (  x.xxxx,   y.yyyy )"; named=false drops the prefix.
func (v Vec2) PrettyString(named bool) string { return prettyVector("vec2", named, v[:]) }

// String implements fmt.Stringer.
func (v Vec2) String() string { return v.PrettyString(true) }
