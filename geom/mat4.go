// SPDX-License-Identifier: MIT

package geom

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored as four column vectors: m[col][row].
// This matches OpenGL/glm conventions: m.MulVec(p) transforms a column
// vector and a.Mul(b) applies b first.
//
// For an affine transform:
//
//	| Xx Yx Zx Tx |   X,Y,Z = basis columns (rotation/scale)
//	| Xy Yy Zy Ty |   T     = translation, m[3]
//	| Xz Yz Zz Tz |
//	| 0  0  0  1  |
type Mat4 [4]Vec4

// NewMat4 returns a matrix with s on the diagonal; NewMat4(1) is the identity.
func NewMat4(s Scalar) Mat4 {
	return Mat4{
		{s, 0, 0, 0},
		{0, s, 0, 0},
		{0, 0, s, 0},
		{0, 0, 0, s},
	}
}

// Identity4 returns the 4x4 identity.
func Identity4() Mat4 { return NewMat4(1) }

// Mat4FromCols assembles a matrix from its columns.
func Mat4FromCols(c0, c1, c2, c3 Vec4) Mat4 { return Mat4{c0, c1, c2, c3} }

// Mat4FromArray builds a matrix from 16 column-major components, the layout
// used by OpenGL uniforms and mgl32.Mat4.
func Mat4FromArray(a [16]Scalar) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		copy(m[c][:], a[c*4:c*4+4])
	}

	return m
}

// Mat4FromSlice is Mat4FromArray for externally sized buffers.
// Returns ErrDimensionMismatch when len(s) != 16.
func Mat4FromSlice(s []Scalar) (Mat4, error) {
	if len(s) != 16 {
		return Mat4{}, geomErrorf(opFromSlice, ErrDimensionMismatch)
	}

	return Mat4FromArray([16]Scalar(s)), nil
}

// Array returns the 16 column-major components.
func (m Mat4) Array() [16]Scalar {
	var a [16]Scalar
	for c := 0; c < 4; c++ {
		copy(a[c*4:c*4+4], m[c][:])
	}

	return a
}

// Mat3 narrows m to its upper-left 3x3 block, dropping translation and the
// projective row.
func (m Mat4) Mat3() Mat3 { return Mat3{m[0].Vec3(), m[1].Vec3(), m[2].Vec3()} }

// Dim returns 4.
func (m Mat4) Dim() int { return 4 }

// Elem returns the component at (row, col) without bounds checking.
func (m Mat4) Elem(row, col int) Scalar { return m[col][row] }

// At is the checked counterpart of m[col][row] addressed as (row, col).
func (m Mat4) At(row, col int) (Scalar, error) {
	if col < 0 || col >= 4 {
		return 0, geomErrorf(opAt, ErrOutOfRange)
	}

	return m[col].At(row)
}

// Row returns row i as a vector.
func (m Mat4) Row(i int) Vec4 { return Vec4{m[0][i], m[1][i], m[2][i], m[3][i]} }

// MulVec returns m·v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2])).Add(m[3].Scale(v[3]))
}

// Mul returns m·o.
func (m Mat4) Mul(o Mat4) Mat4 {
	return Mat4{m.MulVec(o[0]), m.MulVec(o[1]), m.MulVec(o[2]), m.MulVec(o[3])}
}

// Add returns the element-wise sum m+o.
func (m Mat4) Add(o Mat4) Mat4 {
	return Mat4{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]), m[3].Add(o[3])}
}

// Sub returns the element-wise difference m-o.
func (m Mat4) Sub(o Mat4) Mat4 {
	return Mat4{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2]), m[3].Sub(o[3])}
}

// Scale returns m·s.
func (m Mat4) Scale(s Scalar) Mat4 {
	return Mat4{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// Transposed returns mᵀ.
func (m Mat4) Transposed() Mat4 { return Mat4{m.Row(0), m.Row(1), m.Row(2), m.Row(3)} }

// inverseRows returns a matrix whose columns are the rows of m⁻¹, i.e. (m⁻¹)ᵀ.
//
// With a,b,c,d the xyz of the columns and x,y,z,w the last row:
//
//	s = a×b  t = c×d  u = y·a - x·b  v = w·c - z·d
//	det = s·v + t·u
//
// the rows of m⁻¹ are (b×v + y·t, -b·t), (v×a - x·t, a·t),
// (d×u + w·s, -d·s), (u×c - z·s, c·s), all scaled by 1/det.
func (m Mat4) inverseRows() Mat4 {
	a, b, c, d := m[0].Vec3(), m[1].Vec3(), m[2].Vec3(), m[3].Vec3()
	x, y, z, w := m[0][3], m[1][3], m[2][3], m[3][3]

	s := a.Cross(b)
	t := c.Cross(d)
	u := a.Scale(y).Sub(b.Scale(x))
	v := c.Scale(w).Sub(d.Scale(z))

	inv := 1 / (s.Dot(v) + t.Dot(u))
	s, t, u, v = s.Scale(inv), t.Scale(inv), u.Scale(inv), v.Scale(inv)

	r0 := b.Cross(v).Add(t.Scale(y))
	r1 := v.Cross(a).Sub(t.Scale(x))
	r2 := d.Cross(u).Add(s.Scale(w))
	r3 := u.Cross(c).Sub(s.Scale(z))

	return Mat4{
		r0.Vec4(-b.Dot(t)),
		r1.Vec4(a.Dot(t)),
		r2.Vec4(-d.Dot(s)),
		r3.Vec4(c.Dot(s)),
	}
}

// Determinant returns det(m).
func (m Mat4) Determinant() Scalar {
	a, b, c, d := m[0].Vec3(), m[1].Vec3(), m[2].Vec3(), m[3].Vec3()
	x, y, z, w := m[0][3], m[1][3], m[2][3], m[3][3]
	u := a.Scale(y).Sub(b.Scale(x))
	v := c.Scale(w).Sub(d.Scale(z))

	return a.Cross(b).Dot(v) + c.Cross(d).Dot(u)
}

// Inverted returns m⁻¹. A singular m yields Inf/NaN components; use
// ops.Inverse4 when the input is untrusted.
func (m Mat4) Inverted() Mat4 { return m.inverseRows().Transposed() }

// InvertedTransposed returns (m⁻¹)ᵀ in one pass. Equal to
// m.Inverted().Transposed(); used to transform normals.
func (m Mat4) InvertedTransposed() Mat4 { return m.inverseRows() }

// Translation returns the translation column of an affine transform.
func (m Mat4) Translation() Vec3 { return m[3].Vec3() }

// Translated returns m·T(v): the translation is applied before m.
func (m Mat4) Translated(v Vec3) Mat4 {
	r := m
	r[3] = m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2])).Add(m[3])
	return r
}

// Translate composes a translation into m in place.
func (m *Mat4) Translate(v Vec3) *Mat4 {
	*m = m.Translated(v)
	return m
}

// Rotated returns m·R(angle, axis) with angle in radians.
func (m Mat4) Rotated(angle Scalar, axis Vec3) Mat4 {
	return m.Mul(AxisAngle3(angle, axis).Mat4())
}

// Rotate composes an axis-angle rotation into m in place.
func (m *Mat4) Rotate(angle Scalar, axis Vec3) *Mat4 {
	*m = m.Rotated(angle, axis)
	return m
}

// Scaled returns m·S(v).
func (m Mat4) Scaled(v Vec3) Mat4 {
	return Mat4{m[0].Scale(v[0]), m[1].Scale(v[1]), m[2].Scale(v[2]), m[3]}
}

// IsAffine reports whether the last row is (0,0,0,1) within DefaultEpsilon.
func (m Mat4) IsAffine() bool { return m.IsAffineWithin(DefaultEpsilon) }

// IsAffineWithin is IsAffine with an explicit tolerance.
func (m Mat4) IsAffineWithin(eps Scalar) bool {
	return m.Row(3).ApproxEqual(Vec4{0, 0, 0, 1}, eps)
}

// Rescale normalizes the xyz of the three basis columns, keeping the
// translation column and the last row untouched.
func (m *Mat4) Rescale() *Mat4 {
	for c := 0; c < 3; c++ {
		m[c] = m[c].Vec3().Normalized().Vec4(m[c][3])
	}

	return m
}

// MaxValue returns the largest component outside the projective last row,
// following the Vec4 convention of ignoring w.
func (m Mat4) MaxValue() Scalar {
	return componentsMax([]Scalar{m[0].MaxValue(), m[1].MaxValue(), m[2].MaxValue(), m[3].MaxValue()})
}

// MinValue mirrors MaxValue.
func (m Mat4) MinValue() Scalar {
	return componentsMin([]Scalar{m[0].MinValue(), m[1].MinValue(), m[2].MinValue(), m[3].MinValue()})
}

// IsFinite reports whether no element is NaN or ±Inf.
func (m Mat4) IsFinite() bool {
	return m[0].IsFinite() && m[1].IsFinite() && m[2].IsFinite() && m[3].IsFinite()
}

// HasNaN reports whether any element is NaN.
func (m Mat4) HasNaN() bool {
	return m[0].HasNaN() || m[1].HasNaN() || m[2].HasNaN() || m[3].HasNaN()
}

// ApproxEqual reports whether every component differs by at most eps.
func (m Mat4) ApproxEqual(o Mat4, eps Scalar) bool {
	for c := range m {
		if !m[c].ApproxEqual(o[c], eps) {
			return false
		}
	}

	return true
}

// FillRandom overwrites all sixteen components column by column.
func (m *Mat4) FillRandom(opts ...Option) *Mat4 {
	next := NewOptions(opts...).uniform()
	for c := range m {
		for r := range m[c] {
			m[c][r] = next()
		}
	}

	return m
}

// PrettyString renders the rows of m, one per line; see Vec4.PrettyString.
func (m Mat4) PrettyString(named bool) string {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	return prettyMatrix("mat4", named, [][]Scalar{r0[:], r1[:], r2[:], r3[:]})
}

// String implements fmt.Stringer.
func (m Mat4) String() string { return m.PrettyString(true) }

// ---------- factories ----------

// LookAt builds a right-handed view matrix: the camera at eye looks toward
// target with up as the approximate up direction; the view axis maps to -z.
// eye == target or up parallel to the view axis yield NaN components.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return Mat4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// Perspective builds a right-handed perspective projection with clip z in
// [-1, 1] (DepthNegOneToOne). fovy is the vertical field of view in radians.
func Perspective(fovy, aspect, near, far Scalar) Mat4 {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)

	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}
}

// Ortho builds a right-handed orthographic projection with clip z in [-1, 1].
func Ortho(left, right, bottom, top, near, far Scalar) Mat4 {
	rl, tb, fn := 1/(right-left), 1/(top-bottom), 1/(far-near)

	return Mat4{
		{2 * rl, 0, 0, 0},
		{0, 2 * tb, 0, 0},
		{0, 0, -2 * fn, 0},
		{-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1},
	}
}
