// SPDX-License-Identifier: MIT

package geom

import "github.com/chewxy/math32"

// Mat3 is a 3x3 matrix stored as three column vectors: m[col][row].
//
// Memory layout (indices m[col][row]):
//
//	| m[0][0] m[1][0] m[2][0] |
//	| m[0][1] m[1][1] m[2][1] |
//	| m[0][2] m[1][2] m[2][2] |
type Mat3 [3]Vec3

// NewMat3 returns a matrix with s on the diagonal; NewMat3(1) is the identity.
func NewMat3(s Scalar) Mat3 {
	return Mat3{
		{s, 0, 0},
		{0, s, 0},
		{0, 0, s},
	}
}

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 { return NewMat3(1) }

// Mat3FromCols assembles a matrix from its columns.
func Mat3FromCols(c0, c1, c2 Vec3) Mat3 { return Mat3{c0, c1, c2} }

// Mat3FromSlice builds a matrix from 9 column-major components.
// Returns ErrDimensionMismatch when len(s) != 9.
func Mat3FromSlice(s []Scalar) (Mat3, error) {
	var m Mat3
	if len(s) != 9 {
		return m, geomErrorf(opFromSlice, ErrDimensionMismatch)
	}
	for c := 0; c < 3; c++ {
		copy(m[c][:], s[c*3:c*3+3])
	}

	return m, nil
}

// Mat4 widens m into the upper-left block of a 4x4 identity.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0].Vec4(0),
		m[1].Vec4(0),
		m[2].Vec4(0),
		{0, 0, 0, 1},
	}
}

// Dim returns 3.
func (m Mat3) Dim() int { return 3 }

// Elem returns the component at (row, col) without bounds checking.
func (m Mat3) Elem(row, col int) Scalar { return m[col][row] }

// At is the checked counterpart of m[col][row] addressed as (row, col).
func (m Mat3) At(row, col int) (Scalar, error) {
	if col < 0 || col >= 3 {
		return 0, geomErrorf(opAt, ErrOutOfRange)
	}

	return m[col].At(row)
}

// Row returns row i as a vector.
func (m Mat3) Row(i int) Vec3 { return Vec3{m[0][i], m[1][i], m[2][i]} }

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2]))
}

// Mul returns m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	return Mat3{m.MulVec(o[0]), m.MulVec(o[1]), m.MulVec(o[2])}
}

// Add returns the element-wise sum m+o.
func (m Mat3) Add(o Mat3) Mat3 { return Mat3{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2])} }

// Sub returns the element-wise difference m-o.
func (m Mat3) Sub(o Mat3) Mat3 { return Mat3{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2])} }

// Scale returns m·s.
func (m Mat3) Scale(s Scalar) Mat3 {
	return Mat3{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Transposed returns mᵀ.
func (m Mat3) Transposed() Mat3 { return Mat3{m.Row(0), m.Row(1), m.Row(2)} }

// Determinant returns det(m).
func (m Mat3) Determinant() Scalar { return det3(m[0], m[1], m[2]) }

// cofactorColumns returns the columns of the cofactor matrix scaled by 1/det,
// which is exactly (m⁻¹)ᵀ: its columns are the rows of m⁻¹.
func (m Mat3) cofactorColumns() Mat3 {
	r0 := m[1].Cross(m[2])
	r1 := m[2].Cross(m[0])
	r2 := m[0].Cross(m[1])
	inv := 1 / m[0].Dot(r0)

	return Mat3{r0.Scale(inv), r1.Scale(inv), r2.Scale(inv)}
}

// Inverted returns m⁻¹. A singular m yields Inf/NaN components; use
// ops.Inverse3 when the input is untrusted.
func (m Mat3) Inverted() Mat3 { return m.cofactorColumns().Transposed() }

// InvertedTransposed returns (m⁻¹)ᵀ, the normal matrix of m, without the
// intermediate transpose. Equal to m.Inverted().Transposed().
func (m Mat3) InvertedTransposed() Mat3 { return m.cofactorColumns() }

// Rescale normalizes every column, removing scale drift accumulated by
// repeated composition.
func (m *Mat3) Rescale() *Mat3 {
	for c := range m {
		m[c].Normalize()
	}

	return m
}

func (m Mat3) components() []Scalar {
	return []Scalar{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	}
}

// MaxValue returns the largest element.
func (m Mat3) MaxValue() Scalar { return componentsMax(m.components()) }

// MinValue returns the smallest element.
func (m Mat3) MinValue() Scalar { return componentsMin(m.components()) }

// IsFinite reports whether no element is NaN or ±Inf.
func (m Mat3) IsFinite() bool { return m[0].IsFinite() && m[1].IsFinite() && m[2].IsFinite() }

// HasNaN reports whether any element is NaN.
func (m Mat3) HasNaN() bool { return m[0].HasNaN() || m[1].HasNaN() || m[2].HasNaN() }

// ApproxEqual reports whether every component differs by at most eps.
func (m Mat3) ApproxEqual(o Mat3, eps Scalar) bool {
	return m[0].ApproxEqual(o[0], eps) && m[1].ApproxEqual(o[1], eps) && m[2].ApproxEqual(o[2], eps)
}

// FillRandom overwrites all nine components column by column.
func (m *Mat3) FillRandom(opts ...Option) *Mat3 {
	next := NewOptions(opts...).uniform()
	for c := range m {
		for r := range m[c] {
			m[c][r] = next()
		}
	}

	return m
}

// AxisAngle3 returns the right-handed rotation by angle radians about axis
// (counter-clockwise when axis points at the viewer); axis need not be
// normalized.
//
//	R = cos·I + sin·[k]x + (1-cos)·k kᵀ
func AxisAngle3(angle Scalar, axis Vec3) Mat3 {
	k := axis.Normalized()
	s, c := math32.Sin(angle), math32.Cos(angle)
	t := 1 - c
	outer := Mat3{k.Scale(k[0] * t), k.Scale(k[1] * t), k.Scale(k[2] * t)}

	return NewMat3(c).Add(k.SkewSymmetricCross().Scale(s)).Add(outer)
}

// PrettyString renders the rows of m, one per line; see Vec3.PrettyString.
func (m Mat3) PrettyString(named bool) string {
	r0, r1, r2 := m.Row(0), m.Row(1), m.Row(2)
	return prettyMatrix("mat3", named, [][]Scalar{r0[:], r1[:], r2[:]})
}

// String implements fmt.Stringer.
func (m Mat3) String() string { return m.PrettyString(true) }
