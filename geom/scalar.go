// SPDX-License-Identifier: MIT

package geom

import (
	"strings"

	"github.com/chewxy/math32"
)

// Scalar is the component type of every vector and matrix in the package.
// It is fixed at build time; no mixed-precision operations exist.
type Scalar = float32

// RotationStrategy selects how a rotation between two directions is derived.
type RotationStrategy int

const (
	// Quaternion derives the shortest-arc quaternion and converts it to a matrix.
	// Antiparallel input yields a 180° turn about an arbitrary perpendicular axis.
	Quaternion RotationStrategy = iota

	// Rodrigues evaluates I + [v]x + [v]x²/(1+c) with v = a×b, c = a·b.
	// Singular for antiparallel input (c == -1).
	Rodrigues
)

func (s RotationStrategy) valid() bool { return s == Quaternion || s == Rodrigues }

// String implements fmt.Stringer.
func (s RotationStrategy) String() string {
	switch s {
	case Quaternion:
		return "quaternion"
	case Rodrigues:
		return "rodrigues"
	default:
		return "unknown"
	}
}

// DepthConvention describes the clip-space z range produced by a projection
// matrix. Window-space depth is always reported in [0, 1].
type DepthConvention int

const (
	// DepthNegOneToOne: NDC z in [-1, 1] (OpenGL); remapped by z*0.5+0.5.
	DepthNegOneToOne DepthConvention = iota

	// DepthZeroToOne: NDC z already in [0, 1] (Vulkan/D3D); passed through.
	DepthZeroToOne
)

func (d DepthConvention) valid() bool { return d == DepthNegOneToOne || d == DepthZeroToOne }

// String implements fmt.Stringer.
func (d DepthConvention) String() string {
	switch d {
	case DepthNegOneToOne:
		return "[-1,1]"
	case DepthZeroToOne:
		return "[0,1]"
	default:
		return "unknown"
	}
}

// ---------- shared kernels over component slices ----------

func componentsFinite(s []Scalar) bool {
	for _, x := range s {
		if math32.IsNaN(x) || math32.IsInf(x, 0) {
			return false
		}
	}

	return true
}

func componentsHaveNaN(s []Scalar) bool {
	for _, x := range s {
		if math32.IsNaN(x) {
			return true
		}
	}

	return false
}

// componentsMax assumes len(s) > 0.
func componentsMax(s []Scalar) Scalar {
	m := s[0]
	for _, x := range s[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

// componentsMin assumes len(s) > 0.
func componentsMin(s []Scalar) Scalar {
	m := s[0]
	for _, x := range s[1:] {
		if x < m {
			m = x
		}
	}

	return m
}

func componentsClose(a, b []Scalar, eps Scalar) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}

func fillComponents(s []Scalar, opts []Option) {
	next := NewOptions(opts...).uniform()
	for i := range s {
		s[i] = next()
	}
}

// componentAt is the checked read used by every At accessor.
func componentAt(s []Scalar, i int) (Scalar, error) {
	if i < 0 || i >= len(s) {
		return 0, geomErrorf(opAt, ErrOutOfRange)
	}

	return s[i], nil
}

// ---------- formatting ----------

const (
	prettyWidth     = 8
	prettyPrecision = 4
)

// writeComponents renders "(c0, c1, ..., cn )" with every component %8.4f.
func writeComponents(b *strings.Builder, s []Scalar) {
	b.WriteByte('(')
	for i, x := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		writeFixed(b, x)
	}
	b.WriteString(" )")
}

func prettyVector(name string, named bool, s []Scalar) string {
	var b strings.Builder
	if named {
		b.WriteString(name)
		b.WriteByte(' ')
	}
	writeComponents(&b, s)

	return b.String()
}
