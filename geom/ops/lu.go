// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/geom"
)

// Square is a read-only square matrix view; geom.Mat3 and geom.Mat4 implement it.
type Square interface {
	Dim() int
	Elem(row, col int) geom.Scalar
}

const (
	opLU      = "LU"
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// opsErrorf wraps err with an operation tag, preserving it for errors.Is.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("ops.%s: %w", tag, err)
}

// Factorization holds P·A = L·U packed in one n×n array: U on and above the
// diagonal, the unit-lower L strictly below it.
type Factorization struct {
	n    int
	lu   [][]float64
	perm []int   // perm[i] = source row of row i
	sign float64 // parity of perm, for Det
}

// LU performs Doolittle LU decomposition with partial pivoting on m.
//
// Stage 1 (Prepare): copy m into a float64 workspace and seed the magnitude
// bound mag[i][j] = |a[i][j]|.
// Stage 2 (Execute): for each column pick the largest pivot, swap rows,
// eliminate below; mag accumulates |l|·mag of every term folded into an entry.
// Stage 3 (Finalize): return geom.ErrSingular when a pivot is within eps of
// the magnitudes it was computed from (|u[k][k]| <= eps·mag[k][k]), i.e. the
// pivot is cancellation noise.
//
// The test is invariant under row and column scaling, so a transform with a
// large translation or a projection with a wide depth range factors normally.
//
// Options: geom.WithEpsilon sets the relative threshold.
// Complexity: O(n³) time, O(n²) memory.
func LU(m Square, opts ...geom.Option) (*Factorization, error) {
	n := m.Dim()
	eps := float64(geom.NewOptions(opts...).Epsilon())

	// Stage 1: workspace
	f := &Factorization{n: n, lu: make([][]float64, n), perm: make([]int, n), sign: 1}
	mag := make([][]float64, n) // mag[i][j] bounds the terms summed into lu[i][j]
	for i := 0; i < n; i++ {
		f.perm[i] = i
		f.lu[i] = make([]float64, n)
		mag[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			f.lu[i][j] = float64(m.Elem(i, j))
			mag[i][j] = math.Abs(f.lu[i][j])
		}
	}

	// Stage 2: elimination
	var (
		i, j, k, p int     // loop indices; p = pivot row
		l          float64 // L multiplier of the current row
	)
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ { // largest |a[i][k]| below the diagonal
			if math.Abs(f.lu[i][k]) > math.Abs(f.lu[p][k]) {
				p = i
			}
		}
		// Stage 3 check inline: fail fast on a pivot lost to cancellation
		if math.Abs(f.lu[p][k]) <= eps*mag[p][k] {
			return nil, opsErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", k, geom.ErrSingular))
		}
		if p != k { // row swap, tracked in perm and sign
			f.lu[p], f.lu[k] = f.lu[k], f.lu[p]
			mag[p], mag[k] = mag[k], mag[p]
			f.perm[p], f.perm[k] = f.perm[k], f.perm[p]
			f.sign = -f.sign
		}
		for i = k + 1; i < n; i++ {
			l = f.lu[i][k] / f.lu[k][k] // L multiplier
			f.lu[i][k] = l              // stored strictly below the diagonal
			for j = k + 1; j < n; j++ {
				f.lu[i][j] -= l * f.lu[k][j]         // Schur complement update
				mag[i][j] += math.Abs(l) * mag[k][j] // magnitude of the folded-in term
			}
		}
	}

	return f, nil
}

// Det returns det(A) = sign(P)·Π U[i][i].
func (f *Factorization) Det() float64 {
	d := f.sign
	for i := 0; i < f.n; i++ {
		d *= f.lu[i][i]
	}

	return d
}

// Solve returns x with A·x = b. Returns geom.ErrDimensionMismatch when
// len(b) != n.
func (f *Factorization) Solve(b []float64) ([]float64, error) {
	if len(b) != f.n {
		return nil, opsErrorf(opSolve, geom.ErrDimensionMismatch)
	}
	x := make([]float64, f.n)
	f.solveInto(x, func(i int) float64 { return b[i] })

	return x, nil
}

// solveInto runs forward (L·y = P·b) then backward (U·x = y) substitution.
func (f *Factorization) solveInto(x []float64, b func(int) float64) {
	var sum float64
	for i := 0; i < f.n; i++ {
		sum = b(f.perm[i])
		for k := 0; k < i; k++ {
			sum -= f.lu[i][k] * x[k]
		}
		x[i] = sum
	}
	for i := f.n - 1; i >= 0; i-- {
		sum = x[i]
		for k := i + 1; k < f.n; k++ {
			sum -= f.lu[i][k] * x[k]
		}
		x[i] = sum / f.lu[i][i]
	}
}

// Determinant returns det(m) through LU, or 0 when m is singular within
// the default threshold.
func Determinant(m Square) float64 {
	f, err := LU(m)
	if err != nil {
		return 0
	}

	return f.Det()
}
