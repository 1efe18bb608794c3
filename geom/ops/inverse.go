// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/lvgeom/geom"

// inverseColumns solves A·x = e_col for every basis vector and hands each
// solution to put.
//
// Stage 1 (Decompose): P·A = L·U.
// Stage 2 (Execute): one forward/backward substitution per column.
func inverseColumns(m Square, put func(col int, x []float64), opts []geom.Option) error {
	f, err := LU(m, opts...)
	if err != nil {
		return opsErrorf(opInverse, err)
	}
	x := make([]float64, f.n)
	for col := 0; col < f.n; col++ {
		f.solveInto(x, func(i int) float64 {
			if i == col {
				return 1
			}
			return 0
		})
		put(col, x)
	}

	return nil
}

// Inverse3 is the checked counterpart of geom.Mat3.Inverted: it returns
// geom.ErrSingular instead of non-finite components.
func Inverse3(m geom.Mat3, opts ...geom.Option) (geom.Mat3, error) {
	var inv geom.Mat3
	err := inverseColumns(m, func(col int, x []float64) {
		inv[col] = geom.Vec3{geom.Scalar(x[0]), geom.Scalar(x[1]), geom.Scalar(x[2])}
	}, opts)
	if err != nil {
		return geom.Mat3{}, err
	}

	return inv, nil
}

// Inverse4 is the checked counterpart of geom.Mat4.Inverted.
// Complexity: O(n³) with n = 4.
func Inverse4(m geom.Mat4, opts ...geom.Option) (geom.Mat4, error) {
	var inv geom.Mat4
	err := inverseColumns(m, func(col int, x []float64) {
		inv[col] = geom.Vec4{geom.Scalar(x[0]), geom.Scalar(x[1]), geom.Scalar(x[2]), geom.Scalar(x[3])}
	}, opts)
	if err != nil {
		return geom.Mat4{}, err
	}

	return inv, nil
}
