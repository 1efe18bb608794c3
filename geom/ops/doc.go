// Package ops provides checked factorizations for the fixed-size matrices of
// package geom.
//
// geom's Inverted/InvertedTransposed are closed-form and unguarded; ops is the
// slow path for untrusted input: an LU decomposition with partial pivoting in
// float64 that reports geom.ErrSingular instead of returning Inf/NaN.
//
//	inv, err := ops.Inverse4(m)
//	if errors.Is(err, geom.ErrSingular) { ... }
package ops
