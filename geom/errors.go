// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
// Only the checked entry points (validators, RotationBetween, At, FromSlice
// constructors) return errors; tests MUST match them via errors.Is.

package geom

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "geom: ". Wrap with geomErrorf at the
// operation boundary; never wrap twice inside a kernel.
var (
	// ErrOutOfRange indicates that a component index is outside valid bounds.
	// Returned only by the checked At accessors; plain indexing panics.
	ErrOutOfRange = errors.New("geom: index out of range")

	// ErrDimensionMismatch indicates that an external buffer does not match
	// the fixed arity of the target type.
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are required.
	ErrNaNInf = errors.New("geom: NaN or Inf encountered")

	// ErrNotAffine signals a 4x4 matrix whose last row is not (0,0,0,1) within eps.
	ErrNotAffine = errors.New("geom: matrix is not affine within eps")

	// ErrZeroVector signals a vector whose length is within eps of zero.
	ErrZeroVector = errors.New("geom: zero-length vector")

	// ErrNotUnit signals a vector whose length differs from 1 by more than eps.
	ErrNotUnit = errors.New("geom: vector is not unit length within eps")

	// ErrAntiparallel signals a rotation request between opposite directions
	// under a strategy that is singular there.
	ErrAntiparallel = errors.New("geom: vectors are antiparallel")

	// ErrSingular signals a matrix that cannot be inverted within eps.
	ErrSingular = errors.New("geom: singular matrix")
)

// Operation tags for uniform error wrapping.
const (
	opAt              = "At"
	opFromSlice       = "FromSlice"
	opRotationBetween = "RotationBetween"
	opValidate        = "Validate"
)

// geomErrorf wraps err with an operation tag; err must be non-nil.
func geomErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
