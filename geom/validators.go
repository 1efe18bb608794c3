// SPDX-License-Identifier: MIT
// Package: geom
//
// Purpose:
//  - Single source of truth for the trust-boundary checks (finite, non-zero,
//    unit length, affine).
//  - Return wrapped sentinels so callers match with errors.Is.
//
// Each composite validator follows a fixed sequence (Finite → Affine).

package geom

import "github.com/chewxy/math32"

// Finite is implemented by every vector and matrix type in the package.
type Finite interface {
	IsFinite() bool
	HasNaN() bool
}

// ValidateFinite returns ErrNaNInf if x has a NaN or infinite component.
// Complexity: O(components).
func ValidateFinite(x Finite) error {
	if !x.IsFinite() {
		return geomErrorf(opValidate+"Finite", ErrNaNInf)
	}

	return nil
}

// ValidateNonZero returns ErrZeroVector if |v| <= eps.
func ValidateNonZero(v Vec3, opts ...Option) error {
	if v.Length() <= NewOptions(opts...).eps {
		return geomErrorf(opValidate+"NonZero", ErrZeroVector)
	}

	return nil
}

// ValidateUnit returns ErrNotUnit if ||v| - 1| > eps. RotationTo expects
// unit input; call this before it when the vectors come from outside.
func ValidateUnit(v Vec3, opts ...Option) error {
	if math32.Abs(v.Length()-1) > NewOptions(opts...).eps {
		return geomErrorf(opValidate+"Unit", ErrNotUnit)
	}

	return nil
}

// ValidateAffine returns ErrNotAffine unless the last row of m is (0,0,0,1)
// within eps. Assumes m is finite.
func ValidateAffine(m Mat4, opts ...Option) error {
	if !m.IsAffineWithin(NewOptions(opts...).eps) {
		return geomErrorf(opValidate+"Affine", ErrNotAffine)
	}

	return nil
}

// ValidateTransform – Composite: Finite → Affine.
//
// Use after deserializing externally supplied model/view transforms.
// Errors: ErrNaNInf, ErrNotAffine.
func ValidateTransform(m Mat4, opts ...Option) error {
	if err := ValidateFinite(m); err != nil {
		return geomErrorf(opValidate+"Transform", err)
	}
	if err := ValidateAffine(m, opts...); err != nil {
		return geomErrorf(opValidate+"Transform", err)
	}

	return nil
}
