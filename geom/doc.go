// Package geom provides fixed-size vectors and square matrices for 3D work.
//
// The package provides:
//
//   - Vec2, Vec3, Vec4: value-type vectors backed by fixed arrays, with
//     component-wise arithmetic, dot/cross products, reductions and formatting.
//   - Mat3, Mat4: column-major square matrices (m[col][row]) with inversion,
//     transposition, affine composition (Rotate/Translate) and view/projection
//     factories.
//   - Rotation derivation between two vectors (quaternion and Rodrigues
//     strategies), OpenGL-style point projection and unprojection.
//   - Validators (ValidateFinite, ValidateTransform, ...) for trust boundaries.
//
// Hot-path operations never return errors: inverting a singular matrix,
// normalizing a zero vector or rotating onto an antiparallel vector under the
// Rodrigues strategy produce non-finite values. Callers detect that post-hoc
// with IsFinite/HasNaN/IsAffine or use the checked entry points
// (RotationBetween, the validators, package ops).
//
// All types are plain values: safe for concurrent use across independent
// values, no locking is performed.
package geom
