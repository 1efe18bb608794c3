// Package lvgeom is a small, allocation-free toolkit for 3D geometry:
// fixed-size vectors and matrices, rotations, view and projection transforms.
//
// 🚀 What is lvgeom?
//
//	A float32 linear-algebra library shaped for render and simulation code:
//		• Vectors: Vec2, Vec3, Vec4 with arithmetic, dot, cross and the 4D cross
//		• Matrices: column-major Mat3 and Mat4, inverse, transpose, normal matrix
//		• Transforms: Translate, Rotate, Scale, LookAt, Perspective, Ortho
//		• Rotations: shortest arc between two directions (quaternion or Rodrigues)
//		• Projection: window-space Project / Unproject
//		• Checked paths: validators, pivoting LU inverse, YAML transform documents
//
// ✨ Why choose lvgeom?
//
//   - Value types over fixed arrays: v[0] indexes, == compares, no heap
//   - Hot paths never return errors; IsFinite / IsAffine detect bad input
//   - Converts directly to and from github.com/go-gl/mathgl/mgl32
//
// Under the hood, everything is organized under a few subpackages:
//
//	geom/          vectors, matrices, rotation, projection, validators
//	geom/ops/      LU factorization with pivoting, checked inverses
//	xformdoc/      YAML documents of named transforms, build & check
//	cmd/geomcheck/ command-line validator for transform documents
//
// Quick example:
//
//	view := geom.LookAt(geom.Vec3{0, 0, 5}, geom.Vec3{}, geom.Vec3{0, 1, 0})
//	view.MulVec(geom.Vec4{0, 0, 0, 1}) // vec4 (0, 0, -5, 1)
//
//	go get github.com/katalvlaran/lvgeom/geom
package lvgeom
