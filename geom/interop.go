// SPDX-License-Identifier: MIT

package geom

import "github.com/go-gl/mathgl/mgl32"

// Interop with github.com/go-gl/mathgl/mgl32, the general-purpose float32
// linear-algebra package used by host programs. Vectors share their
// underlying array type and convert directly: mgl32.Vec3(v), Vec3(w).
// Matrices share the column-major component order.

// Mat4FromMgl converts a mgl32 matrix.
func Mat4FromMgl(m mgl32.Mat4) Mat4 { return Mat4FromArray([16]Scalar(m)) }

// Mgl converts m to a mgl32 matrix.
func (m Mat4) Mgl() mgl32.Mat4 { return mgl32.Mat4(m.Array()) }

// Mat3FromMgl converts a mgl32 matrix.
func Mat3FromMgl(m mgl32.Mat3) Mat3 {
	return Mat3{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}
}

// Mgl converts m to a mgl32 matrix.
func (m Mat3) Mgl() mgl32.Mat3 {
	return mgl32.Mat3{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	}
}
