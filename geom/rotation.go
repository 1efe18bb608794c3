// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// epsilon32 is the float32 machine epsilon (2⁻²³).
const epsilon32 Scalar = 1.1920929e-07

// RotationTo returns the rotation R with R·v ≈ b for unit vectors v and b,
// derived with the given strategy. Both strategies agree within float32
// round-off, which grows like ε/(1+v·b) as the inputs approach antiparallel.
// At v·b == -1 Quaternion returns a 180° turn about an axis perpendicular to v
// and Rodrigues returns non-finite components.
//
// The inputs are not validated; see RotationBetween for the checked variant.
func (v Vec3) RotationTo(b Vec3, strategy RotationStrategy) Mat3 {
	if strategy == Rodrigues {
		return rotationRodrigues(v, b)
	}

	return rotationQuaternion(v, b)
}

// rotationQuaternion derives the shortest-arc quaternion between a and b and
// converts it to a rotation matrix.
//
//	s = √(2(1+c)), q = (s/2, a×b / s)
//
// Only exactly antiparallel input (c < -1+ε) falls back to a half turn about
// z×a, or x×a when a lies on z.
func rotationQuaternion(a, b Vec3) Mat3 {
	c := a.Dot(b)
	if c < -1+epsilon32 {
		axis := Vec3{0, 0, 1}.Cross(a)
		if axis.LengthSquared() < epsilon32 {
			axis = Vec3{1, 0, 0}.Cross(a)
		}
		q := mgl32.QuatRotate(math32.Pi, mgl32.Vec3(axis.Normalized()))
		return Mat4FromMgl(q.Mat4()).Mat3()
	}

	s := math32.Sqrt(2 * (1 + c))
	q := mgl32.Quat{W: s / 2, V: mgl32.Vec3(a.Cross(b)).Mul(1 / s)}.Normalize()

	return Mat4FromMgl(q.Mat4()).Mat3()
}

// rotationRodrigues evaluates the closed form
//
//	v = a×b, c = a·b, [v]x = v.SkewSymmetricCross()
//	R = I + [v]x + [v]x·[v]x · 1/(1+c)
//
// which needs no trigonometry and is singular at c == -1.
func rotationRodrigues(a, b Vec3) Mat3 {
	v := a.Cross(b)
	c := a.Dot(b)
	vx := v.SkewSymmetricCross()

	return Identity3().Add(vx).Add(vx.Mul(vx).Scale(1 / (1 + c)))
}

// RotationBetween is the checked counterpart of RotationTo for directions of
// any length.
//
// Stage 1 (Validate): a and b must be finite (ErrNaNInf) and longer than eps
// (ErrZeroVector).
// Stage 2 (Prepare): normalize both directions.
// Stage 3 (Execute): reject antiparallel input under Rodrigues
// (ErrAntiparallel: 1 + a·b <= eps), then derive R with the resolved strategy.
//
// Options: WithRotationStrategy (default Quaternion), WithEpsilon.
func RotationBetween(a, b Vec3, opts ...Option) (Mat3, error) {
	o := NewOptions(opts...)
	for _, x := range [2]Vec3{a, b} {
		if err := ValidateFinite(x); err != nil {
			return Mat3{}, geomErrorf(opRotationBetween, err)
		}
		if err := ValidateNonZero(x, WithEpsilon(o.eps)); err != nil {
			return Mat3{}, geomErrorf(opRotationBetween, err)
		}
	}

	an, bn := a.Normalized(), b.Normalized()
	if o.strategy == Rodrigues && 1+an.Dot(bn) <= o.eps {
		return Mat3{}, geomErrorf(opRotationBetween, ErrAntiparallel)
	}

	return an.RotationTo(bn, o.strategy), nil
}
