// SPDX-License-Identifier: MIT

package geom

// Viewport conventions: viewport = (x, y, width, height) in window pixels,
// origin at the lower-left corner. Window depth is always in [0, 1]; the
// DepthConvention only says which clip-space z range proj produces.

// Projected maps the object-space point v through model and proj to window
// coordinates (OpenGL gluProject semantics, DepthNegOneToOne):
//
//	clip = proj·model·(v, 1)
//	ndc  = clip.xyz / clip.w
//	win  = (vx + vw·(ndc.x+1)/2, vy + vh·(ndc.y+1)/2, (ndc.z+1)/2)
//
// A point on the camera plane (clip.w == 0) yields Inf/NaN.
func (v Vec3) Projected(model, proj Mat4, viewport Vec4) Vec3 {
	return v.ProjectedDepth(model, proj, viewport, DefaultDepthConvention)
}

// ProjectedDepth is Projected for a projection matrix with clip depth
// convention d. Under DepthZeroToOne the NDC z is already the window depth.
func (v Vec3) ProjectedDepth(model, proj Mat4, viewport Vec4, d DepthConvention) Vec3 {
	ndc := proj.MulVec(model.MulVec(v.Vec4(1))).Homogenized()

	win := Vec3{
		ndc[0]*0.5 + 0.5,
		ndc[1]*0.5 + 0.5,
		ndc[2],
	}
	if d == DepthNegOneToOne {
		win[2] = ndc[2]*0.5 + 0.5
	}
	win[0] = win[0]*viewport[2] + viewport[0]
	win[1] = win[1]*viewport[3] + viewport[1]

	return win
}

// ProjectedWith is Projected with the clip depth convention taken from opts
// (WithDepthConvention, default DepthNegOneToOne).
func (v Vec3) ProjectedWith(model, proj Mat4, viewport Vec4, opts ...Option) Vec3 {
	return v.ProjectedDepth(model, proj, viewport, NewOptions(opts...).depth)
}

// Project replaces v with v.Projected(model, proj, viewport).
func (v *Vec3) Project(model, proj Mat4, viewport Vec4) *Vec3 {
	*v = v.Projected(model, proj, viewport)
	return v
}

// Unprojected is the inverse of Projected: it maps the window-space point v
// back to object space through (proj·model)⁻¹. A singular proj·model or a
// viewport with zero width/height yields Inf/NaN.
func (v Vec3) Unprojected(model, proj Mat4, viewport Vec4) Vec3 {
	return v.UnprojectedDepth(model, proj, viewport, DefaultDepthConvention)
}

// UnprojectedDepth is Unprojected for clip depth convention d.
func (v Vec3) UnprojectedDepth(model, proj Mat4, viewport Vec4, d DepthConvention) Vec3 {
	inv := proj.Mul(model).Inverted()

	ndc := Vec4{
		(v[0]-viewport[0])/viewport[2]*2 - 1,
		(v[1]-viewport[1])/viewport[3]*2 - 1,
		v[2],
		1,
	}
	if d == DepthNegOneToOne {
		ndc[2] = v[2]*2 - 1
	}

	return inv.MulVec(ndc).Homogenized()
}

// UnprojectedWith is Unprojected with the clip depth convention taken from
// opts.
func (v Vec3) UnprojectedWith(model, proj Mat4, viewport Vec4, opts ...Option) Vec3 {
	return v.UnprojectedDepth(model, proj, viewport, NewOptions(opts...).depth)
}

// Unproject replaces v with v.Unprojected(model, proj, viewport).
func (v *Vec3) Unproject(model, proj Mat4, viewport Vec4) *Vec3 {
	*v = v.Unprojected(model, proj, viewport)
	return v
}
