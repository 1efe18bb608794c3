// SPDX-License-Identifier: MIT

package xformdoc

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/lvgeom/geom"
)

// Report is the outcome of building one transform.
type Report struct {
	Name   string
	Matrix geom.Mat4
	Err    error
}

// OK reports whether the transform built and validated.
func (r Report) OK() bool { return r.Err == nil }

// Build composes s into a matrix and validates it.
//
// Stage 1 (Prepare): start from s.Matrix, or identity when empty.
// Stage 2 (Execute): right-multiply every step in order.
// Stage 3 (Validate): geom.ValidateTransform, or geom.ValidateFinite for
// projective transforms.
//
// Options are forwarded to the geom validators (geom.WithEpsilon).
// Errors: ErrBadLength, ErrBadStep, geom.ErrNaNInf, geom.ErrNotAffine.
func Build(s Transform, opts ...geom.Option) (geom.Mat4, error) {
	m := geom.Identity4()
	if len(s.Matrix) > 0 {
		if len(s.Matrix) != 16 {
			return geom.Mat4{}, fmt.Errorf("matrix: want 16 components, got %d: %w", len(s.Matrix), ErrBadLength)
		}
		m = geom.Mat4FromArray([16]geom.Scalar(s.Matrix))
	}

	projective := s.Projective
	for i, st := range s.Steps {
		next, err := st.apply(m)
		if err != nil {
			return geom.Mat4{}, fmt.Errorf("step %d: %w", i, err)
		}
		m = next
		projective = projective || st.Perspective != nil
	}

	var err error
	if projective {
		err = geom.ValidateFinite(m)
	} else {
		err = geom.ValidateTransform(m, opts...)
	}

	return m, err
}

// Check builds every transform of doc. It never stops early; failed
// transforms carry their error in the report.
func Check(doc Document, opts ...geom.Option) []Report {
	reports := make([]Report, 0, len(doc.Transforms))
	for _, s := range doc.Transforms {
		m, err := Build(s, opts...)
		if err != nil {
			err = fmt.Errorf("transform %q: %w", s.Name, err)
		}
		reports = append(reports, Report{Name: s.Name, Matrix: m, Err: err})
	}

	return reports
}

// FromMatrix describes m as a raw-matrix transform.
func FromMatrix(name string, m geom.Mat4) Transform {
	a := m.Array()
	return Transform{
		Name:       name,
		Matrix:     append([]float32(nil), a[:]...),
		Projective: !m.IsAffine(),
	}
}

func (st Step) count() int {
	n := 0
	for _, set := range []bool{
		st.Translate != nil,
		st.Scale != nil,
		st.Rotate != nil,
		st.LookAt != nil,
		st.Perspective != nil,
		st.Ortho != nil,
	} {
		if set {
			n++
		}
	}

	return n
}

func (st Step) apply(m geom.Mat4) (geom.Mat4, error) {
	if n := st.count(); n != 1 {
		return geom.Mat4{}, fmt.Errorf("%d operations set: %w", n, ErrBadStep)
	}

	switch {
	case st.Translate != nil:
		v, err := vec3("translate", st.Translate)
		if err != nil {
			return geom.Mat4{}, err
		}
		return m.Translated(v), nil

	case st.Scale != nil:
		v, err := vec3("scale", st.Scale)
		if err != nil {
			return geom.Mat4{}, err
		}
		return m.Scaled(v), nil

	case st.Rotate != nil:
		axis, err := vec3("rotate.axis", st.Rotate.Axis)
		if err != nil {
			return geom.Mat4{}, err
		}
		if err := geom.ValidateNonZero(axis); err != nil {
			return geom.Mat4{}, fmt.Errorf("rotate.axis: %w", err)
		}
		return m.Rotated(radians(st.Rotate.Angle, st.Rotate.Degrees), axis), nil

	case st.LookAt != nil:
		var v [3]geom.Vec3
		for i, f := range [3]struct {
			name string
			s    []float32
		}{{"lookAt.eye", st.LookAt.Eye}, {"lookAt.target", st.LookAt.Target}, {"lookAt.up", st.LookAt.Up}} {
			var err error
			if v[i], err = vec3(f.name, f.s); err != nil {
				return geom.Mat4{}, err
			}
		}
		return m.Mul(geom.LookAt(v[0], v[1], v[2])), nil

	case st.Perspective != nil:
		p := st.Perspective
		return m.Mul(geom.Perspective(radians(p.FovY, p.Degrees), p.Aspect, p.Near, p.Far)), nil

	default:
		o := st.Ortho
		return m.Mul(geom.Ortho(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)), nil
	}
}

func vec3(field string, s []float32) (geom.Vec3, error) {
	if len(s) != 3 {
		return geom.Vec3{}, fmt.Errorf("%s: want 3 components, got %d: %w", field, len(s), ErrBadLength)
	}

	return geom.Vec3(s), nil
}

func radians(a float32, degrees bool) geom.Scalar {
	if degrees {
		return mgl32.DegToRad(a)
	}

	return a
}
