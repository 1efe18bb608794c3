// SPDX-License-Identifier: MIT
// Package geom_test contains shared fixtures and assertions.
//
// Purpose:
//   - Deterministic random inputs via FillRandom(WithSeed) so every property
//     test replays identically.
//   - Tolerant comparisons sized for float32 arithmetic.

package geom_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/geom"
	"github.com/stretchr/testify/require"
)

// Tolerances for float32 round-off.
const (
	tightDelta = 1e-6
	looseDelta = 1e-4
)

// propertyRounds is the number of seeded samples per property test.
const propertyRounds = 200

func requireVec3Near(t *testing.T, want, got geom.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

func requireVec4Near(t *testing.T, want, got geom.Vec4, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

func requireMat3Near(t *testing.T, want, got geom.Mat3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	for c := range want {
		require.InDeltaSlice(t, want[c][:], got[c][:], delta, msgAndArgs...)
	}
}

func requireMat4Near(t *testing.T, want, got geom.Mat4, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	a, b := want.Array(), got.Array()
	require.InDeltaSlice(t, a[:], b[:], delta, msgAndArgs...)
}

// randomVec3 returns a seeded vector with components in [-1, 1).
func randomVec3(seed uint64) geom.Vec3 {
	var v geom.Vec3
	v.FillRandom(geom.WithSeed(seed))
	return v
}

func randomVec4(seed uint64) geom.Vec4 {
	var v geom.Vec4
	v.FillRandom(geom.WithSeed(seed))
	return v
}

// randomUnit returns a seeded unit vector.
func randomUnit(seed uint64) geom.Vec3 {
	return randomVec3(seed).Normalized()
}

// wellConditioned4 returns a seeded matrix with a dominant diagonal, far from
// singular.
func wellConditioned4(seed uint64) geom.Mat4 {
	var m geom.Mat4
	m.FillRandom(geom.WithSeed(seed))
	return m.Add(geom.NewMat4(4))
}

// sampleTransform composes translation, rotation and scale from identity.
func sampleTransform() geom.Mat4 {
	return geom.Identity4().
		Translated(geom.Vec3{1, -2, 3}).
		Rotated(0.7, geom.Vec3{1, 1, 0}).
		Scaled(geom.Vec3{2, 0.5, 1.5})
}
