// SPDX-License-Identifier: MIT

// Package geom: functional configuration for the checked entry points and the
// random fillers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewOptions, the resolver used inside geom and by package ops.
//
// Hot-path methods (Inverted, RotationTo, Projected, ...) take no options;
// only validators, RotationBetween and FillRandom consume ...Option.
package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the tolerance used by structural checks (IsAffine,
	// ValidateUnit, antiparallel detection). Sized for float32 arithmetic.
	DefaultEpsilon Scalar = 1e-5

	// DefaultRotationStrategy is used by RotationBetween when none is given.
	DefaultRotationStrategy = Quaternion

	// DefaultDepthConvention is the clip-space z convention assumed by Projected.
	DefaultDepthConvention = DepthNegOneToOne
)

// Random fill policy: components are drawn uniformly from [min, max).
const (
	DefaultRandomMin Scalar = -1
	DefaultRandomMax Scalar = 1
)

const (
	panicEpsilonInvalid  = "geom: WithEpsilon: eps must be finite, non-negative"
	panicStrategyInvalid = "geom: WithRotationStrategy: unknown strategy"
	panicDepthInvalid    = "geom: WithDepthConvention: unknown convention"
	panicRangeInvalid    = "geom: WithRandomRange: need finite min < max"
	panicSourceNil       = "geom: WithSource: nil source"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the getters.
type Options struct {
	eps       Scalar
	strategy  RotationStrategy
	depth     DepthConvention
	randMin   Scalar
	randMax   Scalar
	randSrc   rand.Source
	hasSource bool
}

// NewOptions resolves opts on top of the documented defaults.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		strategy: DefaultRotationStrategy,
		depth:    DefaultDepthConvention,
		randMin:  DefaultRandomMin,
		randMax:  DefaultRandomMax,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() Scalar { return o.eps }

// RotationStrategy returns the resolved rotation strategy.
func (o Options) RotationStrategy() RotationStrategy { return o.strategy }

// DepthConvention returns the resolved clip-space depth convention.
func (o Options) DepthConvention() DepthConvention { return o.depth }

// RandomRange returns the resolved [min, max) fill range.
func (o Options) RandomRange() (Scalar, Scalar) { return o.randMin, o.randMax }

// uniform returns a generator of values in [randMin, randMax).
// Without an explicit source the locked top-level generator is used.
func (o Options) uniform() func() Scalar {
	next := rand.Float32
	if o.hasSource {
		next = rand.New(o.randSrc).Float32
	}
	lo, span := o.randMin, o.randMax-o.randMin

	return func() Scalar { return lo + span*next() }
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance used by structural checks.
// Panics when eps is negative, NaN or infinite.
//
// Larger eps relaxes the checks; values far above the float32 round-off of
// the data make IsAffine/ValidateUnit meaningless.
func WithEpsilon(eps Scalar) Option {
	if math32.IsNaN(eps) || math32.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRotationStrategy selects the algorithm used by RotationBetween.
func WithRotationStrategy(s RotationStrategy) Option {
	if !s.valid() {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithDepthConvention selects the clip-space z convention of the projection
// matrix handed to the projection helpers.
func WithDepthConvention(d DepthConvention) Option {
	if !d.valid() {
		panic(panicDepthInvalid)
	}

	return func(o *Options) { o.depth = d }
}

// WithRandomRange sets the [min, max) range used by FillRandom.
func WithRandomRange(lo, hi Scalar) Option {
	if math32.IsNaN(lo) || math32.IsNaN(hi) || math32.IsInf(lo, 0) || math32.IsInf(hi, 0) || !(lo < hi) {
		panic(panicRangeInvalid)
	}

	return func(o *Options) { o.randMin, o.randMax = lo, hi }
}

// WithSeed makes FillRandom deterministic: every call resolved with the same
// seed produces the same components. Use WithSource to share one stream
// across calls.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.randSrc = rand.NewSource(seed)
		o.hasSource = true
	}
}

// WithSource draws FillRandom values from src. The source is not locked;
// do not share it across goroutines.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) {
		o.randSrc = src
		o.hasSource = true
	}
}
