// Package truncgamma defines the random-source capability interface and
// sentinel errors for the truncated-Gamma sampler.
package truncgamma

import (
	"errors"
	"math/rand/v2"
)

// Sentinel errors returned by Sample.
var (
	// ErrNilSource indicates that a nil Source was passed to Sample.
	ErrNilSource = errors.New("truncgamma: source is nil")

	// ErrBadShape indicates a shape parameter a that is NaN or not positive.
	ErrBadShape = errors.New("truncgamma: shape a must be positive")

	// ErrBadRate indicates a rate parameter b that is NaN or not positive.
	ErrBadRate = errors.New("truncgamma: rate b must be positive")

	// ErrBadBound indicates a truncation point t that is NaN or not positive.
	ErrBadBound = errors.New("truncgamma: truncation point t must be positive")
)

// Source is the narrow capability interface the sampler consumes. It is a
// caller-owned, mutable generator handle: Sample draws from it a
// well-defined number of times and never retains it between calls.
//
// Implementations must provide:
//   - Uniform:     one draw uniformly distributed on [0, 1)
//   - Exponential: one draw from the unit-rate exponential distribution
//
// Deterministic fixtures implementing Source make the sampler fully
// reproducible in tests.
type Source interface {
	Uniform() float64
	Exponential() float64
}

// randSource adapts math/rand/v2 to the Source interface.
type randSource struct {
	rng *rand.Rand
}

// NewRandSource wraps r as a Source backed by r.Float64 and r.ExpFloat64.
// The caller keeps ownership of r; wrapping does not make it safe for
// concurrent use.
func NewRandSource(r *rand.Rand) Source {
	return &randSource{rng: r}
}

// Uniform returns one uniform draw on [0, 1).
func (s *randSource) Uniform() float64 { return s.rng.Float64() }

// Exponential returns one unit-rate exponential draw.
func (s *randSource) Exponential() float64 { return s.rng.ExpFloat64() }
