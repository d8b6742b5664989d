package netgen

import "errors"

// ErrTooFewLocations indicates a size parameter below the constructor minimum.
var ErrTooFewLocations = errors.New("netgen: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("netgen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was run without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("netgen: rng is required")

// ErrConstructFailed indicates a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("netgen: construction failed")
