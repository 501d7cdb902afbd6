// Package rng provides a small deterministic 64-bit pseudo-random generator along with a number of
// statistical distributions derived from it.
//
// A Stream is fully determined by its seed: the same seed followed by the same sequence of calls
// always produces bit-identical results, on every platform. Streams are not safe for concurrent
// use. A Stream is meant to be shared by pointer between every consumer that should see one
// logical sequence of draws (dataset shuffling, weight initialization, training), and should never
// be copied.
package rng

import (
	"github.com/pkg/errors"
)

// These are the errors that may be returned by Stream methods. They are wrapped with additional
// context; use errors.Cause (or errors.Is) to compare against them.
var (
	ErrRangeZero        = errors.New("range must be greater than zero")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUnnormalized     = errors.New("the probabilities are not normalized")
)

const (
	multA = 0x141F2B69
	multB = 0xC2785A6B

	seedA = 0x6CCF6660A66C35E7
	seedB = 0xCA535ACA9535ACB2

	mask32 = 0xffffffff

	// 2^52, the number of distinct mantissas produced by Uniform
	mantissaScale = 4503599627370496.0
	mantissaMask  = 0xfffffffffffff
)

// noCopy may be embedded into structs which must not be copied after first use. See
// https://golang.org/issues/8005#issuecomment-190753527 for details; `go vet` reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Stream is a multiply-with-carry generator with two 64-bit words of state.
type Stream struct {
	_ noCopy

	a, b uint64
}

// New returns a Stream seeded with the given seed.
func New(seed uint64) *Stream {
	s := new(Stream)
	s.SetSeed(seed)
	return s
}

// SetSeed resets the state of the Stream. All future output is determined by the seed.
func (s *Stream) SetSeed(seed uint64) {
	s.b = seedB + seed
	s.a = seedA + (seed << 24)
}

// Next returns an unsigned pseudo-random 64-bit value.
func (s *Stream) Next() uint64 {
	s.a = multA*(s.a&mask32) + (s.a >> 32)
	s.b = multB*(s.b&mask32) + (s.b >> 32)
	return s.a ^ s.b
}

// NextN returns a value drawn uniformly from [0, n). Unlike Next() % n, the result is free of
// modulo bias: raw values from the top, incomplete multiple of n are rejected and redrawn.
//
// NextN returns ErrRangeZero if n is 0.
func (s *Stream) NextN(n uint64) (uint64, error) {
	if n == 0 {
		return 0, errors.WithStack(ErrRangeZero)
	}

	// x + m overflows exactly for the values above the last full multiple of n
	m := (^uint64(0) % n) + 1
	var x uint64
	for {
		x = s.Next()
		if x+m >= m {
			break
		}
	}

	return x % n, nil
}

// Uniform returns a pseudo-random value in [0, 1). 52 random bits make up the mantissa; the other
// 12 bits of the raw draw are discarded.
func (s *Stream) Uniform() float64 {
	return float64(s.Next()&mantissaMask) / mantissaScale
}
