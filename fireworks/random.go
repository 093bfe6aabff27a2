package fireworks

import "math/rand/v2"

// Rand is the random source every stochastic decision draws from.
// Float64 returns a value in [0, 1).
//
// *rand.Rand from math/rand/v2 satisfies Rand.
type Rand interface {
	Float64() float64
}

// RandFunc adapts a plain function to Rand. Tests use it to pin draws.
type RandFunc func() float64

func (f RandFunc) Float64() float64 { return f() }

// NewRand returns a seeded PCG source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence returns a RandFunc that yields values in order and then keeps
// returning the last one.
func Sequence(values ...float64) RandFunc {
	i := 0
	return func() float64 {
		if len(values) == 0 {
			return 0
		}
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}
