package calculation

import (
	"math"
	"math/rand"
	"time"
)

// RandomSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a reproducible source. Not safe for concurrent use.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// NewRandomSource returns a source seeded from the wall clock.
func NewRandomSource() RandomSource {
	return NewSeededSource(time.Now().UnixNano())
}

// uniform draws from U(lo, hi).
func uniform(src RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// normal draws from N(mean, sd) using the Box-Muller transform.
func normal(src RandomSource, mean, sd float64) float64 {
	// 1-u keeps the log argument in (0, 1].
	u1 := 1 - src.Float64()
	u2 := src.Float64()
	return mean + sd*boxMullerTransform(u1, u2)
}

// boxMullerTransform maps two uniforms to a standard normal draw.
func boxMullerTransform(u1, u2 float64) float64 {
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
