package color

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric scores the error between two colors.
//
// Contract for implementations:
//   - Distance(a, a) == 0
//   - Distance(a, b) == Distance(b, a)
//   - Distance(a, b) ≥ 0
//
// The mixing engine only compares distances, so any monotone transform of a
// valid metric ranks identically.
type Metric interface {
	Distance(a, b Color) float64
}

// MetricFunc adapts an ordinary function to the Metric interface.
type MetricFunc func(a, b Color) float64

// Distance calls f(a, b).
func (f MetricFunc) Distance(a, b Color) float64 { return f(a, b) }

// Euclidean is the straight-line RGB distance sqrt(ΔR² + ΔG² + ΔB²).
type Euclidean struct{}

// Distance returns the L2 distance between a and b.
func (Euclidean) Distance(a, b Color) float64 {
	return floats.Distance(a.Vec(), b.Vec(), 2)
}

// WeightedEuclidean scales each squared channel difference before summing:
// sqrt(WR·ΔR² + WG·ΔG² + WB·ΔB²). Weights must be non-negative; a zero
// weight ignores that channel.
type WeightedEuclidean struct {
	WR, WG, WB float64
}

// Distance returns the weighted L2 distance between a and b.
func (w WeightedEuclidean) Distance(a, b Color) float64 {
	d := a.Sub(b)
	sq := []float64{d.R * d.R, d.G * d.G, d.B * d.B}

	return math.Sqrt(floats.Dot(sq, []float64{w.WR, w.WG, w.WB}))
}

// Distance is shorthand for Euclidean{}.Distance(a, b).
func Distance(a, b Color) float64 {
	return Euclidean{}.Distance(a, b)
}
