package stl

import "github.com/rfielding/stl-robust/tensor"

// SmoothMask builds a length-T differentiable window over sample indices:
// the difference of two sigmoids centered at tStart*T and tEnd*T, which
// approaches the boolean indicator of [tStart*T, tEnd*T) as scale grows.
// The transition bands shrink like 1/scale.
//
// No validation: out-of-range fractions and non-positive T are the
// caller's responsibility, keeping this a zero-overhead primitive.
func SmoothMask(T int, tStart, tEnd, scale float64) *tensor.Tensor {
	xs := tensor.Arange(T)
	rise := xs.AddScalar(-tStart * float64(T)).Scale(scale).Sigmoid()
	fall := xs.AddScalar(-tEnd * float64(T)).Scale(scale).Sigmoid()
	mask, err := rise.Sub(fall)
	if err != nil {
		// Same-shape by construction.
		panic(err)
	}
	return mask
}
