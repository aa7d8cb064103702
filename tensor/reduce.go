package tensor

// Reductions along a single dimension. The per-lane kernels come from
// gonum's floats package; this file only handles the shape bookkeeping.

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// Max reduces along dim keeping the largest element of each lane.
// With keepdim the reduced dimension survives as size 1, otherwise it is
// dropped (reducing a vector yields a rank-0 scalar).
func (t *Tensor) Max(dim int, keepdim bool) (*Tensor, error) {
	return t.reduce(dim, keepdim, floats.Max)
}

// Min reduces along dim keeping the smallest element of each lane.
func (t *Tensor) Min(dim int, keepdim bool) (*Tensor, error) {
	return t.reduce(dim, keepdim, floats.Min)
}

// Sum reduces along dim by summation.
func (t *Tensor) Sum(dim int, keepdim bool) (*Tensor, error) {
	return t.reduce(dim, keepdim, floats.Sum)
}

// LogSumExp reduces along dim with log(Σ exp(x)), computed stably.
func (t *Tensor) LogSumExp(dim int, keepdim bool) (*Tensor, error) {
	return t.reduce(dim, keepdim, floats.LogSumExp)
}

func (t *Tensor) reduce(dim int, keepdim bool, kernel func([]float64) float64) (*Tensor, error) {
	d, err := normDim(dim, t.Rank())
	if err != nil {
		return nil, err
	}
	n := t.shape[d]
	if n == 0 {
		return nil, errors.Newf("tensor: reduce over empty dim %d of shape %v", dim, t.shape)
	}
	outer := prod(t.shape[:d])
	inner := prod(t.shape[d+1:])

	shape := make([]int, 0, t.Rank())
	shape = append(shape, t.shape[:d]...)
	if keepdim {
		shape = append(shape, 1)
	}
	shape = append(shape, t.shape[d+1:]...)
	out := Zeros(shape...)

	lane := make([]float64, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			for k := 0; k < n; k++ {
				lane[k] = t.data[(o*n+k)*inner+i]
			}
			out.data[o*inner+i] = kernel(lane)
		}
	}
	return out, nil
}

// Softmax computes the softmax distribution along dim. Each lane is shifted
// by its maximum before exponentiation so large inputs do not overflow.
func (t *Tensor) Softmax(dim int) (*Tensor, error) {
	d, err := normDim(dim, t.Rank())
	if err != nil {
		return nil, err
	}
	n := t.shape[d]
	if n == 0 {
		return nil, errors.Newf("tensor: softmax over empty dim %d of shape %v", dim, t.shape)
	}
	outer := prod(t.shape[:d])
	inner := prod(t.shape[d+1:])

	out := Zeros(t.shape...)
	lane := make([]float64, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			for k := 0; k < n; k++ {
				lane[k] = t.data[(o*n+k)*inner+i]
			}
			m := floats.Max(lane)
			for k := range lane {
				lane[k] = math.Exp(lane[k] - m)
			}
			z := floats.Sum(lane)
			for k := 0; k < n; k++ {
				out.data[(o*n+k)*inner+i] = lane[k] / z
			}
		}
	}
	return out, nil
}
