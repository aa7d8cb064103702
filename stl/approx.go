package stl

// Smoothed max/min. The classical robustness semantics take hard max/min
// over time and over connectives, which kills gradients; the two smooth
// strategies trade exactness for differentiability with a known,
// one-directional error:
//
//	softmax   underestimates max (convex combination of the lane)
//	logsumexp overestimates max by at most log(N)/temperature
//
// Both converge to the exact extremum as temperature grows.

import (
	"github.com/cockroachdb/errors"

	"github.com/rfielding/stl-robust/tensor"
)

// ApproxMethod selects how Maxish/Minish aggregate along the reduction
// dimension.
type ApproxMethod string

const (
	// ApproxExact is the hard reduction maximum/minimum.
	ApproxExact ApproxMethod = "true"
	// ApproxSoftmax is the softmax-weighted sum Σ softmax(T·x)·x.
	ApproxSoftmax ApproxMethod = "softmax"
	// ApproxLogSumExp is logsumexp(T·x)/T.
	ApproxLogSumExp ApproxMethod = "logsumexp"
)

// ErrUnsupportedApprox is returned for a method tag outside the three
// recognized values. There is no silent fallback.
var ErrUnsupportedApprox = errors.New("unsupported approx method")

// EvalConfig carries the evaluation knobs threaded, unchanged, through
// every recursive robustness call.
type EvalConfig struct {
	// Dim is the reduction dimension; negative values count from the end.
	Dim int
	// KeepDim keeps the reduced dimension as size 1.
	KeepDim bool
	// Method selects the aggregation strategy.
	Method ApproxMethod
	// Temperature sharpens the smooth strategies toward the exact
	// extremum as it grows. Unused by ApproxExact.
	Temperature float64
}

// DefaultConfig reduces along the leading (time) dimension, keeps it, and
// uses the exact extremum.
func DefaultConfig() EvalConfig {
	return EvalConfig{Dim: 0, KeepDim: true, Method: ApproxExact, Temperature: 1.0}
}

// Validate rejects configurations Maxish would refuse, so a bad method tag
// surfaces at construction rather than mid-evaluation.
func (c EvalConfig) Validate() error {
	switch c.Method {
	case ApproxExact, ApproxSoftmax, ApproxLogSumExp:
	default:
		return errors.Wrapf(ErrUnsupportedApprox, "approx method %q", c.Method)
	}
	if c.Method != ApproxExact && c.Temperature <= 0 {
		return errors.Newf("temperature must be positive, got %v", c.Temperature)
	}
	return nil
}

// Maxish computes the (possibly smoothed) maximum of signal along cfg.Dim.
func Maxish(signal *tensor.Tensor, cfg EvalConfig) (*tensor.Tensor, error) {
	switch cfg.Method {
	case ApproxExact:
		return signal.Max(cfg.Dim, cfg.KeepDim)
	case ApproxSoftmax:
		return maxishSoftmax(signal, cfg)
	case ApproxLogSumExp:
		return maxishLogSumExp(signal, cfg)
	default:
		return nil, errors.Wrapf(ErrUnsupportedApprox, "approx method %q", cfg.Method)
	}
}

// Minish computes the mirrored minimum: -Maxish(-signal). Negation is the
// implementation, not an identity to test for, so minish(x) == -maxish(-x)
// holds for every strategy by construction.
func Minish(signal *tensor.Tensor, cfg EvalConfig) (*tensor.Tensor, error) {
	m, err := Maxish(signal.Neg(), cfg)
	if err != nil {
		return nil, err
	}
	return m.Neg(), nil
}

func maxishSoftmax(signal *tensor.Tensor, cfg EvalConfig) (*tensor.Tensor, error) {
	weights, err := signal.Scale(cfg.Temperature).Softmax(cfg.Dim)
	if err != nil {
		return nil, err
	}
	weighted, err := weights.Mul(signal)
	if err != nil {
		return nil, err
	}
	return weighted.Sum(cfg.Dim, cfg.KeepDim)
}

func maxishLogSumExp(signal *tensor.Tensor, cfg EvalConfig) (*tensor.Tensor, error) {
	lse, err := signal.Scale(cfg.Temperature).LogSumExp(cfg.Dim, cfg.KeepDim)
	if err != nil {
		return nil, err
	}
	return lse.Scale(1 / cfg.Temperature), nil
}
