package stl

// STL robustness evaluation over numeric signals.
// Formulas are an open interface: this package defines only the two
// connective nodes it must recognize structurally (And, Or); leaf
// predicates are supplied by the caller and stay opaque.

import (
	"fmt"

	"github.com/rfielding/stl-robust/tensor"
)

// Signal is the input a formula is evaluated against: either a single
// shared trace, or a pair routing distinct traces to the two subformulas
// of a connective. Pairs nest, so joint specifications over several
// underlying signals compose naturally.
type Signal interface {
	isSignal()
}

// Trace wraps one tensor-valued signal, time along cfg.Dim.
type Trace struct {
	Tensor *tensor.Tensor
}

// Pair carries one signal per subformula of a connective:
// First feeds Subformula1, Second feeds Subformula2.
type Pair struct {
	First, Second Signal
}

func (Trace) isSignal() {}
func (Pair) isSignal()  {}

// Formula is an STL formula. Robustness returns the robustness trace of
// the formula on sig: sign indicates satisfaction, magnitude the margin.
type Formula interface {
	Robustness(sig Signal, cfg EvalConfig) (*tensor.Tensor, error)
}

// And: (φ ∧ ψ). Its robustness is the smoothed minimum over all channels
// of its And-subtree, so nested conjunctions aggregate in one reduction
// instead of pairwise.
type And struct {
	Subformula1, Subformula2 Formula
}

func (a And) Robustness(sig Signal, cfg EvalConfig) (*tensor.Tensor, error) {
	channels, err := SeparateAnd(a, sig, cfg)
	if err != nil {
		return nil, err
	}
	return Minish(channels, cfg.overChannels())
}

func (a And) String() string {
	return fmt.Sprintf("(%s ∧ %s)", label(a.Subformula1), label(a.Subformula2))
}

// Or: (φ ∨ ψ). Mirrors And with the smoothed maximum.
type Or struct {
	Subformula1, Subformula2 Formula
}

func (o Or) Robustness(sig Signal, cfg EvalConfig) (*tensor.Tensor, error) {
	channels, err := SeparateOr(o, sig, cfg)
	if err != nil {
		return nil, err
	}
	return Maxish(channels, cfg.overChannels())
}

func (o Or) String() string {
	return fmt.Sprintf("(%s ∨ %s)", label(o.Subformula1), label(o.Subformula2))
}

// overChannels retargets a configuration at the trailing channel axis the
// separator appends, collapsing it.
func (c EvalConfig) overChannels() EvalConfig {
	c.Dim = -1
	c.KeepDim = false
	return c
}

// label names a formula for display, preferring its own Stringer.
func label(f Formula) string {
	if s, ok := f.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", f)
}
