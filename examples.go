package main

// Example specifications and signals for the demo binary. Leaf predicates
// are defined here rather than in the library: the stl package treats
// every node other than And/Or as opaque.

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/rfielding/stl-robust/stl"
	"github.com/rfielding/stl-robust/tensor"
)

// Above is a leaf predicate: robustness of (signal > Threshold) is
// signal - Threshold at each sample.
type Above struct {
	Name      string
	Threshold float64
}

func (p Above) Robustness(sig stl.Signal, cfg stl.EvalConfig) (*tensor.Tensor, error) {
	tr, ok := sig.(stl.Trace)
	if !ok {
		return nil, errors.Newf("predicate %s expects a single trace, got %T", p.Name, sig)
	}
	return tr.Tensor.AddScalar(-p.Threshold), nil
}

func (p Above) String() string { return fmt.Sprintf("%s > %v", p.Name, p.Threshold) }

// Below is the mirrored leaf predicate: robustness of (signal < Threshold)
// is Threshold - signal.
type Below struct {
	Name      string
	Threshold float64
}

func (p Below) Robustness(sig stl.Signal, cfg stl.EvalConfig) (*tensor.Tensor, error) {
	tr, ok := sig.(stl.Trace)
	if !ok {
		return nil, errors.Newf("predicate %s expects a single trace, got %T", p.Name, sig)
	}
	return tr.Tensor.Neg().AddScalar(p.Threshold), nil
}

func (p Below) String() string { return fmt.Sprintf("%s < %v", p.Name, p.Threshold) }

// CreateSpeedEnvelopeExample specifies that speed stays inside (0.2, 0.8).
func CreateSpeedEnvelopeExample() stl.Formula {
	return stl.And{
		Subformula1: Above{Name: "speed", Threshold: 0.2},
		Subformula2: Below{Name: "speed", Threshold: 0.8},
	}
}

// CreateJointSpecExample specifies altitude above its floor while speed
// stays in its envelope. Evaluate it against a Pair routing the altitude
// trace to the first subformula and the speed trace to the second.
func CreateJointSpecExample() stl.Formula {
	return stl.And{
		Subformula1: Above{Name: "alt", Threshold: 1.0},
		Subformula2: stl.And{
			Subformula1: Above{Name: "speed", Threshold: 0.2},
			Subformula2: Below{Name: "speed", Threshold: 0.8},
		},
	}
}

// CreateCruiseSignal builds a length-T speed profile oscillating inside
// the envelope.
func CreateCruiseSignal(T int) *tensor.Tensor {
	data := make([]float64, T)
	for i := range data {
		u := float64(i) / float64(T-1)
		data[i] = 0.5 + 0.25*math.Sin(2*math.Pi*u)
	}
	return tensor.New(data, T)
}

// CreateClimbSignal builds a length-T altitude ramp from 0 to 3.
func CreateClimbSignal(T int) *tensor.Tensor {
	data := make([]float64, T)
	for i := range data {
		data[i] = 3 * float64(i) / float64(T-1)
	}
	return tensor.New(data, T)
}
