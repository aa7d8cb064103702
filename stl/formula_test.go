package stl

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/stl-robust/tensor"
)

// above is a leaf predicate for tests: robustness of (x > threshold) is
// x - threshold at each sample.
type above struct {
	name      string
	threshold float64
}

func (p above) Robustness(sig Signal, cfg EvalConfig) (*tensor.Tensor, error) {
	tr, ok := sig.(Trace)
	if !ok {
		return nil, errors.Newf("predicate %s expects a single trace, got %T", p.name, sig)
	}
	return tr.Tensor.AddScalar(-p.threshold), nil
}

func (p above) String() string { return fmt.Sprintf("%s > %v", p.name, p.threshold) }

func TestAndRobustnessExact(t *testing.T) {
	x := tensor.Vector(0.0, 1.0, 4.0)
	spec := And{
		Subformula1: above{"x", 1.0},
		Subformula2: above{"x", 3.0},
	}

	rob, err := spec.Robustness(Trace{x}, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, []int{3}, rob.Shape())
	// Pointwise min of (x-1) and (x-3).
	assert.Equal(t, []float64{-3, -2, 1}, rob.Data())
}

func TestOrRobustnessExact(t *testing.T) {
	x := tensor.Vector(0.0, 1.0, 4.0)
	spec := Or{
		Subformula1: above{"x", 1.0},
		Subformula2: above{"x", 3.0},
	}

	rob, err := spec.Robustness(Trace{x}, DefaultConfig())
	require.NoError(t, err)
	// Pointwise max of (x-1) and (x-3).
	assert.Equal(t, []float64{-1, 0, 3}, rob.Data())
}

func TestNestedConjunctionAggregatesAllLeaves(t *testing.T) {
	x := tensor.Vector(2.0)
	spec := And{
		Subformula1: above{"x", 0.5},
		Subformula2: And{
			Subformula1: above{"x", 1.0},
			Subformula2: above{"x", 3.0},
		},
	}

	rob, err := spec.Robustness(Trace{x}, DefaultConfig())
	require.NoError(t, err)
	// min(1.5, 1.0, -1.0) over the three separated channels.
	assert.Equal(t, []float64{-1.0}, rob.Data())
}

func TestConnectiveSmoothBounds(t *testing.T) {
	x := tensor.Vector(0.0, 1.0, 4.0)
	spec := Or{
		Subformula1: above{"x", 1.0},
		Subformula2: above{"x", 3.0},
	}

	exact, err := spec.Robustness(Trace{x}, DefaultConfig())
	require.NoError(t, err)

	soft := DefaultConfig()
	soft.Method = ApproxSoftmax
	under, err := spec.Robustness(Trace{x}, soft)
	require.NoError(t, err)

	lse := DefaultConfig()
	lse.Method = ApproxLogSumExp
	over, err := spec.Robustness(Trace{x}, lse)
	require.NoError(t, err)

	for i := range exact.Data() {
		assert.LessOrEqual(t, under.Data()[i], exact.Data()[i]+1e-12, "sample %d", i)
		assert.GreaterOrEqual(t, over.Data()[i], exact.Data()[i]-1e-12, "sample %d", i)
	}
}

func TestLeafRejectsPairedSignal(t *testing.T) {
	x := tensor.Vector(1.0)
	p := above{"x", 0.0}
	_, err := p.Robustness(Pair{Trace{x}, Trace{x}}, DefaultConfig())
	assert.Error(t, err)
}

func TestFormulaString(t *testing.T) {
	spec := And{
		Subformula1: above{"speed", 0.2},
		Subformula2: Or{
			Subformula1: above{"alt", 1.0},
			Subformula2: above{"alt", 3.0},
		},
	}
	assert.Equal(t, "(speed > 0.2 ∧ (alt > 1 ∨ alt > 3))", spec.String())
}
