package tensor

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxMinAlongDims(t *testing.T) {
	x := New([]float64{
		1, 5, 3,
		4, 2, 6,
	}, 2, 3)

	m, err := x.Max(0, false)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, m.Shape())
	assert.Equal(t, []float64{4, 5, 6}, m.Data())

	m, err = x.Max(1, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, m.Data())

	n, err := x.Min(1, true)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, n.Shape())
	assert.Equal(t, []float64{1, 2}, n.Data())

	// Negative dims count from the end.
	neg, err := x.Max(-1, false)
	require.NoError(t, err)
	assert.Equal(t, m.Data(), neg.Data())
}

func TestReduceVectorToScalar(t *testing.T) {
	s, err := Vector(3, 1, 2).Sum(0, false)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
	assert.Empty(t, s.Shape())
	v, err := s.Item()
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestReduceErrors(t *testing.T) {
	x := Vector(1, 2, 3)
	_, err := x.Max(1, false)
	assert.Error(t, err)
	_, err = x.Max(-2, false)
	assert.Error(t, err)

	empty := Zeros(0)
	_, err = empty.Max(0, false)
	assert.Error(t, err)
}

func TestLogSumExp(t *testing.T) {
	x := Vector(1, 2, 3)
	lse, err := x.LogSumExp(0, false)
	require.NoError(t, err)

	want := math.Log(math.Exp(1) + math.Exp(2) + math.Exp(3))
	v, err := lse.Item()
	require.NoError(t, err)
	assert.InDelta(t, want, v, 1e-12)

	// Stable for values that would overflow a naive exp.
	big, err := Vector(1000, 1000).LogSumExp(0, false)
	require.NoError(t, err)
	v, err = big.Item()
	require.NoError(t, err)
	assert.InDelta(t, 1000+math.Log(2), v, 1e-9)
}

func TestSoftmax(t *testing.T) {
	x := Vector(1, 2, 3)
	sm, err := x.Softmax(0)
	require.NoError(t, err)
	require.Equal(t, []int{3}, sm.Shape())

	z := math.Exp(1) + math.Exp(2) + math.Exp(3)
	want := []float64{math.Exp(1) / z, math.Exp(2) / z, math.Exp(3) / z}
	if diff := cmp.Diff(want, sm.Data(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("softmax mismatch (-want +got):\n%s", diff)
	}

	// Each lane sums to one, including along inner dims of a matrix.
	m := New([]float64{1, 4, 2, 8, 3, 100}, 3, 2)
	sm, err = m.Softmax(0)
	require.NoError(t, err)
	for col := 0; col < 2; col++ {
		sum := sm.At(0, col) + sm.At(1, col) + sm.At(2, col)
		assert.InDelta(t, 1.0, sum, 1e-12, "column %d", col)
	}
}

func TestSoftmaxStable(t *testing.T) {
	sm, err := Vector(10000, 10000).Softmax(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sm.At(0), 1e-12)
	assert.InDelta(t, 0.5, sm.At(1), 1e-12)
}

func TestReduceMiddleDim(t *testing.T) {
	// Shape [2, 2, 2]: reduce the middle dimension.
	x := New([]float64{
		1, 2,
		3, 4,

		5, 6,
		7, 8,
	}, 2, 2, 2)

	m, err := x.Max(1, false)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, m.Shape())
	assert.Equal(t, []float64{3, 4, 7, 8}, m.Data())

	k, err := x.Max(1, true)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 2}, k.Shape())
	assert.Equal(t, []float64{3, 4, 7, 8}, k.Data())
}
