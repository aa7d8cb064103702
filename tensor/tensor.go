package tensor

// Dense numeric runtime for robustness evaluation.
// Tensors are row-major float64 arrays; every operation returns a fresh
// tensor and leaves its inputs untouched, so values can be shared freely
// across recursive formula evaluation.

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Tensor is a dense, row-major float64 array with an explicit shape.
// A rank-0 tensor (empty shape) holds a single scalar.
type Tensor struct {
	shape []int
	data  []float64
}

// New builds a tensor over the given backing values.
// It panics when len(data) disagrees with the shape; a mismatched literal
// is a programming error, not a runtime condition.
func New(data []float64, shape ...int) *Tensor {
	if len(data) != numel(shape) {
		panic(errors.Newf("tensor: %d values do not fill shape %v", len(data), shape))
	}
	return &Tensor{shape: append([]int(nil), shape...), data: append([]float64(nil), data...)}
}

// Zeros builds a zero-filled tensor of the given shape.
func Zeros(shape ...int) *Tensor {
	return &Tensor{shape: append([]int(nil), shape...), data: make([]float64, numel(shape))}
}

// Vector builds a 1-D tensor from its arguments.
func Vector(data ...float64) *Tensor {
	return New(data, len(data))
}

// Arange builds the 1-D tensor [0, 1, ..., n-1].
func Arange(n int) *Tensor {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return New(data, n)
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int { return len(t.shape) }

// Numel returns the total number of elements.
func (t *Tensor) Numel() int { return len(t.data) }

// Data returns the backing slice. Callers must treat it as read-only.
func (t *Tensor) Data() []float64 { return t.data }

// At returns the element at the given multi-index.
func (t *Tensor) At(idx ...int) float64 {
	if len(idx) != len(t.shape) {
		panic(errors.Newf("tensor: index %v into shape %v", idx, t.shape))
	}
	off := 0
	for d, i := range idx {
		off = off*t.shape[d] + i
	}
	return t.data[off]
}

// Item returns the sole element of a single-element tensor.
func (t *Tensor) Item() (float64, error) {
	if len(t.data) != 1 {
		return 0, errors.Newf("tensor: Item on shape %v", t.shape)
	}
	return t.data[0], nil
}

func (t *Tensor) apply(f func(float64) float64) *Tensor {
	out := &Tensor{shape: append([]int(nil), t.shape...), data: make([]float64, len(t.data))}
	for i, v := range t.data {
		out.data[i] = f(v)
	}
	return out
}

// Neg returns -t elementwise.
func (t *Tensor) Neg() *Tensor {
	return t.apply(func(v float64) float64 { return -v })
}

// Scale returns c*t elementwise.
func (t *Tensor) Scale(c float64) *Tensor {
	return t.apply(func(v float64) float64 { return c * v })
}

// AddScalar returns t+c elementwise.
func (t *Tensor) AddScalar(c float64) *Tensor {
	return t.apply(func(v float64) float64 { return v + c })
}

// Sigmoid returns the logistic sigmoid of t elementwise.
func (t *Tensor) Sigmoid() *Tensor {
	return t.apply(sigmoid)
}

// sigmoid avoids overflow for large negative inputs by working with
// exp(x) rather than exp(-x) on that branch.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// Mul returns the elementwise product of two same-shape tensors.
func (t *Tensor) Mul(o *Tensor) (*Tensor, error) {
	if !sameShape(t.shape, o.shape) {
		return nil, errors.Newf("tensor: Mul shape mismatch %v vs %v", t.shape, o.shape)
	}
	out := &Tensor{shape: append([]int(nil), t.shape...), data: make([]float64, len(t.data))}
	for i := range t.data {
		out.data[i] = t.data[i] * o.data[i]
	}
	return out, nil
}

// Sub returns t-o elementwise for two same-shape tensors.
func (t *Tensor) Sub(o *Tensor) (*Tensor, error) {
	if !sameShape(t.shape, o.shape) {
		return nil, errors.Newf("tensor: Sub shape mismatch %v vs %v", t.shape, o.shape)
	}
	out := &Tensor{shape: append([]int(nil), t.shape...), data: make([]float64, len(t.data))}
	for i := range t.data {
		out.data[i] = t.data[i] - o.data[i]
	}
	return out, nil
}

// Unsqueeze inserts a size-1 dimension at dim. Negative dims count from the
// end, so Unsqueeze(-1) appends a trailing axis.
func (t *Tensor) Unsqueeze(dim int) (*Tensor, error) {
	d := dim
	if d < 0 {
		d += len(t.shape) + 1
	}
	if d < 0 || d > len(t.shape) {
		return nil, errors.Newf("tensor: Unsqueeze dim %d out of range for shape %v", dim, t.shape)
	}
	shape := make([]int, 0, len(t.shape)+1)
	shape = append(shape, t.shape[:d]...)
	shape = append(shape, 1)
	shape = append(shape, t.shape[d:]...)
	return &Tensor{shape: shape, data: append([]float64(nil), t.data...)}, nil
}

// Cat concatenates tensors along dim. All inputs must agree on every other
// dimension.
func Cat(dim int, ts ...*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return nil, errors.New("tensor: Cat of no tensors")
	}
	d, err := normDim(dim, ts[0].Rank())
	if err != nil {
		return nil, err
	}
	total := 0
	for _, t := range ts {
		if t.Rank() != ts[0].Rank() {
			return nil, errors.Newf("tensor: Cat rank mismatch %v vs %v", t.shape, ts[0].shape)
		}
		for i := range t.shape {
			if i != d && t.shape[i] != ts[0].shape[i] {
				return nil, errors.Newf("tensor: Cat shape mismatch %v vs %v along dim %d", t.shape, ts[0].shape, dim)
			}
		}
		total += t.shape[d]
	}
	shape := ts[0].Shape()
	shape[d] = total
	out := Zeros(shape...)

	outer := prod(shape[:d])
	inner := prod(shape[d+1:])
	for o := 0; o < outer; o++ {
		pos := o * total * inner
		for _, t := range ts {
			block := t.shape[d] * inner
			copy(out.data[pos:pos+block], t.data[o*block:(o+1)*block])
			pos += block
		}
	}
	return out, nil
}

func normDim(dim, rank int) (int, error) {
	d := dim
	if d < 0 {
		d += rank
	}
	if d < 0 || d >= rank {
		return 0, errors.Newf("tensor: dim %d out of range for rank %d", dim, rank)
	}
	return d, nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func numel(shape []int) int { return prod(shape) }

func prod(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}
