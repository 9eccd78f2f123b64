package tensor

import (
	"fmt"
	"strings"
)

// maxElems bounds a single owning allocation. Anything larger than this is
// almost certainly an arithmetic mistake in shape construction.
const maxElems = 1 << 40

// Dense is an owning tensor: one contiguous buffer of exactly Shape.Size()
// elements plus the shape it is addressed through. Strides are always the
// layout-derived ones, never arbitrary; arbitrary strides belong to View.
type Dense[T Scalar] struct {
	data   []T
	shape  Shape
	layout Layout
	rev    uint64
}

// NewDense allocates a zero-filled row-major tensor of the given shape.
func NewDense[T Scalar](shape Shape) (*Dense[T], error) {
	return NewDenseLayout[T](shape, RowMajor)
}

// NewDenseLayout allocates a zero-filled tensor of the given shape and layout.
func NewDenseLayout[T Scalar](shape Shape, layout Layout) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	n, err := allocSize(shape)
	if err != nil {
		return nil, err
	}
	return &Dense[T]{
		data:   make([]T, n),
		shape:  shape.Clone(),
		layout: layout,
	}, nil
}

// allocSize computes the element count for an owning allocation, rejecting
// overflowing or oversized products.
func allocSize(shape Shape) (int, error) {
	n := 1
	for _, dim := range shape {
		if dim == 0 {
			return 0, nil
		}
		if n > maxElems/dim {
			return 0, &AllocError{Elems: -1}
		}
		n *= dim
	}
	if n > maxElems {
		return 0, &AllocError{Elems: n}
	}
	return n, nil
}

// FromSlice creates a row-major tensor by copying data.
func FromSlice[T Scalar](data []T, shape Shape) (*Dense[T], error) {
	if shape.Size() != len(data) {
		return nil, &ShapeError{Op: "FromSlice", Want: Shape{shape.Size()}, Got: Shape{len(data)}}
	}
	d, err := NewDense[T](shape)
	if err != nil {
		return nil, err
	}
	copy(d.data, data)
	return d, nil
}

// FromSliceFinite is FromSlice with a finiteness check: the first NaN or
// infinity in data fails construction with a NonFiniteError.
func FromSliceFinite[T Scalar](data []T, shape Shape) (*Dense[T], error) {
	for i, v := range data {
		if !isFinite(v) {
			return nil, &NonFiniteError{Index: i, Value: toFloat64(v)}
		}
	}
	return FromSlice(data, shape)
}

// FromFunc creates a row-major tensor whose element at each multi-index is
// produced by f.
func FromFunc[T Scalar](shape Shape, f func(index []int) T) (*Dense[T], error) {
	d, err := NewDense[T](shape)
	if err != nil {
		return nil, err
	}
	it := newIndexIter(d.shape, d.layout)
	strides := d.Strides()
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		d.data[offsetOf(idx, strides)] = f(idx)
	}
	return d, nil
}

func toFloat64[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

func offsetOf(index, strides []int) int {
	off := 0
	for i, idx := range index {
		off += idx * strides[i]
	}
	return off
}

// Shape returns the tensor's shape.
func (d *Dense[T]) Shape() Shape {
	return d.shape
}

// Layout returns the tensor's memory layout.
func (d *Dense[T]) Layout() Layout {
	return d.layout
}

// Rank returns the number of axes.
func (d *Dense[T]) Rank() int {
	return len(d.shape)
}

// Size returns the total number of elements.
func (d *Dense[T]) Size() int {
	return len(d.data)
}

// Strides returns the layout-derived element strides.
func (d *Dense[T]) Strides() []int {
	return d.shape.Strides(d.layout)
}

// Data returns the underlying buffer in layout order.
// Modifications to the returned slice modify the tensor.
func (d *Dense[T]) Data() []T {
	return d.data
}

// At returns the element at the given multi-index.
// Panics with a *ShapeError or *RangeError on misuse.
func (d *Dense[T]) At(index ...int) T {
	return d.data[d.flatOffset(index)]
}

// SetAt sets the element at the given multi-index.
// Panics with a *ShapeError or *RangeError on misuse.
func (d *Dense[T]) SetAt(v T, index ...int) {
	d.data[d.flatOffset(index)] = v
}

func (d *Dense[T]) flatOffset(index []int) int {
	if len(index) != len(d.shape) {
		panic(&ShapeError{Op: "At", Want: d.shape, Got: Shape(index)})
	}
	off := 0
	strides := d.Strides()
	for i, idx := range index {
		if idx < 0 || idx >= d.shape[i] {
			panic(&RangeError{Axis: i, Index: idx, Size: d.shape[i]})
		}
		off += idx * strides[i]
	}
	return off
}

// Item returns the single element of a size-1 tensor.
// Panics if the tensor holds more or fewer than one element.
func (d *Dense[T]) Item() T {
	if len(d.data) != 1 {
		panic(&ShapeError{Op: "Item", Want: Shape{1}, Got: d.shape})
	}
	return d.data[0]
}

// Clone creates a deep copy. The copy never aliases the receiver's buffer.
func (d *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{
		data:   make([]T, len(d.data)),
		shape:  d.shape.Clone(),
		layout: d.layout,
	}
	copy(out.data, d.data)
	return out
}

// View returns a full view over the tensor. The view aliases the buffer:
// writes through it mutate the tensor.
func (d *Dense[T]) View() *View[T] {
	return &View[T]{
		data:    d.data,
		shape:   d.shape.Clone(),
		strides: d.Strides(),
		owner:   d,
		rev:     d.rev,
	}
}

// Resize reallocates the tensor to a new shape, copying the overlapping
// region. With equal ranks the per-axis overlap block is preserved;
// otherwise the flat prefix in layout order is. Outstanding views go stale:
// using one afterwards panics with *StaleViewError.
func (d *Dense[T]) Resize(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("invalid shape: %w", err)
	}
	if shape.Equal(d.shape) {
		return nil
	}
	n, err := allocSize(shape)
	if err != nil {
		return err
	}
	fresh := make([]T, n)
	if len(shape) == len(d.shape) {
		overlap := make(Shape, len(shape))
		for i := range shape {
			overlap[i] = min(shape[i], d.shape[i])
		}
		oldStrides := d.Strides()
		newStrides := shape.Strides(d.layout)
		it := newIndexIter(overlap, d.layout)
		for idx, ok := it.Next(); ok; idx, ok = it.Next() {
			fresh[offsetOf(idx, newStrides)] = d.data[offsetOf(idx, oldStrides)]
		}
	} else {
		copy(fresh, d.data)
	}
	d.data = fresh
	d.shape = shape.Clone()
	d.rev++
	return nil
}

// Equal reports element-wise equality of two tensors with equal shapes.
func (d *Dense[T]) Equal(other *Dense[T]) bool {
	if !d.shape.Equal(other.shape) {
		return false
	}
	it := newIndexIter(d.shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		if d.At(idx...) != other.At(idx...) {
			return false
		}
	}
	return true
}

// String returns a compact human-readable representation.
func (d *Dense[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense%s %s [", d.shape, d.layout)
	limit := len(d.data)
	truncated := false
	if limit > 16 {
		limit = 16
		truncated = true
	}
	for i := 0; i < limit; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", d.data[i])
	}
	if truncated {
		b.WriteString(" ...")
	}
	b.WriteString("]")
	return b.String()
}
