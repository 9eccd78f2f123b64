package tensor

import "fmt"

// View is a non-owning handle into existing storage: an offset, a shape and
// arbitrary signed strides over a buffer it does not own. Zero strides alias
// one slot across a whole axis (broadcast); negative strides walk an axis
// backwards (reverse). Construction of a view never allocates or copies.
//
// A view's lifetime is tied to the owning Dense: resizing the owner bumps a
// revision counter and every later access through the view panics with
// *StaleViewError instead of touching a reallocated buffer.
//
// Writing through a view mutates the aliased owner. The layer enforces no
// exclusivity; avoiding read/write races within one statement is the
// caller's job (assign a copy, not the view, when source and destination
// overlap).
type View[T Scalar] struct {
	data    []T
	off     int
	shape   Shape
	strides []int
	owner   *Dense[T]
	rev     uint64
}

func (v *View[T]) check() {
	if v.owner != nil && v.owner.rev != v.rev {
		panic(&StaleViewError{})
	}
}

// derive builds a new view sharing the receiver's buffer and liveness tag.
func (v *View[T]) derive(off int, shape Shape, strides []int) *View[T] {
	return &View[T]{
		data:    v.data,
		off:     off,
		shape:   shape,
		strides: strides,
		owner:   v.owner,
		rev:     v.rev,
	}
}

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape {
	return v.shape
}

// Strides returns the view's per-axis element strides.
func (v *View[T]) Strides() []int {
	return v.strides
}

// Offset returns the view's starting offset into the aliased buffer.
func (v *View[T]) Offset() int {
	return v.off
}

// Rank returns the number of axes.
func (v *View[T]) Rank() int {
	return len(v.shape)
}

// Size returns the total number of addressed elements.
func (v *View[T]) Size() int {
	return v.shape.Size()
}

// At returns the element at the given multi-index.
// Panics with a *ShapeError, *RangeError or *StaleViewError on misuse.
func (v *View[T]) At(index ...int) T {
	return v.data[v.addr(index)]
}

// SetAt writes the element at the given multi-index through to the owner.
// Panics with a *ShapeError, *RangeError or *StaleViewError on misuse.
func (v *View[T]) SetAt(value T, index ...int) {
	v.data[v.addr(index)] = value
}

func (v *View[T]) addr(index []int) int {
	v.check()
	if len(index) != len(v.shape) {
		panic(&ShapeError{Op: "At", Want: v.shape, Got: Shape(index)})
	}
	off := v.off
	for i, idx := range index {
		if idx < 0 || idx >= v.shape[i] {
			panic(&RangeError{Axis: i, Index: idx, Size: v.shape[i]})
		}
		off += idx * v.strides[i]
	}
	return off
}

// Transpose returns a view with the axis order reversed. No data moves.
func (v *View[T]) Transpose() *View[T] {
	v.check()
	rank := len(v.shape)
	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i := 0; i < rank; i++ {
		shape[i] = v.shape[rank-1-i]
		strides[i] = v.strides[rank-1-i]
	}
	return v.derive(v.off, shape, strides)
}

// Permute returns a view with the axes reordered by the given permutation.
func (v *View[T]) Permute(axes ...int) (*View[T], error) {
	v.check()
	rank := len(v.shape)
	if len(axes) != rank {
		return nil, &ShapeError{Op: "Permute", Want: v.shape, Got: Shape(axes)}
	}
	seen := make([]bool, rank)
	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i, a := range axes {
		a, err := checkAxis("Permute", a, rank)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			return nil, &AxisError{Op: "Permute: duplicate", Axis: a, Rank: rank}
		}
		seen[a] = true
		shape[i] = v.shape[a]
		strides[i] = v.strides[a]
	}
	return v.derive(v.off, shape, strides), nil
}

// Diagonal returns a 1-D view over the k-th diagonal of a rank-2 view.
// k > 0 selects a diagonal above the main one, k < 0 below. The single
// stride of the result is the sum of the two base strides.
func (v *View[T]) Diagonal(k int) (*View[T], error) {
	v.check()
	if len(v.shape) != 2 {
		return nil, &AxisError{Op: "Diagonal", Axis: 2, Rank: len(v.shape)}
	}
	rows, cols := v.shape[0], v.shape[1]
	off := v.off
	var length int
	if k >= 0 {
		if k > cols {
			return nil, &RangeError{Axis: 1, Index: k, Size: cols}
		}
		length = min(rows, cols-k)
		off += k * v.strides[1]
	} else {
		if -k > rows {
			return nil, &RangeError{Axis: 0, Index: -k, Size: rows}
		}
		length = min(rows+k, cols)
		off += -k * v.strides[0]
	}
	return v.derive(off, Shape{length}, []int{v.strides[0] + v.strides[1]}), nil
}

// Slice narrows the view to [start, stop) along one axis. Strides are
// unchanged; only the shape and offset move.
func (v *View[T]) Slice(axis, start, stop int) (*View[T], error) {
	v.check()
	axis, err := checkAxis("Slice", axis, len(v.shape))
	if err != nil {
		return nil, err
	}
	n := v.shape[axis]
	if start < 0 || start > n {
		return nil, &RangeError{Axis: axis, Index: start, Size: n}
	}
	if stop < start || stop > n {
		return nil, &RangeError{Axis: axis, Index: stop, Size: n}
	}
	shape := v.shape.Clone()
	shape[axis] = stop - start
	strides := append([]int(nil), v.strides...)
	return v.derive(v.off+start*v.strides[axis], shape, strides), nil
}

// Index fixes one axis at a position and drops it, reducing the rank by one.
func (v *View[T]) Index(axis, at int) (*View[T], error) {
	v.check()
	axis, err := checkAxis("Index", axis, len(v.shape))
	if err != nil {
		return nil, err
	}
	if at < 0 || at >= v.shape[axis] {
		return nil, &RangeError{Axis: axis, Index: at, Size: v.shape[axis]}
	}
	shape := make(Shape, 0, len(v.shape)-1)
	strides := make([]int, 0, len(v.shape)-1)
	for i := range v.shape {
		if i == axis {
			continue
		}
		shape = append(shape, v.shape[i])
		strides = append(strides, v.strides[i])
	}
	return v.derive(v.off+at*v.strides[axis], shape, strides), nil
}

// Reversed returns a view walking one axis backwards (negative stride).
func (v *View[T]) Reversed(axis int) (*View[T], error) {
	v.check()
	axis, err := checkAxis("Reversed", axis, len(v.shape))
	if err != nil {
		return nil, err
	}
	shape := v.shape.Clone()
	strides := append([]int(nil), v.strides...)
	off := v.off
	if shape[axis] > 0 {
		off += (shape[axis] - 1) * strides[axis]
	}
	strides[axis] = -strides[axis]
	return v.derive(off, shape, strides), nil
}

// IsContiguous reports whether the view addresses its elements in one
// unbroken row-major run. Axes of size 1 or 0 place no constraint.
func (v *View[T]) IsContiguous() bool {
	want := 1
	for i := len(v.shape) - 1; i >= 0; i-- {
		if v.shape[i] <= 1 {
			continue
		}
		if v.strides[i] != want {
			return false
		}
		want *= v.shape[i]
	}
	return true
}

// Reshape returns a view of a new shape over the same elements. The source
// must be contiguous and of equal total size; reshaping a non-contiguous
// view is an error, never a silent copy. Use Materialize first when a copy
// is intended.
func (v *View[T]) Reshape(shape Shape) (*View[T], error) {
	v.check()
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.Size() != v.Size() {
		return nil, &ShapeError{Op: "Reshape", Want: v.shape, Got: shape}
	}
	if !v.IsContiguous() {
		return nil, fmt.Errorf("Reshape: view with strides %v over shape %s is not contiguous", v.strides, v.shape)
	}
	return v.derive(v.off, shape.Clone(), shape.Strides(RowMajor)), nil
}

// Materialize copies the viewed elements into a fresh owning row-major
// tensor. The result never aliases the source buffer.
func (v *View[T]) Materialize() *Dense[T] {
	v.check()
	d, err := NewDense[T](v.shape)
	if err != nil {
		panic(err) // shape was validated when the view was built
	}
	strides := d.Strides()
	it := newIndexIter(v.shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		d.data[offsetOf(idx, strides)] = v.At(idx...)
	}
	return d
}

// Fill writes value into every addressed element.
func (v *View[T]) Fill(value T) {
	v.check()
	it := newIndexIter(v.shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		v.SetAt(value, idx...)
	}
}

// String returns a compact human-readable representation.
func (v *View[T]) String() string {
	return fmt.Sprintf("View%s offset=%d strides=%v", v.shape, v.off, v.strides)
}
