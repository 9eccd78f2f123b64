package tensor

// Indirect is a view described by an explicit ordered list of multi-indices
// into a base view instead of a regular stride pattern (fancy indexing).
// Reading produces the base's values in list order; writing walks the list
// in order and writes through to the base, so a duplicated target index
// ends up holding the last value written for it.
//
// The canonical index-list producers are Nonzero, Argsort and MaskIndices.
type Indirect[T Scalar] struct {
	base    *View[T]
	indices [][]int
}

// NewIndirect builds an indirect tensor over base. Every multi-index is
// validated against the base's shape up front; the list itself is
// referenced, not copied.
func NewIndirect[T Scalar](base *View[T], indices [][]int) (*Indirect[T], error) {
	base.check()
	shape := base.Shape()
	for _, index := range indices {
		if len(index) != shape.Rank() {
			return nil, &ShapeError{Op: "NewIndirect", Want: shape, Got: Shape(index)}
		}
		for axis, idx := range index {
			if idx < 0 || idx >= shape[axis] {
				return nil, &RangeError{Axis: axis, Index: idx, Size: shape[axis]}
			}
		}
	}
	return &Indirect[T]{base: base, indices: indices}, nil
}

// Len returns the number of listed indices.
func (x *Indirect[T]) Len() int {
	return len(x.indices)
}

// Shape returns the 1-D shape of the value sequence.
func (x *Indirect[T]) Shape() Shape {
	return Shape{len(x.indices)}
}

// At returns the base value at the i-th listed index.
func (x *Indirect[T]) At(index ...int) T {
	if len(index) != 1 {
		panic(&ShapeError{Op: "At", Want: Shape{len(x.indices)}, Got: Shape(index)})
	}
	i := index[0]
	if i < 0 || i >= len(x.indices) {
		panic(&RangeError{Axis: 0, Index: i, Size: len(x.indices)})
	}
	return x.base.At(x.indices[i]...)
}

// Take materializes the value sequence in list order as a 1-D tensor.
func (x *Indirect[T]) Take() *Dense[T] {
	out, err := NewDense[T](Shape{len(x.indices)})
	if err != nil {
		panic(err)
	}
	for i, index := range x.indices {
		out.data[i] = x.base.At(index...)
	}
	return out
}

// Put writes values through to the base, one per listed index, in list
// order. Duplicate target indices resolve to last-write-wins. The length
// check happens before any write.
func (x *Indirect[T]) Put(values []T) error {
	if len(values) != len(x.indices) {
		return &ShapeError{Op: "Put", Want: Shape{len(x.indices)}, Got: Shape{len(values)}}
	}
	for i, index := range x.indices {
		x.base.SetAt(values[i], index...)
	}
	return nil
}

// PutExpr is Put with a lazy 1-D source of matching length.
func (x *Indirect[T]) PutExpr(values Expr[T]) error {
	if !values.Shape().Equal(x.Shape()) {
		return &ShapeError{Op: "PutExpr", Want: x.Shape(), Got: values.Shape()}
	}
	for i, index := range x.indices {
		x.base.SetAt(values.At(i), index...)
	}
	return nil
}

// Take gathers base values at the listed multi-indices into a 1-D tensor.
func Take[T Scalar](base *View[T], indices [][]int) (*Dense[T], error) {
	x, err := NewIndirect(base, indices)
	if err != nil {
		return nil, err
	}
	return x.Take(), nil
}

// Put scatters values into base at the listed multi-indices, in list order.
// Duplicate targets resolve to last-write-wins.
func Put[T Scalar](base *View[T], indices [][]int, values []T) error {
	x, err := NewIndirect(base, indices)
	if err != nil {
		return err
	}
	return x.Put(values)
}

// MaskIndices compresses a boolean mask over a's elements into the
// row-major-ordered list of multi-indices where pred holds. The result is
// the fancy-indexing form of a boolean mask.
func MaskIndices[T Scalar](a Expr[T], pred func(T) bool) [][]int {
	var out [][]int
	it := newIndexIter(a.Shape(), RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		if pred(a.At(idx...)) {
			out = append(out, append([]int(nil), idx...))
		}
	}
	return out
}
