package tensor

import "sort"

// ReduceOp is a fold operation with an optional identity. Operations with
// an identity seed every fold with it; operations without one seed with
// the first element, which makes an empty fold an error.
type ReduceOp[T Scalar] struct {
	Name        string
	Func        func(acc, x T) T
	Identity    T
	HasIdentity bool
}

// AddOp is the additive fold, identity 0.
func AddOp[T Scalar]() ReduceOp[T] {
	return ReduceOp[T]{Name: "add", Func: func(a, x T) T { return a + x }, Identity: 0, HasIdentity: true}
}

// MulOp is the multiplicative fold, identity 1.
func MulOp[T Scalar]() ReduceOp[T] {
	return ReduceOp[T]{Name: "multiply", Func: func(a, x T) T { return a * x }, Identity: 1, HasIdentity: true}
}

// MinOp is the minimum fold. It has no identity, so empty folds fail.
func MinOp[T Scalar]() ReduceOp[T] {
	return ReduceOp[T]{Name: "min", Func: func(a, x T) T {
		if x < a {
			return x
		}
		return a
	}}
}

// MaxOp is the maximum fold. It has no identity, so empty folds fail.
func MaxOp[T Scalar]() ReduceOp[T] {
	return ReduceOp[T]{Name: "max", Func: func(a, x T) T {
		if x > a {
			return x
		}
		return a
	}}
}

// Reduce folds op over every element of a in canonical row-major order.
// Identity-less ops over an empty tensor fail with *EmptyReductionError.
func Reduce[T Scalar](op ReduceOp[T], a Expr[T]) (T, error) {
	var acc T
	seeded := false
	if op.HasIdentity {
		acc = op.Identity
		seeded = true
	}
	it := newIndexIter(a.Shape(), RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		v := a.At(idx...)
		if !seeded {
			acc = v
			seeded = true
			continue
		}
		acc = op.Func(acc, v)
	}
	if !seeded {
		return acc, &EmptyReductionError{Op: op.Name}
	}
	return acc, nil
}

// normalizeAxes validates an axis list against rank, normalizes negatives,
// rejects duplicates and returns the axes in ascending order.
func normalizeAxes(op string, rank int, axes []int) ([]int, error) {
	out := make([]int, 0, len(axes))
	seen := make(map[int]bool, len(axes))
	for _, axis := range axes {
		axis, err := checkAxis(op, axis, rank)
		if err != nil {
			return nil, err
		}
		if seen[axis] {
			return nil, &AxisError{Op: op + ": duplicate", Axis: axis, Rank: rank}
		}
		seen[axis] = true
		out = append(out, axis)
	}
	sort.Ints(out)
	return out, nil
}

// axisSplit partitions a shape into the collapsed output shape (reduced
// axes become size 1) and the sub-shape spanned by the reduced axes.
func axisSplit(shape Shape, axes []int) (outShape, subShape Shape) {
	outShape = shape.Clone()
	subShape = make(Shape, len(axes))
	for i, axis := range axes {
		subShape[i] = shape[axis]
		outShape[axis] = 1
	}
	return outShape, subShape
}

// ReduceAxes partially reduces a over the given axes. The result keeps the
// input's rank with every reduced axis collapsed to size 1; for each cell
// of the non-reduced axes the fold visits the reduced elements in
// ascending-axis row-major sub-order.
func ReduceAxes[T Scalar](op ReduceOp[T], a Expr[T], axes ...int) (*Dense[T], error) {
	out, err := NewDense[T](Shape{})
	if err != nil {
		return nil, err
	}
	if err := ReduceAxesInto(op, a, out, axes...); err != nil {
		return nil, err
	}
	return out, nil
}

// ReduceAxesInto is ReduceAxes with an explicit output tensor, which is
// resized to the collapsed shape if necessary. Every check runs before any
// output cell is written.
func ReduceAxesInto[T Scalar](op ReduceOp[T], a Expr[T], out *Dense[T], axes ...int) error {
	shape := a.Shape()
	axesN, err := normalizeAxes("Reduce", shape.Rank(), axes)
	if err != nil {
		return err
	}
	outShape, subShape := axisSplit(shape, axesN)
	if subShape.Size() == 0 && !op.HasIdentity {
		return &EmptyReductionError{Op: op.Name}
	}
	if err := out.Resize(outShape); err != nil {
		return err
	}
	outStrides := out.Strides()
	full := make([]int, shape.Rank())
	outer := newIndexIter(outShape, RowMajor)
	for oIdx, ok := outer.Next(); ok; oIdx, ok = outer.Next() {
		copy(full, oIdx)
		var acc T
		seeded := false
		if op.HasIdentity {
			acc = op.Identity
			seeded = true
		}
		inner := newIndexIter(subShape, RowMajor)
		for sIdx, ok := inner.Next(); ok; sIdx, ok = inner.Next() {
			for i, axis := range axesN {
				full[axis] = sIdx[i]
			}
			v := a.At(full...)
			if !seeded {
				acc = v
				seeded = true
				continue
			}
			acc = op.Func(acc, v)
		}
		out.data[offsetOf(oIdx, outStrides)] = acc
	}
	return nil
}

// Accumulate is the prefix fold of op along one axis: the output has the
// input's shape, and cell i on the axis holds the fold of cells 0..i
// inclusive.
func Accumulate[T Scalar](op ReduceOp[T], a Expr[T], axis int) (*Dense[T], error) {
	out, err := NewDense[T](Shape{})
	if err != nil {
		return nil, err
	}
	if err := AccumulateInto(op, a, out, axis); err != nil {
		return nil, err
	}
	return out, nil
}

// AccumulateInto is Accumulate with an explicit output tensor, resized to
// the input shape if necessary.
func AccumulateInto[T Scalar](op ReduceOp[T], a Expr[T], out *Dense[T], axis int) error {
	shape := a.Shape()
	axis, err := checkAxis("Accumulate", axis, shape.Rank())
	if err != nil {
		return err
	}
	if err := out.Resize(shape); err != nil {
		return err
	}
	outShape, _ := axisSplit(shape, []int{axis})
	outStrides := out.Strides()
	full := make([]int, shape.Rank())
	outer := newIndexIter(outShape, RowMajor)
	for oIdx, ok := outer.Next(); ok; oIdx, ok = outer.Next() {
		copy(full, oIdx)
		var acc T
		for i := 0; i < shape[axis]; i++ {
			full[axis] = i
			v := a.At(full...)
			if i == 0 {
				acc = v
			} else {
				acc = op.Func(acc, v)
			}
			out.data[offsetOf(full, outStrides)] = acc
		}
	}
	return nil
}

// ApplyAlongAxis collapses one axis to size 1 by handing f each 1-D line
// along that axis as a contiguous slice. The slice is materialized through
// the view layer's addressing, so f never sees raw strides; it is reused
// between calls and must not be retained.
func ApplyAlongAxis[T Scalar](f func(line []T) T, a Expr[T], axis int) (*Dense[T], error) {
	return ApplyOverAxes(f, a, axis)
}

// ApplyAlongAxisInto is ApplyAlongAxis with an explicit output tensor.
func ApplyAlongAxisInto[T Scalar](f func(line []T) T, a Expr[T], out *Dense[T], axis int) error {
	return ApplyOverAxesInto(f, a, out, axis)
}

// ApplyOverAxes collapses a set of axes to size 1 by handing f the
// flattened axis-set of every cell as one contiguous slice, in
// ascending-axis row-major sub-order.
func ApplyOverAxes[T Scalar](f func(flat []T) T, a Expr[T], axes ...int) (*Dense[T], error) {
	out, err := NewDense[T](Shape{})
	if err != nil {
		return nil, err
	}
	if err := ApplyOverAxesInto(f, a, out, axes...); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyOverAxesInto is ApplyOverAxes with an explicit output tensor,
// resized to the collapsed shape if necessary.
func ApplyOverAxesInto[T Scalar](f func(flat []T) T, a Expr[T], out *Dense[T], axes ...int) error {
	shape := a.Shape()
	axesN, err := normalizeAxes("Apply", shape.Rank(), axes)
	if err != nil {
		return err
	}
	outShape, subShape := axisSplit(shape, axesN)
	if err := out.Resize(outShape); err != nil {
		return err
	}
	outStrides := out.Strides()
	full := make([]int, shape.Rank())
	line := make([]T, subShape.Size())
	outer := newIndexIter(outShape, RowMajor)
	for oIdx, ok := outer.Next(); ok; oIdx, ok = outer.Next() {
		copy(full, oIdx)
		n := 0
		inner := newIndexIter(subShape, RowMajor)
		for sIdx, ok := inner.Next(); ok; sIdx, ok = inner.Next() {
			for i, axis := range axesN {
				full[axis] = sIdx[i]
			}
			line[n] = a.At(full...)
			n++
		}
		out.data[offsetOf(oIdx, outStrides)] = f(line)
	}
	return nil
}

// SumOf folds addition over every element.
func SumOf[T Scalar](a Expr[T]) T {
	v, _ := Reduce(AddOp[T](), a)
	return v
}

// ProdOf folds multiplication over every element.
func ProdOf[T Scalar](a Expr[T]) T {
	v, _ := Reduce(MulOp[T](), a)
	return v
}

// MinOf returns the smallest element; empty input is an error.
func MinOf[T Scalar](a Expr[T]) (T, error) {
	return Reduce(MinOp[T](), a)
}

// MaxOf returns the largest element; empty input is an error.
func MaxOf[T Scalar](a Expr[T]) (T, error) {
	return Reduce(MaxOp[T](), a)
}

// MeanOf returns the arithmetic mean; empty input is an error.
func MeanOf[T Float](a Expr[T]) (T, error) {
	n := a.Shape().Size()
	if n == 0 {
		var zero T
		return zero, &EmptyReductionError{Op: "mean"}
	}
	return SumOf(a) / T(n), nil
}
