package tensor

import "fmt"

func padShape(op string, shape Shape, before, after []int) (Shape, error) {
	if len(before) != shape.Rank() || len(after) != shape.Rank() {
		return nil, fmt.Errorf("%s: need one before/after pair per axis of %s, got %d/%d",
			op, shape, len(before), len(after))
	}
	out := make(Shape, shape.Rank())
	for i := range shape {
		if before[i] < 0 || after[i] < 0 {
			return nil, fmt.Errorf("%s: negative pad width on axis %d", op, i)
		}
		out[i] = before[i] + shape[i] + after[i]
	}
	return out, nil
}

// PadConstant surrounds a with a border of value: before[i] cells are
// prepended and after[i] appended along axis i, and the source block sits
// at offset before within the result.
func PadConstant[T Scalar](a Expr[T], before, after []int, value T) (*Dense[T], error) {
	shape := a.Shape()
	outShape, err := padShape("PadConstant", shape, before, after)
	if err != nil {
		return nil, err
	}
	out, err := Full[T](outShape, value)
	if err != nil {
		return nil, err
	}
	strides := out.Strides()
	shifted := make([]int, shape.Rank())
	it := newIndexIter(shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		for i, v := range idx {
			shifted[i] = v + before[i]
		}
		out.data[offsetOf(shifted, strides)] = a.At(idx...)
	}
	return out, nil
}

// PadEdge surrounds a with a border repeating each edge's nearest source
// value: every border cell reads the source cell whose index is the
// per-axis clamp of its own.
func PadEdge[T Scalar](a Expr[T], before, after []int) (*Dense[T], error) {
	shape := a.Shape()
	outShape, err := padShape("PadEdge", shape, before, after)
	if err != nil {
		return nil, err
	}
	for i, n := range shape {
		if n == 0 && outShape[i] != 0 {
			return nil, fmt.Errorf("PadEdge: no edge to repeat on empty axis %d", i)
		}
	}
	src := make([]int, shape.Rank())
	return FromFunc(outShape, func(idx []int) T {
		for i, v := range idx {
			s := v - before[i]
			if s < 0 {
				s = 0
			}
			if s > shape[i]-1 {
				s = shape[i] - 1
			}
			src[i] = s
		}
		return a.At(src...)
	})
}
