package tensor

// BroadcastShapes computes the common shape of two or more shapes.
//
// All inputs must share the same rank: this library does not pad shorter
// shapes with leading-1 axes the way NumPy does, it rejects mismatched
// ranks outright. Per axis, all operand sizes must be equal, or every
// dissenting operand must have size 1 (the non-1 size wins). Two or more
// distinct sizes above 1 on one axis fail with a *BroadcastError naming
// every operand shape — before any element is touched.
//
// Examples:
//
//	BroadcastShapes({3, 1}, {3, 5}) → {3, 5}
//	BroadcastShapes({1, 5}, {3, 1}) → {3, 5}
//	BroadcastShapes({3, 4}, {3, 5}) → error
//	BroadcastShapes({3, 4}, {3, 4, 1}) → error (rank mismatch)
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	if len(shapes) == 0 {
		return Shape{}, nil
	}
	rank := shapes[0].Rank()
	for _, s := range shapes[1:] {
		if s.Rank() != rank {
			return nil, &BroadcastError{Shapes: cloneShapes(shapes)}
		}
	}
	out := make(Shape, rank)
	for axis := 0; axis < rank; axis++ {
		size := 1
		for _, s := range shapes {
			switch {
			case s[axis] == size || s[axis] == 1:
			case size == 1:
				size = s[axis]
			default:
				return nil, &BroadcastError{Shapes: cloneShapes(shapes)}
			}
		}
		out[axis] = size
	}
	return out, nil
}

func cloneShapes(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Clone()
	}
	return out
}

// BroadcastTo produces a view of v with the given shape. Axes where the
// source size is 1 and the target size is larger get stride 0, so every
// logical position along them aliases the one physical slot. Axes with
// equal sizes keep their stride. Any other mismatch is a *BroadcastError.
//
// As a degenerate case a rank-0 (scalar) view broadcasts to any shape,
// with stride 0 on every axis. BroadcastTo never allocates.
func BroadcastTo[T Scalar](v *View[T], shape Shape) (*View[T], error) {
	v.check()
	if v.Rank() == 0 {
		strides := make([]int, shape.Rank())
		return v.derive(v.off, shape.Clone(), strides), nil
	}
	if v.Rank() != shape.Rank() {
		return nil, &BroadcastError{Shapes: []Shape{v.shape.Clone(), shape.Clone()}}
	}
	strides := make([]int, shape.Rank())
	for i := range shape {
		switch {
		case v.shape[i] == shape[i]:
			strides[i] = v.strides[i]
		case v.shape[i] == 1:
			strides[i] = 0
		default:
			return nil, &BroadcastError{Shapes: []Shape{v.shape.Clone(), shape.Clone()}}
		}
	}
	return v.derive(v.off, shape.Clone(), strides), nil
}
