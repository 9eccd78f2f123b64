package tensor

import (
	"fmt"
	"strings"
)

// Layout selects the memory order used to derive strides and the default
// iteration order. It never affects the logical shape.
type Layout int

// Supported memory layouts.
const (
	// RowMajor stores the last axis contiguously (C order).
	RowMajor Layout = iota
	// ColMajor stores the first axis contiguously (Fortran order).
	ColMajor
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// Shape represents the dimensions of a tensor: an ordered tuple of
// non-negative axis sizes.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Size returns the total number of elements: the product of all axis
// sizes. A shape containing a zero axis has size 0; the empty shape is a
// scalar with size 1.
func (s Shape) Size() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every axis size is non-negative. Zero-sized axes
// are legal: they describe empty tensors.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at axis %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes have equal rank and equal per-axis sizes.
// Mismatched rank means not equal, never an error.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Transpose returns a new Shape with the axis order reversed. It is a
// value, not a view: deriving a transposed view of data is View.Transpose.
func (s Shape) Transpose() Shape {
	out := make(Shape, len(s))
	for i, dim := range s {
		out[len(s)-1-i] = dim
	}
	return out
}

// ShapeCat concatenates two shapes axis-wise into one of combined rank.
// The result of an outer product over shapes a and b has shape ShapeCat(a, b).
func ShapeCat(a, b Shape) Shape {
	out := make(Shape, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// String formats the shape as "(2, 3, 4)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprintf("%d", dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Strides derives the per-axis element strides for the given layout.
// Row-major: stride[last] = 1, stride[i] = stride[i+1] * shape[i+1].
// Col-major reverses the recurrence.
func (s Shape) Strides(layout Layout) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	if layout == RowMajor {
		strides[len(s)-1] = 1
		for i := len(s) - 2; i >= 0; i-- {
			strides[i] = strides[i+1] * s[i+1]
		}
	} else {
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
	}
	return strides
}

// RavelIndex maps a multi-index to the flat scalar index of the element in
// the given layout. It is the inverse of UnravelIndex.
func RavelIndex(index []int, shape Shape, layout Layout) (int, error) {
	if len(index) != len(shape) {
		return 0, &ShapeError{Op: "RavelIndex", Want: shape, Got: Shape(index)}
	}
	strides := shape.Strides(layout)
	flat := 0
	for i, idx := range index {
		if idx < 0 || idx >= shape[i] {
			return 0, &RangeError{Axis: i, Index: idx, Size: shape[i]}
		}
		flat += idx * strides[i]
	}
	return flat, nil
}

// UnravelIndex maps a flat scalar index back to the multi-index of the
// element in the given layout. It is the inverse of RavelIndex.
func UnravelIndex(flat int, shape Shape, layout Layout) ([]int, error) {
	size := shape.Size()
	if flat < 0 || flat >= size {
		return nil, &RangeError{Index: flat, Size: size, Flat: true}
	}
	index := make([]int, len(shape))
	if layout == RowMajor {
		for i := len(shape) - 1; i >= 0; i-- {
			index[i] = flat % shape[i]
			flat /= shape[i]
		}
	} else {
		for i := 0; i < len(shape); i++ {
			index[i] = flat % shape[i]
			flat /= shape[i]
		}
	}
	return index, nil
}

// checkAxis normalizes a possibly negative axis (-1 = last) and validates
// it against the rank.
func checkAxis(op string, axis, rank int) (int, error) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, &AxisError{Op: op, Axis: axis, Rank: rank}
	}
	return axis, nil
}
