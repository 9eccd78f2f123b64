package tensor

import (
	"fmt"
	"strings"
)

// BroadcastError reports operand shapes that violate the equal-or-one
// per-axis broadcasting rule, or a rank mismatch between operands.
type BroadcastError struct {
	Shapes []Shape
}

func (e *BroadcastError) Error() string {
	parts := make([]string, len(e.Shapes))
	for i, s := range e.Shapes {
		parts[i] = s.String()
	}
	return fmt.Sprintf("operands could not be broadcast together with shapes %s",
		strings.Join(parts, " "))
}

// ShapeError reports an operation whose operand or output shape does not
// match the required shape.
type ShapeError struct {
	Op   string
	Want Shape
	Got  Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: want %s, got %s", e.Op, e.Want, e.Got)
}

// AxisError reports an axis outside the valid range for a tensor's rank,
// or an axis-targeted operation applied to an unsuitable axis.
type AxisError struct {
	Op   string
	Axis int
	Rank int
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("%s: axis %d out of range for rank %d", e.Op, e.Axis, e.Rank)
}

// RangeError reports an index outside an axis bound, or a flat index
// outside the tensor's size when Flat is set.
type RangeError struct {
	Axis  int
	Index int
	Size  int
	Flat  bool
}

func (e *RangeError) Error() string {
	if e.Flat {
		return fmt.Sprintf("flat index %d out of range for size %d", e.Index, e.Size)
	}
	return fmt.Sprintf("index %d out of range for axis %d (size %d)", e.Index, e.Axis, e.Size)
}

// EmptyReductionError reports a fold over zero elements with an operation
// that declares no identity.
type EmptyReductionError struct {
	Op string
}

func (e *EmptyReductionError) Error() string {
	return fmt.Sprintf("%s: reduction over zero elements with no identity", e.Op)
}

// AllocError reports a failed or nonsensical owning-storage allocation.
// Views and broadcasts never allocate and therefore never fail this way.
type AllocError struct {
	Elems int
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("cannot allocate tensor storage for %d elements", e.Elems)
}

// NonFiniteError reports a NaN or infinity discovered by a
// finiteness-checked constructor.
type NonFiniteError struct {
	Index int
	Value float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("non-finite value %v at flat index %d", e.Value, e.Index)
}

// StaleViewError reports use of a view after its owning tensor was resized.
// The owner's buffer may have been reallocated; the view no longer aliases it.
type StaleViewError struct{}

func (e *StaleViewError) Error() string {
	return "view used after its owner was resized"
}
