// Copyright 2026 The numgo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/numgo-ml/numgo/internal/tensor"
)

// Type aliases for public API

// Scalar is the constraint for tensor element types.
// Supported kinds: uint8, uint16, int32, int64, float32, float64.
type Scalar = tensor.Scalar

// Float is the floating-point subset of Scalar.
type Float = tensor.Float

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} is a 3-D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Layout selects the memory order of an owning tensor.
type Layout = tensor.Layout

// Memory layout constants.
const (
	RowMajor Layout = tensor.RowMajor
	ColMajor Layout = tensor.ColMajor
)

// Dense is an owning tensor: it holds its buffer and its shape.
type Dense[T Scalar] = tensor.Dense[T]

// View is a non-owning window over a Dense buffer, described by an
// offset, a shape and per-axis strides.
type View[T Scalar] = tensor.View[T]

// Indirect is a tensor addressed through an explicit index list into a
// base view.
type Indirect[T Scalar] = tensor.Indirect[T]

// Expr is a lazy element-wise expression: anything with a shape that can
// produce the element at a multi-index.
type Expr[T Scalar] = tensor.Expr[T]

// ReduceOp pairs a binary fold with its identity, when one exists.
type ReduceOp[T Scalar] = tensor.ReduceOp[T]

// Structured error types.
type (
	BroadcastError      = tensor.BroadcastError
	ShapeError          = tensor.ShapeError
	AxisError           = tensor.AxisError
	RangeError          = tensor.RangeError
	EmptyReductionError = tensor.EmptyReductionError
	AllocError          = tensor.AllocError
	NonFiniteError      = tensor.NonFiniteError
	StaleViewError      = tensor.StaleViewError
)

// Shape helpers

// ShapeCat concatenates two shapes.
func ShapeCat(a, b Shape) Shape { return tensor.ShapeCat(a, b) }

// RavelIndex converts a multi-index to a flat offset under the given
// shape and layout.
func RavelIndex(index []int, shape Shape, layout Layout) (int, error) {
	return tensor.RavelIndex(index, shape, layout)
}

// UnravelIndex converts a flat offset back to a multi-index. It is the
// inverse of RavelIndex for the same shape and layout.
func UnravelIndex(flat int, shape Shape, layout Layout) ([]int, error) {
	return tensor.UnravelIndex(flat, shape, layout)
}

// BroadcastShapes resolves the common shape of the given shapes, or
// reports *BroadcastError when they are incompatible.
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return tensor.BroadcastShapes(shapes...)
}

// Construction

// NewDense allocates a zeroed row-major tensor of the given shape.
func NewDense[T Scalar](shape Shape) (*Dense[T], error) {
	return tensor.NewDense[T](shape)
}

// NewDenseLayout allocates a zeroed tensor with an explicit layout.
func NewDenseLayout[T Scalar](shape Shape, layout Layout) (*Dense[T], error) {
	return tensor.NewDenseLayout[T](shape, layout)
}

// FromSlice builds a tensor from a flat row-major slice. The data is
// copied; len(data) must equal shape.Size().
func FromSlice[T Scalar](data []T, shape Shape) (*Dense[T], error) {
	return tensor.FromSlice(data, shape)
}

// FromSliceFinite is FromSlice with a finiteness check on floating-point
// input: NaN or Inf elements are rejected with *NonFiniteError.
func FromSliceFinite[T Scalar](data []T, shape Shape) (*Dense[T], error) {
	return tensor.FromSliceFinite(data, shape)
}

// FromFunc builds a tensor by calling f at every multi-index.
func FromFunc[T Scalar](shape Shape, f func(index []int) T) (*Dense[T], error) {
	return tensor.FromFunc(shape, f)
}

// Zeros returns a tensor filled with the zero value.
func Zeros[T Scalar](shape Shape) (*Dense[T], error) { return tensor.Zeros[T](shape) }

// Ones returns a tensor filled with one.
func Ones[T Scalar](shape Shape) (*Dense[T], error) { return tensor.Ones[T](shape) }

// Full returns a tensor filled with value.
func Full[T Scalar](shape Shape, value T) (*Dense[T], error) { return tensor.Full(shape, value) }

// Arange returns the 1-D tensor {start, start+step, ...} of length n.
func Arange[T Scalar](start, step T, n int) (*Dense[T], error) {
	return tensor.Arange(start, step, n)
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace[T Float](start, stop T, n int) (*Dense[T], error) {
	return tensor.Linspace(start, stop, n)
}

// Eye returns the n×n identity matrix.
func Eye[T Scalar](n int) (*Dense[T], error) { return tensor.Eye[T](n) }

// ScalarOf wraps a single value as a rank-0 tensor. Rank-0 tensors
// broadcast against any shape.
func ScalarOf[T Scalar](v T) *Dense[T] { return tensor.ScalarOf(v) }

// Broadcasting and views

// BroadcastTo expands a view to the target shape using stride-0 axes.
// No data is copied; expanded axes alias a single source element.
func BroadcastTo[T Scalar](v *View[T], shape Shape) (*View[T], error) {
	return tensor.BroadcastTo(v, shape)
}

// Expressions

// Map applies f lazily to every element of a.
func Map[T Scalar](f func(T) T, a Expr[T]) Expr[T] { return tensor.Map(f, a) }

// Zip applies f lazily to broadcast-aligned element pairs of a and b.
func Zip[T Scalar](f func(a, b T) T, a, b Expr[T]) (Expr[T], error) {
	return tensor.Zip(f, a, b)
}

// Outer builds the lazy outer product of a and b under f; its shape is
// the concatenation of the operand shapes.
func Outer[T Scalar](f func(a, b T) T, a, b Expr[T]) Expr[T] {
	return tensor.Outer(f, a, b)
}

// Element-wise arithmetic. The binary forms broadcast their operands and
// fail at construction when the shapes are incompatible.

func Add[T Scalar](a, b Expr[T]) (Expr[T], error) { return tensor.Add(a, b) }
func Sub[T Scalar](a, b Expr[T]) (Expr[T], error) { return tensor.Sub(a, b) }
func Mul[T Scalar](a, b Expr[T]) (Expr[T], error) { return tensor.Mul(a, b) }
func Div[T Scalar](a, b Expr[T]) (Expr[T], error) { return tensor.Div(a, b) }

func Neg[T Scalar](a Expr[T]) Expr[T]            { return tensor.Neg(a) }
func AddScalar[T Scalar](a Expr[T], v T) Expr[T] { return tensor.AddScalar(a, v) }
func SubScalar[T Scalar](a Expr[T], v T) Expr[T] { return tensor.SubScalar(a, v) }
func MulScalar[T Scalar](a Expr[T], v T) Expr[T] { return tensor.MulScalar(a, v) }
func DivScalar[T Scalar](a Expr[T], v T) Expr[T] { return tensor.DivScalar(a, v) }

// Evaluation

// Eval materializes an expression into a fresh row-major tensor.
func Eval[T Scalar](e Expr[T]) (*Dense[T], error) { return tensor.Eval(e) }

// EvalInto materializes an expression into out, resizing out to the
// expression's shape first when they differ.
func EvalInto[T Scalar](e Expr[T], out *Dense[T]) error { return tensor.EvalInto(e, out) }

// AssignTo materializes an expression through a view. The shapes must
// match exactly; views never resize.
func AssignTo[T Scalar](e Expr[T], out *View[T]) error { return tensor.AssignTo(e, out) }

// Indirect indexing

// NewIndirect builds an indirect tensor over base from an explicit
// multi-index list. All indices are validated up front.
func NewIndirect[T Scalar](base *View[T], indices [][]int) (*Indirect[T], error) {
	return tensor.NewIndirect(base, indices)
}

// Take gathers base elements at the given indices into a fresh 1-D tensor.
func Take[T Scalar](base *View[T], indices [][]int) (*Dense[T], error) {
	return tensor.Take(base, indices)
}

// Put scatters values into base at the given indices. When an index
// repeats, the last write wins.
func Put[T Scalar](base *View[T], indices [][]int, values []T) error {
	return tensor.Put(base, indices, values)
}

// MaskIndices returns, in row-major order, the multi-indices of the
// elements of a for which pred holds.
func MaskIndices[T Scalar](a Expr[T], pred func(T) bool) [][]int {
	return tensor.MaskIndices(a, pred)
}

// Nonzero returns the multi-indices of the nonzero elements of a.
func Nonzero[T Scalar](a Expr[T]) [][]int { return tensor.Nonzero(a) }

// Reductions

// Built-in reduction operators.
func AddOp[T Scalar]() ReduceOp[T] { return tensor.AddOp[T]() }
func MulOp[T Scalar]() ReduceOp[T] { return tensor.MulOp[T]() }
func MinOp[T Scalar]() ReduceOp[T] { return tensor.MinOp[T]() }
func MaxOp[T Scalar]() ReduceOp[T] { return tensor.MaxOp[T]() }

// Reduce folds every element of a with op in row-major order.
func Reduce[T Scalar](op ReduceOp[T], a Expr[T]) (T, error) { return tensor.Reduce(op, a) }

// ReduceAxes folds a over the given axes; reduced axes collapse to
// size 1, so the result keeps a's rank.
func ReduceAxes[T Scalar](op ReduceOp[T], a Expr[T], axes ...int) (*Dense[T], error) {
	return tensor.ReduceAxes(op, a, axes...)
}

// ReduceAxesInto is ReduceAxes into a caller-supplied output tensor.
func ReduceAxesInto[T Scalar](op ReduceOp[T], a Expr[T], out *Dense[T], axes ...int) error {
	return tensor.ReduceAxesInto(op, a, out, axes...)
}

// Accumulate computes the running fold of a along axis; the result has
// a's shape.
func Accumulate[T Scalar](op ReduceOp[T], a Expr[T], axis int) (*Dense[T], error) {
	return tensor.Accumulate(op, a, axis)
}

// AccumulateInto is Accumulate into a caller-supplied output tensor.
func AccumulateInto[T Scalar](op ReduceOp[T], a Expr[T], out *Dense[T], axis int) error {
	return tensor.AccumulateInto(op, a, out, axis)
}

// ApplyAlongAxis maps each 1-D line of a along axis to one value of the
// result through f.
func ApplyAlongAxis[T Scalar](f func(line []T) T, a Expr[T], axis int) (*Dense[T], error) {
	return tensor.ApplyAlongAxis(f, a, axis)
}

// ApplyAlongAxisInto is ApplyAlongAxis into a caller-supplied output.
func ApplyAlongAxisInto[T Scalar](f func(line []T) T, a Expr[T], out *Dense[T], axis int) error {
	return tensor.ApplyAlongAxisInto(f, a, out, axis)
}

// ApplyOverAxes maps each sub-block of a spanned by the given axes to
// one value of the result through f. The block is passed to f as a
// contiguous row-major slice.
func ApplyOverAxes[T Scalar](f func(flat []T) T, a Expr[T], axes ...int) (*Dense[T], error) {
	return tensor.ApplyOverAxes(f, a, axes...)
}

// ApplyOverAxesInto is ApplyOverAxes into a caller-supplied output.
func ApplyOverAxesInto[T Scalar](f func(flat []T) T, a Expr[T], out *Dense[T], axes ...int) error {
	return tensor.ApplyOverAxesInto(f, a, out, axes...)
}

// Whole-tensor convenience reductions.

func SumOf[T Scalar](a Expr[T]) T          { return tensor.SumOf(a) }
func ProdOf[T Scalar](a Expr[T]) T         { return tensor.ProdOf(a) }
func MinOf[T Scalar](a Expr[T]) (T, error) { return tensor.MinOf(a) }
func MaxOf[T Scalar](a Expr[T]) (T, error) { return tensor.MaxOf(a) }
func MeanOf[T Float](a Expr[T]) (T, error) { return tensor.MeanOf(a) }

// Sorting and searching

// Sort orders each 1-D line of v along axis in place under less.
func Sort[T Scalar](v *View[T], axis int, less func(a, b T) bool, stable bool) error {
	return tensor.Sort(v, axis, less, stable)
}

// Partition rearranges each line of v along axis in place so the kth
// element is in its sorted position, smaller elements before it and
// larger ones after.
func Partition[T Scalar](v *View[T], axis, kth int, less func(a, b T) bool) error {
	return tensor.Partition(v, axis, kth, less)
}

// Argsort returns, per line along axis, the multi-indices that would
// sort a. Indexing a through the result yields the sorted order.
func Argsort[T Scalar](a Expr[T], axis int, less func(x, y T) bool, stable bool) ([][]int, error) {
	return tensor.Argsort(a, axis, less, stable)
}

// ArgsortAll returns the multi-indices that order all elements of a
// globally.
func ArgsortAll[T Scalar](a Expr[T], less func(x, y T) bool, stable bool) [][]int {
	return tensor.ArgsortAll(a, less, stable)
}

// ArgPartition is the index-producing form of Partition.
func ArgPartition[T Scalar](a Expr[T], axis, kth int, less func(x, y T) bool) ([][]int, error) {
	return tensor.ArgPartition(a, axis, kth, less)
}

// Reverse flips v along axis in place.
func Reverse[T Scalar](v *View[T], axis int) error { return tensor.Reverse(v, axis) }

// Rotate cyclically shifts v along axis in place so the element at
// position shift becomes the first.
func Rotate[T Scalar](v *View[T], shift, axis int) error { return tensor.Rotate(v, shift, axis) }

// Padding

// PadConstant embeds a in a larger tensor filled with value, with the
// given margins before and after each axis.
func PadConstant[T Scalar](a Expr[T], before, after []int, value T) (*Dense[T], error) {
	return tensor.PadConstant(a, before, after, value)
}

// PadEdge pads a by replicating its border elements outward.
func PadEdge[T Scalar](a Expr[T], before, after []int) (*Dense[T], error) {
	return tensor.PadEdge(a, before, after)
}

// Conversion

// AsType materializes a into a tensor of element type U using Go's
// numeric conversion rules per element.
func AsType[U, T Scalar](a Expr[T]) (*Dense[U], error) { return tensor.AsType[U](a) }

// PackFloat16 materializes a float32 expression as IEEE 754 half
// precision bit patterns.
func PackFloat16(a Expr[float32]) (*Dense[uint16], error) { return tensor.PackFloat16(a) }

// UnpackFloat16 widens half precision bit patterns back to float32.
func UnpackFloat16(a Expr[uint16]) (*Dense[float32], error) { return tensor.UnpackFloat16(a) }
