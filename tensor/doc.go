// Copyright 2026 The numgo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the numgo N-dimensional array
// engine.
//
// # Overview
//
// The package re-exports the core engine: a shape/stride model, a
// broadcasting resolver, owning tensors, zero-copy views, indirect (fancy)
// indexing and lazy element-wise expressions, plus the reduction, sorting
// and searching algorithms built on top of them.
//
// # Basic Usage
//
//	import "github.com/numgo-ml/numgo/tensor"
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//
//	    // Lazy expressions materialize only on evaluation.
//	    poly := tensor.AddScalar(tensor.MulScalar[float64](x.View(), 2), 1)
//	    y, _ := tensor.Eval(poly)
//
//	    // Views alias the owner; writes go through.
//	    x.View().Transpose().SetAt(42, 0, 1)
//	}
//
// # Broadcasting
//
// Operands broadcast per axis when sizes are equal or one of them is 1.
// Unlike NumPy, operands must share the same rank; shorter shapes are not
// padded with leading axes. Rank-0 scalars are the one exception: they
// broadcast to any shape with stride 0 on every axis.
//
//	col, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3, 1})
//	row, _ := tensor.FromSlice([]float64{10, 20}, tensor.Shape{1, 2})
//	sum, _ := tensor.Add[float64](col.View(), row.View()) // shape (3, 2)
//
// # Views and Aliasing
//
// Transpose, Slice, Diagonal, Reversed and BroadcastTo never copy: they
// produce views over the owner's buffer, including zero and negative
// strides. Mutating through a view mutates the owner. The engine enforces
// no exclusivity between overlapping handles; when the source and the
// destination of an assignment alias each other out of step, copy first:
//
//	m2 := m.View().Transpose().Materialize() // safe
//	_ = tensor.EvalInto(m2.View(), m)
//
// Resizing an owning tensor invalidates its views: later accesses through
// a stale view panic instead of touching a reallocated buffer.
//
// # Lazy Evaluation
//
// Element-wise operators, Map/Zip/Outer and the math-function wrappers
// return expressions. An expression carries only a shape and the ability
// to compute any element; nothing runs at construction beyond shape
// checks. Evaluation happens on Eval, EvalInto, AssignTo or explicit
// element reads.
//
// # Errors
//
// Shape and axis violations are reported through structured types —
// *BroadcastError, *ShapeError, *AxisError, *RangeError,
// *EmptyReductionError, *AllocError, *NonFiniteError, *StaleViewError —
// and every check fails before any output cell is written. The one
// sanctioned repair is resizing an owning output tensor to the required
// shape; views and indirect tensors never resize.
package tensor
