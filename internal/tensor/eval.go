package tensor

// Eval materializes an expression into a fresh owning row-major tensor.
// Elements are computed and written in a single row-major pass.
func Eval[T Scalar](e Expr[T]) (*Dense[T], error) {
	out, err := NewDense[T](e.Shape())
	if err != nil {
		return nil, err
	}
	fill(e, out)
	return out, nil
}

// EvalInto materializes an expression into an existing owning tensor. The
// output's shape must equal the expression's shape, or the output is
// resized to match — resizing is the one sanctioned repair, and it applies
// to owning tensors only. The shape check happens before any cell is
// written, so a failure leaves out untouched.
//
// When out aliases storage the expression reads from, every cell is
// visited exactly once in row-major order and the usual aliasing caveat
// applies: make a copy first when source and destination overlap out of
// step (see the View documentation).
func EvalInto[T Scalar](e Expr[T], out *Dense[T]) error {
	if !out.shape.Equal(e.Shape()) {
		if err := out.Resize(e.Shape()); err != nil {
			return err
		}
	}
	fill(e, out)
	return nil
}

// AssignTo materializes an expression through a view. Views can never be
// resized: the view's shape must equal the expression's shape exactly,
// anything else is a *ShapeError raised before any cell is written.
func AssignTo[T Scalar](e Expr[T], out *View[T]) error {
	out.check()
	if !out.shape.Equal(e.Shape()) {
		return &ShapeError{Op: "AssignTo", Want: e.Shape(), Got: out.shape}
	}
	it := newIndexIter(out.shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		out.SetAt(e.At(idx...), idx...)
	}
	return nil
}

func fill[T Scalar](e Expr[T], out *Dense[T]) {
	strides := out.Strides()
	it := newIndexIter(out.shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		out.data[offsetOf(idx, strides)] = e.At(idx...)
	}
}
