package tensor

import "github.com/x448/float16"

// AsType materializes an expression into an owning tensor of another
// element type, converting each value. The source is never mutated.
//
// Example:
//
//	f, _ := tensor.FromSlice([]float64{1.5, 2.5}, tensor.Shape{2})
//	i, _ := tensor.AsType[int32](f.View())
func AsType[U, T Scalar](a Expr[T]) (*Dense[U], error) {
	out, err := NewDense[U](a.Shape())
	if err != nil {
		return nil, err
	}
	strides := out.Strides()
	it := newIndexIter(out.shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		out.data[offsetOf(idx, strides)] = U(a.At(idx...))
	}
	return out, nil
}

// PackFloat16 converts a float32 expression into IEEE 754 half-precision
// bit patterns for compact storage. Values outside the float16 range
// round to infinity per the IEEE rules.
func PackFloat16(a Expr[float32]) (*Dense[uint16], error) {
	out, err := NewDense[uint16](a.Shape())
	if err != nil {
		return nil, err
	}
	strides := out.Strides()
	it := newIndexIter(out.shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		out.data[offsetOf(idx, strides)] = float16.Fromfloat32(a.At(idx...)).Bits()
	}
	return out, nil
}

// UnpackFloat16 converts half-precision bit patterns back to float32.
func UnpackFloat16(a Expr[uint16]) (*Dense[float32], error) {
	out, err := NewDense[float32](a.Shape())
	if err != nil {
		return nil, err
	}
	strides := out.Strides()
	it := newIndexIter(out.shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		out.data[offsetOf(idx, strides)] = float16.Frombits(a.At(idx...)).Float32()
	}
	return out, nil
}
