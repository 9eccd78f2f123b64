package tensor

// Zeros creates a row-major tensor filled with zeros.
//
// Example:
//
//	t, _ := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T Scalar](shape Shape) (*Dense[T], error) {
	return NewDense[T](shape)
}

// Ones creates a row-major tensor filled with ones.
func Ones[T Scalar](shape Shape) (*Dense[T], error) {
	return Full[T](shape, 1)
}

// Full creates a row-major tensor filled with value.
//
// Example:
//
//	t, _ := tensor.Full[float64](tensor.Shape{3, 3}, 3.14)
func Full[T Scalar](shape Shape, value T) (*Dense[T], error) {
	d, err := NewDense[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = value
	}
	return d, nil
}

// Arange creates a 1-D tensor with n values start, start+step, ...
//
// Example:
//
//	t, _ := tensor.Arange[int32](0, 1, 10) // [0, 1, 2, ..., 9]
func Arange[T Scalar](start, step T, n int) (*Dense[T], error) {
	d, err := NewDense[T](Shape{n})
	if err != nil {
		return nil, err
	}
	v := start
	for i := range d.data {
		d.data[i] = v
		v += step
	}
	return d, nil
}

// Linspace creates a 1-D tensor of n evenly spaced values from start to
// stop inclusive. Only meaningful for float element types.
func Linspace[T Float](start, stop T, n int) (*Dense[T], error) {
	d, err := NewDense[T](Shape{n})
	if err != nil {
		return nil, err
	}
	if n == 1 {
		d.data[0] = start
		return d, nil
	}
	step := (stop - start) / T(n-1)
	for i := range d.data {
		d.data[i] = start + T(i)*step
	}
	return d, nil
}

// Eye creates an n×n identity tensor.
func Eye[T Scalar](n int) (*Dense[T], error) {
	d, err := NewDense[T](Shape{n, n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}
	return d, nil
}

// ScalarOf wraps a single value as a rank-0 tensor. Broadcasting it to a
// shape S yields a view with stride 0 on every axis, so all logical
// positions alias the one physical slot.
func ScalarOf[T Scalar](v T) *Dense[T] {
	return &Dense[T]{data: []T{v}, shape: Shape{}, layout: RowMajor}
}
