package tensor

import (
	"errors"
	"math"
	"testing"
)

func TestNewDense(t *testing.T) {
	d, err := NewDense[float32](Shape{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{2, 3}, d.Shape(), "shape")
	if d.Size() != 6 {
		t.Errorf("Size() = %d, want 6", d.Size())
	}
	for _, v := range d.Data() {
		if v != 0 {
			t.Fatal("fresh tensor must be zero-filled")
		}
	}
}

func TestNewDenseInvalidShape(t *testing.T) {
	if _, err := NewDense[float32](Shape{2, -1}); err == nil {
		t.Error("negative axis size should fail")
	}

	var allocErr *AllocError
	_, err := NewDense[float64](Shape{1 << 21, 1 << 21})
	if !errors.As(err, &allocErr) {
		t.Errorf("oversized allocation should fail with *AllocError, got %v", err)
	}
}

func TestFromSlice(t *testing.T) {
	d, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if d.At(1, 2) != 6 {
		t.Errorf("At(1,2) = %d, want 6", d.At(1, 2))
	}

	if _, err := FromSlice([]int32{1, 2}, Shape{2, 3}); err == nil {
		t.Error("length mismatch should fail")
	}
}

func TestFromSliceFinite(t *testing.T) {
	if _, err := FromSliceFinite([]float64{1, 2, 3}, Shape{3}); err != nil {
		t.Errorf("finite data should pass: %v", err)
	}

	var nfErr *NonFiniteError
	_, err := FromSliceFinite([]float64{1, math.NaN(), 3}, Shape{3})
	if !errors.As(err, &nfErr) {
		t.Fatalf("NaN should fail with *NonFiniteError, got %v", err)
	}
	if nfErr.Index != 1 {
		t.Errorf("error index = %d, want 1", nfErr.Index)
	}

	if _, err := FromSliceFinite([]float32{float32(math.Inf(1))}, Shape{1}); err == nil {
		t.Error("infinity should fail")
	}
}

func TestDenseColMajor(t *testing.T) {
	d, err := NewDenseLayout[int64](Shape{2, 3}, ColMajor)
	if err != nil {
		t.Fatal(err)
	}
	strides := d.Strides()
	if strides[0] != 1 || strides[1] != 2 {
		t.Errorf("col-major strides = %v, want [1 2]", strides)
	}

	d.SetAt(7, 1, 2)
	if d.Data()[5] != 7 {
		t.Errorf("col-major (1,2) should land at flat 5, data = %v", d.Data())
	}
}

func TestDenseAtPanics(t *testing.T) {
	d, _ := NewDense[float64](Shape{2, 3})

	assertPanicsWith[*RangeError](t, func() { d.At(2, 0) }, "out-of-bounds At")
	assertPanicsWith[*ShapeError](t, func() { d.At(1) }, "rank-mismatched At")
}

// assertPanicsWith runs f and checks it panics with an error of type E.
func assertPanicsWith[E error](t *testing.T, f func(), msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected panic", msg)
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Errorf("%s: panic value %v is not an error", msg, r)
			return
		}
		var want E
		if !errors.As(err, &want) {
			t.Errorf("%s: panic error %v has wrong type", msg, err)
		}
	}()
	f()
}

func TestDenseClone(t *testing.T) {
	d, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	c := d.Clone()

	if !c.Equal(d) {
		t.Fatal("clone must equal the original")
	}

	c.SetAt(99, 0, 0)
	if d.At(0, 0) == 99 {
		t.Error("clone must not alias the original's storage")
	}

	// copy(copy(T)) is element-wise equal to T.
	if !c.Clone().Equal(c) {
		t.Error("double clone must preserve elements")
	}
}

func TestDenseResizePrefix(t *testing.T) {
	d, _ := FromSlice([]int32{
		1, 2, 3,
		4, 5, 6,
	}, Shape{2, 3})

	if err := d.Resize(Shape{3, 2}); err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{3, 2}, d.Shape(), "resized shape")

	// With equal rank the per-axis overlap block (2x2 here) survives.
	want := [][]int32{{1, 2}, {4, 5}, {0, 0}}
	for i := range want {
		for j := range want[i] {
			if d.At(i, j) != want[i][j] {
				t.Errorf("At(%d,%d) = %d, want %d", i, j, d.At(i, j), want[i][j])
			}
		}
	}
}

func TestDenseResizeFlatPrefix(t *testing.T) {
	d, _ := FromSlice([]int32{1, 2, 3, 4}, Shape{4})
	if err := d.Resize(Shape{2, 3}); err != nil {
		t.Fatal(err)
	}
	got := d.Data()
	want := []int32{1, 2, 3, 4, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("data[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFromFunc(t *testing.T) {
	d, err := FromFunc(Shape{3, 3}, func(idx []int) int64 {
		return int64(idx[0]*10 + idx[1])
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.At(2, 1) != 21 {
		t.Errorf("At(2,1) = %d, want 21", d.At(2, 1))
	}
}

func TestCreationHelpers(t *testing.T) {
	ones, _ := Ones[float32](Shape{2, 2})
	if SumOf[float32](ones.View()) != 4 {
		t.Error("Ones should sum to the element count")
	}

	ar, _ := Arange[int32](3, 2, 4)
	want := []int32{3, 5, 7, 9}
	for i, w := range want {
		if ar.Data()[i] != w {
			t.Errorf("Arange[%d] = %d, want %d", i, ar.Data()[i], w)
		}
	}

	lin, _ := Linspace(0.0, 1.0, 5)
	if math.Abs(lin.Data()[3]-0.75) > 1e-12 {
		t.Errorf("Linspace[3] = %v, want 0.75", lin.Data()[3])
	}

	eye, _ := Eye[float64](3)
	if eye.At(1, 1) != 1 || eye.At(0, 1) != 0 {
		t.Error("Eye must have ones on the diagonal only")
	}

	s := ScalarOf(int64(5))
	if s.Rank() != 0 || s.Item() != 5 {
		t.Errorf("ScalarOf: rank %d item %d", s.Rank(), s.Item())
	}
}
