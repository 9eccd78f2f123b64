package tensor

import (
	"errors"
	"testing"
)

func TestReduceFull(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	sum, err := Reduce(AddOp[float64](), a.View())
	if err != nil {
		t.Fatal(err)
	}
	if sum != 21 {
		t.Errorf("sum = %v, want 21", sum)
	}

	prod, _ := Reduce(MulOp[float64](), a.View())
	if prod != 720 {
		t.Errorf("prod = %v, want 720", prod)
	}

	mx, err := Reduce(MaxOp[float64](), a.View())
	if err != nil || mx != 6 {
		t.Errorf("max = %v (%v), want 6", mx, err)
	}
}

func TestReduceEmpty(t *testing.T) {
	empty, _ := NewDense[float64](Shape{0})

	// Identity-seeded folds of an empty tensor return the identity.
	sum, err := Reduce(AddOp[float64](), empty.View())
	if err != nil || sum != 0 {
		t.Errorf("empty sum = %v (%v), want 0", sum, err)
	}

	// Identity-free folds fail.
	var eErr *EmptyReductionError
	if _, err := Reduce(MinOp[float64](), empty.View()); !errors.As(err, &eErr) {
		t.Errorf("empty min should fail with *EmptyReductionError, got %v", err)
	}
}

func TestReduceAxesShapes(t *testing.T) {
	a, _ := FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
	}, Shape{2, 3})

	byCols, err := ReduceAxes(AddOp[float64](), a.View(), 0)
	if err != nil {
		t.Fatal(err)
	}
	// Reduced axes collapse to size 1, never dropped.
	assertShape(t, Shape{1, 3}, byCols.Shape(), "reduce over axis 0")
	want := []float64{5, 7, 9}
	for i, w := range want {
		if byCols.At(0, i) != w {
			t.Errorf("col sum[%d] = %v, want %v", i, byCols.At(0, i), w)
		}
	}

	byRows, err := ReduceAxes(AddOp[float64](), a.View(), 1)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{2, 1}, byRows.Shape(), "reduce over axis 1")
	if byRows.At(0, 0) != 6 || byRows.At(1, 0) != 15 {
		t.Errorf("row sums = %v %v, want 6 15", byRows.At(0, 0), byRows.At(1, 0))
	}

	// A.sum() == reduce(add, A, 0).sum() == reduce(add, A, 1).sum()
	total := SumOf[float64](a.View())
	if SumOf[float64](byCols.View()) != total || SumOf[float64](byRows.View()) != total {
		t.Error("partial reductions must preserve the total")
	}
}

func TestReduceAxesAll(t *testing.T) {
	a, _ := FromSlice([]int64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})

	out, err := ReduceAxes(AddOp[int64](), a.View(), 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{1, 2, 1}, out.Shape(), "two-axis reduction")
	// Cell (0,0,0): 1+2+5+6; cell (0,1,0): 3+4+7+8.
	if out.At(0, 0, 0) != 14 || out.At(0, 1, 0) != 22 {
		t.Errorf("got %d %d, want 14 22", out.At(0, 0, 0), out.At(0, 1, 0))
	}
}

func TestReduceAxesErrors(t *testing.T) {
	a, _ := NewDense[float64](Shape{2, 3})

	var axisErr *AxisError
	if _, err := ReduceAxes(AddOp[float64](), a.View(), 2); !errors.As(err, &axisErr) {
		t.Errorf("bad axis should fail with *AxisError, got %v", err)
	}
	if _, err := ReduceAxes(AddOp[float64](), a.View(), 0, 0); !errors.As(err, &axisErr) {
		t.Errorf("duplicate axis should fail with *AxisError, got %v", err)
	}

	empty, _ := NewDense[float64](Shape{2, 0})
	var eErr *EmptyReductionError
	if _, err := ReduceAxes(MinOp[float64](), empty.View(), 1); !errors.As(err, &eErr) {
		t.Errorf("identity-free reduction over an empty axis should fail, got %v", err)
	}
}

func TestReduceAxesIntoResize(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	out, _ := NewDense[float64](Shape{5})

	if err := ReduceAxesInto(AddOp[float64](), a.View(), out, 1); err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{2, 1}, out.Shape(), "out resized to collapsed shape")
	if out.At(0, 0) != 3 || out.At(1, 0) != 7 {
		t.Errorf("got %v %v, want 3 7", out.At(0, 0), out.At(1, 0))
	}
}

func TestAccumulate(t *testing.T) {
	a, _ := FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
	}, Shape{2, 3})

	along1, err := Accumulate(AddOp[float64](), a.View(), 1)
	if err != nil {
		t.Fatal(err)
	}
	// Shape-preserving prefix fold: cell i holds the fold of cells 0..i.
	assertShape(t, Shape{2, 3}, along1.Shape(), "accumulate keeps the shape")
	want := []float64{1, 3, 6, 4, 9, 15}
	for i, w := range want {
		if along1.Data()[i] != w {
			t.Errorf("cumsum[%d] = %v, want %v", i, along1.Data()[i], w)
		}
	}

	along0, _ := Accumulate(AddOp[float64](), a.View(), 0)
	want = []float64{1, 2, 3, 5, 7, 9}
	for i, w := range want {
		if along0.Data()[i] != w {
			t.Errorf("cumsum axis0[%d] = %v, want %v", i, along0.Data()[i], w)
		}
	}
}

func TestApplyAlongAxis(t *testing.T) {
	a, _ := FromSlice([]float64{
		3, 1, 2,
		6, 5, 4,
	}, Shape{2, 3})

	// The function sees each line as one contiguous slice.
	spread, err := ApplyAlongAxis(func(line []float64) float64 {
		lo, hi := line[0], line[0]
		for _, v := range line[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		return hi - lo
	}, a.View(), 1)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{2, 1}, spread.Shape(), "collapsed shape")
	if spread.At(0, 0) != 2 || spread.At(1, 0) != 2 {
		t.Errorf("spread = %v %v, want 2 2", spread.At(0, 0), spread.At(1, 0))
	}
}

func TestApplyOverAxes(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})

	total, err := ApplyOverAxes(func(flat []float64) float64 {
		s := 0.0
		for _, v := range flat {
			s += v
		}
		return s
	}, a.View(), 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{2, 1, 1}, total.Shape(), "two axes collapsed")
	if total.At(0, 0, 0) != 10 || total.At(1, 0, 0) != 26 {
		t.Errorf("got %v %v, want 10 26", total.At(0, 0, 0), total.At(1, 0, 0))
	}
}

func TestMeanOf(t *testing.T) {
	a, _ := FromSlice([]float32{2, 4, 6}, Shape{3})
	m, err := MeanOf[float32](a.View())
	if err != nil || m != 4 {
		t.Errorf("mean = %v (%v), want 4", m, err)
	}

	empty, _ := NewDense[float32](Shape{0})
	if _, err := MeanOf[float32](empty.View()); err == nil {
		t.Error("mean of empty should fail")
	}
}
