package tensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func padInput(t *testing.T) *Dense[float64] {
	t.Helper()
	d, err := FromSlice([]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}, Shape{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestPadConstant(t *testing.T) {
	a := padInput(t)

	out, err := PadConstant[float64](a.View(), []int{2, 1}, []int{2, 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{7, 6}, out.Shape(), "padded shape")

	want := []float64{
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 1, 2, 3, 4, 0,
		0, 5, 6, 7, 8, 0,
		0, 9, 10, 11, 12, 0,
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, out.Data()); diff != "" {
		t.Errorf("pad_constant mismatch (-want +got):\n%s", diff)
	}
}

func TestPadEdge(t *testing.T) {
	a := padInput(t)

	out, err := PadEdge[float64](a.View(), []int{2, 1}, []int{2, 1})
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{7, 6}, out.Shape(), "padded shape")

	// Each border cell repeats its nearest source row/column value.
	want := []float64{
		1, 1, 2, 3, 4, 4,
		1, 1, 2, 3, 4, 4,
		1, 1, 2, 3, 4, 4,
		5, 5, 6, 7, 8, 8,
		9, 9, 10, 11, 12, 12,
		9, 9, 10, 11, 12, 12,
		9, 9, 10, 11, 12, 12,
	}
	if diff := cmp.Diff(want, out.Data()); diff != "" {
		t.Errorf("pad_edge mismatch (-want +got):\n%s", diff)
	}
}

func TestPadErrors(t *testing.T) {
	a := padInput(t)

	if _, err := PadConstant[float64](a.View(), []int{1}, []int{1}, 0); err == nil {
		t.Error("missing per-axis widths should fail")
	}
	if _, err := PadConstant[float64](a.View(), []int{-1, 0}, []int{0, 0}, 0); err == nil {
		t.Error("negative width should fail")
	}

	empty, _ := NewDense[float64](Shape{0, 2})
	if _, err := PadEdge[float64](empty.View(), []int{1, 0}, []int{0, 0}); err == nil {
		t.Error("edge padding an empty axis should fail")
	}
}
