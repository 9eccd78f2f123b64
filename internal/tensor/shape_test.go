package tensor

import (
	"errors"
	"testing"
)

func assertShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestShapeSize(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
		{Shape{3, 0, 4}, 0},
	}

	for _, tt := range tests {
		if got := tt.shape.Size(); got != tt.expected {
			t.Errorf("Shape%v.Size() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	for _, s := range []Shape{{1}, {3, 4}, {0}, {2, 0, 4}} {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}
	for _, s := range []Shape{{-1}, {3, -4}} {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should fail", s)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b     Shape
		expected bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3, 4}, Shape{3, 4, 1}, false}, // rank mismatch is not-equal, never an error
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.expected {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestShapeTranspose(t *testing.T) {
	s := Shape{2, 3, 4}
	assertShape(t, Shape{4, 3, 2}, s.Transpose(), "Transpose")
	assertShape(t, Shape{2, 3, 4}, s, "Transpose must not mutate the receiver")
}

func TestShapeCat(t *testing.T) {
	assertShape(t, Shape{2, 3, 4, 5}, ShapeCat(Shape{2, 3}, Shape{4, 5}), "ShapeCat")
	assertShape(t, Shape{2, 3}, ShapeCat(Shape{2, 3}, Shape{}), "ShapeCat with scalar")
}

func TestShapeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		layout   Layout
		expected []int
	}{
		{Shape{2, 3, 4}, RowMajor, []int{12, 4, 1}},
		{Shape{2, 3, 4}, ColMajor, []int{1, 2, 6}},
		{Shape{5}, RowMajor, []int{1}},
		{Shape{5}, ColMajor, []int{1}},
		{Shape{}, RowMajor, []int{}},
	}

	for _, tt := range tests {
		got := tt.shape.Strides(tt.layout)
		if len(got) != len(tt.expected) {
			t.Errorf("Shape%v.Strides(%v) = %v, want %v", tt.shape, tt.layout, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Shape%v.Strides(%v) = %v, want %v", tt.shape, tt.layout, got, tt.expected)
				break
			}
		}
	}
}

func TestRavelUnravelRoundTrip(t *testing.T) {
	shapes := []Shape{{6}, {2, 3}, {3, 4, 5}, {1, 7, 1, 2}, {2, 1, 3}}
	for _, shape := range shapes {
		for _, layout := range []Layout{RowMajor, ColMajor} {
			for k := 0; k < shape.Size(); k++ {
				index, err := UnravelIndex(k, shape, layout)
				if err != nil {
					t.Fatalf("UnravelIndex(%d, %v, %v): %v", k, shape, layout, err)
				}
				back, err := RavelIndex(index, shape, layout)
				if err != nil {
					t.Fatalf("RavelIndex(%v, %v, %v): %v", index, shape, layout, err)
				}
				if back != k {
					t.Errorf("round trip %d -> %v -> %d for shape %v %v", k, index, back, shape, layout)
				}
			}
		}
	}
}

func TestRavelIndexErrors(t *testing.T) {
	if _, err := RavelIndex([]int{1, 2}, Shape{3}, RowMajor); err == nil {
		t.Error("rank mismatch should fail")
	}

	_, err := RavelIndex([]int{5}, Shape{3}, RowMajor)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("out-of-bounds index should fail with *RangeError, got %v", err)
	}

	_, err = UnravelIndex(100, Shape{3, 4}, RowMajor)
	if !errors.As(err, &rangeErr) {
		t.Errorf("out-of-range flat index should fail with *RangeError, got %v", err)
	}
	if !rangeErr.Flat {
		t.Error("flat index error should carry Flat=true")
	}
}

func TestCheckAxis(t *testing.T) {
	if axis, err := checkAxis("test", -1, 3); err != nil || axis != 2 {
		t.Errorf("checkAxis(-1, 3) = %d, %v, want 2, nil", axis, err)
	}

	_, err := checkAxis("test", 3, 3)
	var axisErr *AxisError
	if !errors.As(err, &axisErr) {
		t.Errorf("checkAxis(3, 3) should fail with *AxisError, got %v", err)
	}
}
