// Copyright 2026 The numgo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/numgo-ml/numgo/tensor"
)

// TestFacadeRoundTrip exercises construction, views, expressions and
// reduction through the public aliases.
func TestFacadeRoundTrip(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if !x.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", x.Shape())
	}

	// 2x + 1, evaluated lazily.
	e := tensor.AddScalar(tensor.MulScalar[float64](x.View(), 2), 1)
	y, err := tensor.Eval(e)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if got := y.At(1, 2); got != 13 {
		t.Errorf("At(1,2) = %v, want 13", got)
	}

	// Transposed view writes through to the owner.
	x.View().Transpose().SetAt(42, 2, 0)
	if got := x.At(0, 2); got != 42 {
		t.Errorf("At(0,2) = %v, want 42 after transposed write", got)
	}

	if got := tensor.SumOf[float64](x.View()); got != 60 {
		t.Errorf("SumOf = %v, want 60", got)
	}
}

// TestFacadeErrors verifies structured errors surface through the aliases.
func TestFacadeErrors(t *testing.T) {
	a, _ := tensor.Zeros[float32](tensor.Shape{2, 3})
	b, _ := tensor.Zeros[float32](tensor.Shape{4, 3})

	if _, err := tensor.Add[float32](a.View(), b.View()); err == nil {
		t.Fatal("Add with incompatible shapes succeeded, want *BroadcastError")
	}

	if _, err := tensor.BroadcastShapes(tensor.Shape{2}, tensor.Shape{2, 3}); err == nil {
		t.Fatal("BroadcastShapes across ranks succeeded, want *BroadcastError")
	}
}
