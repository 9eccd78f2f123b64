// Package tensor provides the core N-dimensional array types and algorithms
// for the numgo engine.
package tensor

import "math"

// Scalar is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Scalar interface {
	~uint8 | ~uint16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float is a constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// isFinite reports whether v is neither NaN nor an infinity.
// Integer values are always finite.
func isFinite[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case float32:
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	default:
		return true
	}
}
