// Package mathfn provides element-wise math-function wrappers over lazy
// tensor expressions. Each function returns an unevaluated expression;
// nothing is computed until the expression is materialized.
//
// float32 inputs use the native float32 kernels from
// github.com/chewxy/math32; float64 inputs use the standard library.
package mathfn

import (
	"math"
	"reflect"

	"github.com/chewxy/math32"

	"github.com/numgo-ml/numgo/tensor"
)

// lift turns a float32/float64 kernel pair into an element function for
// any Float instantiation. The kernel is picked once, not per element.
func lift[T tensor.Float](f32 func(float32) float32, f64 func(float64) float64) func(T) T {
	var zero T
	if reflect.TypeOf(zero).Kind() == reflect.Float32 {
		return func(x T) T { return T(f32(float32(x))) }
	}
	return func(x T) T { return T(f64(float64(x))) }
}

// Sin applies the sine element-wise.
func Sin[T tensor.Float](a tensor.Expr[T]) tensor.Expr[T] {
	return tensor.Map(lift[T](math32.Sin, math.Sin), a)
}

// Cos applies the cosine element-wise.
func Cos[T tensor.Float](a tensor.Expr[T]) tensor.Expr[T] {
	return tensor.Map(lift[T](math32.Cos, math.Cos), a)
}

// Tan applies the tangent element-wise.
func Tan[T tensor.Float](a tensor.Expr[T]) tensor.Expr[T] {
	return tensor.Map(lift[T](math32.Tan, math.Tan), a)
}

// Exp applies the natural exponential element-wise.
func Exp[T tensor.Float](a tensor.Expr[T]) tensor.Expr[T] {
	return tensor.Map(lift[T](math32.Exp, math.Exp), a)
}

// Log applies the natural logarithm element-wise.
func Log[T tensor.Float](a tensor.Expr[T]) tensor.Expr[T] {
	return tensor.Map(lift[T](math32.Log, math.Log), a)
}

// Sqrt applies the square root element-wise.
func Sqrt[T tensor.Float](a tensor.Expr[T]) tensor.Expr[T] {
	return tensor.Map(lift[T](math32.Sqrt, math.Sqrt), a)
}

// Abs applies the absolute value element-wise.
func Abs[T tensor.Float](a tensor.Expr[T]) tensor.Expr[T] {
	return tensor.Map(lift[T](math32.Abs, math.Abs), a)
}

// Pow raises every element of a to the power p.
func Pow[T tensor.Float](a tensor.Expr[T], p T) tensor.Expr[T] {
	f := lift[T](
		func(x float32) float32 { return math32.Pow(x, float32(p)) },
		func(x float64) float64 { return math.Pow(x, float64(p)) },
	)
	return tensor.Map(f, a)
}

// Clamp limits every element of a to [lo, hi].
func Clamp[T tensor.Float](a tensor.Expr[T], lo, hi T) tensor.Expr[T] {
	return tensor.Map(func(x T) T {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}, a)
}
