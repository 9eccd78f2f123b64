// Package numeric provides small numerical-methods utilities: central
// finite-difference derivatives, fixed-partition quadrature in one to
// three dimensions and single-step ODE integrators.
package numeric

import "fmt"

// Order selects the truncation order of a finite-difference stencil.
type Order int

const (
	// Order2 is the 3-point central stencil, error O(h²).
	Order2 Order = 2
	// Order4 is the 5-point central stencil, error O(h⁴).
	Order4 Order = 4
)

// Weights returns the central finite-difference weights for the first
// derivative at the given order, normalized so the derivative is the
// weighted sum of samples divided by h. The stencil is symmetric around
// the evaluation point.
func Weights(order Order) ([]float64, error) {
	switch order {
	case Order2:
		return []float64{-1.0 / 2, 0, 1.0 / 2}, nil
	case Order4:
		return []float64{1.0 / 12, -2.0 / 3, 0, 2.0 / 3, -1.0 / 12}, nil
	default:
		return nil, fmt.Errorf("numeric: unsupported stencil order %d", order)
	}
}

// Derivative estimates f'(x) with a central finite difference of the
// given order and step h.
func Derivative(f func(float64) float64, x, h float64, order Order) (float64, error) {
	if h <= 0 {
		return 0, fmt.Errorf("numeric: step must be positive, got %g", h)
	}
	w, err := Weights(order)
	if err != nil {
		return 0, err
	}
	half := len(w) / 2
	var d float64
	for i, wi := range w {
		if wi == 0 {
			continue
		}
		d += wi * f(x+float64(i-half)*h)
	}
	return d / h, nil
}

// Trapezoid integrates f over [a, b] with n equal subintervals using the
// composite trapezoid rule.
func Trapezoid(f func(float64) float64, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("numeric: need at least 1 subinterval, got %d", n)
	}
	h := (b - a) / float64(n)
	s := (f(a) + f(b)) / 2
	for i := 1; i < n; i++ {
		s += f(a + float64(i)*h)
	}
	return s * h, nil
}

// Simpson integrates f over [a, b] with n equal subintervals using the
// composite Simpson rule. n must be even.
func Simpson(f func(float64) float64, a, b float64, n int) (float64, error) {
	if n < 2 || n%2 != 0 {
		return 0, fmt.Errorf("numeric: Simpson needs an even subinterval count >= 2, got %d", n)
	}
	h := (b - a) / float64(n)
	s := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			s += 4 * f(x)
		} else {
			s += 2 * f(x)
		}
	}
	return s * h / 3, nil
}

// Double integrates f over the rectangle [ax, bx] × [ay, by] with
// nx × ny trapezoid partitions.
func Double(f func(x, y float64) float64, ax, bx, ay, by float64, nx, ny int) (float64, error) {
	inner := func(x float64) float64 {
		v, _ := Trapezoid(func(y float64) float64 { return f(x, y) }, ay, by, ny)
		return v
	}
	if ny < 1 {
		return 0, fmt.Errorf("numeric: need at least 1 subinterval, got %d", ny)
	}
	return Trapezoid(inner, ax, bx, nx)
}

// Triple integrates f over the box [ax, bx] × [ay, by] × [az, bz] with
// nx × ny × nz trapezoid partitions.
func Triple(f func(x, y, z float64) float64, ax, bx, ay, by, az, bz float64, nx, ny, nz int) (float64, error) {
	inner := func(x, y float64) float64 {
		v, _ := Trapezoid(func(z float64) float64 { return f(x, y, z) }, az, bz, nz)
		return v
	}
	if nz < 1 {
		return 0, fmt.Errorf("numeric: need at least 1 subinterval, got %d", nz)
	}
	return Double(inner, ax, bx, ay, by, nx, ny)
}

// EulerStep advances y' = f(t, y) one explicit-Euler step of size h from
// (t, y).
func EulerStep(f func(t, y float64) float64, t, y, h float64) float64 {
	return y + h*f(t, y)
}

// RK4Step advances y' = f(t, y) one classical fourth-order Runge-Kutta
// step of size h from (t, y).
func RK4Step(f func(t, y float64) float64, t, y, h float64) float64 {
	k1 := f(t, y)
	k2 := f(t+h/2, y+h/2*k1)
	k3 := f(t+h/2, y+h/2*k2)
	k4 := f(t+h, y+h*k3)
	return y + h/6*(k1+2*k2+2*k3+k4)
}
