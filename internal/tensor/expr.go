package tensor

// Expr is the minimal read contract shared by tensors, views and deferred
// computations: a shape, and the value at any multi-index. Reading an
// expression node recomputes its operation from its operands; nothing is
// cached and no work happens at construction time. Materialization is
// explicit, through Eval, EvalInto or AssignTo.
//
// Expression nodes hold their operands as interface values, so an
// expression keeps every operand it was built from reachable until the
// expression itself is collected: a graph can never outlive a temporary
// it was built over.
type Expr[T Scalar] interface {
	Shape() Shape
	At(index ...int) T
}

// scalarExpr broadcasts one value over a shape.
type scalarExpr[T Scalar] struct {
	shape Shape
	value T
}

func (e *scalarExpr[T]) Shape() Shape      { return e.shape }
func (e *scalarExpr[T]) At(index ...int) T { return e.value }

// broadcastExpr adapts an operand to a wider common shape by pinning its
// size-1 axes to index 0. It is only built after BroadcastShapes accepted
// the operand, or around a rank-0 scalar source.
type broadcastExpr[T Scalar] struct {
	src   Expr[T]
	shape Shape
}

func (e *broadcastExpr[T]) Shape() Shape { return e.shape }

func (e *broadcastExpr[T]) At(index ...int) T {
	srcShape := e.src.Shape()
	if srcShape.Rank() == 0 {
		return e.src.At()
	}
	sub := make([]int, len(index))
	for i, idx := range index {
		if srcShape[i] == 1 {
			continue
		}
		sub[i] = idx
	}
	return e.src.At(sub...)
}

// unaryExpr applies f to one operand element-wise.
type unaryExpr[T Scalar] struct {
	src Expr[T]
	f   func(T) T
}

func (e *unaryExpr[T]) Shape() Shape      { return e.src.Shape() }
func (e *unaryExpr[T]) At(index ...int) T { return e.f(e.src.At(index...)) }

// zipExpr applies f to two broadcast-aligned operands element-wise.
type zipExpr[T Scalar] struct {
	shape Shape
	a, b  Expr[T]
	f     func(a, b T) T
}

func (e *zipExpr[T]) Shape() Shape { return e.shape }

func (e *zipExpr[T]) At(index ...int) T {
	return e.f(e.a.At(index...), e.b.At(index...))
}

// outerExpr combines every element of a with every element of b; its shape
// is the axis-wise concatenation of the operand shapes.
type outerExpr[T Scalar] struct {
	shape Shape
	a, b  Expr[T]
	f     func(a, b T) T
	split int
}

func (e *outerExpr[T]) Shape() Shape { return e.shape }

func (e *outerExpr[T]) At(index ...int) T {
	return e.f(e.a.At(index[:e.split]...), e.b.At(index[e.split:]...))
}

// adaptTo wraps e so it answers queries in the common shape's index space.
func adaptTo[T Scalar](e Expr[T], shape Shape) Expr[T] {
	if e.Shape().Equal(shape) {
		return e
	}
	return &broadcastExpr[T]{src: e, shape: shape}
}

// commonShape resolves the broadcast shape of two operands, treating
// rank-0 operands as scalars that fit any shape.
func commonShape[T Scalar](a, b Expr[T]) (Shape, error) {
	as, bs := a.Shape(), b.Shape()
	switch {
	case as.Rank() == 0:
		return bs.Clone(), nil
	case bs.Rank() == 0:
		return as.Clone(), nil
	default:
		return BroadcastShapes(as, bs)
	}
}

// Map returns a lazy expression applying f element-wise.
func Map[T Scalar](f func(T) T, a Expr[T]) Expr[T] {
	return &unaryExpr[T]{src: a, f: f}
}

// Zip returns a lazy expression applying f element-wise over the broadcast
// shape of a and b. Incompatible shapes fail here, at construction, before
// any element is read.
func Zip[T Scalar](f func(a, b T) T, a, b Expr[T]) (Expr[T], error) {
	shape, err := commonShape(a, b)
	if err != nil {
		return nil, err
	}
	return &zipExpr[T]{shape: shape, a: adaptTo(a, shape), b: adaptTo(b, shape), f: f}, nil
}

// Add returns the lazy element-wise sum with broadcasting.
func Add[T Scalar](a, b Expr[T]) (Expr[T], error) {
	return Zip(func(x, y T) T { return x + y }, a, b)
}

// Sub returns the lazy element-wise difference with broadcasting.
func Sub[T Scalar](a, b Expr[T]) (Expr[T], error) {
	return Zip(func(x, y T) T { return x - y }, a, b)
}

// Mul returns the lazy element-wise product with broadcasting.
func Mul[T Scalar](a, b Expr[T]) (Expr[T], error) {
	return Zip(func(x, y T) T { return x * y }, a, b)
}

// Div returns the lazy element-wise quotient with broadcasting.
func Div[T Scalar](a, b Expr[T]) (Expr[T], error) {
	return Zip(func(x, y T) T { return x / y }, a, b)
}

// Neg returns the lazy element-wise negation.
func Neg[T Scalar](a Expr[T]) Expr[T] {
	return Map(func(x T) T { return -x }, a)
}

// AddScalar returns the lazy expression a + v.
func AddScalar[T Scalar](a Expr[T], v T) Expr[T] {
	e, _ := Add(a, &scalarExpr[T]{shape: Shape{}, value: v})
	return e
}

// SubScalar returns the lazy expression a - v.
func SubScalar[T Scalar](a Expr[T], v T) Expr[T] {
	e, _ := Sub(a, &scalarExpr[T]{shape: Shape{}, value: v})
	return e
}

// MulScalar returns the lazy expression a * v.
func MulScalar[T Scalar](a Expr[T], v T) Expr[T] {
	e, _ := Mul(a, &scalarExpr[T]{shape: Shape{}, value: v})
	return e
}

// DivScalar returns the lazy expression a / v.
func DivScalar[T Scalar](a Expr[T], v T) Expr[T] {
	e, _ := Div(a, &scalarExpr[T]{shape: Shape{}, value: v})
	return e
}

// Outer returns the lazy outer combination of a and b under f. The shape
// is ShapeCat(a.Shape(), b.Shape()); element (i..., j...) is
// f(a[i...], b[j...]).
func Outer[T Scalar](f func(a, b T) T, a, b Expr[T]) Expr[T] {
	shape := ShapeCat(a.Shape(), b.Shape())
	return &outerExpr[T]{shape: shape, a: a, b: b, f: f, split: a.Shape().Rank()}
}
