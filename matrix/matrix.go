// Package matrix implements a small owning dense 2-D float64 matrix with
// naive linear algebra. It is a standalone utility beside the tensor
// engine: it owns its buffer and does not alias tensor views.
package matrix

import "fmt"

// Matrix is an owning row-major 2-D array of float64.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New returns a zeroed rows×cols matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("matrix: invalid dimensions %dx%d", rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a matrix from row slices. All rows must have the same
// length.
func FromRows(rows [][]float64) (*Matrix, error) {
	r := len(rows)
	if r == 0 {
		return New(0, 0)
	}
	c := len(rows[0])
	m, err := New(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("matrix: row %d has %d columns, want %d", i, len(row), c)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (i, j). It panics when the position is out
// of range.
func (m *Matrix) At(i, j int) float64 {
	m.check(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at (i, j). It panics when the position is out of range.
func (m *Matrix) Set(i, j int, v float64) {
	m.check(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Resize reshapes m to rows×cols in place. Elements in the overlapping
// upper-left block are kept; new cells are zero.
func (m *Matrix) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("matrix: invalid dimensions %dx%d", rows, cols)
	}
	data := make([]float64, rows*cols)
	kr, kc := min(rows, m.rows), min(cols, m.cols)
	for i := 0; i < kr; i++ {
		copy(data[i*cols:i*cols+kc], m.data[i*m.cols:i*m.cols+kc])
	}
	m.rows, m.cols, m.data = rows, cols, data
	return nil
}

// Add returns m + b.
func (m *Matrix) Add(b *Matrix) (*Matrix, error) {
	return m.zipWith(b, "add", func(x, y float64) float64 { return x + y })
}

// Sub returns m - b.
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	return m.zipWith(b, "sub", func(x, y float64) float64 { return x - y })
}

func (m *Matrix) zipWith(b *Matrix, op string, f func(x, y float64) float64) (*Matrix, error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, fmt.Errorf("matrix: %s dimension mismatch %dx%d vs %dx%d",
			op, m.rows, m.cols, b.rows, b.cols)
	}
	out := m.Clone()
	for i, v := range b.data {
		out.data[i] = f(m.data[i], v)
	}
	return out, nil
}

// Scale returns s * m.
func (m *Matrix) Scale(s float64) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// Mul returns the matrix product m * b.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if m.cols != b.rows {
		return nil, fmt.Errorf("matrix: mul dimension mismatch %dx%d vs %dx%d",
			m.rows, m.cols, b.rows, b.cols)
	}
	out, _ := New(m.rows, b.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*b.cols+j] += a * b.data[k*b.cols+j]
			}
		}
	}
	return out, nil
}

// Transpose returns a new cols×rows matrix with rows and columns swapped.
func (m *Matrix) Transpose() *Matrix {
	out, _ := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Trace returns the sum of the main diagonal. The matrix must be square.
func (m *Matrix) Trace() (float64, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("matrix: trace of non-square %dx%d matrix", m.rows, m.cols)
	}
	var t float64
	for i := 0; i < m.rows; i++ {
		t += m.data[i*m.cols+i]
	}
	return t, nil
}

// Triangle selects which half Triangular keeps.
type Triangle int

const (
	// Lower keeps elements on or below the main diagonal.
	Lower Triangle = iota
	// Upper keeps elements on or above the main diagonal.
	Upper
)

// Triangular returns a copy of m with the other half zeroed.
func (m *Matrix) Triangular(which Triangle) *Matrix {
	out := m.Clone()
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if (which == Lower && j > i) || (which == Upper && j < i) {
				out.data[i*m.cols+j] = 0
			}
		}
	}
	return out
}

// Submatrix copies the block [r0, r0+rows) × [c0, c0+cols) of m.
func (m *Matrix) Submatrix(r0, c0, rows, cols int) (*Matrix, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.rows || c0+cols > m.cols {
		return nil, fmt.Errorf("matrix: submatrix (%d, %d) %dx%d out of range for %dx%d matrix",
			r0, c0, rows, cols, m.rows, m.cols)
	}
	out, _ := New(rows, cols)
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], m.data[(r0+i)*m.cols+c0:(r0+i)*m.cols+c0+cols])
	}
	return out, nil
}

// Equal reports whether m and b have the same dimensions and elements.
func (m *Matrix) Equal(b *Matrix) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i, v := range m.data {
		if b.data[i] != v {
			return false
		}
	}
	return true
}

// String renders the matrix row by row.
func (m *Matrix) String() string {
	s := fmt.Sprintf("Matrix %dx%d [", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprint(m.data[i*m.cols : (i+1)*m.cols])
	}
	return s + "]"
}
