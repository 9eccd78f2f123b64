package tensor

// indexIter walks every multi-index of a shape in the canonical order of a
// layout: row-major varies the last axis fastest, col-major the first.
// The returned index slice is reused between calls; callers that retain it
// must copy it.
type indexIter struct {
	shape  Shape
	layout Layout
	index  []int
	first  bool
	empty  bool
}

func newIndexIter(shape Shape, layout Layout) *indexIter {
	return &indexIter{
		shape:  shape,
		layout: layout,
		index:  make([]int, len(shape)),
		first:  true,
		empty:  shape.Size() == 0,
	}
}

// Next advances to the next multi-index. It returns false when the shape
// is exhausted (immediately, for empty shapes).
func (it *indexIter) Next() ([]int, bool) {
	if it.empty {
		return nil, false
	}
	if it.first {
		it.first = false
		return it.index, true
	}
	if it.layout == RowMajor {
		for i := len(it.shape) - 1; i >= 0; i-- {
			it.index[i]++
			if it.index[i] < it.shape[i] {
				return it.index, true
			}
			it.index[i] = 0
		}
	} else {
		for i := 0; i < len(it.shape); i++ {
			it.index[i]++
			if it.index[i] < it.shape[i] {
				return it.index, true
			}
			it.index[i] = 0
		}
	}
	return nil, false
}

// Reset rewinds the iterator to the first multi-index.
func (it *indexIter) Reset() {
	for i := range it.index {
		it.index[i] = 0
	}
	it.first = true
}
