package tensor

import "sort"

// The per-axis algorithms below treat a tensor as a bundle of independent
// 1-D lines along one axis, holding every other axis index fixed. Lines
// are visited in row-major order of the fixed axes; mutating algorithms
// gather a line, rework it and scatter it back through the view, so they
// work over any stride pattern.

// defaultLess is plain value order.
func defaultLess[T Scalar](a, b T) bool { return a < b }

// forEachLine invokes f once per line along axis with the full multi-index
// buffer positioned at the line's first element. f may move full[axis].
func forEachLine(shape Shape, axis int, f func(full []int)) {
	outShape, _ := axisSplit(shape, []int{axis})
	full := make([]int, shape.Rank())
	outer := newIndexIter(outShape, RowMajor)
	for oIdx, ok := outer.Next(); ok; oIdx, ok = outer.Next() {
		copy(full, oIdx)
		full[axis] = 0
		f(full)
	}
}

func gatherLine[T Scalar](v *View[T], full []int, axis int, buf []T) {
	for i := range buf {
		full[axis] = i
		buf[i] = v.At(full...)
	}
}

func scatterLine[T Scalar](v *View[T], full []int, axis int, buf []T) {
	for i := range buf {
		full[axis] = i
		v.SetAt(buf[i], full...)
	}
}

// Sort sorts each line along axis in place. A nil less means value order;
// stable selects a stability-preserving sort.
func Sort[T Scalar](v *View[T], axis int, less func(a, b T) bool, stable bool) error {
	v.check()
	axis, err := checkAxis("Sort", axis, v.Rank())
	if err != nil {
		return err
	}
	if less == nil {
		less = defaultLess[T]
	}
	buf := make([]T, v.shape[axis])
	forEachLine(v.shape, axis, func(full []int) {
		gatherLine(v, full, axis, buf)
		cmp := func(i, j int) bool { return less(buf[i], buf[j]) }
		if stable {
			sort.SliceStable(buf, cmp)
		} else {
			sort.Slice(buf, cmp)
		}
		scatterLine(v, full, axis, buf)
	})
	return nil
}

// Partition rearranges each line along axis so the element that would land
// at position kth after a full sort is there, everything ordered before it
// is on its left and everything after on its right. Quickselect; ordering
// within the two sides is unspecified.
func Partition[T Scalar](v *View[T], axis, kth int, less func(a, b T) bool) error {
	v.check()
	axis, err := checkAxis("Partition", axis, v.Rank())
	if err != nil {
		return err
	}
	n := v.shape[axis]
	if kth < 0 || kth >= n {
		return &RangeError{Axis: axis, Index: kth, Size: n}
	}
	if less == nil {
		less = defaultLess[T]
	}
	buf := make([]T, n)
	forEachLine(v.shape, axis, func(full []int) {
		gatherLine(v, full, axis, buf)
		quickselect(buf, kth, less)
		scatterLine(v, full, axis, buf)
	})
	return nil
}

// quickselect places the kth-smallest element of buf (under less) at
// position kth, partitioning the rest around it.
func quickselect[T Scalar](buf []T, kth int, less func(a, b T) bool) {
	lo, hi := 0, len(buf)-1
	for lo < hi {
		// Median-of-three pivot, moved to hi.
		mid := lo + (hi-lo)/2
		if less(buf[mid], buf[lo]) {
			buf[mid], buf[lo] = buf[lo], buf[mid]
		}
		if less(buf[hi], buf[lo]) {
			buf[hi], buf[lo] = buf[lo], buf[hi]
		}
		if less(buf[hi], buf[mid]) {
			buf[hi], buf[mid] = buf[mid], buf[hi]
		}
		buf[mid], buf[hi] = buf[hi], buf[mid]
		pivot := buf[hi]
		store := lo
		for i := lo; i < hi; i++ {
			if less(buf[i], pivot) {
				buf[i], buf[store] = buf[store], buf[i]
				store++
			}
		}
		buf[store], buf[hi] = buf[hi], buf[store]
		switch {
		case store == kth:
			return
		case kth < store:
			hi = store - 1
		default:
			lo = store + 1
		}
	}
}

// Argsort returns, per line along axis, the multi-indices that would sort
// the line, concatenated over lines in row-major order of the fixed axes.
// Indirect-indexing the tensor by the result yields its sorted values.
func Argsort[T Scalar](a Expr[T], axis int, less func(x, y T) bool, stable bool) ([][]int, error) {
	shape := a.Shape()
	axis, err := checkAxis("Argsort", axis, shape.Rank())
	if err != nil {
		return nil, err
	}
	if less == nil {
		less = defaultLess[T]
	}
	n := shape[axis]
	out := make([][]int, 0, shape.Size())
	buf := make([]T, n)
	perm := make([]int, n)
	forEachLine(shape, axis, func(full []int) {
		for i := 0; i < n; i++ {
			full[axis] = i
			buf[i] = a.At(full...)
			perm[i] = i
		}
		cmp := func(i, j int) bool { return less(buf[perm[i]], buf[perm[j]]) }
		if stable {
			sort.SliceStable(perm, cmp)
		} else {
			sort.Slice(perm, cmp)
		}
		for _, p := range perm {
			index := append([]int(nil), full...)
			index[axis] = p
			out = append(out, index)
		}
	})
	return out, nil
}

// ArgsortAll returns the multi-indices of every element in globally sorted
// order, flattening the whole tensor in row-major order first. A nil less
// means value order.
func ArgsortAll[T Scalar](a Expr[T], less func(x, y T) bool, stable bool) [][]int {
	if less == nil {
		less = defaultLess[T]
	}
	shape := a.Shape()
	indices := make([][]int, 0, shape.Size())
	values := make([]T, 0, shape.Size())
	it := newIndexIter(shape, RowMajor)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		indices = append(indices, append([]int(nil), idx...))
		values = append(values, a.At(idx...))
	}
	perm := make([]int, len(indices))
	for i := range perm {
		perm[i] = i
	}
	cmp := func(i, j int) bool { return less(values[perm[i]], values[perm[j]]) }
	if stable {
		sort.SliceStable(perm, cmp)
	} else {
		sort.Slice(perm, cmp)
	}
	out := make([][]int, len(perm))
	for i, p := range perm {
		out[i] = indices[p]
	}
	return out
}

// ArgPartition returns, per line along axis, the multi-indices of a
// partition of the line around its kth-smallest element, concatenated over
// lines in row-major order of the fixed axes.
func ArgPartition[T Scalar](a Expr[T], axis, kth int, less func(x, y T) bool) ([][]int, error) {
	shape := a.Shape()
	axis, err := checkAxis("ArgPartition", axis, shape.Rank())
	if err != nil {
		return nil, err
	}
	n := shape[axis]
	if kth < 0 || kth >= n {
		return nil, &RangeError{Axis: axis, Index: kth, Size: n}
	}
	if less == nil {
		less = defaultLess[T]
	}
	out := make([][]int, 0, shape.Size())
	buf := make([]T, n)
	perm := make([]int, n)
	forEachLine(shape, axis, func(full []int) {
		for i := 0; i < n; i++ {
			full[axis] = i
			buf[i] = a.At(full...)
			perm[i] = i
		}
		quickselectPerm(buf, perm, kth, less)
		for _, p := range perm {
			index := append([]int(nil), full...)
			index[axis] = p
			out = append(out, index)
		}
	})
	return out, nil
}

// quickselectPerm runs quickselect over a permutation of indices into vals.
func quickselectPerm[T Scalar](vals []T, perm []int, kth int, less func(a, b T) bool) {
	lo, hi := 0, len(perm)-1
	for lo < hi {
		pivot := vals[perm[hi]]
		store := lo
		for i := lo; i < hi; i++ {
			if less(vals[perm[i]], pivot) {
				perm[i], perm[store] = perm[store], perm[i]
				store++
			}
		}
		perm[store], perm[hi] = perm[hi], perm[store]
		switch {
		case store == kth:
			return
		case kth < store:
			hi = store - 1
		default:
			lo = store + 1
		}
	}
}

// Nonzero returns the row-major-ordered multi-indices of every non-zero
// element: the canonical producer for indirect-tensor fancy indexing.
func Nonzero[T Scalar](a Expr[T]) [][]int {
	return MaskIndices(a, func(v T) bool { return v != 0 })
}

// Reverse flips one axis in place.
func Reverse[T Scalar](v *View[T], axis int) error {
	v.check()
	axis, err := checkAxis("Reverse", axis, v.Rank())
	if err != nil {
		return err
	}
	n := v.shape[axis]
	forEachLine(v.shape, axis, func(full []int) {
		lo, hi := 0, n-1
		other := append([]int(nil), full...)
		for lo < hi {
			full[axis] = lo
			other[axis] = hi
			a, b := v.At(full...), v.At(other...)
			v.SetAt(b, full...)
			v.SetAt(a, other...)
			lo++
			hi--
		}
	})
	return nil
}

// Rotate shifts one axis circularly in place, so the element originally at
// position shift becomes the first. Negative shifts rotate the other way.
func Rotate[T Scalar](v *View[T], shift, axis int) error {
	v.check()
	axis, err := checkAxis("Rotate", axis, v.Rank())
	if err != nil {
		return err
	}
	n := v.shape[axis]
	if n == 0 {
		return nil
	}
	shift = ((shift % n) + n) % n
	if shift == 0 {
		return nil
	}
	buf := make([]T, n)
	rotated := make([]T, n)
	forEachLine(v.shape, axis, func(full []int) {
		gatherLine(v, full, axis, buf)
		copy(rotated, buf[shift:])
		copy(rotated[n-shift:], buf[:shift])
		scatterLine(v, full, axis, rotated)
	})
	return nil
}
