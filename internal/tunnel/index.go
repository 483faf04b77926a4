package tunnel

// Index is the unsigned integer domain the engine is generic over. Corridor
// geometry (columns, gap widths, row counts) is expressed in an Index type
// chosen by the caller: narrow types model small displays deterministically
// in tests, wide types model real terminals, and the same algorithm runs on
// both because every operation saturates instead of wrapping.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// maxOf returns the largest value representable by I.
func maxOf[I Index]() I {
	return ^I(0)
}

// satAdd returns a+b, clamped to the maximum of I on overflow.
func satAdd[I Index](a, b I) I {
	s := a + b
	if s < a {
		return maxOf[I]()
	}
	return s
}

// satSub returns a-b, clamped to zero on underflow.
func satSub[I Index](a, b I) I {
	if b > a {
		return 0
	}
	return a - b
}

// fromCount converts a buffered-row count to I. A count the type cannot
// represent collapses to zero, so the enumerator walks zero rows: empty and
// correct rather than partial or panicking.
func fromCount[I Index](n int) I {
	if n < 0 || uint64(n) > uint64(maxOf[I]()) {
		return 0
	}
	return I(n)
}
