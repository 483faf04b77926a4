package tunnel

const ringMinCap = 8

// ringOf is a growable ring buffer backing the row deque: rows enter at the
// back as they are generated and scroll off the front. Capacity stays a
// power of two so positions are masked, not divided.
type ringOf[T any] struct {
	buf   []T
	head  int
	count int
}

func (q *ringOf[T]) len() int { return q.count }

// at returns the element i positions behind the front. i must be < len.
func (q *ringOf[T]) at(i int) T {
	return q.buf[(q.head+i)&(len(q.buf)-1)]
}

func (q *ringOf[T]) front() T { return q.at(0) }

func (q *ringOf[T]) back() T { return q.at(q.count - 1) }

func (q *ringOf[T]) pushBack(v T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)&(len(q.buf)-1)] = v
	q.count++
}

// popFront removes and returns the front element. The caller guarantees the
// ring is non-empty.
func (q *ringOf[T]) popFront() T {
	v := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) & (len(q.buf) - 1)
	q.count--
	return v
}

// grow doubles capacity, unwinding any wrap so the front lands at index 0.
func (q *ringOf[T]) grow() {
	size := len(q.buf) * 2
	if size == 0 {
		size = ringMinCap
	}
	next := make([]T, size)
	for i := 0; i < q.count; i++ {
		next[i] = q.at(i)
	}
	q.buf = next
	q.head = 0
}
