package geodesic

// worklist is a FIFO ring buffer of row-major cell indices. Duplicates are
// allowed: re-processing a cell is idempotent.
type worklist struct {
	buf  []int
	head int
	n    int
	peak int
}

func newWorklist(capacity int) worklist {
	return worklist{buf: make([]int, capacity)}
}

func (q *worklist) len() int { return q.n }

// push appends i, doubling the buffer when full.
func (q *worklist) push(i int) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = i
	q.n++
	if q.n > q.peak {
		q.peak = q.n
	}
}

// pop removes the oldest entry. The caller checks len() first.
func (q *worklist) pop() int {
	i := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return i
}

// grow re-lays the queue contents from index 0 of a buffer twice as large.
func (q *worklist) grow() {
	size := 2 * len(q.buf)
	if size < 16 {
		size = 16
	}
	next := make([]int, size)
	for k := 0; k < q.n; k++ {
		next[k] = q.buf[(q.head+k)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
