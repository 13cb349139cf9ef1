// Package ndindex enumerates the coordinates of an N-dimensional box.
package ndindex

// Indexer walks every coordinate of a box with per-axis sizes, axis 0 fastest.
//
// An Indexer starts on its first coordinate, so iteration is written as a
// do/while loop:
//
//	idx := ndindex.New(sizes)
//	for ok := true; ok; ok = idx.Next() {
//	    use(idx.Index())
//	}
//
// The coordinate buffer is owned by the Indexer and overwritten by Next.
type Indexer struct {
	sizes []int
	index []int
}

// New creates an Indexer positioned at the all-zero coordinate.
// Every size must be positive.
func New(sizes []int) *Indexer {
	return &Indexer{
		sizes: append([]int(nil), sizes...),
		index: make([]int, len(sizes)),
	}
}

// NewAt creates an Indexer positioned at the coordinate with the given
// linear rank in iteration order, so that Next continues from there.
// Rank must be in [0, Len()).
func NewAt(sizes []int, rank int) *Indexer {
	it := New(sizes)
	for i, size := range it.sizes {
		it.index[i] = rank % size
		rank /= size
	}
	return it
}

// Next advances to the following coordinate. It increments axis 0; an axis
// that reaches its size wraps to zero and carries into the next axis.
//
// Next returns false once the whole box has been visited. The index has
// then wrapped to all zeros and must not be used.
func (it *Indexer) Next() bool {
	for i := range it.index {
		it.index[i]++
		if it.index[i] < it.sizes[i] {
			return true
		}
		it.index[i] = 0
	}
	return false
}

// Reset moves the Indexer back to the all-zero coordinate.
func (it *Indexer) Reset() {
	clear(it.index)
}

// Index returns the current coordinate. The slice is reused by Next.
func (it *Indexer) Index() []int {
	return it.index
}

// At returns the current coordinate along one axis.
func (it *Indexer) At(axis int) int {
	return it.index[axis]
}

// Len returns the number of coordinates in the box.
func (it *Indexer) Len() int {
	n := 1
	for _, s := range it.sizes {
		n *= s
	}
	return n
}
