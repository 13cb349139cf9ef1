package bilateral

// clampIndex maps i to the nearest coordinate in [0, size-1].
func clampIndex(i, size int) int {
	return min(size-1, max(0, i))
}

// homeOffset returns the linear offset of an in-bounds coordinate.
func homeOffset(base int, home, strides []int) int {
	offset := base
	for i, h := range home {
		offset += h * strides[i]
	}
	return offset
}

// neighbourOffset returns the linear offset of the neighbour at window position
// window around home. Each axis is clamped to the volume edge.
func neighbourOffset(base int, home, window []int, half int, sizes, strides []int) int {
	offset := base
	for i, h := range home {
		n := clampIndex(h+window[i]-half, sizes[i])
		offset += n * strides[i]
	}
	return offset
}
