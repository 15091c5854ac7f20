package ideogram

import "github.com/biogo/store/llrb"

// position is a base position stored in an llrb tree.
type position int

// Compare implements llrb.Comparable.
func (p position) Compare(c llrb.Comparable) int {
	q := c.(position)
	switch {
	case p < q:
		return -1
	case p > q:
		return 1
	}
	return 0
}

// UniquePositions returns the distinct values of pos in ascending order.
func UniquePositions(pos []int) []int {
	var t llrb.Tree
	for _, p := range pos {
		t.Insert(position(p)) // replaces an equal value, if any.
	}
	unique := make([]int, 0, t.Len())
	t.Do(func(c llrb.Comparable) bool {
		unique = append(unique, int(c.(position)))
		return false
	})
	return unique
}
