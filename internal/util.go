package internal

import "errors"

// ErrBrokenChain means the parent links never reached a root within the limit.
var ErrBrokenChain = errors.New("parent chain does not reach a root")

// ReconstructPath rebuilds the path ending at current by following parentOf
// until a cell that is its own parent. At most limit links are followed.
func ReconstructPath(parentOf func(int) int, current int, limit int) ([]int, error) {
	path := []int{current}
	for steps := 0; ; steps++ {
		previous := parentOf(current)
		if previous == current {
			break
		}
		if steps >= limit {
			return nil, ErrBrokenChain
		}
		path = append(path, previous)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
