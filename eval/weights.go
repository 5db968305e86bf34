package eval

import (
	"math"
	"sync"
)

var (
	weightsMu     sync.Mutex
	weightsBySize = map[int][]int{}
)

// CenterWeights returns the positional weight table for an n×n board:
// 100 at the geometric center, falling off linearly with Euclidean
// distance, floored at zero. The table is computed once per board size
// and shared read-only afterwards, so concurrent solvers can use it.
func CenterWeights(n int) []int {
	weightsMu.Lock()
	defer weightsMu.Unlock()
	if w, ok := weightsBySize[n]; ok {
		return w
	}
	w := make([]int, n*n)
	center := float64(n-1) / 2
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			dist := math.Hypot(float64(r)-center, float64(c)-center)
			w[r*n+c] = int(math.Max(0, 100-dist*15))
		}
	}
	weightsBySize[n] = w
	return w
}
