package aggregate

import (
	"sort"
	"time"
)

const DefaultTableRows = 10

// RecentRows returns up to n records, newest first by createdAt.
// Records with equal timestamps keep their received order.
func RecentRows[T any](records []T, createdAt func(T) time.Time, n int) []T {
	if n <= 0 || len(records) == 0 {
		return []T{}
	}

	sorted := append([]T(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
