package shared

import (
	"math"
	"strings"
)

// CalculateTotalPage returns the number of pages needed for total items at the given limit.
func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// JoinMulti renders a multi-valued field for display: a bare value when one
// item is selected, comma-joined when several. Models always keep the slice;
// this shape exists only at the presentation boundary.
func JoinMulti(values []string) string {
	return strings.Join(values, ", ")
}

// Paginate slices one page out of an ordered in-memory collection.
// A page or limit of zero returns the whole collection.
func Paginate[T any](items []T, page, limit int) []T {
	if page <= 0 || limit <= 0 {
		return items
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end]
}
