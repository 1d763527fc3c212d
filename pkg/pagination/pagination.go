// Package pagination computes page offsets for 1-indexed, fixed-size pages.
package pagination

// IndexRange returns the [start, end) offsets of a page. The page is 1-indexed
// and both arguments are expected to be positive; no bounds are checked.
func IndexRange(page, pageSize int) (start, end int) {
	start = (page - 1) * pageSize
	end = start + pageSize

	return start, end
}

// TotalPages returns how many pages of pageSize are needed to hold total rows.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	return (total + pageSize - 1) / pageSize
}
