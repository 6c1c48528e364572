// Package paging holds the pagination arithmetic shared by the student and
// college query engines.
package paging

// Meta describes the shape of a paginated result set.
type Meta struct {
	TotalFetched     int `json:"totalFetched"`
	TotalReturned    int `json:"totalReturned"`
	TotalUnpaginated int `json:"totalUnpaginated"`
	Page             int `json:"page"`
	PageSize         int `json:"pageSize"`
	TotalPages       int `json:"totalPages"`
}

// Pages returns ceil(total/pageSize), with a floor of one page.
func Pages(total, pageSize int) int {
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Slice returns the requested page. Out-of-range pages yield an empty slice,
// never an error.
func Slice[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
