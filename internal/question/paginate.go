package question

import "strconv"

// PageSize is the fixed number of items per page.
const PageSize = 10

// ParsePage reads the 1-based page query value. Empty or non-numeric input
// falls back to page 1; other values are returned as given.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the window of items for page. Pages below 1 and pages past
// the end yield an empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+PageSize, len(items))
	return items[start:end]
}
