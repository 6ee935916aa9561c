// Package listing holds the in-memory search and pagination helpers shared by
// the list endpoints.
package listing

import "strings"

// Matches reports whether query occurs, case-insensitively, in any field.
// An empty query matches everything.
func Matches(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Paginate returns the 1-based page of items. pageSize <= 0 disables paging.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	// Bound page and size by len(items) before multiplying or adding.
	if len(items) == 0 || page-1 > (len(items)-1)/pageSize {
		return []T{}
	}
	offset := (page - 1) * pageSize
	end := len(items)
	if pageSize < end-offset {
		end = offset + pageSize
	}
	return items[offset:end]
}

// Descending reports whether a sort order string asks for descending order.
func Descending(order string) bool {
	return strings.EqualFold(order, "desc")
}
