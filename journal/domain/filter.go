package domain

import (
	"sort"
	"strings"
)

// ListFilter is the optional filter applied when listing posts. Zero values
// mean "no filter"; Category == CategoryAll is likewise a no-op.
type ListFilter struct {
	Category string
	Search   string
}

// Match reports whether p satisfies the filter. Category comparison is
// exact and case-sensitive; search is a case-insensitive substring match
// over headline and body.
func (f ListFilter) Match(p Post) bool {
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Headline), q) &&
			!strings.Contains(strings.ToLower(p.Body), q) {
			return false
		}
	}
	return true
}

// FilterPosts returns the posts matching f, preserving input order.
func FilterPosts(posts []Post, f ListFilter) []Post {
	matched := make([]Post, 0, len(posts))
	for _, p := range posts {
		if f.Match(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// SortNewestFirst orders posts by creation date descending, in place.
// The sort is stable: posts with equal dates keep their relative order.
// Dates are compared as instants, not as strings.
func SortNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return parseTime(posts[i].Date).After(parseTime(posts[j].Date))
	})
}
