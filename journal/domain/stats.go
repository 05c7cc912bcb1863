package domain

import "sort"

// CategoryCount is one (category, count) pair in the stats breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	N        int    `json:"n"`
}

// Stats summarizes the full post collection. LatestDate is empty when the
// collection is empty.
type Stats struct {
	Total      int
	ByCategory []CategoryCount
	LatestDate string
}

// Aggregate computes stats over posts. ByCategory is ordered by count
// descending; categories with equal counts keep first-encountered order.
func Aggregate(posts []Post) Stats {
	counts := make(map[string]int, len(posts))
	order := make([]string, 0, len(posts))
	latest := ""

	for _, p := range posts {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
		if latest == "" || parseTime(p.Date).After(parseTime(latest)) {
			latest = p.Date
		}
	}

	byCategory := make([]CategoryCount, 0, len(order))
	for _, cat := range order {
		byCategory = append(byCategory, CategoryCount{Category: cat, N: counts[cat]})
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].N > byCategory[j].N
	})

	return Stats{
		Total:      len(posts),
		ByCategory: byCategory,
		LatestDate: latest,
	}
}
