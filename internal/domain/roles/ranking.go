package roles

import "sort"

// RoleCount is one entry of a ranked role view.
type RoleCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Ranked orders role counts by count descending, then label ascending.
func Ranked(counts map[string]int) []RoleCount {
	out := make([]RoleCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, RoleCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Distribution converts counts into percentages of all clustered titles.
// An empty or all-zero input yields an empty map.
func Distribution(counts map[string]int) map[string]float64 {
	total := 0
	for _, n := range counts {
		total += n
	}
	out := make(map[string]float64, len(counts))
	if total == 0 {
		return out
	}
	for label, n := range counts {
		out[label] = float64(n) / float64(total) * 100
	}
	return out
}
