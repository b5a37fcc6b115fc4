package listing

import "sort"

// Named comparators. Exactly one is active at a time.
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortBudgetLow  = "budget_low"
	SortBudgetHigh = "budget_high"
	SortRating     = "rating"
	// SortRelevance keeps the insertion order of the filtered subset.
	SortRelevance = "relevance"
)

// Sort orders records in place by the named comparator. Sorting is stable:
// records with equal keys keep their pre-sort relative order. An empty or
// unknown name is SortRelevance, a no-op.
func Sort[T any](records []T, acc Accessors[T], name string) {
	var less func(a, b T) bool

	switch name {
	case SortNewest:
		if acc.CreatedAt == nil {
			return
		}
		less = func(a, b T) bool { return acc.CreatedAt(a).After(acc.CreatedAt(b)) }
	case SortOldest:
		if acc.CreatedAt == nil {
			return
		}
		less = func(a, b T) bool { return acc.CreatedAt(a).Before(acc.CreatedAt(b)) }
	case SortBudgetLow:
		if acc.Amount == nil {
			return
		}
		less = func(a, b T) bool { return acc.Amount(a) < acc.Amount(b) }
	case SortBudgetHigh:
		if acc.Amount == nil {
			return
		}
		less = func(a, b T) bool { return acc.Amount(a) > acc.Amount(b) }
	case SortRating:
		if acc.Rating == nil {
			return
		}
		less = func(a, b T) bool { return acc.Rating(a) > acc.Rating(b) }
	default:
		return
	}

	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}
