package listing

import "time"

// Result is a rendered list view plus the badge numbers that go with it.
type Result[T any] struct {
	Items []T
	// Total is the size of the unfiltered store.
	Total int
	// Matched is the number of records passing the filter ("N results").
	Matched int
}

// Apply runs the full pipeline: filter, then stable sort. The input slice is
// never modified; the result holds a fresh slice.
func Apply[T any](records []T, acc Accessors[T], f FilterState, sortName string, now time.Time) Result[T] {
	items := Filter(records, acc, f, now)
	Sort(items, acc, sortName)
	return Result[T]{
		Items:   items,
		Total:   len(records),
		Matched: len(items),
	}
}
