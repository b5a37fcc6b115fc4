package listing

// AmountBounds returns the min and max amount across records, and whether any
// record carried an amount. Callers must pass the unfiltered store: range
// widget bounds must not shrink as filters are applied.
func AmountBounds[T any](records []T, acc Accessors[T]) (min, max float64, ok bool) {
	if acc.Amount == nil {
		return 0, 0, false
	}
	for _, rec := range records {
		amount := acc.Amount(rec)
		if !ok {
			min, max, ok = amount, amount, true
			continue
		}
		if amount < min {
			min = amount
		}
		if amount > max {
			max = amount
		}
	}
	return min, max, ok
}

// CountByStatus tallies records per status. Callers pass the filtered subset:
// status badges track what is currently displayed.
func CountByStatus[T any](records []T, acc Accessors[T]) map[string]int {
	counts := make(map[string]int)
	if acc.Status == nil {
		return counts
	}
	for _, rec := range records {
		counts[acc.Status(rec)]++
	}
	return counts
}

// AverageRating returns the mean rating and the number of rated records.
// Header averages are computed once over a full snapshot taken at load, not
// per filter change.
func AverageRating[T any](records []T, acc Accessors[T]) (float64, int) {
	if acc.Rating == nil || len(records) == 0 {
		return 0, 0
	}
	var sum float64
	for _, rec := range records {
		sum += acc.Rating(rec)
	}
	return sum / float64(len(records)), len(records)
}
