// Package listing implements the filter-and-sort pipeline shared by every
// listing page: a conjunction of optional predicates over an in-memory
// collection, a single named sort comparator, and derived aggregates.
// The pipeline is a pure view concern; it never removes records from the
// backing store.
package listing

import (
	"strings"
	"time"
)

// StatusAny is the sentinel meaning "no status constraint".
const StatusAny = "all"

// Accessors adapts an arbitrary record type to the pipeline. A nil accessor
// marks the field as absent for that type, and every constraint on it passes.
type Accessors[T any] struct {
	Search    func(T) []string
	Status    func(T) string
	Amount    func(T) float64
	Duration  func(T) int
	Rating    func(T) float64
	CreatedAt func(T) time.Time
	Online    func(T) bool
	Category  func(T) string
}

// FilterState is the set of user-selected constraints narrowing a list.
// Nil pointers, empty strings, StatusAny and a zero DateRangeDays all mean
// "no constraint".
type FilterState struct {
	Search        string
	Status        string
	MinAmount     *float64
	MaxAmount     *float64
	MaxDuration   *int
	MinRating     *float64
	DateRangeDays int
	OnlineOnly    *bool
	CategoryID    *string
}

// IsZero reports whether no constraint is active.
func (f FilterState) IsZero() bool {
	return f.Search == "" &&
		(f.Status == "" || f.Status == StatusAny) &&
		f.MinAmount == nil && f.MaxAmount == nil &&
		f.MaxDuration == nil && f.MinRating == nil &&
		f.DateRangeDays == 0 &&
		f.OnlineOnly == nil && f.CategoryID == nil
}

// Matches reports whether the record satisfies every active constraint.
// Composition is a commutative AND of pure predicates. A min above max makes
// the amount range unsatisfiable for values between them; that is the
// documented behavior, not corrected here.
func Matches[T any](rec T, acc Accessors[T], f FilterState, now time.Time) bool {
	if f.Search != "" && acc.Search != nil {
		term := strings.ToLower(f.Search)
		found := false
		for _, field := range acc.Search(rec) {
			if strings.Contains(strings.ToLower(field), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Status != "" && f.Status != StatusAny && acc.Status != nil {
		if acc.Status(rec) != f.Status {
			return false
		}
	}

	if acc.Amount != nil {
		amount := acc.Amount(rec)
		if f.MinAmount != nil && amount < *f.MinAmount {
			return false
		}
		if f.MaxAmount != nil && amount > *f.MaxAmount {
			return false
		}
	}

	if f.MaxDuration != nil && acc.Duration != nil {
		if acc.Duration(rec) > *f.MaxDuration {
			return false
		}
	}

	if f.MinRating != nil && acc.Rating != nil {
		if acc.Rating(rec) < *f.MinRating {
			return false
		}
	}

	// Inclusive boundary: a record exactly DateRangeDays old still passes.
	if f.DateRangeDays > 0 && acc.CreatedAt != nil {
		age := now.Sub(acc.CreatedAt(rec))
		if age > time.Duration(f.DateRangeDays)*24*time.Hour {
			return false
		}
	}

	if f.OnlineOnly != nil && *f.OnlineOnly && acc.Online != nil {
		if !acc.Online(rec) {
			return false
		}
	}

	if f.CategoryID != nil && acc.Category != nil {
		if acc.Category(rec) != *f.CategoryID {
			return false
		}
	}

	return true
}

// Filter returns the records satisfying the filter, preserving input order.
func Filter[T any](records []T, acc Accessors[T], f FilterState, now time.Time) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if Matches(rec, acc, f, now) {
			out = append(out, rec)
		}
	}
	return out
}
