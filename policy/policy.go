// Package policy names the cascading business rules attached to record
// stores. Whether accepting one record affects its siblings is a deliberate,
// visible configuration of each page, not an inline rule.
package policy

// AcceptPolicy decides the cascading effect of accepting a record.
type AcceptPolicy[T any] interface {
	// Name identifies the policy in logs.
	Name() string
	// CascadeReject reports whether accepting `accepted` forces `other`
	// into the rejected status. The store skips the accepted record itself.
	CascadeReject(accepted, other T) bool
}

// NoCascade accepts a record without touching any sibling. Used by the
// freelancer order pages.
type NoCascade[T any] struct{}

func (NoCascade[T]) Name() string { return "no_cascade" }

func (NoCascade[T]) CascadeReject(T, T) bool { return false }

// SingleWinner rejects every sibling sharing the accepted record's group key.
// With the project ID as the key this is the client proposals page rule:
// one winning proposal per project, decided in the same synchronous update.
type SingleWinner[T any] struct {
	groupKey func(T) string
}

// NewSingleWinner builds the policy around a group-key accessor.
func NewSingleWinner[T any](groupKey func(T) string) SingleWinner[T] {
	return SingleWinner[T]{groupKey: groupKey}
}

func (SingleWinner[T]) Name() string { return "single_winner" }

func (p SingleWinner[T]) CascadeReject(accepted, other T) bool {
	return p.groupKey(accepted) == p.groupKey(other)
}
