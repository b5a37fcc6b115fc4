// Package store holds the in-memory record stores backing the listing pages.
// Each page gets its own typed store seeded once from static fixtures; the
// stores expose the read/mutate contract the UI depends on, so components
// program against an injected interface rather than embedded literal arrays.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/readydoer/marketplace-core/apperror"
	"github.com/readydoer/marketplace-core/domain"
	"github.com/readydoer/marketplace-core/listing"
	"github.com/readydoer/marketplace-core/policy"
)

// Store is a mutex-guarded in-memory collection of records. Mutations replace
// the whole backing slice; filtering is a view concern and never removes a
// record from the store.
type Store[T any] struct {
	mu      sync.RWMutex
	name    string
	records []T

	id        func(T) uuid.UUID
	fields    listing.Accessors[T]
	setStatus func(T, string) T
	// expired reports whether the record's lifetime has passed and it is
	// still in a state that can expire. Nil disables the sweep.
	expired func(T, time.Time) bool
	// notFound is the sentinel returned for unknown identities; typed
	// stores set their own.
	notFound error

	accept policy.AcceptPolicy[T]
	log    logrus.FieldLogger
}

// New builds a store over the seed records. setStatus may be nil for
// read-only collections (reviews), accept may be nil when no action applies.
func New[T any](name string, seed []T, id func(T) uuid.UUID, fields listing.Accessors[T], setStatus func(T, string) T, accept policy.AcceptPolicy[T], log logrus.FieldLogger) *Store[T] {
	records := make([]T, len(seed))
	copy(records, seed)
	return &Store[T]{
		name:      name,
		records:   records,
		id:        id,
		fields:    fields,
		setStatus: setStatus,
		notFound:  apperror.ErrRecordNotFound,
		accept:    accept,
		log:       log,
	}
}

// Len returns the number of records in the store.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Snapshot returns a copy of the full record set in insertion order.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given identity.
func (s *Store[T]) Get(id uuid.UUID) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if s.id(rec) == id {
			return rec, nil
		}
	}
	var zero T
	return zero, s.notFound
}

// List runs the filter/sort pipeline over the store. The result always equals
// sort(filter(records, f), comparator); Total reflects the unfiltered store.
func (s *Store[T]) List(f listing.FilterState, sortName string) listing.Result[T] {
	s.mu.RLock()
	records := s.records
	s.mu.RUnlock()
	return listing.Apply(records, s.fields, f, sortName, time.Now())
}

// AmountBounds returns min/max amount over the unfiltered store, for range
// filter widgets. Bounds do not shrink as filters are applied.
func (s *Store[T]) AmountBounds() (min, max float64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listing.AmountBounds(s.records, s.fields)
}

// CountByStatus tallies the records passing the filter, per status.
func (s *Store[T]) CountByStatus(f listing.FilterState) map[string]int {
	s.mu.RLock()
	records := s.records
	s.mu.RUnlock()
	filtered := listing.Filter(records, s.fields, f, time.Now())
	return listing.CountByStatus(filtered, s.fields)
}

// Do applies a status action to the record with the given identity. Actions
// are permissive: no precondition on the current status is checked, matching
// the original pages. On accept, the store's policy decides which siblings
// cascade into rejected within the same synchronous update.
func (s *Store[T]) Do(id uuid.UUID, action domain.Action) error {
	target, err := action.TargetStatus()
	if err != nil {
		return err
	}
	if s.setStatus == nil {
		return apperror.New(apperror.ErrCodeValidation, "store is read-only")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var accepted T
	found := false
	for _, rec := range s.records {
		if s.id(rec) == id {
			accepted = rec
			found = true
			break
		}
	}
	if !found {
		return s.notFound
	}

	cascaded := 0
	next := make([]T, len(s.records))
	for i, rec := range s.records {
		switch {
		case s.id(rec) == id:
			next[i] = s.setStatus(rec, target)
		case action == domain.ActionAccept && s.accept != nil && s.accept.CascadeReject(accepted, rec):
			next[i] = s.setStatus(rec, "rejected")
			cascaded++
		default:
			next[i] = rec
		}
	}
	s.records = next

	s.log.WithFields(logrus.Fields{
		"store":    s.name,
		"record":   id,
		"action":   action,
		"status":   target,
		"cascaded": cascaded,
	}).Info("status action applied")

	return nil
}

// SetStatus assigns a status directly, without an action mapping. Used for
// page-specific transitions outside the common action set.
func (s *Store[T]) SetStatus(id uuid.UUID, status string) error {
	if s.setStatus == nil {
		return apperror.New(apperror.ErrCodeValidation, "store is read-only")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next := make([]T, len(s.records))
	for i, rec := range s.records {
		if s.id(rec) == id {
			next[i] = s.setStatus(rec, status)
			found = true
		} else {
			next[i] = rec
		}
	}
	if !found {
		return s.notFound
	}
	s.records = next

	s.log.WithFields(logrus.Fields{
		"store":  s.name,
		"record": id,
		"status": status,
	}).Info("status set")

	return nil
}

// SweepExpired re-tags overdue records as expired and returns how many
// changed. The check is on demand against the given wall clock; there is no
// background timer.
func (s *Store[T]) SweepExpired(now time.Time) int {
	if s.expired == nil || s.setStatus == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	next := make([]T, len(s.records))
	for i, rec := range s.records {
		if s.expired(rec, now) {
			next[i] = s.setStatus(rec, "expired")
			swept++
		} else {
			next[i] = rec
		}
	}
	if swept > 0 {
		s.records = next
		s.log.WithFields(logrus.Fields{
			"store": s.name,
			"swept": swept,
		}).Info("expired records re-tagged")
	}
	return swept
}
