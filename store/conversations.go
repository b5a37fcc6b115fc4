package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/readydoer/marketplace-core/domain"
)

// ConversationStore holds the static message threads behind the messaging
// UI. Threads are data only; there is no transport.
type ConversationStore struct {
	mu      sync.RWMutex
	threads []domain.Conversation
}

func NewConversationStore(seed []domain.Conversation) *ConversationStore {
	threads := make([]domain.Conversation, len(seed))
	copy(threads, seed)
	return &ConversationStore{threads: threads}
}

// Snapshot returns a copy of all threads in insertion order.
func (s *ConversationStore) Snapshot() []domain.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Conversation, len(s.threads))
	copy(out, s.threads)
	return out
}

// SortedByRecent returns threads ordered by last message time, newest first.
// The sort is stable; threads without messages sink to the end in their
// original relative order.
func (s *ConversationStore) SortedByRecent() []domain.Conversation {
	threads := s.Snapshot()
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastMessageAt().After(threads[j].LastMessageAt())
	})
	return threads
}

// UnreadTotal counts unread messages across all threads for a participant.
func (s *ConversationStore) UnreadTotal(participantID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for i := range s.threads {
		total += s.threads[i].UnreadCount(participantID)
	}
	return total
}
