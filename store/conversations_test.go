package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readydoer/marketplace-core/domain"
)

func TestConversationStore_SortedByRecent(t *testing.T) {
	now := time.Now()
	me := uuid.New()
	them := uuid.New()

	older := domain.Conversation{
		ID: uuid.New(),
		Messages: []domain.Message{
			{ID: uuid.New(), SenderID: them, Body: "hi", SentAt: now.Add(-2 * time.Hour)},
		},
	}
	newer := domain.Conversation{
		ID: uuid.New(),
		Messages: []domain.Message{
			{ID: uuid.New(), SenderID: them, Body: "ping", SentAt: now.Add(-time.Minute)},
			{ID: uuid.New(), SenderID: me, Body: "pong", SentAt: now, Read: true},
		},
	}
	empty := domain.Conversation{ID: uuid.New()}

	s := NewConversationStore([]domain.Conversation{older, newer, empty})

	sorted := s.SortedByRecent()
	require.Len(t, sorted, 3)
	assert.Equal(t, newer.ID, sorted[0].ID)
	assert.Equal(t, older.ID, sorted[1].ID)
	assert.Equal(t, empty.ID, sorted[2].ID)
}

func TestConversationStore_UnreadTotal(t *testing.T) {
	me := uuid.New()
	them := uuid.New()
	now := time.Now()

	thread := domain.Conversation{
		ID: uuid.New(),
		Messages: []domain.Message{
			{ID: uuid.New(), SenderID: them, Body: "unread", SentAt: now},
			{ID: uuid.New(), SenderID: them, Body: "read", SentAt: now, Read: true},
			// Own unread messages don't count against the participant.
			{ID: uuid.New(), SenderID: me, Body: "mine", SentAt: now},
		},
	}
	s := NewConversationStore([]domain.Conversation{thread})

	assert.Equal(t, 1, s.UnreadTotal(me))
	assert.Equal(t, 1, s.UnreadTotal(them))
}
