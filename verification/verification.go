// Package verification issues and checks signup verification codes. Unlike
// the original UI, expiry is enforced for real: every code stores an
// ExpiresAt and Verify compares it against the wall clock.
package verification

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/readydoer/marketplace-core/apperror"
	"github.com/readydoer/marketplace-core/domain"
)

const (
	ChannelEmail = "email"
	ChannelPhone = "phone"
)

// Code is an issued verification code.
type Code struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Channel   string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// Service issues one active code per user and channel.
type Service struct {
	mu    sync.Mutex
	ttl   map[string]time.Duration
	codes map[codeKey]*Code
	log   logrus.FieldLogger
	now   func() time.Time
}

type codeKey struct {
	userID  uuid.UUID
	channel string
}

// NewService builds the service with per-channel TTLs.
func NewService(emailTTL, phoneTTL time.Duration, log logrus.FieldLogger) *Service {
	return &Service{
		ttl: map[string]time.Duration{
			ChannelEmail: emailTTL,
			ChannelPhone: phoneTTL,
		},
		codes: make(map[codeKey]*Code),
		log:   log,
		now:   time.Now,
	}
}

// Issue generates and stores a fresh code for the user, replacing any
// previous one for the same channel.
func (s *Service) Issue(user domain.User, channel string) (*Code, error) {
	ttl, ok := s.ttl[channel]
	if !ok {
		return nil, apperror.New(apperror.ErrCodeValidation, "unknown verification channel")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := generateCode()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "generate verification code")
	}

	now := s.now()
	code := &Code{
		ID:        uuid.New(),
		UserID:    user.ID,
		Channel:   channel,
		Code:      raw,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	s.codes[codeKey{user.ID, channel}] = code

	s.log.WithFields(logrus.Fields{
		"user":       user.ID,
		"channel":    channel,
		"expires_at": code.ExpiresAt,
	}).Info("verification code issued")

	// Delivery (email/SMS) is mocked; the code is returned to the caller.
	return code, nil
}

// Verify checks the submitted code. Expired or already-used codes fail; a
// successful check burns the code.
func (s *Service) Verify(userID uuid.UUID, channel, submitted string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.codes[codeKey{userID, channel}]
	if !ok {
		return false, apperror.ErrVerificationNotFound
	}
	if code.Used {
		return false, apperror.New(apperror.ErrCodeConflict, "verification code already used")
	}
	if s.now().After(code.ExpiresAt) {
		return false, apperror.ErrVerificationExpired
	}
	if code.Code != submitted {
		return false, nil
	}

	code.Used = true
	s.log.WithFields(logrus.Fields{
		"user":    userID,
		"channel": channel,
	}).Info("verification code confirmed")
	return true, nil
}

// Remaining returns how long the user's active code is still valid. Zero
// means no active code.
func (s *Service) Remaining(userID uuid.UUID, channel string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.codes[codeKey{userID, channel}]
	if !ok || code.Used {
		return 0
	}
	left := code.ExpiresAt.Sub(s.now())
	if left < 0 {
		return 0
	}
	return left
}

func generateCode() (string, error) {
	b := make([]byte, 3)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	n := (int(b[0])<<16 | int(b[1])<<8 | int(b[2])) % 1000000
	return fmt.Sprintf("%06d", n), nil
}
