package verification

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readydoer/marketplace-core/apperror"
	"github.com/readydoer/marketplace-core/domain"
)

func testLog() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testUser() domain.User {
	return domain.User{ID: uuid.New(), Email: "user@readydoer.com", Username: "user"}
}

func TestService_IssueAndVerify(t *testing.T) {
	svc := NewService(15*time.Minute, 5*time.Minute, testLog())
	user := testUser()

	code, err := svc.Issue(user, ChannelEmail)
	require.NoError(t, err)
	require.Len(t, code.Code, 6)

	ok, err := svc.Verify(user.ID, ChannelEmail, code.Code)
	require.NoError(t, err)
	assert.True(t, ok)

	// A confirmed code is burned.
	_, err = svc.Verify(user.ID, ChannelEmail, code.Code)
	assert.Error(t, err)
}

func TestService_WrongCodeFailsWithoutBurning(t *testing.T) {
	svc := NewService(15*time.Minute, 5*time.Minute, testLog())
	user := testUser()

	code, err := svc.Issue(user, ChannelEmail)
	require.NoError(t, err)

	ok, err := svc.Verify(user.ID, ChannelEmail, "000000")
	if code.Code == "000000" {
		t.Skip("generated code collided with the guess")
	}
	require.NoError(t, err)
	assert.False(t, ok)

	// The right code still works afterwards.
	ok, err = svc.Verify(user.ID, ChannelEmail, code.Code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_ExpiredCodeIsRejected(t *testing.T) {
	svc := NewService(15*time.Minute, 5*time.Minute, testLog())
	user := testUser()

	code, err := svc.Issue(user, ChannelEmail)
	require.NoError(t, err)

	// Move the wall clock past the TTL.
	svc.now = func() time.Time { return code.ExpiresAt.Add(time.Second) }

	ok, err := svc.Verify(user.ID, ChannelEmail, code.Code)
	assert.False(t, ok)
	assert.True(t, apperror.IsExpired(err))
	assert.Zero(t, svc.Remaining(user.ID, ChannelEmail))
}

func TestService_UnknownChannelAndMissingCode(t *testing.T) {
	svc := NewService(15*time.Minute, 5*time.Minute, testLog())
	user := testUser()

	_, err := svc.Issue(user, "carrier-pigeon")
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Verify(user.ID, ChannelPhone, "123456")
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_ReissueReplacesCode(t *testing.T) {
	svc := NewService(15*time.Minute, 5*time.Minute, testLog())
	user := testUser()

	first, err := svc.Issue(user, ChannelPhone)
	require.NoError(t, err)
	second, err := svc.Issue(user, ChannelPhone)
	require.NoError(t, err)

	if first.Code != second.Code {
		ok, err := svc.Verify(user.ID, ChannelPhone, first.Code)
		require.NoError(t, err)
		assert.False(t, ok, "a replaced code must stop working")
	}

	ok, err := svc.Verify(user.ID, ChannelPhone, second.Code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateCode_SixDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q has a non-digit", code)
		}
	}
}

func TestCountdown_TicksDownAndFinishes(t *testing.T) {
	var ticks atomic.Int32
	c := NewCountdown(30*time.Millisecond, 10*time.Millisecond, func(time.Duration) {
		ticks.Add(1)
	})
	c.Start()

	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not finish")
	}

	assert.True(t, c.Expired())
	assert.GreaterOrEqual(t, ticks.Load(), int32(3))
}

func TestCountdown_StopIsIdempotent(t *testing.T) {
	c := NewCountdown(time.Hour, time.Second, nil)
	c.Start()

	c.Stop()
	c.Stop()

	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("stopped countdown did not unwind")
	}

	// Stopping mid-flight leaves time on the clock.
	assert.False(t, c.Expired())
}
