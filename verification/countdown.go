package verification

import (
	"sync"
	"time"

	"github.com/readydoer/marketplace-core/goroutine"
)

// Countdown drives the cosmetic resend timer on the signup screen. It ticks
// down once per interval purely for display; stopping it mirrors unmounting
// the view. It has no retry or backoff semantics.
type Countdown struct {
	interval time.Duration
	left     time.Duration
	onTick   func(remaining time.Duration)

	mu       sync.Mutex
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewCountdown builds a countdown over the given total duration. onTick is
// called after every elapsed interval with the time remaining; it may be nil.
func NewCountdown(total, interval time.Duration, onTick func(remaining time.Duration)) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{
		interval: interval,
		left:     total,
		onTick:   onTick,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the ticking goroutine. Calling Start twice is a caller bug.
func (c *Countdown) Start() {
	goroutine.SafeGo(func() {
		defer close(c.done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				c.mu.Lock()
				c.left -= c.interval
				if c.left < 0 {
					c.left = 0
				}
				left := c.left
				c.mu.Unlock()

				if c.onTick != nil {
					c.onTick(left)
				}
				if left == 0 {
					return
				}
			}
		}
	})
}

// Stop halts the countdown. Safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Done is closed when the countdown has finished or was stopped.
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}

// Remaining returns the time left on the countdown.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left
}

// Expired reports whether the countdown has run out.
func (c *Countdown) Expired() bool {
	return c.Remaining() == 0
}
