package otp

import (
	"sync"
	"time"

	"github.com/damru/damru/internal/clock"
)

// Countdown is the resend cooldown of the code step. It counts down in
// whole seconds and stops itself at zero.
type Countdown struct {
	clock  clock.Clock
	onTick func(remaining int)

	mu        sync.Mutex
	remaining int
	stop      chan struct{}
	done      chan struct{}
}

// NewCountdown creates an idle countdown. onTick, if set, runs on the
// countdown goroutine after each decrement.
func NewCountdown(clk clock.Clock, onTick func(remaining int)) *Countdown {
	return &Countdown{clock: clk, onTick: onTick}
}

// Start (re)starts the countdown from d, rounded down to whole seconds.
func (c *Countdown) Start(d time.Duration) {
	c.Cancel()

	secs := int(d / time.Second)
	if secs <= 0 {
		return
	}
	c.mu.Lock()
	c.remaining = secs
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	ticker := c.clock.NewTicker(time.Second)
	go c.run(ticker, c.stop, c.done)
	c.mu.Unlock()
}

// Remaining returns the seconds left before a resend is allowed.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// CanResend reports whether the cooldown is over.
func (c *Countdown) CanResend() bool {
	return c.Remaining() == 0
}

// Cancel stops the countdown and waits for its goroutine to exit.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.remaining = 0
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (c *Countdown) run(ticker clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C():
			c.mu.Lock()
			if c.stop != stop {
				c.mu.Unlock()
				return
			}
			c.remaining--
			left := c.remaining
			c.mu.Unlock()

			if c.onTick != nil {
				c.onTick(left)
			}
			if left <= 0 {
				return
			}
		case <-stop:
			return
		}
	}
}
