package otp

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Countdown is the resend timer of the OTP screen. It counts whole seconds
// down to zero on its own goroutine and stops there; resend is allowed only
// at zero.
type Countdown struct {
	mu        sync.Mutex
	start     int
	remaining int
	interval  time.Duration
	ctx       context.Context
	running   bool
	wg        sync.WaitGroup
}

// NewCountdown returns a stopped countdown at seconds. interval is the
// length of one tick, time.Second outside tests.
func NewCountdown(seconds int, interval time.Duration) *Countdown {
	return &Countdown{start: seconds, remaining: seconds, interval: interval}
}

// Start binds the countdown to ctx and begins ticking. Ticking stops at zero
// or when ctx is done; Wait blocks until the goroutine has exited.
func (c *Countdown) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctx = ctx
	c.spawnLocked()
}

// Reset puts the countdown back to its initial value and restarts ticking
// if the bound context is still alive.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.start
	c.spawnLocked()
}

// Tick removes one second, never going below zero, and returns what is left.
func (c *Countdown) Tick() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// CanResend is true exactly when the countdown reached zero.
func (c *Countdown) CanResend() bool {
	return c.Remaining() == 0
}

// Running reports whether the ticking goroutine is alive.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Wait blocks until the ticking goroutine, if any, has exited.
func (c *Countdown) Wait() {
	c.wg.Wait()
}

// Text renders the remaining time as 0m:ss, e.g. "00:20".
func (c *Countdown) Text() string {
	r := c.Remaining()
	return fmt.Sprintf("0%d:%02d", r/60, r%60)
}

func (c *Countdown) spawnLocked() {
	if c.running || c.ctx == nil || c.ctx.Err() != nil || c.remaining == 0 {
		return
	}
	c.running = true
	c.wg.Add(1)
	go c.run(c.ctx)
}

func (c *Countdown) run(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !c.step() {
				return
			}
		case <-ctx.Done():
			c.mu.Lock()
			c.running = false
			c.mu.Unlock()
			return
		}
	}
}

// step ticks once and reports whether the goroutine should keep going.
func (c *Countdown) step() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.running = false
		return false
	}
	return true
}
