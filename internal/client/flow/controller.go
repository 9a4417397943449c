package flow

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/blogify-auth/internal/logging"
)

// Handoff is the data carried from one screen to the next:
// ForgotPassword -> OTP -> ResetPassword.
type Handoff struct {
	Email string
}

func (h Handoff) Empty() bool {
	return strings.TrimSpace(h.Email) == ""
}

// Controller owns the single active Mode of the unauthenticated session and
// the handoff attached to it. It starts in ModeLogin.
//
// Each mode gets its own screen context, cancelled as soon as the mode
// changes, so work started by a screen dies with it.
type Controller struct {
	mu      sync.Mutex
	mode    Mode
	handoff Handoff
	log     logging.Logger

	parent    context.Context
	screenCtx context.Context
	cancel    context.CancelFunc
}

func NewController(parent context.Context, log logging.Logger) *Controller {
	c := &Controller{mode: ModeLogin, log: log, parent: parent}
	c.screenCtx, c.cancel = context.WithCancel(parent)
	return c
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Controller) Handoff() Handoff {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handoff
}

// ScreenContext returns the context of the active mode.
func (c *Controller) ScreenContext() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screenCtx
}

// Set overwrites the mode without consulting the transition table and
// leaves the handoff untouched. Unknown modes are ignored.
func (c *Controller) Set(next Mode) {
	if !next.Valid() {
		c.log.Warn(c.parent, "ignoring unknown auth mode", "mode", next)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.switchLocked(next)
}

// Transition moves to next if the table allows it.
//
// Entering a mode that needs a handoff with an empty one sends the
// controller back to ModeLogin and returns ErrMissingHandoff. Moving to any
// other mode drops the current handoff.
func (c *Controller) Transition(next Mode, h Handoff) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !CanTransition(c.mode, next) {
		c.log.Warn(c.parent, "rejected auth mode transition", "from", c.mode, "to", next)
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, c.mode, next)
	}

	if next.NeedsHandoff() {
		if h.Empty() {
			c.log.Warn(c.parent, "no email handoff, back to login", "to", next)
			c.handoff = Handoff{}
			c.switchLocked(ModeLogin)
			return fmt.Errorf("%w: %s", ErrMissingHandoff, next)
		}
		c.handoff = h
	} else {
		c.handoff = Handoff{}
	}

	c.switchLocked(next)
	return nil
}

// Reset returns to ModeLogin unconditionally and drops the handoff. Used
// after logout and for invalid-navigation recovery.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handoff = Handoff{}
	c.switchLocked(ModeLogin)
}

// Close cancels the active screen context.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel()
}

func (c *Controller) switchLocked(next Mode) {
	if c.mode == next {
		return
	}
	c.log.Info(c.parent, "auth mode changed", "from", c.mode, "to", next)
	c.mode = next

	c.cancel()
	c.screenCtx, c.cancel = context.WithCancel(c.parent)
}
