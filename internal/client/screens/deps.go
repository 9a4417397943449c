package screens

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/blogify-auth/internal/client/client"
	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
	"github.com/dmitrijs2005/blogify-auth/internal/logging"
)

// Notifier shows transient messages, the toasts of the UI.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Flow is the part of flow.Controller the screens drive.
type Flow interface {
	Mode() flow.Mode
	Handoff() flow.Handoff
	Transition(next flow.Mode, h flow.Handoff) error
}

// TokenStore persists the token issued on login.
type TokenStore interface {
	SetToken(ctx context.Context, token string) error
}

// Deps are the collaborators shared by every screen.
type Deps struct {
	Client   client.Client
	Flow     Flow
	Sessions TokenStore
	Notify   Notifier
	Nav      flow.Navigator
	Log      logging.Logger
	// Tick is one second of the OTP resend countdown.
	Tick time.Duration
}

func (d Deps) tick() time.Duration {
	if d.Tick <= 0 {
		return time.Second
	}
	return d.Tick
}

// base carries the inline error and the in-flight guard of a screen.
type base struct {
	Deps

	busy atomic.Bool
	mu   sync.Mutex
	err  string
}

// Error is the inline error of the screen, "" when there is none.
func (b *base) Error() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Busy reports whether a submit is in flight.
func (b *base) Busy() bool {
	return b.busy.Load()
}

func (b *base) setError(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = msg
}

// begin claims the screen for one submit. A second submit while the first
// is in flight is refused.
func (b *base) begin() bool {
	return b.busy.CompareAndSwap(false, true)
}

func (b *base) end() {
	b.busy.Store(false)
}

// logFailure records why a backend call failed. Only Cause is logged;
// Message is already on screen.
func logFailure[T any](ctx context.Context, log logging.Logger, op string, res client.Result[T]) {
	if res.Cause != nil {
		log.Warn(ctx, "auth request failed", "op", op, "err", res.Cause)
		return
	}
	log.Debug(ctx, "auth request rejected", "op", op, "message", res.Message)
}

// transition moves the flow and logs a refused move.
func (b *base) transition(ctx context.Context, next flow.Mode, h flow.Handoff) bool {
	if err := b.Flow.Transition(next, h); err != nil {
		b.Log.Warn(ctx, "screen transition refused", "to", next, "err", err)
		return false
	}
	return true
}
