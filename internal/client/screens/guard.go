package screens

import (
	"context"

	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
)

// requireHandoff returns the handoff email of the flow. Without one the
// flow is sent back to login and ok is false.
func (b *base) requireHandoff(ctx context.Context, screen string) (email string, ok bool) {
	h := b.Flow.Handoff()
	if h.Empty() {
		b.Log.Warn(ctx, "screen opened without email, back to login", "screen", screen)
		b.transition(ctx, flow.ModeLogin, flow.Handoff{})
		return "", false
	}
	return h.Email, true
}
