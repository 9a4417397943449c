package screens

import (
	"context"

	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
)

// ResetPassword sets a new password for the email verified on the OTP
// screen.
type ResetPassword struct {
	base
	NewPassword     string
	ConfirmPassword string

	email string
}

func NewResetPassword(d Deps) *ResetPassword {
	return &ResetPassword{base: base{Deps: d}}
}

// Mount checks the handoff; without an email the flow goes back to login.
func (s *ResetPassword) Mount(ctx context.Context) bool {
	email, ok := s.requireHandoff(ctx, "reset_password")
	if !ok {
		return false
	}
	s.email = email
	return true
}

func (s *ResetPassword) Mounted() bool {
	return s.email != ""
}

func (s *ResetPassword) Email() string {
	return s.email
}

// Submit changes the password and returns to login.
func (s *ResetPassword) Submit(ctx context.Context) bool {
	if !s.Mounted() {
		return false
	}
	if msg := checkPassword(s.NewPassword); msg != "" {
		s.setError(msg)
		return false
	}
	if s.NewPassword != s.ConfirmPassword {
		s.setError(MsgPasswordsMismatch)
		return false
	}

	if !s.begin() {
		return false
	}
	defer s.end()
	s.setError("")

	res := s.Client.ResetPassword(ctx, s.email, s.NewPassword)
	if ctx.Err() != nil {
		return false
	}
	if !res.OK {
		logFailure(ctx, s.Log, "reset_password", res)
		s.setError(res.Message)
		return false
	}

	s.Notify.Success(res.Message)
	return s.transition(ctx, flow.ModeLogin, flow.Handoff{})
}

func (s *ResetPassword) ToLogin(ctx context.Context) bool {
	return s.transition(ctx, flow.ModeLogin, flow.Handoff{})
}
