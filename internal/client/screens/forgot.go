package screens

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
)

// ForgotPassword asks the backend to mail a one-time code.
type ForgotPassword struct {
	base
	Email string
}

func NewForgotPassword(d Deps) *ForgotPassword {
	return &ForgotPassword{base: base{Deps: d}}
}

// Submit requests the code and moves to the OTP screen with the email as
// handoff.
func (s *ForgotPassword) Submit(ctx context.Context) bool {
	email := strings.TrimSpace(s.Email)
	switch {
	case email == "":
		s.setError(MsgForgotEmailEmpty)
		return false
	case !validEmail(email):
		s.setError(MsgForgotEmailFormat)
		return false
	}

	if !s.begin() {
		return false
	}
	defer s.end()
	s.setError("")

	res := s.Client.RequestPasswordReset(ctx, email)
	if ctx.Err() != nil {
		return false
	}
	if !res.OK {
		logFailure(ctx, s.Log, "forgot_password", res)
		s.setError(res.Message)
		return false
	}

	s.Notify.Success(res.Message)
	return s.transition(ctx, flow.ModeOTP, flow.Handoff{Email: email})
}

func (s *ForgotPassword) ToLogin(ctx context.Context) bool {
	return s.transition(ctx, flow.ModeLogin, flow.Handoff{})
}
