package screens

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
	"github.com/dmitrijs2005/blogify-auth/internal/client/models"
)

// SignIn is the login form.
type SignIn struct {
	base
	Email    string
	Password string
}

func NewSignIn(d Deps) *SignIn {
	return &SignIn{base: base{Deps: d}}
}

// Submit logs in. On success the token is stored and the user is sent
// home; on failure the server message becomes the inline error and the
// fields are kept. It reports whether the user ended up logged in.
func (s *SignIn) Submit(ctx context.Context) bool {
	email := strings.TrimSpace(s.Email)
	if email == "" || s.Password == "" {
		s.setError("")
		s.Notify.Error(MsgFillAllDetails)
		return false
	}

	if !s.begin() {
		return false
	}
	defer s.end()
	s.setError("")

	res := s.Client.Login(ctx, models.Credentials{Email: email, Password: s.Password})
	if ctx.Err() != nil {
		return false
	}
	if !res.OK {
		logFailure(ctx, s.Log, "login", res)
		s.setError(res.Message)
		return false
	}

	if err := s.Sessions.SetToken(ctx, res.Value.Token); err != nil {
		s.Log.Error(ctx, "failed to persist token", "err", err)
		s.setError(MsgSessionNotSaved)
		return false
	}

	s.Notify.Success(res.Message)
	s.Nav.Navigate(flow.RouteHome)
	return true
}

// ToRegister and ToForgotPassword are the links under the form.
func (s *SignIn) ToRegister(ctx context.Context) bool {
	return s.transition(ctx, flow.ModeRegister, flow.Handoff{})
}

func (s *SignIn) ToForgotPassword(ctx context.Context) bool {
	return s.transition(ctx, flow.ModeForgotPassword, flow.Handoff{})
}
