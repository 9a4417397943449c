package screens

import (
	"context"
	"maps"
	"strings"

	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
	"github.com/dmitrijs2005/blogify-auth/internal/client/models"
)

// Field names used as keys of SignUp.FieldErrors.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// SignUp is the registration form.
type SignUp struct {
	base
	DisplayName string
	Email       string
	Password    string
	Gender      string
	About       string
	// ProfileImage is a local file path, "" for none.
	ProfileImage string

	fieldErrs map[string]string
}

func NewSignUp(d Deps) *SignUp {
	return &SignUp{base: base{Deps: d}}
}

// FieldErrors returns the per-field messages of the last validation.
func (s *SignUp) FieldErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.fieldErrs)
}

// Validate checks email and password and records the problems found.
func (s *SignUp) Validate() map[string]string {
	errs := map[string]string{}

	switch email := strings.TrimSpace(s.Email); {
	case email == "":
		errs[FieldEmail] = MsgEmailRequired
	case !validEmail(email):
		errs[FieldEmail] = MsgEmailInvalid
	}

	if msg := checkPassword(s.Password); msg != "" {
		errs[FieldPassword] = msg
	}

	s.mu.Lock()
	s.fieldErrs = errs
	s.mu.Unlock()
	return maps.Clone(errs)
}

// Submit registers the account and returns to the login screen. Any field
// error aborts before the network is touched.
func (s *SignUp) Submit(ctx context.Context) bool {
	if len(s.Validate()) > 0 {
		s.Notify.Error(MsgFillAllDetails)
		return false
	}

	if !s.begin() {
		return false
	}
	defer s.end()

	profile := models.RegistrationProfile{
		DisplayName: strings.TrimSpace(s.DisplayName),
		Email:       strings.TrimSpace(s.Email),
		Password:    s.Password,
		Gender:      s.Gender,
		About:       s.About,
	}
	if s.ProfileImage != "" {
		profile.ProfileImage = &models.ProfileImage{Path: s.ProfileImage}
	}

	res := s.Client.Register(ctx, profile)
	if ctx.Err() != nil {
		return false
	}
	if !res.OK {
		logFailure(ctx, s.Log, "register", res)
		s.Notify.Error(res.Message)
		return false
	}

	s.Notify.Success(res.Message)
	return s.transition(ctx, flow.ModeLogin, flow.Handoff{})
}

func (s *SignUp) ToLogin(ctx context.Context) bool {
	return s.transition(ctx, flow.ModeLogin, flow.Handoff{})
}
