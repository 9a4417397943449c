package screens

import (
	"context"

	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
	"github.com/dmitrijs2005/blogify-auth/internal/client/otp"
)

// OTP is the code verification screen. It only exists for an email handed
// over by ForgotPassword; Mount enforces that before any OTP state is built.
type OTP struct {
	base
	widget *otp.Widget
	email  string
}

func NewOTP(d Deps) *OTP {
	return &OTP{base: base{Deps: d}}
}

// Mount checks the handoff, builds the widget and starts the resend
// countdown bound to ctx. It reports whether the screen is usable.
func (s *OTP) Mount(ctx context.Context) bool {
	email, ok := s.requireHandoff(ctx, "otp")
	if !ok {
		return false
	}

	s.email = email
	s.widget = otp.NewWidget(otp.NewCountdown(otp.ResendSeconds, s.tick()))
	s.widget.Timer().Start(ctx)
	return true
}

// Unmount waits for the countdown to stop. The ctx given to Mount must be
// cancelled first.
func (s *OTP) Unmount() {
	if s.widget != nil {
		s.widget.Timer().Wait()
	}
}

func (s *OTP) Mounted() bool {
	return s.widget != nil
}

// Widget is nil until Mount succeeds.
func (s *OTP) Widget() *otp.Widget {
	return s.widget
}

func (s *OTP) Email() string {
	return s.email
}

// TimerText renders the resend countdown, e.g. "00:17".
func (s *OTP) TimerText() string {
	if s.widget == nil {
		return ""
	}
	return s.widget.Timer().Text()
}

func (s *OTP) CanResend() bool {
	return s.widget != nil && s.widget.Timer().CanResend()
}

// Input, Type, Paste and Backspace edit the code. Any accepted edit
// clears the inline error left by a rejected verify.
func (s *OTP) Input(index int, value string) bool {
	if s.widget == nil || !s.widget.Input(index, value) {
		return false
	}
	s.setError("")
	return true
}

func (s *OTP) Type(value string) bool {
	if s.widget == nil || !s.widget.Type(value) {
		return false
	}
	s.setError("")
	return true
}

func (s *OTP) Paste(text string) bool {
	if s.widget == nil || !s.widget.Paste(text) {
		return false
	}
	s.setError("")
	return true
}

// Backspace edits the focused slot.
func (s *OTP) Backspace() {
	if s.widget == nil {
		return
	}
	s.widget.Backspace(s.widget.Focus())
	s.setError("")
}

// Submit verifies the code. Success moves to ResetPassword with the same
// email; failure keeps the digits and shows the message inline.
func (s *OTP) Submit(ctx context.Context) bool {
	if s.widget == nil {
		return false
	}
	if !s.widget.Complete() {
		s.setError(MsgOTPIncomplete)
		return false
	}

	if !s.begin() {
		return false
	}
	defer s.end()
	if !s.widget.BeginSubmit() {
		return false
	}
	defer s.widget.EndSubmit()
	s.setError("")

	res := s.Client.VerifyOTP(ctx, s.email, s.widget.Code())
	if ctx.Err() != nil {
		return false
	}
	if !res.OK {
		logFailure(ctx, s.Log, "verify_otp", res)
		s.setError(res.Message)
		return false
	}

	s.Notify.Success(res.Message)
	return s.transition(ctx, flow.ModeResetPassword, flow.Handoff{Email: s.email})
}

// Resend asks for a new code. It is refused until the countdown reaches
// zero; a successful resend restarts the countdown.
func (s *OTP) Resend(ctx context.Context) bool {
	if !s.CanResend() {
		return false
	}

	if !s.begin() {
		return false
	}
	defer s.end()

	res := s.Client.RequestPasswordReset(ctx, s.email)
	if ctx.Err() != nil {
		return false
	}
	if !res.OK {
		logFailure(ctx, s.Log, "resend_otp", res)
		s.Notify.Error(res.Message)
		return false
	}

	s.widget.Timer().Reset()
	s.Notify.Success(MsgOTPResent)
	return true
}

func (s *OTP) ToLogin(ctx context.Context) bool {
	return s.transition(ctx, flow.ModeLogin, flow.Handoff{})
}
