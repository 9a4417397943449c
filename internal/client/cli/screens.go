package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/blogify-auth/internal/client/models"
	"github.com/dmitrijs2005/blogify-auth/internal/client/otp"
	"github.com/dmitrijs2005/blogify-auth/internal/client/screens"
)

// getSimpleText, getPassword and getChoice are indirections used to swap
// the interactive prompts in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getChoice     = GetChoice
)

func (a *App) loginCommand(ctx context.Context, cmd string) bool {
	s := a.signIn
	switch cmd {
	case "signin":
		var err error
		if s.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
			return true
		}
		if s.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
			return true
		}
		if !s.Submit(ctx) {
			a.inline(s.Error())
		}
	case "register":
		s.ToRegister(ctx)
	case "forgot":
		s.ToForgotPassword(ctx)
	default:
		return false
	}
	return true
}

func (a *App) registerCommand(ctx context.Context, cmd string) bool {
	s := a.signUp
	switch cmd {
	case "signup":
		if err := a.fillSignUp(s); err != nil {
			return true
		}
		if !s.Submit(ctx) {
			a.printFieldErrors(s.FieldErrors())
		}
	case "login":
		s.ToLogin(ctx)
	default:
		return false
	}
	return true
}

// fillSignUp prompts for every registration field.
func (a *App) fillSignUp(s *screens.SignUp) error {
	var err error
	if s.DisplayName, err = getSimpleText(a.reader, "Display name", a.out); err != nil {
		return err
	}
	if s.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if s.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if s.Gender, err = getChoice(a.reader, "Gender", genders, a.out); err != nil {
		return err
	}
	if s.About, err = getSimpleText(a.reader, "About you", a.out); err != nil {
		return err
	}
	s.ProfileImage, err = getSimpleText(a.reader, "Profile image path (empty to skip)", a.out)
	return err
}

func (a *App) printFieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", f, errs[f])
	}
}

func (a *App) forgotCommand(ctx context.Context, cmd string) bool {
	s := a.forgot
	switch cmd {
	case "send":
		var err error
		if s.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
			return true
		}
		if !s.Submit(ctx) {
			a.inline(s.Error())
		}
	case "login":
		s.ToLogin(ctx)
	default:
		return false
	}
	return true
}

func (a *App) otpCommand(ctx context.Context, cmd string, args []string) bool {
	s := a.otp
	if !s.Mounted() {
		return false
	}
	switch cmd {
	case "paste":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: paste <code>")
			return true
		}
		if !s.Paste(args[0]) {
			fmt.Fprintln(a.out, "Only digits can be pasted.")
		}
		a.printOTPStatus()
	case "digit":
		if len(args) == 0 || !s.Type(args[0]) {
			fmt.Fprintln(a.out, "Usage: digit <0-9>")
			return true
		}
		a.printOTPStatus()
	case "del":
		s.Backspace()
		a.printOTPStatus()
	case "status":
		a.printOTPStatus()
	case "verify":
		if !s.Submit(ctx) {
			a.inline(s.Error())
		}
	case "resend":
		if !s.CanResend() {
			fmt.Fprintf(a.out, "Resend OTP in %s\n", s.TimerText())
			return true
		}
		s.Resend(ctx)
	case "login":
		s.ToLogin(ctx)
	default:
		return false
	}
	return true
}

func (a *App) printOTPHeader() {
	fmt.Fprintf(a.out, "Enter the 6-digit code sent to %s\n", a.otp.Email())
	a.printOTPStatus()
}

// printOTPStatus draws the slots with the focused one marked, e.g.
// "[1] [2] >_< [_] [_] [_]   resend in 00:17".
func (a *App) printOTPStatus() {
	w := a.otp.Widget()
	digits := w.Digits()
	focus := w.Focus()

	cells := make([]string, otp.Length)
	for i, d := range digits {
		if d == "" {
			d = "_"
		}
		if i == focus {
			cells[i] = ">" + d + "<"
		} else {
			cells[i] = "[" + d + "]"
		}
	}

	timer := "resend available"
	if !a.otp.CanResend() {
		timer = "resend in " + a.otp.TimerText()
	}
	fmt.Fprintf(a.out, "%s   %s\n", strings.Join(cells, " "), timer)
	a.inline(a.otp.Error())
}

func (a *App) resetCommand(ctx context.Context, cmd string) bool {
	s := a.reset
	if !s.Mounted() {
		return false
	}

	switch cmd {
	case "reset":
		var err error
		if s.NewPassword, err = getPassword(a.reader, "New password", a.out); err != nil {
			return true
		}
		if s.ConfirmPassword, err = getPassword(a.reader, "Confirm password", a.out); err != nil {
			return true
		}
		if !s.Submit(ctx) {
			a.inline(s.Error())
		}
	case "login":
		s.ToLogin(ctx)
	default:
		return false
	}
	return true
}

var genders = []string{models.GenderMale, models.GenderFemale, models.GenderOther}
