package screens

import (
	"regexp"
	"strings"
)

// MinPasswordLength applies to registration and password reset.
const MinPasswordLength = 6

// User facing messages.
const (
	MsgFillAllDetails    = "Please fill all details..."
	MsgEmailRequired     = "Email is required..."
	MsgEmailInvalid      = "Invalid email format"
	MsgPasswordRequired  = "Password is required..."
	MsgPasswordTooShort  = "Password must be at least 6 characters"
	MsgForgotEmailEmpty  = "Email is required."
	MsgForgotEmailFormat = "Please enter a valid email address."
	MsgOTPIncomplete     = "Please enter the complete 6-digit OTP"
	MsgOTPResent         = "OTP resent successfully!"
	MsgPasswordsMismatch = "Passwords do not match"
	MsgSessionNotSaved   = "Could not save your session. Please try again.."
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]{2,}$`)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// checkPassword returns the first problem with a new password, or "".
func checkPassword(p string) string {
	switch {
	case blank(p):
		return MsgPasswordRequired
	case len([]rune(p)) < MinPasswordLength:
		return MsgPasswordTooShort
	}
	return ""
}
