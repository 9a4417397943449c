// Package otp implements the six-slot one-time-code input and its resend
// countdown.
package otp
