package otp

import (
	"strings"
	"sync"
)

const (
	// Length is the number of digits in a one-time code.
	Length = 6
	// ResendSeconds is how long the resend action stays disabled.
	ResendSeconds = 20
)

type State int

const (
	StateEntering State = iota
	StateComplete
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateComplete:
		return "complete"
	case StateSubmitting:
		return "submitting"
	default:
		return "entering"
	}
}

// Widget is a fixed-length one-time-code input: one slot per digit, a
// focused slot, and the resend countdown.
//
// Every slot holds "" or a single ASCII digit.
type Widget struct {
	mu         sync.Mutex
	digits     [Length]string
	focus      int
	submitting bool
	timer      *Countdown
}

func NewWidget(timer *Countdown) *Widget {
	return &Widget{timer: timer}
}

func (w *Widget) Timer() *Countdown {
	return w.timer
}

func (w *Widget) Digits() [Length]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.digits
}

func (w *Widget) Focus() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.focus
}

// Code joins the filled slots.
func (w *Widget) Code() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return strings.Join(w.digits[:], "")
}

func (w *Widget) Complete() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.completeLocked()
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case w.submitting:
		return StateSubmitting
	case w.completeLocked():
		return StateComplete
	default:
		return StateEntering
	}
}

// Input writes value into slot index. value must be "" or a single digit,
// anything else is rejected without changes. After a digit the focus moves
// to the next empty slot, or to the last slot when none is left.
func (w *Widget) Input(index int, value string) bool {
	if index < 0 || index >= Length || !isDigitOrEmpty(value) {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return false
	}

	w.digits[index] = value
	w.focus = index
	if value != "" {
		w.focus = w.nextEmptyLocked(index)
	}
	return true
}

// Type writes value into the focused slot.
func (w *Widget) Type(value string) bool {
	return w.Input(w.Focus(), value)
}

// Backspace at slot index clears a filled slot in place. On an empty slot
// it moves the focus one slot back; at slot 0 it does nothing.
func (w *Widget) Backspace(index int) {
	if index < 0 || index >= Length {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return
	}

	switch {
	case w.digits[index] != "":
		w.digits[index] = ""
		w.focus = index
	case index > 0:
		w.focus = index - 1
	}
}

// Paste fills slots from 0 with the leading Length characters of text. If
// any of them is not a digit nothing changes and false is returned. Focus
// lands after the last pasted digit, or on the last slot after a full paste.
func (w *Widget) Paste(text string) bool {
	chars := []rune(text)
	if len(chars) > Length {
		chars = chars[:Length]
	}
	if len(chars) == 0 {
		return false
	}
	for _, r := range chars {
		if r < '0' || r > '9' {
			return false
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return false
	}

	for i, r := range chars {
		w.digits[i] = string(r)
	}
	if len(chars) < Length {
		w.focus = len(chars)
	} else {
		w.focus = Length - 1
	}
	return true
}

// BeginSubmit marks the widget as submitting. It fails when the code is
// incomplete or a submit is already running.
func (w *Widget) BeginSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting || !w.completeLocked() {
		return false
	}
	w.submitting = true
	return true
}

// EndSubmit leaves the submitting state. Digits are kept.
func (w *Widget) EndSubmit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
}

func (w *Widget) completeLocked() bool {
	for _, d := range w.digits {
		if d == "" {
			return false
		}
	}
	return true
}

func (w *Widget) nextEmptyLocked(after int) int {
	for i := after + 1; i < Length; i++ {
		if w.digits[i] == "" {
			return i
		}
	}
	return Length - 1
}

func isDigitOrEmpty(v string) bool {
	return v == "" || (len(v) == 1 && v[0] >= '0' && v[0] <= '9')
}
