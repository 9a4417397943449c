package cli

import (
	"fmt"
	"io"
)

// notifier prints toasts on the terminal.
type notifier struct {
	w io.Writer
}

func (n notifier) Success(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintf(n.w, "[ok] %s\n", msg)
}

func (n notifier) Error(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintf(n.w, "[error] %s\n", msg)
}
