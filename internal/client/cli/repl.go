package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
)

// Run starts the read-eval-print loop and blocks until the user exits,
// input ends or ctx is cancelled.
//
// A stored, unexpired session skips straight to the home area. Otherwise
// the prompt follows the auth screen the flow controller has active:
//
//	blogify /login> signin
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Blogify (type 'help' for commands)")
	if a.sessions.Authenticated(ctx) {
		a.home = true
		fmt.Fprintln(a.out, "Welcome back!")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.sync()

		fmt.Fprintf(a.out, "blogify %s> ", a.Route())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(a.out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if !a.dispatch(ctx, parts[0], parts[1:]) {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}
	}
}

// dispatch runs one command and reports whether the loop should go on.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "exit", "quit":
		return false
	case "help":
		fmt.Fprintln(a.out, "Available commands:", a.commands())
		return true
	}

	var handled bool
	if a.home {
		handled = a.homeCommand(ctx, cmd)
	} else {
		handled = a.screenCommand(cmd, args)
	}
	if !handled {
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return true
}

var screenCommands = map[flow.Mode]string{
	flow.ModeLogin:          "signin, register, forgot",
	flow.ModeRegister:       "signup, login",
	flow.ModeForgotPassword: "send, login",
	flow.ModeOTP:            "paste <code>, digit <d>, del, verify, resend, status, login",
	flow.ModeResetPassword:  "reset, login",
}

func (a *App) commands() string {
	list := "logout"
	if !a.home {
		list = screenCommands[a.flow.Mode()]
	}
	return list + ", help, exit"
}

func (a *App) screenCommand(cmd string, args []string) bool {
	ctx := a.screenCtx
	if ctx == nil {
		return false
	}

	switch a.mounted {
	case flow.ModeLogin:
		return a.loginCommand(ctx, cmd)
	case flow.ModeRegister:
		return a.registerCommand(ctx, cmd)
	case flow.ModeForgotPassword:
		return a.forgotCommand(ctx, cmd)
	case flow.ModeOTP:
		return a.otpCommand(ctx, cmd, args)
	case flow.ModeResetPassword:
		return a.resetCommand(ctx, cmd)
	}
	return false
}

func (a *App) homeCommand(ctx context.Context, cmd string) bool {
	if cmd != "logout" {
		return false
	}
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "err", err)
		a.deps.Notify.Error("Could not log out. Please try again..")
		return true
	}
	a.home = false
	a.flow.Reset()
	a.deps.Notify.Success("Logged out")
	return true
}

// inline prints the inline error of a screen.
func (a *App) inline(msg string) {
	if msg != "" {
		fmt.Fprintf(a.out, "Oops! %s\n", msg)
	}
}
