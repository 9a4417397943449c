package cli

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/dmitrijs2005/blogify-auth/internal/client/client"
	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
	"github.com/dmitrijs2005/blogify-auth/internal/client/screens"
	"github.com/dmitrijs2005/blogify-auth/internal/client/services"
	"github.com/dmitrijs2005/blogify-auth/internal/logging"
)

// Options are the collaborators of an App.
type Options struct {
	Client   client.Client
	Sessions services.SessionService
	Log      logging.Logger
	In       io.Reader
	Out      io.Writer
	// Tick is one second of the OTP countdown; zero means time.Second.
	Tick time.Duration
}

// App is the terminal front-end. It renders whichever auth screen the flow
// controller says is active, or the home area once logged in.
type App struct {
	flow     *flow.Controller
	sessions services.SessionService
	log      logging.Logger
	deps     screens.Deps
	reader   *bufio.Reader
	out      io.Writer

	home bool

	// the mounted screen; only the field matching mounted is set
	mounted   flow.Mode
	screenCtx context.Context
	signIn    *screens.SignIn
	signUp    *screens.SignUp
	forgot    *screens.ForgotPassword
	otp       *screens.OTP
	reset     *screens.ResetPassword
}

// NewApp builds an App whose screens live under ctx.
func NewApp(ctx context.Context, o Options) *App {
	log := o.Log
	if log == nil {
		log = logging.Discard()
	}

	a := &App{
		flow:     flow.NewController(ctx, log),
		sessions: o.Sessions,
		log:      log,
		reader:   bufio.NewReader(o.In),
		out:      o.Out,
	}
	a.deps = screens.Deps{
		Client:   o.Client,
		Flow:     a.flow,
		Sessions: o.Sessions,
		Notify:   notifier{w: o.Out},
		Nav:      a,
		Log:      log,
		Tick:     o.Tick,
	}
	return a
}

// Navigate implements flow.Navigator.
func (a *App) Navigate(route string) {
	a.log.Info(context.Background(), "navigate", "route", route)
	a.home = route == flow.RouteHome
	a.flow.Reset()
}

// Route is the logical path currently shown.
func (a *App) Route() string {
	if a.home {
		return flow.RouteHome
	}
	return flow.Route(a.flow.Mode())
}

// Close stops the active screen.
func (a *App) Close() {
	a.flow.Close()
	a.unmount()
}

// sync makes the mounted screen match the flow. A screen is rebuilt
// whenever the flow hands out a new screen context, so every visit starts
// from an empty form. Mount may itself redirect (OTP without an email), so
// this loops until the flow settles.
func (a *App) sync() {
	if a.home {
		a.unmount()
		return
	}

	for range flow.Modes {
		ctx := a.flow.ScreenContext()
		if a.screenCtx == ctx {
			return
		}
		a.unmount()
		a.mount(ctx, a.flow.Mode())
	}
}

func (a *App) mount(ctx context.Context, m flow.Mode) {
	a.mounted = m
	a.screenCtx = ctx

	switch m {
	case flow.ModeLogin:
		a.signIn = screens.NewSignIn(a.deps)
	case flow.ModeRegister:
		a.signUp = screens.NewSignUp(a.deps)
	case flow.ModeForgotPassword:
		a.forgot = screens.NewForgotPassword(a.deps)
	case flow.ModeOTP:
		s := screens.NewOTP(a.deps)
		a.otp = s
		if !s.Mount(ctx) {
			return
		}
		a.printOTPHeader()
	case flow.ModeResetPassword:
		s := screens.NewResetPassword(a.deps)
		a.reset = s
		if !s.Mount(ctx) {
			return
		}
	}
	a.log.Debug(ctx, "screen mounted", "mode", m)
}

func (a *App) unmount() {
	if a.otp != nil {
		a.otp.Unmount()
	}
	a.signIn, a.signUp, a.forgot, a.otp, a.reset = nil, nil, nil, nil, nil
	a.screenCtx = nil
	a.mounted = ""
}
