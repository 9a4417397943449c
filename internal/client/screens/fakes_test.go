package screens

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogify-auth/internal/client/client"
	"github.com/dmitrijs2005/blogify-auth/internal/client/flow"
	"github.com/dmitrijs2005/blogify-auth/internal/client/models"
	"github.com/dmitrijs2005/blogify-auth/internal/logging"
)

// fakeClient answers with canned results and records what it was asked.
type fakeClient struct {
	mu sync.Mutex

	LoginRes    client.Result[models.Session]
	RegisterRes client.Result[client.Ack]
	ForgotRes   client.Result[client.Ack]
	VerifyRes   client.Result[client.Ack]
	ResetRes    client.Result[client.Ack]

	// block, when set, holds every call until it is closed.
	block chan struct{}

	Calls        []string
	LastCreds    models.Credentials
	LastProfile  models.RegistrationProfile
	LastEmail    string
	LastCode     string
	LastPassword string
}

func (f *fakeClient) record(op string) {
	f.mu.Lock()
	f.Calls = append(f.Calls, op)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeClient) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) client.Result[models.Session] {
	f.LastCreds = creds
	f.record("login")
	return f.LoginRes
}

func (f *fakeClient) Register(ctx context.Context, p models.RegistrationProfile) client.Result[client.Ack] {
	f.LastProfile = p
	f.record("register")
	return f.RegisterRes
}

func (f *fakeClient) RequestPasswordReset(ctx context.Context, email string) client.Result[client.Ack] {
	f.LastEmail = email
	f.record("forgot_password")
	return f.ForgotRes
}

func (f *fakeClient) VerifyOTP(ctx context.Context, email, code string) client.Result[client.Ack] {
	f.LastEmail, f.LastCode = email, code
	f.record("verify_otp")
	return f.VerifyRes
}

func (f *fakeClient) ResetPassword(ctx context.Context, email, password string) client.Result[client.Ack] {
	f.LastEmail, f.LastPassword = email, password
	f.record("reset_password")
	return f.ResetRes
}

type fakeSessions struct {
	Token string
	Err   error
}

func (f *fakeSessions) SetToken(ctx context.Context, token string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Token = token
	return nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (n *fakeNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes = append(n.Successes, msg)
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, msg)
}

type fakeNav struct {
	Routes []string
}

func (n *fakeNav) Navigate(route string) {
	n.Routes = append(n.Routes, route)
}

type harness struct {
	client   *fakeClient
	flow     *flow.Controller
	sessions *fakeSessions
	notify   *fakeNotifier
	nav      *fakeNav
}

func (h *harness) deps() Deps {
	return Deps{
		Client:   h.client,
		Flow:     h.flow,
		Sessions: h.sessions,
		Notify:   h.notify,
		Nav:      h.nav,
		Log:      logging.Discard(),
		Tick:     time.Hour,
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fc := flow.NewController(context.Background(), logging.Discard())
	t.Cleanup(fc.Close)
	return &harness{
		client:   &fakeClient{},
		flow:     fc,
		sessions: &fakeSessions{},
		notify:   &fakeNotifier{},
		nav:      &fakeNav{},
	}
}

// atOTP walks the flow to the OTP screen for email.
func (h *harness) atOTP(t *testing.T, email string) {
	t.Helper()
	if err := h.flow.Transition(flow.ModeForgotPassword, flow.Handoff{}); err != nil {
		t.Fatal(err)
	}
	if err := h.flow.Transition(flow.ModeOTP, flow.Handoff{Email: email}); err != nil {
		t.Fatal(err)
	}
}
