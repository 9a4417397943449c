package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/blogify-auth/internal/client/models"
	"github.com/dmitrijs2005/blogify-auth/internal/filex"
	"github.com/dmitrijs2005/blogify-auth/internal/logging"
)

// API paths relative to the base URL.
const (
	PathLogin          = "/auth/login"
	PathRegister       = "/auth/register"
	PathForgotPassword = "/auth/forgot_password"
	PathVerifyOTP      = "/auth/verify_otp"
	PathResetPassword  = "/auth/reset_password"
)

// RequestIDHeader carries a per-call uuid so client and server logs can be joined.
const RequestIDHeader = "X-Request-ID"

const maxResponseBytes = 1 << 20

// MaxProfileImageBytes caps the avatar uploaded on registration.
const MaxProfileImageBytes = 5 << 20

// HTTPClient implements Client against the Blogify REST API.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	log       logging.Logger
	userAgent string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (tests, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) { c.userAgent = ua }
}

// NewHTTPClient builds a client for baseURL (e.g. "https://host/api").
// timeout bounds every call on top of the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		log:       logging.Discard(),
		userAgent: "blogify-auth-cli",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) Result[models.Session] {
	res := postJSON[models.Session](ctx, c, PathLogin, creds)
	if res.OK && res.Value.Token == "" {
		c.log.Warn(ctx, "login succeeded without a token")
		return Failed[models.Session](fmt.Errorf("%w: empty token", ErrUnexpectedResponse))
	}
	return res
}

func (c *HTTPClient) Register(ctx context.Context, profile models.RegistrationProfile) Result[Ack] {
	body, contentType, err := registrationForm(profile)
	if err != nil {
		c.log.Warn(ctx, "registration form not built", "error", err)
		return Failed[Ack](err)
	}
	return send[Ack](ctx, c, PathRegister, contentType, body)
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) Result[Ack] {
	return postJSON[Ack](ctx, c, PathForgotPassword, models.PasswordResetRequest{Email: email})
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, code string) Result[Ack] {
	return postJSON[Ack](ctx, c, PathVerifyOTP, models.OTPVerification{Email: email, OTP: code})
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, newPassword string) Result[Ack] {
	return postJSON[Ack](ctx, c, PathResetPassword, models.PasswordChange{Email: email, NewPassword: newPassword})
}

func postJSON[T any](ctx context.Context, c *HTTPClient, path string, payload any) Result[T] {
	b, err := json.Marshal(payload)
	if err != nil {
		return Failed[T](err)
	}
	return send[T](ctx, c, path, "application/json", bytes.NewReader(b))
}

// send performs one POST and folds every outcome into a Result.
func send[T any](ctx context.Context, c *HTTPClient, path, contentType string, body io.Reader) Result[T] {
	requestID := uuid.NewString()
	log := c.log.With("path", path, "request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		log.Error(ctx, "request not built", "error", err)
		return Failed[T](err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Debug(ctx, "request abandoned", "error", ctxErr)
			return Failed[T](ctxErr)
		}
		log.Warn(ctx, "request failed", "error", err)
		return Failed[T](fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	defer resp.Body.Close()

	log.Debug(ctx, "api call", "status", resp.StatusCode, "duration", time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Warn(ctx, "response not read", "error", err)
		return Failed[T](fmt.Errorf("%w: %v", ErrUnavailable, err))
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn(ctx, "response not decoded", "status", resp.StatusCode, "error", err)
		return Failed[T](fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode))
	}

	if env.Error || resp.StatusCode >= http.StatusMultipleChoices {
		if env.Message == "" {
			return Failed[T](fmt.Errorf("%w: status %d without message", ErrUnexpectedResponse, resp.StatusCode))
		}
		return Rejected[T](env.Message)
	}

	var value T
	if env.Result != nil {
		value = *env.Result
	}
	return Succeeded(env.Message, value)
}

// registrationForm encodes profile as multipart/form-data. The optional
// profile image is read from disk here, so an unreadable file fails the
// submit before anything is sent.
func registrationForm(profile models.RegistrationProfile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"name", profile.DisplayName},
		{"email", profile.Email},
		{"password", profile.Password},
		{"gender", profile.Gender},
		{"about", profile.About},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	if img := profile.ProfileImage; img != nil && img.Path != "" {
		content, err := filex.ReadLimited(img.Path, MaxProfileImageBytes)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrProfileImage, err)
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="profile_image"; filename=%q`, filepath.Base(img.Path)))
		h.Set("Content-Type", http.DetectContentType(content))

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
