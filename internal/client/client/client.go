package client

import (
	"context"

	"github.com/dmitrijs2005/blogify-auth/internal/client/models"
)

// Client is the Blogify auth API as seen by the screen controllers.
//
// Every call reports its outcome as a Result: transport problems never
// surface as Go errors, so callers only branch on Result.OK and show
// Result.Message.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) Result[models.Session]
	Register(ctx context.Context, profile models.RegistrationProfile) Result[Ack]
	RequestPasswordReset(ctx context.Context, email string) Result[Ack]
	VerifyOTP(ctx context.Context, email, code string) Result[Ack]
	ResetPassword(ctx context.Context, email, newPassword string) Result[Ack]
}
