// Package client contains the client-side building blocks that talk to the
// outside world: the Blogify auth API and the local session database.
//
// # Overview
//
//  1. A transport-agnostic API contract (see the Client interface) with the
//     five auth operations: Login, Register, RequestPasswordReset, VerifyOTP
//     and ResetPassword.
//  2. An HTTP implementation (see HTTPClient) posting JSON (multipart for
//     Register) to the paths in this package, tagging each call with an
//     X-Request-ID.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// API calls never return Go errors. Each returns a Result whose Message is
// ready for display. Failures that happened before a server envelope was
// read carry GenericFailureMessage and a Cause matching one of
// ErrUnavailable, ErrUnexpectedResponse, ErrProfileImage or a context error.
package client
