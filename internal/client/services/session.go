// Package services contains the client application services. SessionService
// keeps the auth token issued on login in the local database.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/blogify-auth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/blogify-auth/internal/dbx"
)

const (
	keyToken   = "token"
	keySavedAt = "token_saved_at"
)

// SessionService owns the auth token.
//
// Contract:
//   - Token: the stored token, "" when logged out.
//   - SetToken: persist a token issued on login.
//   - Clear: forget the token (logout).
//   - Authenticated: a token is stored and, if it is a JWT with exp, not expired.
type SessionService interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Authenticated(ctx context.Context) bool
}

type sessionService struct {
	db  *sql.DB
	now func() time.Time
}

func NewSessionService(db *sql.DB) SessionService {
	return &sessionService{db: db, now: time.Now}
}

func (s *sessionService) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *sessionService) Token(ctx context.Context) (string, error) {
	v, _, err := s.repo(s.db).Get(ctx, keyToken)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(v), nil
}

// SetToken stores token together with the time it was saved.
func (s *sessionService) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keySavedAt, []byte(s.now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *sessionService) Clear(ctx context.Context) error {
	if err := s.repo(s.db).Delete(ctx, keyToken, keySavedAt); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *sessionService) Authenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return false
	}
	return !expired(token, s.now())
}

// expired reports whether token is a JWT whose exp lies before now. The
// signature is not checked; tokens that are not JWTs never expire here.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
