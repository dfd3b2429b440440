// Package auth is the client for the backend's session endpoints.
// The credential itself travels as an ambient cookie; the only thing
// held locally is the identity snapshot in the session store.
package auth

import (
	"context"
	"net/http"

	"webshop-client/internal/logger"
	"webshop-client/internal/session"

	"go.uber.org/zap"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
}

// transport is the slice of the request gateway this service needs.
type transport interface {
	Post(ctx context.Context, path string, body, out any) error
	DoOnce(ctx context.Context, method, path string, body, out any) error
}

type Service interface {
	Login(ctx context.Context, input LoginInput) (*session.Session, error)
	Register(ctx context.Context, input RegisterInput) error
	RefreshSession(ctx context.Context) (*session.Session, error)
	Logout(ctx context.Context)
}

type service struct {
	api      transport
	sessions *session.Store
}

func NewService(api transport, sessions *session.Store) Service {
	return &service{api: api, sessions: sessions}
}

// Login authenticates against POST /login and persists the returned
// identity snapshot.
func (s *service) Login(ctx context.Context, input LoginInput) (*session.Session, error) {
	var sess session.Session
	if err := s.api.Post(ctx, "/login", input, &sess); err != nil {
		logger.FromCtx(ctx).Warn("login rejected", zap.String("email", input.Email), zap.Error(err))
		return nil, ErrLoginFailed
	}
	if err := s.sessions.Set(sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) error {
	if err := s.api.Post(ctx, "/register", input, nil); err != nil {
		logger.FromCtx(ctx).Warn("registration rejected", zap.Error(err))
		return ErrRegistrationFailed
	}
	return nil
}

// RefreshSession exchanges the ambient refresh credential for a new
// session. It bypasses the gateway's retry wrapper so a failing
// refresh can never trigger another refresh. On failure all local
// state tied to the identity is cleared.
func (s *service) RefreshSession(ctx context.Context) (*session.Session, error) {
	var sess session.Session
	if err := s.api.DoOnce(ctx, http.MethodPost, "/refreshToken", nil, &sess); err != nil {
		logger.FromCtx(ctx).Warn("session renewal rejected", zap.Error(err))
		s.sessions.Clear()
		return nil, ErrRenewalFailed
	}
	if err := s.sessions.Set(sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Logout tells the server to drop the session and clears local state
// regardless of whether the server call succeeded.
func (s *service) Logout(ctx context.Context) {
	if err := s.api.Post(ctx, "/logout", nil, nil); err != nil {
		logger.FromCtx(ctx).Warn("logout call failed", zap.Error(err))
	}
	s.sessions.Clear()
}

// Renewer adapts the service to the gateway's renewal hook.
func Renewer(s Service) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := s.RefreshSession(ctx)
		return err
	}
}
