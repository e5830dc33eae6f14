package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/tivivek/support-ticketing-system/internal/session"
	"github.com/tivivek/support-ticketing-system/pkg/apperrors"
)

// applyAuth is the exhaustive handler for the auth slice.
func (s *Store) applyAuth(action AuthAction) {
	switch a := action.(type) {
	case LoginRequested:
		s.auth.IsLoading = true
		s.auth.Err = ""
	case LoginSucceeded:
		user := a.User
		s.auth.IsLoading = false
		s.auth.IsAuthenticated = true
		s.auth.User = &user
		s.auth.Token = a.Token
		s.auth.RefreshToken = a.RefreshToken
	case LoginFailed:
		s.auth.IsLoading = false
		s.auth.Err = a.Err
	case LoggedOut:
		s.auth = initialAuthState()
	case CurrentUserRequested:
		s.auth.IsLoading = true
	case CurrentUserLoaded:
		user := a.User
		s.auth.IsLoading = false
		s.auth.User = &user
	case CurrentUserFailed:
		s.auth = initialAuthState()
		s.auth.Err = a.Err
	case CredentialsRestored:
		s.auth.Token = a.Token
		s.auth.RefreshToken = a.RefreshToken
		s.auth.IsAuthenticated = a.Token != ""
	}
}

// Login runs the login request cycle. On success the token pair is persisted
// under the well-known session keys.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.Dispatch(LoginRequested{})

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.Dispatch(LoginFailed{Err: errorMessage(err, "Login failed")})
		return err
	}

	if err := s.sessions.Set(ctx, session.TokenKey, res.Token); err != nil {
		s.logger.Warn("persist token", zap.Error(err))
	}
	if err := s.sessions.Set(ctx, session.RefreshTokenKey, res.RefreshToken); err != nil {
		s.logger.Warn("persist refresh token", zap.Error(err))
	}

	s.Dispatch(LoginSucceeded{User: res.User, Token: res.Token, RefreshToken: res.RefreshToken})
	return nil
}

// Logout ends the session and removes the persisted tokens.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, session.TokenKey, session.RefreshTokenKey); err != nil {
		s.logger.Warn("clear persisted tokens", zap.Error(err))
	}
	s.Dispatch(LoggedOut{})
	return nil
}

// LoadCurrentUser fetches the session profile. Failure drops the session,
// matching the dashboard's treatment of an unusable token.
func (s *Store) LoadCurrentUser(ctx context.Context) error {
	s.Dispatch(CurrentUserRequested{})

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.Dispatch(CurrentUserFailed{Err: errorMessage(err, "Failed to get user data")})
		return err
	}
	s.Dispatch(CurrentUserLoaded{User: *user})
	return nil
}

// RestoreSession reads the persisted token pair and, when a token exists,
// marks the session authenticated. Called once at process start.
func (s *Store) RestoreSession(ctx context.Context) error {
	token, err := s.sessions.Get(ctx, session.TokenKey)
	if err != nil {
		return err
	}
	refresh, err := s.sessions.Get(ctx, session.RefreshTokenKey)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	s.Dispatch(CredentialsRestored{Token: token, RefreshToken: refresh})
	return nil
}

// errorMessage extracts a human-readable message for slice error fields.
func errorMessage(err error, fallback string) string {
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code == "INTERNAL_ERROR" {
		return fallback
	}
	return domainErr.Message
}
