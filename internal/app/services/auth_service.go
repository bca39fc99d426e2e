package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/repositories"
	"github.com/clubhub-app/clubhub/internal/metrics"
	"github.com/clubhub-app/clubhub/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub/internal/pkg/auth"
	"github.com/clubhub-app/clubhub/internal/session"
)

// AuthService handles login, logout and session restoration
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	// ResolveSession validates a session marker and confirms the user it
	// points at still exists; otherwise the caller is logged out.
	ResolveSession(ctx context.Context, sessionID string) (dto.UserResponse, error)
}

type authService struct {
	repos      *repositories.Repositories
	sessions   session.Store
	jwtService *auth.JWTService
	sessionTTL time.Duration
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	repos *repositories.Repositories,
	sessions session.Store,
	jwtService *auth.JWTService,
	sessionTTL time.Duration,
	lgr zerolog.Logger,
) AuthService {
	return &authService{
		repos:      repos,
		sessions:   sessions,
		jwtService: jwtService,
		sessionTTL: sessionTTL,
		logger:     lgr,
	}
}

// Login checks the stored credential hash and, on success, records a
// session marker and issues a token bound to it. This is intentionally
// not a hardened auth flow; it scopes views to a user, nothing more.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, ok := s.repos.UserByEmail(req.Email)
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	if err := s.sessions.Put(ctx, sessionID, user.ID, s.sessionTTL); err != nil {
		s.logger.Error().Err(err).Msg("Failed to record session marker")
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(&user, sessionID)
	if err != nil {
		return nil, err
	}

	metrics.Logins.Inc()
	s.logger.Info().Str("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.FromUser(user),
	}, nil
}

// Logout clears the session marker; the token becomes useless because
// every authenticated request re-checks the marker.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear session marker")
		return err
	}
	return nil
}

// ResolveSession restores the current user for a live marker. A marker
// pointing at a user that no longer exists counts as logged out.
func (s *authService) ResolveSession(ctx context.Context, sessionID string) (dto.UserResponse, error) {
	userID, err := s.sessions.Lookup(ctx, sessionID)
	if err != nil {
		return dto.UserResponse{}, apperrors.ErrSessionNotFound
	}

	user, ok := s.repos.UserByID(userID)
	if !ok {
		// User was deleted since login; drop the stale marker
		_ = s.sessions.Delete(ctx, sessionID)
		return dto.UserResponse{}, apperrors.ErrSessionNotFound
	}

	return dto.FromUser(user), nil
}
