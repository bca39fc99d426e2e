package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub/internal/pkg/auth"
	"github.com/clubhub-app/clubhub/internal/session"
)

func newAuthFixture(t *testing.T) (AuthService, *auth.JWTService, session.Store) {
	t.Helper()
	repos := newTestRepos(t)

	hash, err := auth.HashPassword("Secret123!")
	require.NoError(t, err)
	res := repos.Users.Replace(context.Background(), []models.User{
		{ID: "u1", Name: "Jane Doe", Email: "jane@campus.edu", Password: hash, Role: models.RoleStudent},
	})
	require.NoError(t, res.Err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "clubhub-test",
	})
	sessions := session.NewMemoryStore()
	return NewAuthService(repos, sessions, jwtService, time.Hour, zerolog.Nop()), jwtService, sessions
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, jwtService, sessions := newAuthFixture(t)

	t.Run("valid credentials issue a session-bound token", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@campus.edu", Password: "Secret123!"})
		require.NoError(t, err)
		assert.Equal(t, "u1", resp.User.ID)
		assert.Greater(t, resp.ExpiresIn, 0)

		claims, err := jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)

		userID, err := sessions.Lookup(ctx, claims.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "u1", userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@campus.edu", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@campus.edu", Password: "Secret123!"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	svc, jwtService, sessions := newAuthFixture(t)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@campus.edu", Password: "Secret123!"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))

	// The token is still cryptographically valid but its marker is gone
	_, err = jwtService.ValidateToken(resp.Token)
	assert.NoError(t, err)
	_, err = sessions.Lookup(ctx, claims.SessionID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	_, err = svc.ResolveSession(ctx, claims.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestResolveSession(t *testing.T) {
	ctx := context.Background()
	svc, jwtService, _ := newAuthFixture(t)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@campus.edu", Password: "Secret123!"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)

	t.Run("live marker restores the user", func(t *testing.T) {
		user, err := svc.ResolveSession(ctx, claims.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("unknown marker", func(t *testing.T) {
		_, err := svc.ResolveSession(ctx, "not-a-session")
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})
}
