package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/repositories"
	"github.com/clubhub-app/clubhub/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub/internal/pkg/auth"
	"github.com/clubhub-app/clubhub/internal/session"
)

// Context keys set by RequireAuth
const (
	ContextUserID    = "userID"
	ContextUserRole  = "roleType"
	ContextSessionID = "sessionID"
)

// AuthMiddleware validates tokens against both the JWT signature and the
// live session marker it points at. A valid token whose marker is gone
// counts as logged out, which is what makes logout effective immediately.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	sessions   session.Store
	repos      *repositories.Repositories
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, sessions session.Store, repos *repositories.Repositories) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
		repos:      repos,
	}
}

// RequireAuth validates the bearer token, the session marker and the
// referenced user, then stores the actor's identity on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if _, err := m.sessions.Lookup(c.Request.Context(), claims.SessionID); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session expired")
			errorDetail = errorDetail.WithDetails("Please log in again")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		user, ok := m.repos.UserByID(claims.UserID)
		if !ok {
			// User deleted since login; drop the now-dangling marker
			_ = m.sessions.Delete(c.Request.Context(), claims.SessionID)
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session expired")
			errorDetail = errorDetail.WithDetails("Account no longer exists")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, string(user.Role))
		c.Set(ContextSessionID, claims.SessionID)

		c.Next()
	}
}

// RoleRequired restricts a route group to one or more roles. It assumes
// RequireAuth ran earlier in the chain.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextUserRole)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		roleStr, _ := roleValue.(string)
		for _, role := range roles {
			if roleStr == string(role) {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// ActorFromContext rebuilds the acting identity stored by RequireAuth
func ActorFromContext(c *gin.Context) (id string, role models.RoleType, err error) {
	idValue, exists := c.Get(ContextUserID)
	if !exists {
		return "", "", apperrors.ErrSessionNotFound
	}
	roleValue, _ := c.Get(ContextUserRole)

	idStr, _ := idValue.(string)
	roleStr, _ := roleValue.(string)
	return idStr, models.RoleType(roleStr), nil
}
