package services

import "github.com/clubhub-app/clubhub/internal/app/models"

// Actor identifies the authenticated caller of a service operation
type Actor struct {
	ID   string
	Role models.RoleType
}

// IsAdmin reports whether the actor holds the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
