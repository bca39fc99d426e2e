package dto

import (
	"time"

	"github.com/clubhub-app/clubhub/internal/app/models"
)

// UserResponse is a user record without the password hash
type UserResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Role           models.RoleType     `json:"role"`
	Avatar         string              `json:"avatar,omitempty"`
	Bio            string              `json:"bio,omitempty"`
	Social         *models.SocialLinks `json:"social,omitempty"`
	Interests      []string            `json:"interests,omitempty"`
	Certifications []string            `json:"certifications,omitempty"`
	Achievements   []string            `json:"achievements,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(u models.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Avatar:         u.Avatar,
		Bio:            u.Bio,
		Social:         u.Social,
		Interests:      u.Interests,
		Certifications: u.Certifications,
		Achievements:   u.Achievements,
		CreatedAt:      u.CreatedAt,
	}
}

// FromUsers converts a slice of users
func FromUsers(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// UpdateProfileRequest represents a self-service profile edit. Nil
// pointers leave the corresponding field untouched.
type UpdateProfileRequest struct {
	Name           *string             `json:"name,omitempty"`
	Avatar         *string             `json:"avatar,omitempty"`
	Bio            *string             `json:"bio,omitempty"`
	Social         *models.SocialLinks `json:"social,omitempty"`
	Interests      *[]string           `json:"interests,omitempty"`
	Certifications *[]string           `json:"certifications,omitempty"`
	Achievements   *[]string           `json:"achievements,omitempty"`
}

// UpdateRoleRequest is the admin-only role edit
type UpdateRoleRequest struct {
	Role models.RoleType `json:"role" binding:"required"`
}
