package models

import "time"

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleLeader  RoleType = "LEADER"
	RoleAdmin   RoleType = "ADMIN"
)

// SocialLinks holds optional contact/social references on a profile
type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Discord   string `json:"discord,omitempty"`
}

// User defines an account stored in the 'users' collection.
// Password holds a bcrypt hash and is excluded from JSON responses but
// still serialized into the durable store.
type User struct {
	ID             string       `json:"id" example:"c1a6e9a2-0d3f-4f1b-9a9e-5b1f6f2d8a01"`
	Name           string       `json:"name" example:"Jane Doe"`
	Email          string       `json:"email" example:"jane@campus.edu"`
	Password       string       `json:"password,omitempty"`
	Role           RoleType     `json:"role" example:"STUDENT"`
	Avatar         string       `json:"avatar,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Social         *SocialLinks `json:"social,omitempty"`
	Interests      []string     `json:"interests,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
	Achievements   []string     `json:"achievements,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
