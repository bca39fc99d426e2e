package models

import "time"

// ClubCategory is the fixed tag set clubs are filed under
type ClubCategory string

const (
	CategoryAcademic  ClubCategory = "academic"
	CategoryArts      ClubCategory = "arts"
	CategoryCultural  ClubCategory = "cultural"
	CategorySports    ClubCategory = "sports"
	CategoryService   ClubCategory = "service"
	CategoryTechnical ClubCategory = "technical"
)

// ValidCategory reports whether c is one of the known categories
func ValidCategory(c ClubCategory) bool {
	switch c {
	case CategoryAcademic, CategoryArts, CategoryCultural, CategorySports, CategoryService, CategoryTechnical:
		return true
	}
	return false
}

// Club represents a student club stored in the 'clubs' collection.
// LeaderName and LeaderAvatar are denormalized copies of the leader's
// User fields; every write path that can change them re-syncs the copy
// from the users collection (there is no automatic invalidation).
type Club struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Category      ClubCategory `json:"category"`
	ContactEmail  string       `json:"contactEmail,omitempty"`
	LeaderID      string       `json:"leaderId"`
	LeaderName    string       `json:"leaderName"`
	LeaderAvatar  string       `json:"leaderAvatar,omitempty"`
	MemberCount   int          `json:"memberCount"`
	Schedule      string       `json:"schedule,omitempty"`
	Location      string       `json:"location,omitempty"`
	Recruiting    bool         `json:"recruiting"`
	Tags          []string     `json:"tags,omitempty"`
	Banner        string       `json:"banner,omitempty"`
	Logo          string       `json:"logo,omitempty"`
	Social        *SocialLinks `json:"social,omitempty"`
	WelcomeNote   string       `json:"welcomeNote,omitempty"`
	ActivityScore int          `json:"activityScore,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
