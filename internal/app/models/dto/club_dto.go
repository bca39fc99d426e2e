package dto

import (
	"time"

	"github.com/clubhub-app/clubhub/internal/app/models"
)

// --- Request DTOs ---

// CreateClubRequest represents club creation data
type CreateClubRequest struct {
	Name         string              `json:"name" binding:"required"`
	Description  string              `json:"description" binding:"required"`
	Category     models.ClubCategory `json:"category" binding:"required"`
	ContactEmail string              `json:"contactEmail,omitempty"`
	LeaderID     string              `json:"leaderId" binding:"required"`
	Schedule     string              `json:"schedule,omitempty"`
	Location     string              `json:"location,omitempty"`
	Recruiting   bool                `json:"recruiting"`
	Tags         []string            `json:"tags,omitempty"`
}

// UpdateClubRequest represents club update data. Nil pointers leave the
// corresponding field untouched; a LeaderID change re-syncs the
// denormalized leader fields from the users collection.
type UpdateClubRequest struct {
	Name         *string              `json:"name,omitempty"`
	Description  *string              `json:"description,omitempty"`
	Category     *models.ClubCategory `json:"category,omitempty"`
	ContactEmail *string              `json:"contactEmail,omitempty"`
	LeaderID     *string              `json:"leaderId,omitempty"`
	Schedule     *string              `json:"schedule,omitempty"`
	Location     *string              `json:"location,omitempty"`
	Recruiting   *bool                `json:"recruiting,omitempty"`
	Tags         *[]string            `json:"tags,omitempty"`
	Banner       *string              `json:"banner,omitempty"`
	Logo         *string              `json:"logo,omitempty"`
	Social       *models.SocialLinks  `json:"social,omitempty"`
	WelcomeNote  *string              `json:"welcomeNote,omitempty"`
}

// ClubFilterRequest represents club directory filter parameters
type ClubFilterRequest struct {
	Category   string `form:"category"`
	Recruiting *bool  `form:"recruiting"`
	Search     string `form:"search"`
	Page       int    `form:"page,default=1" binding:"min=1"`
	PageSize   int    `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// --- Response DTOs ---

// ClubResponse represents a club with its resolved member count and,
// when available, the leader's public profile
type ClubResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Category      models.ClubCategory `json:"category"`
	ContactEmail  string              `json:"contactEmail,omitempty"`
	LeaderID      string              `json:"leaderId"`
	LeaderName    string              `json:"leaderName"`
	LeaderAvatar  string              `json:"leaderAvatar,omitempty"`
	Leader        *UserResponse       `json:"leader,omitempty"`
	MemberCount   int                 `json:"memberCount"`
	Schedule      string              `json:"schedule,omitempty"`
	Location      string              `json:"location,omitempty"`
	Recruiting    bool                `json:"recruiting"`
	Tags          []string            `json:"tags,omitempty"`
	Banner        string              `json:"banner,omitempty"`
	Logo          string              `json:"logo,omitempty"`
	Social        *models.SocialLinks `json:"social,omitempty"`
	WelcomeNote   string              `json:"welcomeNote,omitempty"`
	ActivityScore int                 `json:"activityScore,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// FromClub converts a models.Club, overriding the informational stored
// member count with the actual active-member count
func FromClub(club models.Club, activeMembers int, leader *models.User) ClubResponse {
	resp := ClubResponse{
		ID:            club.ID,
		Name:          club.Name,
		Description:   club.Description,
		Category:      club.Category,
		ContactEmail:  club.ContactEmail,
		LeaderID:      club.LeaderID,
		LeaderName:    club.LeaderName,
		LeaderAvatar:  club.LeaderAvatar,
		MemberCount:   activeMembers,
		Schedule:      club.Schedule,
		Location:      club.Location,
		Recruiting:    club.Recruiting,
		Tags:          club.Tags,
		Banner:        club.Banner,
		Logo:          club.Logo,
		Social:        club.Social,
		WelcomeNote:   club.WelcomeNote,
		ActivityScore: club.ActivityScore,
		CreatedAt:     club.CreatedAt,
	}
	if leader != nil {
		l := FromUser(*leader)
		resp.Leader = &l
	}
	return resp
}

// ClubListResponse represents a paginated club directory page
type ClubListResponse struct {
	Clubs []ClubResponse `json:"clubs"`
	PaginationInfo
}
