package dto

import (
	"time"

	"github.com/clubhub-app/clubhub/internal/app/models"
)

// MemberResponse represents one membership row for a club's member list
type MemberResponse struct {
	ID        string              `json:"id"`
	ClubID    string              `json:"clubId"`
	UserID    string              `json:"userId"`
	UserName  string              `json:"userName"`
	UserEmail string              `json:"userEmail"`
	Status    models.MemberStatus `json:"status"`
	JoinedAt  time.Time           `json:"joinedAt"`
}

// FromMember converts a models.ClubMember
func FromMember(m models.ClubMember) MemberResponse {
	return MemberResponse{
		ID:        m.ID,
		ClubID:    m.ClubID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
		Status:    m.Status,
		JoinedAt:  m.JoinedAt,
	}
}

// FromMembers converts a slice of membership rows
func FromMembers(members []models.ClubMember) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, FromMember(m))
	}
	return out
}

// MemberListResponse carries a club's members plus its badge counts
type MemberListResponse struct {
	Members      []MemberResponse `json:"members"`
	ActiveCount  int              `json:"activeCount"`
	PendingCount int              `json:"pendingCount"`
}
