package models

import "time"

// MemberStatus is the lifecycle state of a club membership.
// A pending membership is a join request awaiting leader review.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberPending  MemberStatus = "pending"
	MemberInactive MemberStatus = "inactive"
)

// ClubMember links a user to a club in the 'clubMembers' collection.
// UserName and UserEmail are denormalized from the User record so member
// lists render without a join.
type ClubMember struct {
	ID        string       `json:"id"`
	ClubID    string       `json:"clubId"`
	UserID    string       `json:"userId"`
	UserName  string       `json:"userName"`
	UserEmail string       `json:"userEmail"`
	Status    MemberStatus `json:"status"`
	JoinedAt  time.Time    `json:"joinedAt"`
}
