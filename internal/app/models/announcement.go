package models

import "time"

// AnnouncementPriority ranks how prominently an announcement is shown
type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "low"
	PriorityMedium AnnouncementPriority = "medium"
	PriorityHigh   AnnouncementPriority = "high"
)

// Announcement is a club-scoped post in the 'announcements' collection
type Announcement struct {
	ID        string               `json:"id"`
	ClubID    string               `json:"clubId"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Priority  AnnouncementPriority `json:"priority"`
	CreatedAt time.Time            `json:"createdAt"`
}
