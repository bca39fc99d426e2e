package dto

import "github.com/clubhub-app/clubhub/internal/app/models"

// CreateAnnouncementRequest represents a new club announcement
type CreateAnnouncementRequest struct {
	Title    string                      `json:"title" binding:"required"`
	Content  string                      `json:"content" binding:"required"`
	Priority models.AnnouncementPriority `json:"priority,omitempty"`
}

// UpdateAnnouncementRequest edits an existing announcement in place
type UpdateAnnouncementRequest struct {
	Title    *string                      `json:"title,omitempty"`
	Content  *string                      `json:"content,omitempty"`
	Priority *models.AnnouncementPriority `json:"priority,omitempty"`
}

// CreateMeetingRequest represents a new schedule entry. Date uses the
// YYYY-MM-DD wire format and Time HH:MM.
type CreateMeetingRequest struct {
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description,omitempty"`
	Date         string             `json:"date" binding:"required"`
	Time         string             `json:"time,omitempty"`
	Location     string             `json:"location,omitempty"`
	Type         models.MeetingType `json:"type" binding:"required"`
	HostingClub  string             `json:"hostingClub,omitempty"`
	AuditionInfo string             `json:"auditionInfo,omitempty"`
	TicketURL    string             `json:"ticketUrl,omitempty"`
}

// UpdateMeetingRequest edits an existing schedule entry in place
type UpdateMeetingRequest struct {
	Title        *string             `json:"title,omitempty"`
	Description  *string             `json:"description,omitempty"`
	Date         *string             `json:"date,omitempty"`
	Time         *string             `json:"time,omitempty"`
	Location     *string             `json:"location,omitempty"`
	Type         *models.MeetingType `json:"type,omitempty"`
	HostingClub  *string             `json:"hostingClub,omitempty"`
	AuditionInfo *string             `json:"auditionInfo,omitempty"`
	TicketURL    *string             `json:"ticketUrl,omitempty"`
}
