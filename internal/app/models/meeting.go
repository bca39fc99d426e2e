package models

import "time"

// MeetingType classifies entries in the 'meetings' collection. The leader
// screens only offer meeting/event/workshop; the event manager additionally
// uses talk/performance/audition. One shared enum covers both.
type MeetingType string

const (
	TypeMeeting     MeetingType = "meeting"
	TypeEvent       MeetingType = "event"
	TypeWorkshop    MeetingType = "workshop"
	TypeTalk        MeetingType = "talk"
	TypePerformance MeetingType = "performance"
	TypeAudition    MeetingType = "audition"
)

// ValidMeetingType reports whether t is one of the known types
func ValidMeetingType(t MeetingType) bool {
	switch t {
	case TypeMeeting, TypeEvent, TypeWorkshop, TypeTalk, TypePerformance, TypeAudition:
		return true
	}
	return false
}

// DateLayout is the wire format for meeting dates
const DateLayout = "2006-01-02"

// MeetingSchedule doubles as both a club meeting and a public event.
// Date is stored as a YYYY-MM-DD string and Time as HH:MM, mirroring the
// form inputs that produce them; unparseable dates simply drop out of the
// date-ordered views.
type MeetingSchedule struct {
	ID           string      `json:"id"`
	ClubID       string      `json:"clubId"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Date         string      `json:"date"`
	Time         string      `json:"time,omitempty"`
	Location     string      `json:"location,omitempty"`
	Type         MeetingType `json:"type"`
	HostingClub  string      `json:"hostingClub,omitempty"`
	AuditionInfo string      `json:"auditionInfo,omitempty"`
	TicketURL    string      `json:"ticketUrl,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// DateValue parses the meeting date; ok is false when the date is malformed
func (m *MeetingSchedule) DateValue() (time.Time, bool) {
	t, err := time.Parse(DateLayout, m.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
