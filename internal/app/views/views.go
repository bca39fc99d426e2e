// Package views contains the derived-view computators: pure functions
// that filter, sort, join and count over collection snapshots. Entities
// with dangling foreign keys simply drop out of any view that joins
// through them; nothing here mutates its inputs.
package views

import (
	"sort"
	"strings"
	"time"

	"github.com/clubhub-app/clubhub/internal/app/models"
)

// MembersOfClub selects every membership row for a club, any status
func MembersOfClub(members []models.ClubMember, clubID string) []models.ClubMember {
	var out []models.ClubMember
	for _, m := range members {
		if m.ClubID == clubID {
			out = append(out, m)
		}
	}
	return out
}

// MembersWithStatus selects a club's memberships further filtered by status
func MembersWithStatus(members []models.ClubMember, clubID string, status models.MemberStatus) []models.ClubMember {
	var out []models.ClubMember
	for _, m := range members {
		if m.ClubID == clubID && m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

// ActiveMembers is a club's confirmed member list
func ActiveMembers(members []models.ClubMember, clubID string) []models.ClubMember {
	return MembersWithStatus(members, clubID, models.MemberActive)
}

// PendingRequests is a club's join-request queue
func PendingRequests(members []models.ClubMember, clubID string) []models.ClubMember {
	return MembersWithStatus(members, clubID, models.MemberPending)
}

// ActiveMemberCount counts confirmed members for badge display
func ActiveMemberCount(members []models.ClubMember, clubID string) int {
	return len(ActiveMembers(members, clubID))
}

// PendingRequestCount counts open join requests for badge display
func PendingRequestCount(members []models.ClubMember, clubID string) int {
	return len(PendingRequests(members, clubID))
}

// MembershipOf finds the membership row for a (club, user) pair
func MembershipOf(members []models.ClubMember, clubID, userID string) (models.ClubMember, bool) {
	for _, m := range members {
		if m.ClubID == clubID && m.UserID == userID {
			return m, true
		}
	}
	return models.ClubMember{}, false
}

// ClubsOfUser joins a user's active memberships to the clubs collection.
// Memberships pointing at deleted clubs disappear from the result.
func ClubsOfUser(clubs []models.Club, members []models.ClubMember, userID string) []models.Club {
	byID := make(map[string]models.Club, len(clubs))
	for _, c := range clubs {
		byID[c.ID] = c
	}

	var out []models.Club
	for _, m := range members {
		if m.UserID != userID || m.Status != models.MemberActive {
			continue
		}
		if club, ok := byID[m.ClubID]; ok {
			out = append(out, club)
		}
	}
	return out
}

// AnnouncementsForClub selects a club's announcements, most recent first
func AnnouncementsForClub(announcements []models.Announcement, clubID string) []models.Announcement {
	var out []models.Announcement
	for _, a := range announcements {
		if a.ClubID == clubID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// RecentAnnouncements orders all announcements most recent first and caps
// the result; limit <= 0 means no cap
func RecentAnnouncements(announcements []models.Announcement, limit int) []models.Announcement {
	out := make([]models.Announcement, len(announcements))
	copy(out, announcements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MeetingsForClub selects a club's schedule entries in stored order
func MeetingsForClub(meetings []models.MeetingSchedule, clubID string) []models.MeetingSchedule {
	var out []models.MeetingSchedule
	for _, m := range meetings {
		if m.ClubID == clubID {
			out = append(out, m)
		}
	}
	return out
}

// UpcomingMeetings keeps entries dated today or later, ordered soonest
// first; limit <= 0 means no cap. Entries with malformed dates are
// dropped rather than reported.
func UpcomingMeetings(meetings []models.MeetingSchedule, now time.Time, limit int) []models.MeetingSchedule {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	type dated struct {
		meeting models.MeetingSchedule
		date    time.Time
	}
	var upcoming []dated
	for _, m := range meetings {
		d, ok := m.DateValue()
		if !ok || d.Before(today) {
			continue
		}
		upcoming = append(upcoming, dated{meeting: m, date: d})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].date.Equal(upcoming[j].date) {
			return upcoming[i].meeting.Time < upcoming[j].meeting.Time
		}
		return upcoming[i].date.Before(upcoming[j].date)
	})

	out := make([]models.MeetingSchedule, 0, len(upcoming))
	for _, d := range upcoming {
		out = append(out, d.meeting)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ClubWithLeader pairs a club with its leader's full user record.
// Leader is nil when the referenced user no longer exists.
type ClubWithLeader struct {
	Club   models.Club
	Leader *models.User
}

// JoinLeader resolves one club's leader by LeaderID
func JoinLeader(club models.Club, users []models.User) ClubWithLeader {
	for i := range users {
		if users[i].ID == club.LeaderID {
			u := users[i]
			return ClubWithLeader{Club: club, Leader: &u}
		}
	}
	return ClubWithLeader{Club: club}
}

// JoinLeaders resolves leaders for a whole clubs snapshot
func JoinLeaders(clubs []models.Club, users []models.User) []ClubWithLeader {
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]ClubWithLeader, 0, len(clubs))
	for _, c := range clubs {
		joined := ClubWithLeader{Club: c}
		if u, ok := byID[c.LeaderID]; ok {
			leader := u
			joined.Leader = &leader
		}
		out = append(out, joined)
	}
	return out
}

// ClubsLedBy selects the clubs whose leader is the given user
func ClubsLedBy(clubs []models.Club, leaderID string) []models.Club {
	var out []models.Club
	for _, c := range clubs {
		if c.LeaderID == leaderID {
			out = append(out, c)
		}
	}
	return out
}

// ClubFilter narrows the club directory listing
type ClubFilter struct {
	Category   models.ClubCategory
	Recruiting *bool
	Search     string
}

// FilterClubs applies a directory filter over the clubs snapshot
func FilterClubs(clubs []models.Club, filter ClubFilter) []models.Club {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var out []models.Club
	for _, c := range clubs {
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Recruiting != nil && c.Recruiting != *filter.Recruiting {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// UnreadNotificationCount counts unread broadcast notifications
func UnreadNotificationCount(notifications []models.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
