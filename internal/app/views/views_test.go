package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/internal/app/models"
)

func member(clubID, userID string, status models.MemberStatus) models.ClubMember {
	return models.ClubMember{
		ID:     clubID + "-" + userID,
		ClubID: clubID,
		UserID: userID,
		Status: status,
	}
}

func TestMemberViews(t *testing.T) {
	members := []models.ClubMember{
		member("c1", "u1", models.MemberActive),
		member("c1", "u2", models.MemberPending),
		member("c1", "u3", models.MemberActive),
		member("c2", "u1", models.MemberActive),
		member("c2", "u4", models.MemberInactive),
	}

	t.Run("counts per club", func(t *testing.T) {
		assert.Equal(t, 2, ActiveMemberCount(members, "c1"))
		assert.Equal(t, 1, PendingRequestCount(members, "c1"))
		assert.Equal(t, 1, ActiveMemberCount(members, "c2"))
		assert.Equal(t, 0, PendingRequestCount(members, "c2"))
	})

	t.Run("membership lookup", func(t *testing.T) {
		m, ok := MembershipOf(members, "c1", "u2")
		require.True(t, ok)
		assert.Equal(t, models.MemberPending, m.Status)

		_, ok = MembershipOf(members, "c2", "u2")
		assert.False(t, ok)
	})

	t.Run("inactive excluded from active list", func(t *testing.T) {
		active := ActiveMembers(members, "c2")
		require.Len(t, active, 1)
		assert.Equal(t, "u1", active[0].UserID)
	})
}

func TestClubsOfUser_DropsDanglingMemberships(t *testing.T) {
	clubs := []models.Club{{ID: "c1", Name: "Chess"}}
	members := []models.ClubMember{
		member("c1", "u1", models.MemberActive),
		member("deleted-club", "u1", models.MemberActive),
		member("c1", "u2", models.MemberPending),
	}

	got := ClubsOfUser(clubs, members, "u1")
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)

	// Pending membership does not count
	assert.Empty(t, ClubsOfUser(clubs, members, "u2"))
}

func TestUpcomingMeetings(t *testing.T) {
	meetings := []models.MeetingSchedule{
		{ID: "m1", Date: "2025-01-01", Time: "10:00"},
		{ID: "m2", Date: "2025-06-15", Time: "18:00"},
		{ID: "m3", Date: "2024-12-01", Time: "09:00"},
	}
	now := time.Date(2025, 1, 2, 15, 30, 0, 0, time.UTC)

	t.Run("past entries dropped", func(t *testing.T) {
		got := UpcomingMeetings(meetings, now, 0)
		require.Len(t, got, 1)
		assert.Equal(t, "m2", got[0].ID)
	})

	t.Run("today counts as upcoming", func(t *testing.T) {
		withToday := append(meetings, models.MeetingSchedule{ID: "m4", Date: "2025-01-02", Time: "23:00"})
		got := UpcomingMeetings(withToday, now, 0)
		require.Len(t, got, 2)
		assert.Equal(t, "m4", got[0].ID)
		assert.Equal(t, "m2", got[1].ID)
	})

	t.Run("sorted soonest first with time tiebreak", func(t *testing.T) {
		sameDay := []models.MeetingSchedule{
			{ID: "late", Date: "2025-03-01", Time: "19:00"},
			{ID: "early", Date: "2025-03-01", Time: "08:00"},
			{ID: "sooner", Date: "2025-02-01", Time: "23:59"},
		}
		got := UpcomingMeetings(sameDay, now, 0)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"sooner", "early", "late"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("malformed dates dropped silently", func(t *testing.T) {
		bad := append(meetings, models.MeetingSchedule{ID: "bad", Date: "someday"})
		got := UpcomingMeetings(bad, now, 0)
		require.Len(t, got, 1)
		assert.Equal(t, "m2", got[0].ID)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		many := []models.MeetingSchedule{
			{ID: "a", Date: "2025-02-01"},
			{ID: "b", Date: "2025-03-01"},
			{ID: "c", Date: "2025-04-01"},
		}
		got := UpcomingMeetings(many, now, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
	})
}

func TestJoinLeaders(t *testing.T) {
	users := []models.User{{ID: "u1", Name: "Ada"}}
	clubs := []models.Club{
		{ID: "c1", LeaderID: "u1"},
		{ID: "c2", LeaderID: "gone"},
	}

	joined := JoinLeaders(clubs, users)
	require.Len(t, joined, 2)
	require.NotNil(t, joined[0].Leader)
	assert.Equal(t, "Ada", joined[0].Leader.Name)
	assert.Nil(t, joined[1].Leader)
}

func TestFilterClubs(t *testing.T) {
	recruiting := true
	clubs := []models.Club{
		{ID: "c1", Name: "Chess Club", Description: "strategy nights", Category: models.CategoryAcademic, Recruiting: true},
		{ID: "c2", Name: "Drama Society", Description: "stage productions", Category: models.CategoryArts, Recruiting: false},
		{ID: "c3", Name: "Robotics", Description: "chess-playing robots", Category: models.CategoryTechnical, Recruiting: true},
	}

	t.Run("by category", func(t *testing.T) {
		got := FilterClubs(clubs, ClubFilter{Category: models.CategoryArts})
		require.Len(t, got, 1)
		assert.Equal(t, "c2", got[0].ID)
	})

	t.Run("by recruiting", func(t *testing.T) {
		got := FilterClubs(clubs, ClubFilter{Recruiting: &recruiting})
		assert.Len(t, got, 2)
	})

	t.Run("search matches name and description case-insensitively", func(t *testing.T) {
		got := FilterClubs(clubs, ClubFilter{Search: "CHESS"})
		assert.Len(t, got, 2)
	})

	t.Run("filters combine", func(t *testing.T) {
		got := FilterClubs(clubs, ClubFilter{Search: "chess", Recruiting: &recruiting, Category: models.CategoryTechnical})
		require.Len(t, got, 1)
		assert.Equal(t, "c3", got[0].ID)
	})
}

func TestAnnouncementOrdering(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	announcements := []models.Announcement{
		{ID: "old", ClubID: "c1", CreatedAt: base},
		{ID: "new", ClubID: "c1", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "mid", ClubID: "c1", CreatedAt: base.Add(24 * time.Hour)},
		{ID: "other", ClubID: "c2", CreatedAt: base.Add(72 * time.Hour)},
	}

	forClub := AnnouncementsForClub(announcements, "c1")
	require.Len(t, forClub, 3)
	assert.Equal(t, "new", forClub[0].ID)
	assert.Equal(t, "old", forClub[2].ID)

	recent := RecentAnnouncements(announcements, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "other", recent[0].ID)
	assert.Equal(t, "new", recent[1].ID)
}

func TestUnreadNotificationCount(t *testing.T) {
	notifications := []models.Notification{
		{ID: "n1", Read: true},
		{ID: "n2"},
		{ID: "n3"},
	}
	assert.Equal(t, 2, UnreadNotificationCount(notifications))
	assert.Equal(t, 0, UnreadNotificationCount(nil))
}
