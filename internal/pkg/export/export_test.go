package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/clubhub-app/clubhub/internal/app/models"
)

func TestEventCalendar(t *testing.T) {
	entries := []models.MeetingSchedule{
		{
			ID:          "ev-1",
			Title:       "Spring Showcase",
			Description: "Annual performance night",
			Date:        "2025-04-12",
			Time:        "19:00",
			Location:    "Main Hall",
			Type:        models.TypePerformance,
			CreatedAt:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:    "ev-2",
			Title: "Open Day",
			Date:  "2025-04-13",
			Type:  models.TypeEvent,
		},
		{
			ID:    "ev-bad",
			Title: "Broken",
			Date:  "not-a-date",
			Type:  models.TypeEvent,
		},
	}

	out := EventCalendar(entries)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "SUMMARY:Spring Showcase")
	assert.Contains(t, out, "LOCATION:Main Hall")
	assert.Contains(t, out, "UID:ev-1")
	assert.Contains(t, out, "DTSTART:20250412T190000Z")
	assert.Contains(t, out, "SUMMARY:Open Day")
	assert.NotContains(t, out, "Broken")
}

func TestEventCalendar_Empty(t *testing.T) {
	out := EventCalendar(nil)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}

func TestMemberRoster(t *testing.T) {
	club := models.Club{ID: "c1", Name: "Chess"}
	members := []models.ClubMember{
		{UserName: "Jane Doe", UserEmail: "jane@campus.edu", Status: models.MemberActive, JoinedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{UserName: "Sam Student", UserEmail: "sam@campus.edu", Status: models.MemberPending, JoinedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	data, err := MemberRoster(club, members)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Members", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Name", get("A1"))
	assert.Equal(t, "Email", get("B1"))
	assert.Equal(t, "Jane Doe", get("A2"))
	assert.Equal(t, "jane@campus.edu", get("B2"))
	assert.Equal(t, "active", get("C2"))
	assert.Equal(t, "2025-01-15", get("D2"))
	assert.Equal(t, "pending", get("C3"))
}
