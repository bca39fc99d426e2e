package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/pkg/apperrors"
)

func TestCreateMeeting(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedMembershipFixture(t, repos)
	svc := NewEventService(repos, zerolog.Nop())

	leader := Actor{ID: "u-leader", Role: models.RoleLeader}

	t.Run("leader schedules a meeting", func(t *testing.T) {
		meeting, res, err := svc.CreateMeeting(ctx, leader, "c1", &dto.CreateMeetingRequest{
			Title: "Weekly practice", Date: "2025-03-10", Time: "18:00", Type: models.TypeMeeting,
		})
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, "c1", meeting.ClubID)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, _, err := svc.CreateMeeting(ctx, leader, "c1", &dto.CreateMeetingRequest{
			Title: "Bad", Date: "10/03/2025", Type: models.TypeMeeting,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, _, err := svc.CreateMeeting(ctx, leader, "c1", &dto.CreateMeetingRequest{
			Title: "Bad", Date: "2025-03-10", Type: models.MeetingType("bogus"),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidMeetingType)
	})

	t.Run("non-leader cannot schedule", func(t *testing.T) {
		_, _, err := svc.CreateMeeting(ctx, Actor{ID: "u-student", Role: models.RoleStudent}, "c1", &dto.CreateMeetingRequest{
			Title: "Sneaky", Date: "2025-03-10", Type: models.TypeMeeting,
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestUpdateMeeting(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedMembershipFixture(t, repos)
	svc := NewEventService(repos, zerolog.Nop())

	leader := Actor{ID: "u-leader", Role: models.RoleLeader}

	meeting, _, err := svc.CreateMeeting(ctx, leader, "c1", &dto.CreateMeetingRequest{
		Title: "Weekly practice", Date: "2025-01-10", Type: models.TypeMeeting,
	})
	require.NoError(t, err)

	t.Run("partial edit", func(t *testing.T) {
		date := "2025-02-14"
		updated, res, err := svc.UpdateMeeting(ctx, leader, "c1", meeting.ID, &dto.UpdateMeetingRequest{Date: &date})
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, "2025-02-14", updated.Date)
		assert.Equal(t, "Weekly practice", updated.Title)
	})

	t.Run("rejected edit changes nothing", func(t *testing.T) {
		date := "2025-09-09"
		badType := models.MeetingType("bogus")
		_, _, err := svc.UpdateMeeting(ctx, leader, "c1", meeting.ID, &dto.UpdateMeetingRequest{
			Date: &date, Type: &badType,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidMeetingType)

		stored := repos.Meetings.All()
		require.Len(t, stored, 1)
		assert.Equal(t, "2025-02-14", stored[0].Date)
		assert.Equal(t, models.TypeMeeting, stored[0].Type)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		title := "x"
		_, _, err := svc.UpdateMeeting(ctx, leader, "c1", "missing", &dto.UpdateMeetingRequest{Title: &title})
		assert.ErrorIs(t, err, apperrors.ErrMeetingNotFound)
	})
}

func TestUpdateEvent_RejectedEditChangesNothing(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedMembershipFixture(t, repos)
	svc := NewEventService(repos, zerolog.Nop())

	admin := Actor{ID: "u-admin", Role: models.RoleAdmin}

	event, _, err := svc.CreateEvent(ctx, admin, &dto.CreateMeetingRequest{
		Title: "Open mic", Date: "2025-05-01", Type: models.TypePerformance,
	})
	require.NoError(t, err)

	date := "2025-06-01"
	badType := models.MeetingType("bogus")
	_, _, err = svc.UpdateEvent(ctx, admin, event.ID, &dto.UpdateMeetingRequest{Date: &date, Type: &badType})
	assert.ErrorIs(t, err, apperrors.ErrInvalidMeetingType)

	stored := svc.ListEvents(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, "2025-05-01", stored[0].Date)
}
