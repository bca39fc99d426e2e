package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/repositories"
	"github.com/clubhub-app/clubhub/internal/app/views"
	"github.com/clubhub-app/clubhub/internal/kvstore"
	"github.com/clubhub-app/clubhub/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub/internal/pkg/helpers"
)

// EventService manages both collections that share the MeetingSchedule
// shape: club-scoped meetings and the campus-wide events list
type EventService interface {
	ListMeetingsForClub(ctx context.Context, clubID string) ([]models.MeetingSchedule, error)
	UpcomingMeetingsForClub(ctx context.Context, clubID string, limit int) ([]models.MeetingSchedule, error)
	CreateMeeting(ctx context.Context, actor Actor, clubID string, req *dto.CreateMeetingRequest) (models.MeetingSchedule, kvstore.WriteResult, error)
	UpdateMeeting(ctx context.Context, actor Actor, clubID, meetingID string, req *dto.UpdateMeetingRequest) (models.MeetingSchedule, kvstore.WriteResult, error)
	DeleteMeeting(ctx context.Context, actor Actor, clubID, meetingID string) (kvstore.WriteResult, error)

	ListEvents(ctx context.Context) []models.MeetingSchedule
	UpcomingEvents(ctx context.Context, limit int) []models.MeetingSchedule
	CreateEvent(ctx context.Context, actor Actor, req *dto.CreateMeetingRequest) (models.MeetingSchedule, kvstore.WriteResult, error)
	UpdateEvent(ctx context.Context, actor Actor, eventID string, req *dto.UpdateMeetingRequest) (models.MeetingSchedule, kvstore.WriteResult, error)
	DeleteEvent(ctx context.Context, actor Actor, eventID string) (kvstore.WriteResult, error)
}

type eventService struct {
	repos  *repositories.Repositories
	now    func() time.Time
	logger zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(repos *repositories.Repositories, lgr zerolog.Logger) EventService {
	return &eventService{repos: repos, now: helpers.Now, logger: lgr}
}

func (s *eventService) requireManageable(actor Actor, clubID string) error {
	club, ok := s.repos.ClubByID(clubID)
	if !ok {
		return apperrors.ErrClubNotFound
	}
	if !actor.IsAdmin() && actor.ID != club.LeaderID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

func validateSchedule(date string, meetingType models.MeetingType) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return apperrors.ErrInvalidDate
	}
	if !models.ValidMeetingType(meetingType) {
		return apperrors.ErrInvalidMeetingType
	}
	return nil
}

func newSchedule(clubID string, req *dto.CreateMeetingRequest) models.MeetingSchedule {
	return models.MeetingSchedule{
		ID:           uuid.New().String(),
		ClubID:       clubID,
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		Type:         req.Type,
		HostingClub:  req.HostingClub,
		AuditionInfo: req.AuditionInfo,
		TicketURL:    req.TicketURL,
		CreatedAt:    helpers.Now(),
	}
}

// validateScheduleEdit checks every set field of an edit up front, so
// nothing is applied from a request that is partially invalid
func validateScheduleEdit(req *dto.UpdateMeetingRequest) error {
	if req.Date != nil {
		if _, err := time.Parse(models.DateLayout, *req.Date); err != nil {
			return apperrors.ErrInvalidDate
		}
	}
	if req.Type != nil && !models.ValidMeetingType(*req.Type) {
		return apperrors.ErrInvalidMeetingType
	}
	return nil
}

func applyScheduleEdit(m *models.MeetingSchedule, req *dto.UpdateMeetingRequest) {
	if req.Date != nil {
		m.Date = *req.Date
	}
	if req.Type != nil {
		m.Type = *req.Type
	}
	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Time != nil {
		m.Time = *req.Time
	}
	if req.Location != nil {
		m.Location = *req.Location
	}
	if req.HostingClub != nil {
		m.HostingClub = *req.HostingClub
	}
	if req.AuditionInfo != nil {
		m.AuditionInfo = *req.AuditionInfo
	}
	if req.TicketURL != nil {
		m.TicketURL = *req.TicketURL
	}
}

// --- Club meetings ---

func (s *eventService) ListMeetingsForClub(ctx context.Context, clubID string) ([]models.MeetingSchedule, error) {
	if _, ok := s.repos.ClubByID(clubID); !ok {
		return nil, apperrors.ErrClubNotFound
	}
	return views.MeetingsForClub(s.repos.Meetings.All(), clubID), nil
}

func (s *eventService) UpcomingMeetingsForClub(ctx context.Context, clubID string, limit int) ([]models.MeetingSchedule, error) {
	if _, ok := s.repos.ClubByID(clubID); !ok {
		return nil, apperrors.ErrClubNotFound
	}
	clubMeetings := views.MeetingsForClub(s.repos.Meetings.All(), clubID)
	return views.UpcomingMeetings(clubMeetings, s.now(), limit), nil
}

func (s *eventService) CreateMeeting(ctx context.Context, actor Actor, clubID string, req *dto.CreateMeetingRequest) (models.MeetingSchedule, kvstore.WriteResult, error) {
	if err := s.requireManageable(actor, clubID); err != nil {
		return models.MeetingSchedule{}, kvstore.WriteResult{}, err
	}
	if err := validateSchedule(req.Date, req.Type); err != nil {
		return models.MeetingSchedule{}, kvstore.WriteResult{}, err
	}

	meeting := newSchedule(clubID, req)
	res, err := s.repos.Meetings.Update(ctx, func(items []models.MeetingSchedule) ([]models.MeetingSchedule, error) {
		return append(items, meeting), nil
	})
	if err != nil {
		return models.MeetingSchedule{}, res, err
	}

	s.logger.Info().Str("clubId", clubID).Str("meetingId", meeting.ID).Str("date", meeting.Date).Msg("Meeting scheduled")
	return meeting, res, nil
}

func (s *eventService) UpdateMeeting(ctx context.Context, actor Actor, clubID, meetingID string, req *dto.UpdateMeetingRequest) (models.MeetingSchedule, kvstore.WriteResult, error) {
	if err := s.requireManageable(actor, clubID); err != nil {
		return models.MeetingSchedule{}, kvstore.WriteResult{}, err
	}
	if err := validateScheduleEdit(req); err != nil {
		return models.MeetingSchedule{}, kvstore.WriteResult{}, err
	}

	var updated models.MeetingSchedule
	res, err := s.repos.Meetings.Update(ctx, func(items []models.MeetingSchedule) ([]models.MeetingSchedule, error) {
		for i := range items {
			if items[i].ID != meetingID || items[i].ClubID != clubID {
				continue
			}
			applyScheduleEdit(&items[i], req)
			updated = items[i]
			return items, nil
		}
		return nil, apperrors.ErrMeetingNotFound
	})
	if err != nil {
		return models.MeetingSchedule{}, res, err
	}
	return updated, res, nil
}

func (s *eventService) DeleteMeeting(ctx context.Context, actor Actor, clubID, meetingID string) (kvstore.WriteResult, error) {
	if err := s.requireManageable(actor, clubID); err != nil {
		return kvstore.WriteResult{}, err
	}

	res, err := s.repos.Meetings.Update(ctx, func(items []models.MeetingSchedule) ([]models.MeetingSchedule, error) {
		for i := range items {
			if items[i].ID == meetingID && items[i].ClubID == clubID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrMeetingNotFound
	})
	if err != nil {
		return res, err
	}
	return res, nil
}

// --- Campus-wide events ---

func (s *eventService) ListEvents(ctx context.Context) []models.MeetingSchedule {
	return s.repos.Events.All()
}

func (s *eventService) UpcomingEvents(ctx context.Context, limit int) []models.MeetingSchedule {
	return views.UpcomingMeetings(s.repos.Events.All(), s.now(), limit)
}

func (s *eventService) CreateEvent(ctx context.Context, actor Actor, req *dto.CreateMeetingRequest) (models.MeetingSchedule, kvstore.WriteResult, error) {
	if !actor.IsAdmin() && actor.Role != models.RoleLeader {
		return models.MeetingSchedule{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}
	if err := validateSchedule(req.Date, req.Type); err != nil {
		return models.MeetingSchedule{}, kvstore.WriteResult{}, err
	}

	event := newSchedule("", req)
	res, err := s.repos.Events.Update(ctx, func(items []models.MeetingSchedule) ([]models.MeetingSchedule, error) {
		return append(items, event), nil
	})
	if err != nil {
		return models.MeetingSchedule{}, res, err
	}

	s.logger.Info().Str("eventId", event.ID).Str("date", event.Date).Msg("Event published")
	return event, res, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, actor Actor, eventID string, req *dto.UpdateMeetingRequest) (models.MeetingSchedule, kvstore.WriteResult, error) {
	if !actor.IsAdmin() && actor.Role != models.RoleLeader {
		return models.MeetingSchedule{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}
	if err := validateScheduleEdit(req); err != nil {
		return models.MeetingSchedule{}, kvstore.WriteResult{}, err
	}

	var updated models.MeetingSchedule
	res, err := s.repos.Events.Update(ctx, func(items []models.MeetingSchedule) ([]models.MeetingSchedule, error) {
		for i := range items {
			if items[i].ID != eventID {
				continue
			}
			applyScheduleEdit(&items[i], req)
			updated = items[i]
			return items, nil
		}
		return nil, apperrors.ErrMeetingNotFound
	})
	if err != nil {
		return models.MeetingSchedule{}, res, err
	}
	return updated, res, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, actor Actor, eventID string) (kvstore.WriteResult, error) {
	if !actor.IsAdmin() && actor.Role != models.RoleLeader {
		return kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	res, err := s.repos.Events.Update(ctx, func(items []models.MeetingSchedule) ([]models.MeetingSchedule, error) {
		for i := range items {
			if items[i].ID == eventID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrMeetingNotFound
	})
	if err != nil {
		return res, err
	}
	return res, nil
}
