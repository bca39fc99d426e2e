package services

import (
	"context"

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

// AnnouncementService manages club announcements
type AnnouncementService interface {
	ListForClub(ctx context.Context, clubID string) ([]models.Announcement, error)
	ListRecent(ctx context.Context, limit int) []models.Announcement
	Create(ctx context.Context, actor Actor, clubID string, req *dto.CreateAnnouncementRequest) (models.Announcement, kvstore.WriteResult, error)
	Update(ctx context.Context, actor Actor, clubID, announcementID string, req *dto.UpdateAnnouncementRequest) (models.Announcement, kvstore.WriteResult, error)
	Delete(ctx context.Context, actor Actor, clubID, announcementID string) (kvstore.WriteResult, error)
}

type announcementService struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(repos *repositories.Repositories, lgr zerolog.Logger) AnnouncementService {
	return &announcementService{repos: repos, logger: lgr}
}

func (s *announcementService) requireManageable(actor Actor, clubID string) error {
	club, ok := s.repos.ClubByID(clubID)
	if !ok {
		return apperrors.ErrClubNotFound
	}
	if !actor.IsAdmin() && actor.ID != club.LeaderID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

func (s *announcementService) ListForClub(ctx context.Context, clubID string) ([]models.Announcement, error) {
	if _, ok := s.repos.ClubByID(clubID); !ok {
		return nil, apperrors.ErrClubNotFound
	}
	return views.AnnouncementsForClub(s.repos.Announcements.All(), clubID), nil
}

func (s *announcementService) ListRecent(ctx context.Context, limit int) []models.Announcement {
	return views.RecentAnnouncements(s.repos.Announcements.All(), limit)
}

func (s *announcementService) Create(ctx context.Context, actor Actor, clubID string, req *dto.CreateAnnouncementRequest) (models.Announcement, kvstore.WriteResult, error) {
	if err := s.requireManageable(actor, clubID); err != nil {
		return models.Announcement{}, kvstore.WriteResult{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	announcement := models.Announcement{
		ID:        uuid.New().String(),
		ClubID:    clubID,
		Title:     req.Title,
		Content:   req.Content,
		Priority:  priority,
		CreatedAt: helpers.Now(),
	}

	res, err := s.repos.Announcements.Update(ctx, func(items []models.Announcement) ([]models.Announcement, error) {
		return append(items, announcement), nil
	})
	if err != nil {
		return models.Announcement{}, res, err
	}

	s.logger.Info().Str("clubId", clubID).Str("announcementId", announcement.ID).Msg("Announcement posted")
	return announcement, res, nil
}

func (s *announcementService) Update(ctx context.Context, actor Actor, clubID, announcementID string, req *dto.UpdateAnnouncementRequest) (models.Announcement, kvstore.WriteResult, error) {
	if err := s.requireManageable(actor, clubID); err != nil {
		return models.Announcement{}, kvstore.WriteResult{}, err
	}

	var updated models.Announcement
	res, err := s.repos.Announcements.Update(ctx, func(items []models.Announcement) ([]models.Announcement, error) {
		for i := range items {
			if items[i].ID != announcementID || items[i].ClubID != clubID {
				continue
			}
			if req.Title != nil {
				items[i].Title = *req.Title
			}
			if req.Content != nil {
				items[i].Content = *req.Content
			}
			if req.Priority != nil {
				items[i].Priority = *req.Priority
			}
			updated = items[i]
			return items, nil
		}
		return nil, apperrors.ErrAnnouncementNotFound
	})
	if err != nil {
		return models.Announcement{}, res, err
	}
	return updated, res, nil
}

func (s *announcementService) Delete(ctx context.Context, actor Actor, clubID, announcementID string) (kvstore.WriteResult, error) {
	if err := s.requireManageable(actor, clubID); err != nil {
		return kvstore.WriteResult{}, err
	}

	res, err := s.repos.Announcements.Update(ctx, func(items []models.Announcement) ([]models.Announcement, error) {
		for i := range items {
			if items[i].ID == announcementID && items[i].ClubID == clubID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrAnnouncementNotFound
	})
	if err != nil {
		return res, err
	}
	return res, nil
}
