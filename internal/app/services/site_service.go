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

// SiteService manages site-wide content: theme, logo, landing-page
// testimonials and figures, the image gallery and broadcast
// notifications
type SiteService interface {
	GetTheme(ctx context.Context) (mode string, settings models.ThemeSettings)
	SetThemeMode(ctx context.Context, actor Actor, mode string) (kvstore.WriteResult, error)
	SetThemeSettings(ctx context.Context, actor Actor, req *dto.UpdateThemeSettingsRequest) (models.ThemeSettings, kvstore.WriteResult, error)

	GetLogo(ctx context.Context) models.SiteLogo
	SetLogo(ctx context.Context, actor Actor, data string) (models.SiteLogo, kvstore.WriteResult, error)

	ListTestimonials(ctx context.Context) []models.Testimonial
	AddTestimonial(ctx context.Context, actor Actor, req *dto.TestimonialRequest) (models.Testimonial, kvstore.WriteResult, error)
	DeleteTestimonial(ctx context.Context, actor Actor, id string) (kvstore.WriteResult, error)

	ListImpactStats(ctx context.Context) []models.ImpactStat
	ReplaceImpactStats(ctx context.Context, actor Actor, reqs []dto.ImpactStatRequest) ([]models.ImpactStat, kvstore.WriteResult, error)

	ListGallery(ctx context.Context) []models.GalleryImage
	AddGalleryImage(ctx context.Context, actor Actor, req *dto.UploadImageRequest) (models.GalleryImage, kvstore.WriteResult, error)
	DeleteGalleryImage(ctx context.Context, actor Actor, id string) (kvstore.WriteResult, error)

	ListNotifications(ctx context.Context) (items []models.Notification, unread int)
	CreateNotification(ctx context.Context, actor Actor, content string) (models.Notification, kvstore.WriteResult, error)
	MarkNotificationsRead(ctx context.Context) (kvstore.WriteResult, error)
}

type siteService struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewSiteService creates a new SiteService
func NewSiteService(repos *repositories.Repositories, lgr zerolog.Logger) SiteService {
	return &siteService{repos: repos, logger: lgr}
}

// --- Theme ---

func (s *siteService) GetTheme(ctx context.Context) (string, models.ThemeSettings) {
	return s.repos.Theme.Get(), s.repos.ThemeSettings.Get()
}

func (s *siteService) SetThemeMode(ctx context.Context, actor Actor, mode string) (kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}
	if mode != "light" && mode != "dark" {
		return kvstore.WriteResult{}, apperrors.ErrValidationFailed
	}
	return s.repos.Theme.Set(ctx, mode), nil
}

func (s *siteService) SetThemeSettings(ctx context.Context, actor Actor, req *dto.UpdateThemeSettingsRequest) (models.ThemeSettings, kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return models.ThemeSettings{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}
	settings := models.ThemeSettings{Light: req.Light, Dark: req.Dark}
	res := s.repos.ThemeSettings.Set(ctx, settings)
	s.logger.Info().Msg("Theme palette replaced")
	return settings, res, nil
}

// --- Logo ---

func (s *siteService) GetLogo(ctx context.Context) models.SiteLogo {
	return s.repos.SiteLogo.Get()
}

func (s *siteService) SetLogo(ctx context.Context, actor Actor, data string) (models.SiteLogo, kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return models.SiteLogo{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}
	logo := models.SiteLogo{Data: data, UpdatedAt: helpers.Now()}
	return logo, s.repos.SiteLogo.Set(ctx, logo), nil
}

// --- Testimonials ---

func (s *siteService) ListTestimonials(ctx context.Context) []models.Testimonial {
	return s.repos.Testimonials.All()
}

func (s *siteService) AddTestimonial(ctx context.Context, actor Actor, req *dto.TestimonialRequest) (models.Testimonial, kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return models.Testimonial{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	testimonial := models.Testimonial{
		ID:        uuid.New().String(),
		Author:    req.Author,
		Role:      req.Role,
		Quote:     req.Quote,
		CreatedAt: helpers.Now(),
	}
	res, err := s.repos.Testimonials.Update(ctx, func(items []models.Testimonial) ([]models.Testimonial, error) {
		return append(items, testimonial), nil
	})
	if err != nil {
		return models.Testimonial{}, res, err
	}
	return testimonial, res, nil
}

func (s *siteService) DeleteTestimonial(ctx context.Context, actor Actor, id string) (kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	res, err := s.repos.Testimonials.Update(ctx, func(items []models.Testimonial) ([]models.Testimonial, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrTestimonialNotFound
	})
	if err != nil {
		return res, err
	}
	return res, nil
}

// --- Impact stats ---

func (s *siteService) ListImpactStats(ctx context.Context) []models.ImpactStat {
	return s.repos.ImpactStats.All()
}

// ReplaceImpactStats swaps the whole landing-page figure list, matching
// how the admin screen edits it as a unit
func (s *siteService) ReplaceImpactStats(ctx context.Context, actor Actor, reqs []dto.ImpactStatRequest) ([]models.ImpactStat, kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return nil, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	stats := make([]models.ImpactStat, 0, len(reqs))
	for _, r := range reqs {
		stats = append(stats, models.ImpactStat{
			ID:    uuid.New().String(),
			Label: r.Label,
			Value: r.Value,
		})
	}
	return stats, s.repos.ImpactStats.Replace(ctx, stats), nil
}

// --- Gallery ---

func (s *siteService) ListGallery(ctx context.Context) []models.GalleryImage {
	return s.repos.Gallery.All()
}

func (s *siteService) AddGalleryImage(ctx context.Context, actor Actor, req *dto.UploadImageRequest) (models.GalleryImage, kvstore.WriteResult, error) {
	if !actor.IsAdmin() && actor.Role != models.RoleLeader {
		return models.GalleryImage{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	image := models.GalleryImage{
		ID:         uuid.New().String(),
		Data:       req.Data,
		Caption:    req.Caption,
		UploadedAt: helpers.Now(),
	}
	res, err := s.repos.Gallery.Update(ctx, func(items []models.GalleryImage) ([]models.GalleryImage, error) {
		return append(items, image), nil
	})
	if err != nil {
		return models.GalleryImage{}, res, err
	}

	s.logger.Info().Str("imageId", image.ID).Int("bytes", len(image.Data)).Msg("Gallery image added")
	return image, res, nil
}

func (s *siteService) DeleteGalleryImage(ctx context.Context, actor Actor, id string) (kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	res, err := s.repos.Gallery.Update(ctx, func(items []models.GalleryImage) ([]models.GalleryImage, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrImageNotFound
	})
	if err != nil {
		return res, err
	}
	return res, nil
}

// --- Notifications ---

func (s *siteService) ListNotifications(ctx context.Context) ([]models.Notification, int) {
	items := s.repos.Notifications.All()
	return items, views.UnreadNotificationCount(items)
}

func (s *siteService) CreateNotification(ctx context.Context, actor Actor, content string) (models.Notification, kvstore.WriteResult, error) {
	if !actor.IsAdmin() && actor.Role != models.RoleLeader {
		return models.Notification{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	notification := models.Notification{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: helpers.Now(),
	}
	res, err := s.repos.Notifications.Update(ctx, func(items []models.Notification) ([]models.Notification, error) {
		return append(items, notification), nil
	})
	if err != nil {
		return models.Notification{}, res, err
	}
	return notification, res, nil
}

// MarkNotificationsRead flips every unread notification; already-read
// lists skip the write entirely
func (s *siteService) MarkNotificationsRead(ctx context.Context) (kvstore.WriteResult, error) {
	return s.repos.Notifications.Update(ctx, func(items []models.Notification) ([]models.Notification, error) {
		changed := false
		for i := range items {
			if !items[i].Read {
				items[i].Read = true
				changed = true
			}
		}
		if !changed {
			return nil, repositories.ErrNoChange
		}
		return items, nil
	})
}
