package services

import (
	"context"
	"strings"

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

// ClubService manages the club directory
type ClubService interface {
	ListClubs(ctx context.Context, req *dto.ClubFilterRequest) (*dto.ClubListResponse, error)
	GetClub(ctx context.Context, id string) (dto.ClubResponse, error)
	CreateClub(ctx context.Context, actor Actor, req *dto.CreateClubRequest) (dto.ClubResponse, kvstore.WriteResult, error)
	UpdateClub(ctx context.Context, actor Actor, clubID string, req *dto.UpdateClubRequest) (dto.ClubResponse, kvstore.WriteResult, error)
	DeleteClub(ctx context.Context, actor Actor, clubID string) (kvstore.WriteResult, error)
}

type clubService struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewClubService creates a new ClubService
func NewClubService(repos *repositories.Repositories, lgr zerolog.Logger) ClubService {
	return &clubService{repos: repos, logger: lgr}
}

// canManageClub: a club is editable by its leader or by an admin
func (s *clubService) canManageClub(actor Actor, club models.Club) bool {
	return actor.IsAdmin() || actor.ID == club.LeaderID
}

func (s *clubService) ListClubs(ctx context.Context, req *dto.ClubFilterRequest) (*dto.ClubListResponse, error) {
	filter := views.ClubFilter{
		Category:   models.ClubCategory(req.Category),
		Recruiting: req.Recruiting,
		Search:     req.Search,
	}
	if filter.Category != "" && !models.ValidCategory(filter.Category) {
		return nil, apperrors.ErrInvalidCategory
	}

	filtered := views.FilterClubs(s.repos.Clubs.All(), filter)
	pageItems, info := helpers.Paginate(filtered, req.Page, req.PageSize)

	members := s.repos.ClubMembers.All()
	joined := views.JoinLeaders(pageItems, s.repos.Users.All())

	clubs := make([]dto.ClubResponse, 0, len(joined))
	for _, j := range joined {
		clubs = append(clubs, dto.FromClub(j.Club, views.ActiveMemberCount(members, j.Club.ID), j.Leader))
	}

	return &dto.ClubListResponse{Clubs: clubs, PaginationInfo: info}, nil
}

func (s *clubService) GetClub(ctx context.Context, id string) (dto.ClubResponse, error) {
	club, ok := s.repos.ClubByID(id)
	if !ok {
		return dto.ClubResponse{}, apperrors.ErrClubNotFound
	}

	joined := views.JoinLeader(club, s.repos.Users.All())
	count := views.ActiveMemberCount(s.repos.ClubMembers.All(), id)
	return dto.FromClub(joined.Club, count, joined.Leader), nil
}

// CreateClub registers a new club. The leader reference is resolved
// eagerly so the denormalized leader fields start out in sync.
func (s *clubService) CreateClub(ctx context.Context, actor Actor, req *dto.CreateClubRequest) (dto.ClubResponse, kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return dto.ClubResponse{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}
	if !models.ValidCategory(req.Category) {
		return dto.ClubResponse{}, kvstore.WriteResult{}, apperrors.ErrInvalidCategory
	}

	leader, ok := s.repos.UserByID(req.LeaderID)
	if !ok {
		return dto.ClubResponse{}, kvstore.WriteResult{}, apperrors.ErrUserNotFound
	}

	now := helpers.Now()
	club := models.Club{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Category:     req.Category,
		ContactEmail: req.ContactEmail,
		LeaderID:     leader.ID,
		LeaderName:   leader.Name,
		LeaderAvatar: leader.Avatar,
		Schedule:     req.Schedule,
		Location:     req.Location,
		Recruiting:   req.Recruiting,
		Tags:         req.Tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := s.repos.Clubs.Update(ctx, func(clubs []models.Club) ([]models.Club, error) {
		for _, c := range clubs {
			if strings.EqualFold(c.Name, club.Name) {
				return nil, apperrors.ErrClubNameExists
			}
		}
		return append(clubs, club), nil
	})
	if err != nil {
		return dto.ClubResponse{}, res, err
	}

	s.logger.Info().Str("clubId", club.ID).Str("name", club.Name).Msg("Club created")
	return dto.FromClub(club, 0, &leader), res, nil
}

// UpdateClub applies a partial edit. A leader change re-resolves the new
// leader and rewrites the denormalized name and avatar copies.
func (s *clubService) UpdateClub(ctx context.Context, actor Actor, clubID string, req *dto.UpdateClubRequest) (dto.ClubResponse, kvstore.WriteResult, error) {
	current, ok := s.repos.ClubByID(clubID)
	if !ok {
		return dto.ClubResponse{}, kvstore.WriteResult{}, apperrors.ErrClubNotFound
	}
	if !s.canManageClub(actor, current) {
		return dto.ClubResponse{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}
	if req.Category != nil && !models.ValidCategory(*req.Category) {
		return dto.ClubResponse{}, kvstore.WriteResult{}, apperrors.ErrInvalidCategory
	}

	var newLeader *models.User
	if req.LeaderID != nil {
		leader, ok := s.repos.UserByID(*req.LeaderID)
		if !ok {
			return dto.ClubResponse{}, kvstore.WriteResult{}, apperrors.ErrUserNotFound
		}
		newLeader = &leader
	}

	var updated models.Club
	res, err := s.repos.Clubs.Update(ctx, func(clubs []models.Club) ([]models.Club, error) {
		for i := range clubs {
			if clubs[i].ID != clubID {
				continue
			}
			if req.Name != nil {
				name := strings.TrimSpace(*req.Name)
				for j := range clubs {
					if j != i && strings.EqualFold(clubs[j].Name, name) {
						return nil, apperrors.ErrClubNameExists
					}
				}
				clubs[i].Name = name
			}
			if req.Description != nil {
				clubs[i].Description = *req.Description
			}
			if req.Category != nil {
				clubs[i].Category = *req.Category
			}
			if req.ContactEmail != nil {
				clubs[i].ContactEmail = *req.ContactEmail
			}
			if newLeader != nil {
				clubs[i].LeaderID = newLeader.ID
				clubs[i].LeaderName = newLeader.Name
				clubs[i].LeaderAvatar = newLeader.Avatar
			}
			if req.Schedule != nil {
				clubs[i].Schedule = *req.Schedule
			}
			if req.Location != nil {
				clubs[i].Location = *req.Location
			}
			if req.Recruiting != nil {
				clubs[i].Recruiting = *req.Recruiting
			}
			if req.Tags != nil {
				clubs[i].Tags = *req.Tags
			}
			if req.Banner != nil {
				clubs[i].Banner = *req.Banner
			}
			if req.Logo != nil {
				clubs[i].Logo = *req.Logo
			}
			if req.Social != nil {
				clubs[i].Social = req.Social
			}
			if req.WelcomeNote != nil {
				clubs[i].WelcomeNote = *req.WelcomeNote
			}
			clubs[i].UpdatedAt = helpers.Now()
			updated = clubs[i]
			return clubs, nil
		}
		return nil, apperrors.ErrClubNotFound
	})
	if err != nil {
		return dto.ClubResponse{}, res, err
	}

	joined := views.JoinLeader(updated, s.repos.Users.All())
	count := views.ActiveMemberCount(s.repos.ClubMembers.All(), clubID)

	s.logger.Info().Str("clubId", clubID).Msg("Club updated")
	return dto.FromClub(updated, count, joined.Leader), res, nil
}

// DeleteClub removes the club record only. Memberships, announcements
// and meetings keep their rows; every view that joins through the club
// drops them, so no cascade is needed.
func (s *clubService) DeleteClub(ctx context.Context, actor Actor, clubID string) (kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	res, err := s.repos.Clubs.Update(ctx, func(clubs []models.Club) ([]models.Club, error) {
		for i := range clubs {
			if clubs[i].ID == clubID {
				return append(clubs[:i], clubs[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrClubNotFound
	})
	if err != nil {
		return res, err
	}

	s.logger.Info().Str("clubId", clubID).Msg("Club deleted")
	return res, nil
}
