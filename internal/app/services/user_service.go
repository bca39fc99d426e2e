package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/repositories"
	"github.com/clubhub-app/clubhub/internal/app/views"
	"github.com/clubhub-app/clubhub/internal/kvstore"
	"github.com/clubhub-app/clubhub/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub/internal/pkg/helpers"
)

// UserService manages user records and profile edits
type UserService interface {
	ListUsers(ctx context.Context, page, pageSize int) ([]dto.UserResponse, *dto.PaginationInfo, error)
	GetUser(ctx context.Context, id string) (dto.UserResponse, error)
	GetUserClubs(ctx context.Context, userID string) ([]dto.ClubResponse, error)
	UpdateProfile(ctx context.Context, actor Actor, userID string, req *dto.UpdateProfileRequest) (dto.UserResponse, kvstore.WriteResult, error)
	UpdateRole(ctx context.Context, actor Actor, userID string, role models.RoleType) (dto.UserResponse, kvstore.WriteResult, error)
	DeleteUser(ctx context.Context, actor Actor, userID string) (kvstore.WriteResult, error)
}

type userService struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(repos *repositories.Repositories, lgr zerolog.Logger) UserService {
	return &userService{repos: repos, logger: lgr}
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize int) ([]dto.UserResponse, *dto.PaginationInfo, error) {
	users := s.repos.Users.All()
	pageItems, info := helpers.Paginate(users, page, pageSize)
	return dto.FromUsers(pageItems), &info, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (dto.UserResponse, error) {
	user, ok := s.repos.UserByID(id)
	if !ok {
		return dto.UserResponse{}, apperrors.ErrUserNotFound
	}
	return dto.FromUser(user), nil
}

// GetUserClubs returns the clubs the user is an active member of, with
// member counts resolved from the memberships snapshot
func (s *userService) GetUserClubs(ctx context.Context, userID string) ([]dto.ClubResponse, error) {
	if _, ok := s.repos.UserByID(userID); !ok {
		return nil, apperrors.ErrUserNotFound
	}

	members := s.repos.ClubMembers.All()
	clubs := views.ClubsOfUser(s.repos.Clubs.All(), members, userID)

	out := make([]dto.ClubResponse, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, dto.FromClub(c, views.ActiveMemberCount(members, c.ID), nil))
	}
	return out, nil
}

// UpdateProfile applies a partial profile edit. When the user leads any
// club, or appears in any member list, the denormalized name and avatar
// copies are re-synced in the same pass.
func (s *userService) UpdateProfile(ctx context.Context, actor Actor, userID string, req *dto.UpdateProfileRequest) (dto.UserResponse, kvstore.WriteResult, error) {
	if actor.ID != userID && !actor.IsAdmin() {
		return dto.UserResponse{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	var updated models.User
	res, err := s.repos.Users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID != userID {
				continue
			}
			if req.Name != nil {
				users[i].Name = *req.Name
			}
			if req.Avatar != nil {
				users[i].Avatar = *req.Avatar
			}
			if req.Bio != nil {
				users[i].Bio = *req.Bio
			}
			if req.Social != nil {
				users[i].Social = req.Social
			}
			if req.Interests != nil {
				users[i].Interests = *req.Interests
			}
			if req.Certifications != nil {
				users[i].Certifications = *req.Certifications
			}
			if req.Achievements != nil {
				users[i].Achievements = *req.Achievements
			}
			users[i].UpdatedAt = helpers.Now()
			updated = users[i]
			return users, nil
		}
		return nil, apperrors.ErrUserNotFound
	})
	if err != nil {
		return dto.UserResponse{}, res, err
	}

	syncRes := s.syncDenormalizedUser(ctx, updated)
	res = helpers.CombineWrites(res, syncRes)

	s.logger.Info().Str("userId", userID).Msg("Profile updated")
	return dto.FromUser(updated), res, nil
}

// UpdateRole is the admin-only role edit. ADMIN is never a valid target:
// only the seeded admin account holds that role.
func (s *userService) UpdateRole(ctx context.Context, actor Actor, userID string, role models.RoleType) (dto.UserResponse, kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return dto.UserResponse{}, kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}
	switch role {
	case models.RoleStudent, models.RoleLeader:
	default:
		return dto.UserResponse{}, kvstore.WriteResult{}, apperrors.ErrValidationFailed
	}

	var updated models.User
	res, err := s.repos.Users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID == userID {
				users[i].Role = role
				users[i].UpdatedAt = helpers.Now()
				updated = users[i]
				return users, nil
			}
		}
		return nil, apperrors.ErrUserNotFound
	})
	if err != nil {
		return dto.UserResponse{}, res, err
	}

	s.logger.Info().Str("userId", userID).Str("role", string(role)).Msg("Role changed")
	return dto.FromUser(updated), res, nil
}

// DeleteUser removes a user record. Admin accounts are not deletable.
// Memberships and led clubs are left in place; views that join through
// the missing user drop the dangling rows on their own.
func (s *userService) DeleteUser(ctx context.Context, actor Actor, userID string) (kvstore.WriteResult, error) {
	if !actor.IsAdmin() {
		return kvstore.WriteResult{}, apperrors.ErrPermissionDenied
	}

	res, err := s.repos.Users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID != userID {
				continue
			}
			if users[i].IsAdmin() {
				return nil, apperrors.ErrAdminUndeletable
			}
			return append(users[:i], users[i+1:]...), nil
		}
		return nil, apperrors.ErrUserNotFound
	})
	if err != nil {
		return res, err
	}

	s.logger.Info().Str("userId", userID).Msg("User deleted")
	return res, nil
}

// syncDenormalizedUser pushes the user's current name, email and avatar
// into the clubs they lead and every membership row that references them
func (s *userService) syncDenormalizedUser(ctx context.Context, user models.User) kvstore.WriteResult {
	clubRes, _ := s.repos.Clubs.Update(ctx, func(clubs []models.Club) ([]models.Club, error) {
		changed := false
		for i := range clubs {
			if clubs[i].LeaderID != user.ID {
				continue
			}
			if clubs[i].LeaderName != user.Name || clubs[i].LeaderAvatar != user.Avatar {
				clubs[i].LeaderName = user.Name
				clubs[i].LeaderAvatar = user.Avatar
				changed = true
			}
		}
		if !changed {
			return nil, repositories.ErrNoChange
		}
		return clubs, nil
	})

	memberRes, _ := s.repos.ClubMembers.Update(ctx, func(members []models.ClubMember) ([]models.ClubMember, error) {
		changed := false
		for i := range members {
			if members[i].UserID != user.ID {
				continue
			}
			if members[i].UserName != user.Name || members[i].UserEmail != user.Email {
				members[i].UserName = user.Name
				members[i].UserEmail = user.Email
				changed = true
			}
		}
		if !changed {
			return nil, repositories.ErrNoChange
		}
		return members, nil
	})

	return helpers.CombineWrites(clubRes, memberRes)
}
