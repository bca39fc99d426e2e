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

// MembershipService manages club memberships and join requests
type MembershipService interface {
	ListMembers(ctx context.Context, clubID string) (*dto.MemberListResponse, error)
	RequestJoin(ctx context.Context, actor Actor, clubID string) (dto.MemberResponse, kvstore.WriteResult, error)
	ApproveRequest(ctx context.Context, actor Actor, clubID, memberID string) (dto.MemberResponse, kvstore.WriteResult, error)
	DeclineRequest(ctx context.Context, actor Actor, clubID, memberID string) (kvstore.WriteResult, error)
	RemoveMember(ctx context.Context, actor Actor, clubID, memberID string) (kvstore.WriteResult, error)
	LeaveClub(ctx context.Context, actor Actor, clubID string) (kvstore.WriteResult, error)

	// ClubWithMembers backs the roster export
	ClubWithMembers(clubID string) (models.Club, []models.ClubMember, error)
}

type membershipService struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(repos *repositories.Repositories, lgr zerolog.Logger) MembershipService {
	return &membershipService{repos: repos, logger: lgr}
}

func (s *membershipService) requireManageable(actor Actor, clubID string) (models.Club, error) {
	club, ok := s.repos.ClubByID(clubID)
	if !ok {
		return models.Club{}, apperrors.ErrClubNotFound
	}
	if !actor.IsAdmin() && actor.ID != club.LeaderID {
		return models.Club{}, apperrors.ErrPermissionDenied
	}
	return club, nil
}

func (s *membershipService) ListMembers(ctx context.Context, clubID string) (*dto.MemberListResponse, error) {
	if _, ok := s.repos.ClubByID(clubID); !ok {
		return nil, apperrors.ErrClubNotFound
	}

	members := s.repos.ClubMembers.All()
	return &dto.MemberListResponse{
		Members:      dto.FromMembers(views.MembersOfClub(members, clubID)),
		ActiveCount:  views.ActiveMemberCount(members, clubID),
		PendingCount: views.PendingRequestCount(members, clubID),
	}, nil
}

func (s *membershipService) ClubWithMembers(clubID string) (models.Club, []models.ClubMember, error) {
	club, ok := s.repos.ClubByID(clubID)
	if !ok {
		return models.Club{}, nil, apperrors.ErrClubNotFound
	}
	return club, views.MembersOfClub(s.repos.ClubMembers.All(), clubID), nil
}

// RequestJoin files a pending membership for the acting user. At most
// one membership row may exist per (club, user) pair, whatever its
// status; the check runs inside the collection lock so two concurrent
// requests cannot both slip through.
func (s *membershipService) RequestJoin(ctx context.Context, actor Actor, clubID string) (dto.MemberResponse, kvstore.WriteResult, error) {
	club, ok := s.repos.ClubByID(clubID)
	if !ok {
		return dto.MemberResponse{}, kvstore.WriteResult{}, apperrors.ErrClubNotFound
	}
	user, ok := s.repos.UserByID(actor.ID)
	if !ok {
		return dto.MemberResponse{}, kvstore.WriteResult{}, apperrors.ErrUserNotFound
	}

	member := models.ClubMember{
		ID:        uuid.New().String(),
		ClubID:    club.ID,
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		Status:    models.MemberPending,
		JoinedAt:  helpers.Now(),
	}

	res, err := s.repos.ClubMembers.Update(ctx, func(members []models.ClubMember) ([]models.ClubMember, error) {
		for _, m := range members {
			if m.ClubID == clubID && m.UserID == actor.ID {
				return nil, apperrors.ErrAlreadyMember
			}
		}
		return append(members, member), nil
	})
	if err != nil {
		return dto.MemberResponse{}, res, err
	}

	s.logger.Info().Str("clubId", clubID).Str("userId", actor.ID).Msg("Join request filed")
	return dto.FromMember(member), res, nil
}

// ApproveRequest flips a pending membership to active in place,
// preserving its row identity
func (s *membershipService) ApproveRequest(ctx context.Context, actor Actor, clubID, memberID string) (dto.MemberResponse, kvstore.WriteResult, error) {
	if _, err := s.requireManageable(actor, clubID); err != nil {
		return dto.MemberResponse{}, kvstore.WriteResult{}, err
	}

	var approved models.ClubMember
	res, err := s.repos.ClubMembers.Update(ctx, func(members []models.ClubMember) ([]models.ClubMember, error) {
		for i := range members {
			if members[i].ID != memberID || members[i].ClubID != clubID {
				continue
			}
			if members[i].Status != models.MemberPending {
				return nil, apperrors.ErrNotPending
			}
			members[i].Status = models.MemberActive
			approved = members[i]
			return members, nil
		}
		return nil, apperrors.ErrMembershipNotFound
	})
	if err != nil {
		return dto.MemberResponse{}, res, err
	}

	s.logger.Info().Str("clubId", clubID).Str("memberId", memberID).Msg("Join request approved")
	return dto.FromMember(approved), res, nil
}

// DeclineRequest removes a pending membership row. The user may file a
// fresh request afterwards.
func (s *membershipService) DeclineRequest(ctx context.Context, actor Actor, clubID, memberID string) (kvstore.WriteResult, error) {
	if _, err := s.requireManageable(actor, clubID); err != nil {
		return kvstore.WriteResult{}, err
	}

	res, err := s.repos.ClubMembers.Update(ctx, func(members []models.ClubMember) ([]models.ClubMember, error) {
		for i := range members {
			if members[i].ID != memberID || members[i].ClubID != clubID {
				continue
			}
			if members[i].Status != models.MemberPending {
				return nil, apperrors.ErrNotPending
			}
			return append(members[:i], members[i+1:]...), nil
		}
		return nil, apperrors.ErrMembershipNotFound
	})
	if err != nil {
		return res, err
	}

	s.logger.Info().Str("clubId", clubID).Str("memberId", memberID).Msg("Join request declined")
	return res, nil
}

// RemoveMember drops a membership row of any status
func (s *membershipService) RemoveMember(ctx context.Context, actor Actor, clubID, memberID string) (kvstore.WriteResult, error) {
	if _, err := s.requireManageable(actor, clubID); err != nil {
		return kvstore.WriteResult{}, err
	}

	res, err := s.repos.ClubMembers.Update(ctx, func(members []models.ClubMember) ([]models.ClubMember, error) {
		for i := range members {
			if members[i].ID == memberID && members[i].ClubID == clubID {
				return append(members[:i], members[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrMembershipNotFound
	})
	if err != nil {
		return res, err
	}

	s.logger.Info().Str("clubId", clubID).Str("memberId", memberID).Msg("Member removed")
	return res, nil
}

// LeaveClub removes the acting user's own membership row
func (s *membershipService) LeaveClub(ctx context.Context, actor Actor, clubID string) (kvstore.WriteResult, error) {
	res, err := s.repos.ClubMembers.Update(ctx, func(members []models.ClubMember) ([]models.ClubMember, error) {
		for i := range members {
			if members[i].ClubID == clubID && members[i].UserID == actor.ID {
				return append(members[:i], members[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrMembershipNotFound
	})
	if err != nil {
		return res, err
	}

	s.logger.Info().Str("clubId", clubID).Str("userId", actor.ID).Msg("Member left club")
	return res, nil
}
