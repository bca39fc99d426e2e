package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/repositories"
	"github.com/clubhub-app/clubhub/internal/pkg/apperrors"
)

func seedClubFixture(t *testing.T, repos *repositories.Repositories) {
	t.Helper()
	ctx := context.Background()

	res := repos.Users.Replace(ctx, []models.User{
		{ID: "u-admin", Name: "Ada Admin", Email: "ada@campus.edu", Role: models.RoleAdmin},
		{ID: "u-lena", Name: "Lena Leader", Email: "lena@campus.edu", Role: models.RoleLeader, Avatar: "https://cdn.example/lena.png"},
		{ID: "u-marco", Name: "Marco Vidal", Email: "marco@campus.edu", Role: models.RoleLeader, Avatar: "https://cdn.example/marco.png"},
	})
	require.NoError(t, res.Err)

	res = repos.Clubs.Replace(ctx, []models.Club{
		{ID: "c1", Name: "Chess", Category: models.CategoryAcademic, LeaderID: "u-lena", LeaderName: "Lena Leader", LeaderAvatar: "https://cdn.example/lena.png"},
		{ID: "c2", Name: "Drama", Category: models.CategoryArts, LeaderID: "u-marco", LeaderName: "Marco Vidal"},
	})
	require.NoError(t, res.Err)
}

func TestCreateClub(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedClubFixture(t, repos)
	svc := NewClubService(repos, zerolog.Nop())

	admin := Actor{ID: "u-admin", Role: models.RoleAdmin}

	t.Run("resolves the leader eagerly", func(t *testing.T) {
		club, res, err := svc.CreateClub(ctx, admin, &dto.CreateClubRequest{
			Name: "Robotics", Description: "Build robots", Category: models.CategoryTechnical, LeaderID: "u-marco",
		})
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, "Marco Vidal", club.LeaderName)
		assert.Equal(t, "https://cdn.example/marco.png", club.LeaderAvatar)
	})

	t.Run("name collision is case-insensitive", func(t *testing.T) {
		_, _, err := svc.CreateClub(ctx, admin, &dto.CreateClubRequest{
			Name: "  chess ", Description: "another", Category: models.CategoryAcademic, LeaderID: "u-lena",
		})
		assert.ErrorIs(t, err, apperrors.ErrClubNameExists)
	})

	t.Run("non-admin cannot create", func(t *testing.T) {
		_, _, err := svc.CreateClub(ctx, Actor{ID: "u-lena", Role: models.RoleLeader}, &dto.CreateClubRequest{
			Name: "Hiking", Description: "Trails", Category: models.CategorySports, LeaderID: "u-lena",
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, _, err := svc.CreateClub(ctx, admin, &dto.CreateClubRequest{
			Name: "Hiking", Description: "Trails", Category: models.ClubCategory("extreme"), LeaderID: "u-lena",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
	})

	t.Run("unknown leader", func(t *testing.T) {
		_, _, err := svc.CreateClub(ctx, admin, &dto.CreateClubRequest{
			Name: "Hiking", Description: "Trails", Category: models.CategorySports, LeaderID: "missing",
		})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUpdateClub(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedClubFixture(t, repos)
	svc := NewClubService(repos, zerolog.Nop())

	admin := Actor{ID: "u-admin", Role: models.RoleAdmin}
	lena := Actor{ID: "u-lena", Role: models.RoleLeader}

	t.Run("leader change rewrites the denormalized copies", func(t *testing.T) {
		leaderID := "u-marco"
		updated, res, err := svc.UpdateClub(ctx, admin, "c1", &dto.UpdateClubRequest{LeaderID: &leaderID})
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, "u-marco", updated.LeaderID)
		assert.Equal(t, "Marco Vidal", updated.LeaderName)
		assert.Equal(t, "https://cdn.example/marco.png", updated.LeaderAvatar)

		stored, ok := repos.ClubByID("c1")
		require.True(t, ok)
		assert.Equal(t, "Marco Vidal", stored.LeaderName)
		assert.Equal(t, "https://cdn.example/marco.png", stored.LeaderAvatar)
	})

	t.Run("renaming onto another club's name conflicts", func(t *testing.T) {
		name := "DRAMA"
		_, _, err := svc.UpdateClub(ctx, admin, "c1", &dto.UpdateClubRequest{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrClubNameExists)

		stored, ok := repos.ClubByID("c1")
		require.True(t, ok)
		assert.Equal(t, "Chess", stored.Name)
	})

	t.Run("keeping your own name is not a conflict", func(t *testing.T) {
		name := "Chess"
		_, _, err := svc.UpdateClub(ctx, admin, "c1", &dto.UpdateClubRequest{Name: &name})
		assert.NoError(t, err)
	})

	t.Run("former leader loses edit rights after the change", func(t *testing.T) {
		desc := "updated"
		_, _, err := svc.UpdateClub(ctx, lena, "c1", &dto.UpdateClubRequest{Description: &desc})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("unknown leader target", func(t *testing.T) {
		leaderID := "missing"
		_, _, err := svc.UpdateClub(ctx, admin, "c1", &dto.UpdateClubRequest{LeaderID: &leaderID})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestDeleteClub(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedClubFixture(t, repos)
	svc := NewClubService(repos, zerolog.Nop())

	res := repos.ClubMembers.Replace(ctx, []models.ClubMember{
		{ID: "m1", ClubID: "c1", UserID: "u-marco", Status: models.MemberActive},
	})
	require.NoError(t, res.Err)

	t.Run("non-admin cannot delete", func(t *testing.T) {
		_, err := svc.DeleteClub(ctx, Actor{ID: "u-lena", Role: models.RoleLeader}, "c1")
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("delete leaves membership rows dangling", func(t *testing.T) {
		wres, err := svc.DeleteClub(ctx, Actor{ID: "u-admin", Role: models.RoleAdmin}, "c1")
		require.NoError(t, err)
		assert.True(t, wres.Persisted)
		assert.Equal(t, 1, repos.Clubs.Len())
		assert.Equal(t, 1, repos.ClubMembers.Len())
	})
}
