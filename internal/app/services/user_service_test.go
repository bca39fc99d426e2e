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

func strPtr(s string) *string { return &s }

func seedUserFixture(t *testing.T, repos *repositories.Repositories) {
	t.Helper()
	ctx := context.Background()

	res := repos.Users.Replace(ctx, []models.User{
		{ID: "u-admin", Name: "Ada Admin", Email: "ada@campus.edu", Role: models.RoleAdmin},
		{ID: "u-leader", Name: "Lena Leader", Email: "lena@campus.edu", Role: models.RoleLeader},
		{ID: "u-student", Name: "Sam Student", Email: "sam@campus.edu", Role: models.RoleStudent},
	})
	require.NoError(t, res.Err)

	res = repos.Clubs.Replace(ctx, []models.Club{
		{ID: "c1", Name: "Chess", Category: models.CategoryAcademic, LeaderID: "u-leader", LeaderName: "Lena Leader"},
	})
	require.NoError(t, res.Err)

	res = repos.ClubMembers.Replace(ctx, []models.ClubMember{
		{ID: "m1", ClubID: "c1", UserID: "u-leader", UserName: "Lena Leader", UserEmail: "lena@campus.edu", Status: models.MemberActive},
		{ID: "m2", ClubID: "c1", UserID: "u-student", UserName: "Sam Student", UserEmail: "sam@campus.edu", Status: models.MemberActive},
	})
	require.NoError(t, res.Err)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedUserFixture(t, repos)
	svc := NewUserService(repos, zerolog.Nop())

	t.Run("renaming a leader re-syncs denormalized copies", func(t *testing.T) {
		leader := Actor{ID: "u-leader", Role: models.RoleLeader}
		updated, res, err := svc.UpdateProfile(ctx, leader, "u-leader", &dto.UpdateProfileRequest{
			Name:   strPtr("Lena Q. Leader"),
			Avatar: strPtr("https://cdn.example/lena.png"),
		})
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, "Lena Q. Leader", updated.Name)

		club, ok := repos.ClubByID("c1")
		require.True(t, ok)
		assert.Equal(t, "Lena Q. Leader", club.LeaderName)
		assert.Equal(t, "https://cdn.example/lena.png", club.LeaderAvatar)

		for _, m := range repos.ClubMembers.All() {
			if m.UserID == "u-leader" {
				assert.Equal(t, "Lena Q. Leader", m.UserName)
			}
		}
	})

	t.Run("renaming a member updates only their rows", func(t *testing.T) {
		student := Actor{ID: "u-student", Role: models.RoleStudent}
		_, _, err := svc.UpdateProfile(ctx, student, "u-student", &dto.UpdateProfileRequest{
			Name: strPtr("Samuel Student"),
		})
		require.NoError(t, err)

		for _, m := range repos.ClubMembers.All() {
			switch m.UserID {
			case "u-student":
				assert.Equal(t, "Samuel Student", m.UserName)
			case "u-leader":
				assert.Equal(t, "Lena Q. Leader", m.UserName)
			}
		}
	})

	t.Run("unset fields are left alone", func(t *testing.T) {
		student := Actor{ID: "u-student", Role: models.RoleStudent}
		updated, _, err := svc.UpdateProfile(ctx, student, "u-student", &dto.UpdateProfileRequest{
			Bio: strPtr("Chess enthusiast"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Samuel Student", updated.Name)
		assert.Equal(t, "Chess enthusiast", updated.Bio)
	})

	t.Run("editing another user's profile is forbidden", func(t *testing.T) {
		student := Actor{ID: "u-student", Role: models.RoleStudent}
		_, _, err := svc.UpdateProfile(ctx, student, "u-leader", &dto.UpdateProfileRequest{Name: strPtr("x")})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("admin may edit anyone", func(t *testing.T) {
		admin := Actor{ID: "u-admin", Role: models.RoleAdmin}
		_, _, err := svc.UpdateProfile(ctx, admin, "u-student", &dto.UpdateProfileRequest{Bio: strPtr("edited")})
		assert.NoError(t, err)
	})
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedUserFixture(t, repos)
	svc := NewUserService(repos, zerolog.Nop())

	admin := Actor{ID: "u-admin", Role: models.RoleAdmin}

	t.Run("admin promotes a student", func(t *testing.T) {
		updated, res, err := svc.UpdateRole(ctx, admin, "u-student", models.RoleLeader)
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, models.RoleLeader, updated.Role)
	})

	t.Run("non-admin cannot change roles", func(t *testing.T) {
		_, _, err := svc.UpdateRole(ctx, Actor{ID: "u-leader", Role: models.RoleLeader}, "u-student", models.RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("admin role cannot be granted", func(t *testing.T) {
		_, _, err := svc.UpdateRole(ctx, admin, "u-student", models.RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		user, ok := repos.UserByID("u-student")
		require.True(t, ok)
		assert.NotEqual(t, models.RoleAdmin, user.Role)
	})

	t.Run("unknown role value", func(t *testing.T) {
		_, _, err := svc.UpdateRole(ctx, admin, "u-student", models.RoleType("WIZARD"))
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedUserFixture(t, repos)
	svc := NewUserService(repos, zerolog.Nop())

	admin := Actor{ID: "u-admin", Role: models.RoleAdmin}

	t.Run("admin account is undeletable", func(t *testing.T) {
		_, err := svc.DeleteUser(ctx, admin, "u-admin")
		assert.ErrorIs(t, err, apperrors.ErrAdminUndeletable)
	})

	t.Run("non-admin cannot delete", func(t *testing.T) {
		_, err := svc.DeleteUser(ctx, Actor{ID: "u-student", Role: models.RoleStudent}, "u-leader")
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("deleting a user leaves their memberships behind", func(t *testing.T) {
		res, err := svc.DeleteUser(ctx, admin, "u-student")
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, 2, repos.Users.Len())
		assert.Equal(t, 2, repos.ClubMembers.Len())
	})
}
