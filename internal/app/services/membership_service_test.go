package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/repositories"
	"github.com/clubhub-app/clubhub/internal/kvstore"
	"github.com/clubhub-app/clubhub/internal/pkg/apperrors"
)

func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	store := kvstore.New(kvstore.NewMemoryBackend(), 5<<20, zerolog.Nop())
	return repositories.NewRepositories(context.Background(), store)
}

func seedMembershipFixture(t *testing.T, repos *repositories.Repositories) {
	t.Helper()
	ctx := context.Background()

	res := repos.Users.Replace(ctx, []models.User{
		{ID: "u-leader", Name: "Lena Leader", Email: "lena@campus.edu", Role: models.RoleLeader},
		{ID: "u-student", Name: "Sam Student", Email: "sam@campus.edu", Role: models.RoleStudent},
		{ID: "u-other", Name: "Olga Other", Email: "olga@campus.edu", Role: models.RoleStudent},
	})
	require.NoError(t, res.Err)

	res = repos.Clubs.Replace(ctx, []models.Club{
		{ID: "c1", Name: "Chess", Category: models.CategoryAcademic, LeaderID: "u-leader", LeaderName: "Lena Leader"},
	})
	require.NoError(t, res.Err)
}

func TestRequestJoin(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedMembershipFixture(t, repos)
	svc := NewMembershipService(repos, zerolog.Nop())

	student := Actor{ID: "u-student", Role: models.RoleStudent}

	t.Run("files a pending membership", func(t *testing.T) {
		member, res, err := svc.RequestJoin(ctx, student, "c1")
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, "c1", member.ClubID)
		assert.Equal(t, "u-student", member.UserID)
		assert.Equal(t, models.MemberPending, member.Status)
		assert.Equal(t, "Sam Student", member.UserName)
	})

	t.Run("rejects a second request for the same pair", func(t *testing.T) {
		_, _, err := svc.RequestJoin(ctx, student, "c1")
		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
		assert.Equal(t, 1, repos.ClubMembers.Len())
	})

	t.Run("rejects a request while already active", func(t *testing.T) {
		_, err := repos.ClubMembers.Update(ctx, func(members []models.ClubMember) ([]models.ClubMember, error) {
			members[0].Status = models.MemberActive
			return members, nil
		})
		require.NoError(t, err)

		_, _, err = svc.RequestJoin(ctx, student, "c1")
		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	})

	t.Run("unknown club", func(t *testing.T) {
		_, _, err := svc.RequestJoin(ctx, student, "missing")
		assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
	})
}

func TestApproveRequest(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedMembershipFixture(t, repos)
	svc := NewMembershipService(repos, zerolog.Nop())

	leader := Actor{ID: "u-leader", Role: models.RoleLeader}
	student := Actor{ID: "u-student", Role: models.RoleStudent}

	pending, _, err := svc.RequestJoin(ctx, student, "c1")
	require.NoError(t, err)

	t.Run("non-leader cannot approve", func(t *testing.T) {
		_, _, err := svc.ApproveRequest(ctx, Actor{ID: "u-other", Role: models.RoleStudent}, "c1", pending.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("leader approves in place", func(t *testing.T) {
		approved, res, err := svc.ApproveRequest(ctx, leader, "c1", pending.ID)
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, pending.ID, approved.ID)
		assert.Equal(t, models.MemberActive, approved.Status)
		assert.Equal(t, 1, repos.ClubMembers.Len())
	})

	t.Run("approving an active membership fails", func(t *testing.T) {
		_, _, err := svc.ApproveRequest(ctx, leader, "c1", pending.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotPending)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, _, err := svc.ApproveRequest(ctx, leader, "c1", "missing")
		assert.ErrorIs(t, err, apperrors.ErrMembershipNotFound)
	})
}

func TestDeclineRequest(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedMembershipFixture(t, repos)
	svc := NewMembershipService(repos, zerolog.Nop())

	leader := Actor{ID: "u-leader", Role: models.RoleLeader}
	student := Actor{ID: "u-student", Role: models.RoleStudent}

	pending, _, err := svc.RequestJoin(ctx, student, "c1")
	require.NoError(t, err)

	t.Run("removes the pending row", func(t *testing.T) {
		res, err := svc.DeclineRequest(ctx, leader, "c1", pending.ID)
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, 0, repos.ClubMembers.Len())
	})

	t.Run("user may request again after decline", func(t *testing.T) {
		_, _, err := svc.RequestJoin(ctx, student, "c1")
		assert.NoError(t, err)
	})

	t.Run("declining an active membership fails", func(t *testing.T) {
		members := repos.ClubMembers.All()
		require.Len(t, members, 1)
		_, err := repos.ClubMembers.Update(ctx, func(members []models.ClubMember) ([]models.ClubMember, error) {
			members[0].Status = models.MemberActive
			return members, nil
		})
		require.NoError(t, err)

		_, err = svc.DeclineRequest(ctx, leader, "c1", members[0].ID)
		assert.ErrorIs(t, err, apperrors.ErrNotPending)
	})
}

func TestRemoveMemberAndLeave(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedMembershipFixture(t, repos)
	svc := NewMembershipService(repos, zerolog.Nop())

	admin := Actor{ID: "u-admin", Role: models.RoleAdmin}
	student := Actor{ID: "u-student", Role: models.RoleStudent}
	other := Actor{ID: "u-other", Role: models.RoleStudent}

	m1, _, err := svc.RequestJoin(ctx, student, "c1")
	require.NoError(t, err)
	_, _, err = svc.RequestJoin(ctx, other, "c1")
	require.NoError(t, err)

	t.Run("admin removes regardless of status", func(t *testing.T) {
		res, err := svc.RemoveMember(ctx, admin, "c1", m1.ID)
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, 1, repos.ClubMembers.Len())
	})

	t.Run("member leaves their own club", func(t *testing.T) {
		res, err := svc.LeaveClub(ctx, other, "c1")
		require.NoError(t, err)
		assert.True(t, res.Persisted)
		assert.Equal(t, 0, repos.ClubMembers.Len())
	})

	t.Run("leaving without a membership fails", func(t *testing.T) {
		_, err := svc.LeaveClub(ctx, other, "c1")
		assert.ErrorIs(t, err, apperrors.ErrMembershipNotFound)
	})
}

func TestListMembers(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	seedMembershipFixture(t, repos)
	svc := NewMembershipService(repos, zerolog.Nop())

	_, _, err := svc.RequestJoin(ctx, Actor{ID: "u-student", Role: models.RoleStudent}, "c1")
	require.NoError(t, err)
	approvedReq, _, err := svc.RequestJoin(ctx, Actor{ID: "u-other", Role: models.RoleStudent}, "c1")
	require.NoError(t, err)
	_, _, err = svc.ApproveRequest(ctx, Actor{ID: "u-leader", Role: models.RoleLeader}, "c1", approvedReq.ID)
	require.NoError(t, err)

	list, err := svc.ListMembers(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, list.Members, 2)
	assert.Equal(t, 1, list.ActiveCount)
	assert.Equal(t, 1, list.PendingCount)

	_, err = svc.ListMembers(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
}
