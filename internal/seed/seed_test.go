package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/repositories"
	"github.com/clubhub-app/clubhub/internal/kvstore"
)

func newRepos(backend *kvstore.MemoryBackend) *repositories.Repositories {
	store := kvstore.New(backend, 0, zerolog.Nop())
	return repositories.NewRepositories(context.Background(), store)
}

func TestCreateDefaultData_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	backend := kvstore.NewMemoryBackend()
	repos := newRepos(backend)

	require.NoError(t, CreateDefaultData(ctx, repos, zerolog.Nop()))

	assert.Greater(t, repos.Users.Len(), 0)
	assert.Greater(t, repos.Clubs.Len(), 0)
	assert.Greater(t, repos.ClubMembers.Len(), 0)
	assert.Greater(t, repos.Announcements.Len(), 0)
	assert.Greater(t, repos.Meetings.Len(), 0)

	// Flag written so later starts skip the seed
	assert.True(t, kvstore.Get(ctx, repos.Store, repositories.KeySeedFlag, false))
}

func TestCreateDefaultData_AdminCredentialsUsable(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(kvstore.NewMemoryBackend())
	require.NoError(t, CreateDefaultData(ctx, repos, zerolog.Nop()))

	admin, ok := repos.UserByEmail(AdminEmail)
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(AdminPassword)))
}

func TestCreateDefaultData_SeedsOnlyOnce(t *testing.T) {
	ctx := context.Background()
	backend := kvstore.NewMemoryBackend()

	repos := newRepos(backend)
	require.NoError(t, CreateDefaultData(ctx, repos, zerolog.Nop()))
	firstUsers := repos.Users.All()

	// Simulate a restart over the same durable state
	restarted := newRepos(backend)
	require.NoError(t, CreateDefaultData(ctx, restarted, zerolog.Nop()))

	assert.Equal(t, len(firstUsers), restarted.Users.Len())
	assert.Equal(t, firstUsers[0].ID, restarted.Users.All()[0].ID)
}

func TestCreateDefaultData_NeverReseedsEmptiedCollections(t *testing.T) {
	ctx := context.Background()
	backend := kvstore.NewMemoryBackend()

	repos := newRepos(backend)
	require.NoError(t, CreateDefaultData(ctx, repos, zerolog.Nop()))

	// Empty every seeded collection, flag stays set
	res := repos.Users.Replace(ctx, []models.User{})
	require.True(t, res.Persisted)

	restarted := newRepos(backend)
	require.NoError(t, CreateDefaultData(ctx, restarted, zerolog.Nop()))

	assert.Equal(t, 0, restarted.Users.Len())
}

func TestCreateDefaultData_SkipsNonEmptyUsersWithoutFlag(t *testing.T) {
	ctx := context.Background()
	backend := kvstore.NewMemoryBackend()

	repos := newRepos(backend)
	res := repos.Users.Replace(ctx, []models.User{{ID: "existing"}})
	require.True(t, res.Persisted)

	require.NoError(t, CreateDefaultData(ctx, repos, zerolog.Nop()))
	assert.Equal(t, 1, repos.Users.Len())
}
