package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
	"github.com/cynric/familymanagement-backend/internal/domain/valueobjects"
)

func setupCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *UserCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := NewClientFromURL("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewUserCache(client, ttl).(*UserCache)
}

func TestUserCache_RoundTrip(t *testing.T) {
	mr, cache := setupCache(t, time.Minute)
	ctx := context.Background()

	email, err := valueobjects.NewEmail("dad@example.com")
	require.NoError(t, err)
	creator := uuid.New()

	user := entities.NewUser("dad", "$2a$10$hash")
	user.ID = uuid.New()
	user.Email = email
	user.FamilyRole = "Dad"
	user.Role = entities.RoleAdmin
	user.CreatedBy = &creator
	user.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, user))
	assert.True(t, mr.Exists("user:username:dad"))
	assert.Equal(t, time.Minute, mr.TTL("user:username:dad"))

	raw, err := mr.Get("user:username:dad")
	require.NoError(t, err)
	assert.NotContains(t, raw, "$2a$10$hash")
	assert.NotContains(t, raw, "passwordHash")

	cached, err := cache.Get(ctx, "dad")
	require.NoError(t, err)
	require.NotNil(t, cached)

	assert.Equal(t, user.ID, cached.ID)
	assert.Equal(t, "dad@example.com", cached.Email.String())
	assert.Empty(t, cached.PasswordHash)
	assert.Equal(t, entities.RoleAdmin, cached.Role)
	assert.Equal(t, entities.StatusActive, cached.Status)
	assert.Equal(t, "Dad", cached.DisplayName())
	assert.True(t, user.CreatedAt.Equal(cached.CreatedAt))
	require.NotNil(t, cached.CreatedBy)
	assert.Equal(t, creator, *cached.CreatedBy)
}

func TestUserCache_Miss(t *testing.T) {
	_, cache := setupCache(t, time.Minute)

	user, err := cache.Get(context.Background(), "ninguem")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserCache_Invalidate(t *testing.T) {
	mr, cache := setupCache(t, time.Minute)
	ctx := context.Background()

	user := entities.NewUser("mom", "$2a$10$hash")
	require.NoError(t, cache.Set(ctx, user))
	require.NoError(t, cache.Invalidate(ctx, "mom"))

	assert.False(t, mr.Exists("user:username:mom"))
}

func TestUserCache_IgnoraDeletados(t *testing.T) {
	mr, cache := setupCache(t, time.Minute)

	user := entities.NewUser("gone", "$2a$10$hash")
	user.SoftDelete(time.Now())

	require.NoError(t, cache.Set(context.Background(), user))
	assert.False(t, mr.Exists("user:username:gone"))
}

func TestUserCache_Expira(t *testing.T) {
	mr, cache := setupCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, entities.NewUser("temp", "$2a$10$hash")))
	mr.FastForward(2 * time.Second)

	user, err := cache.Get(ctx, "temp")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestNewClientFromURL_Invalida(t *testing.T) {
	_, err := NewClientFromURL("not-a-url")
	assert.Error(t, err)

	_, err = NewClientFromURL("redis://127.0.0.1:1")
	assert.Error(t, err)
}
