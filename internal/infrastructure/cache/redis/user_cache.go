// Package redis implementa o cache de usuários em Redis
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
	"github.com/cynric/familymanagement-backend/internal/domain/ports"
	"github.com/cynric/familymanagement-backend/internal/domain/valueobjects"
)

const keyPrefix = "user:username:"

// UserCache implementa ports.UserCache
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClientFromURL cria o cliente a partir de REDIS_URL e verifica a conexão
func NewClientFromURL(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// NewUserCache cria o cache a partir de um cliente existente
func NewUserCache(client *redis.Client, ttl time.Duration) ports.UserCache {
	return &UserCache{client: client, ttl: ttl}
}

// cachedUser é o formato serializado; enums são guardados pelo código.
// O hash da senha nunca vai para o Redis.
type cachedUser struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Gender     string     `json:"gender,omitempty"`
	FamilyRole string     `json:"familyRole,omitempty"`
	AvatarURL  string     `json:"avatarUrl,omitempty"`
	Role       int        `json:"role"`
	Status     int        `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	CreatedBy  *uuid.UUID `json:"createdBy,omitempty"`
	UpdatedBy  *uuid.UUID `json:"updatedBy,omitempty"`
}

func (c *UserCache) Get(ctx context.Context, username string) (*entities.User, error) {
	data, err := c.client.Get(ctx, keyPrefix+username).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached user: %w", err)
	}

	var cached cachedUser
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached user: %w", err)
	}

	return &entities.User{
		ID:         cached.ID,
		Username:   cached.Username,
		Email:      valueobjects.EmailFromStorage(cached.Email),
		Phone:      cached.Phone,
		Gender:     cached.Gender,
		FamilyRole: cached.FamilyRole,
		AvatarURL:  cached.AvatarURL,
		Role:       entities.UserRoleFromCode(cached.Role),
		Status:     entities.UserStatusFromCode(cached.Status),
		CreatedAt:  cached.CreatedAt,
		UpdatedAt:  cached.UpdatedAt,
		CreatedBy:  cached.CreatedBy,
		UpdatedBy:  cached.UpdatedBy,
	}, nil
}

// Set ignora usuários deletados
func (c *UserCache) Set(ctx context.Context, user *entities.User) error {
	if user == nil || user.IsDeleted() {
		return nil
	}

	data, err := json.Marshal(cachedUser{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email.String(),
		Phone:      user.Phone,
		Gender:     user.Gender,
		FamilyRole: user.FamilyRole,
		AvatarURL:  user.AvatarURL,
		Role:       user.Role.Code(),
		Status:     user.Status.Code(),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		CreatedBy:  user.CreatedBy,
		UpdatedBy:  user.UpdatedBy,
	})
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return c.client.Set(ctx, keyPrefix+user.Username, data, c.ttl).Err()
}

func (c *UserCache) Invalidate(ctx context.Context, username string) error {
	return c.client.Del(ctx, keyPrefix+username).Err()
}
