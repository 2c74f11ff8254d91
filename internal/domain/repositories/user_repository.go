package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Todas as leituras ignoram usuários deletados (soft delete) e retornam
// nil, nil quando nada é encontrado.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByPhone(ctx context.Context, phone string) (*entities.User, error)
	FindProfileByUsername(ctx context.Context, username string) (*entities.UserProfile, error)
	Update(ctx context.Context, user *entities.User) error
	// SoftDelete retorna false quando não havia usuário ativo com o id
	SoftDelete(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (bool, error)
}
