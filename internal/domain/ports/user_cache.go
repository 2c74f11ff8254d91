package ports

import (
	"context"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
)

// UserCache guarda usuários ativos (não deletados) indexados por username.
// Get retorna nil, nil em caso de miss. Usuários vindos do cache não trazem PasswordHash.
type UserCache interface {
	Get(ctx context.Context, username string) (*entities.User, error)
	Set(ctx context.Context, user *entities.User) error
	Invalidate(ctx context.Context, username string) error
}

// NoopUserCache é usado quando nenhum cache está configurado
type NoopUserCache struct{}

func (NoopUserCache) Get(context.Context, string) (*entities.User, error) { return nil, nil }
func (NoopUserCache) Set(context.Context, *entities.User) error           { return nil }
func (NoopUserCache) Invalidate(context.Context, string) error            { return nil }
