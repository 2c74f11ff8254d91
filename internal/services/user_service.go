package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
	"github.com/cynric/familymanagement-backend/internal/domain/errors"
	"github.com/cynric/familymanagement-backend/internal/domain/ports"
	"github.com/cynric/familymanagement-backend/internal/domain/repositories"
	"github.com/cynric/familymanagement-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	hasher   ports.PasswordHasher
	cache    ports.UserCache
	metrics  ports.MetricsRecorder
	validate *validator.Validate
	logger   ports.Logger
}

// NewUserService cria um novo UserService. cache e metrics podem ser nil.
func NewUserService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	cache ports.UserCache,
	metrics ports.MetricsRecorder,
	logger ports.Logger,
) *UserService {
	if cache == nil {
		cache = ports.NoopUserCache{}
	}
	if metrics == nil {
		metrics = ports.NoopMetrics{}
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterValidations(validate); err != nil {
		panic(err)
	}

	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		hasher:   hasher,
		cache:    cache,
		metrics:  metrics,
		validate: validate,
		logger:   logger.With("component", "user_service"),
	}
}

// RegisterUserInput representa os dados de cadastro
type RegisterUserInput struct {
	Username   string `validate:"required,min=3,max=50"`
	Password   string `validate:"required,min=8,maxbytes=72"`
	Email      string `validate:"omitempty,email,max=255"`
	Phone      string `validate:"omitempty,max=20"`
	Gender     string `validate:"omitempty,max=10"`
	FamilyRole string `validate:"omitempty,max=50"`
	CreatedBy  *uuid.UUID
}

// UpdateProfileInput contém apenas os campos alterados (nil = manter).
// String vazia limpa o campo.
type UpdateProfileInput struct {
	Email      *string `validate:"omitempty,email,max=255"`
	Phone      *string `validate:"omitempty,max=20"`
	Gender     *string `validate:"omitempty,max=10"`
	FamilyRole *string `validate:"omitempty,max=50"`
	AvatarURL  *string `validate:"omitempty,url,max=500"`
}

// FindByUsername busca um usuário ativo; retorna nil, nil quando não existe
func (s *UserService) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	cached, err := s.cache.Get(ctx, username)
	switch {
	case err != nil:
		s.metrics.ObserveCacheLookup("error")
		s.logger.Warn("user cache lookup failed", "username", username, "error", err)
	case cached != nil:
		s.metrics.ObserveCacheLookup("hit")
		return cached, nil
	default:
		s.metrics.ObserveCacheLookup("miss")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if err := s.cache.Set(ctx, user); err != nil {
		s.logger.Warn("failed to cache user", "username", username, "error", err)
	}

	return user, nil
}

// GetProfile busca a visão do usuário com os nomes de quem criou/alterou
func (s *UserService) GetProfile(ctx context.Context, username string) (*entities.UserProfile, error) {
	profile, err := s.userRepo.FindProfileByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.ErrUserNotFound
	}
	return profile, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// Register cria um novo usuário MEMBER/ACTIVE com a senha em hash bcrypt.
// A verificação de unicidade e o insert rodam na mesma transação.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (*entities.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
	}

	email, err := valueobjects.NewOptionalEmail(input.Email)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(input.Username, hash)
	user.Email = email
	user.Phone = input.Phone
	user.Gender = input.Gender
	user.FamilyRole = input.FamilyRole
	user.CreatedBy = input.CreatedBy
	user.UpdatedBy = input.CreatedBy

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.userRepo.FindByUsername(txCtx, input.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrUsernameAlreadyExists
		}

		if err := s.ensurePhoneAvailable(txCtx, input.Phone, uuid.Nil); err != nil {
			return err
		}

		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	// um miss anterior pode ter deixado o username em cache
	s.invalidate(ctx, user.Username)

	s.metrics.ObserveRegistration()
	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

// UpdateProfile altera os dados de perfil de um usuário ativo
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput, actorID *uuid.UUID) (*entities.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
	}

	var updated *entities.User
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrUserNotFound
		}

		if input.Email != nil {
			email, err := valueobjects.NewOptionalEmail(*input.Email)
			if err != nil {
				return err
			}
			user.Email = email
		}
		if input.Phone != nil && *input.Phone != user.Phone {
			if err := s.ensurePhoneAvailable(txCtx, *input.Phone, user.ID); err != nil {
				return err
			}
			user.Phone = *input.Phone
		}
		if input.Gender != nil {
			user.Gender = *input.Gender
		}
		if input.FamilyRole != nil {
			user.FamilyRole = *input.FamilyRole
		}
		if input.AvatarURL != nil {
			user.AvatarURL = *input.AvatarURL
		}
		user.UpdatedBy = actorID

		if err := s.userRepo.Update(txCtx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, updated.Username)
	s.logger.Info("user profile updated", "user_id", updated.ID)

	return updated, nil
}

// DeleteUser faz o soft delete de um usuário ativo
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	deleted, err := s.userRepo.SoftDelete(ctx, id, actorID)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrUserNotFound
	}

	s.invalidate(ctx, user.Username)
	s.logger.Info("user deleted", "user_id", id)

	return nil
}

// ensurePhoneAvailable falha quando outro usuário ativo já usa o telefone
func (s *UserService) ensurePhoneAvailable(ctx context.Context, phone string, self uuid.UUID) error {
	if phone == "" {
		return nil
	}

	owner, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if owner != nil && owner.ID != self {
		return errors.ErrPhoneAlreadyExists
	}
	return nil
}

func (s *UserService) invalidate(ctx context.Context, username string) {
	if err := s.cache.Invalidate(ctx, username); err != nil {
		s.logger.Warn("failed to invalidate cached user", "username", username, "error", err)
	}
}
