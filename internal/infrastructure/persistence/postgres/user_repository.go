package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
	domainerrors "github.com/cynric/familymanagement-backend/internal/domain/errors"
	"github.com/cynric/familymanagement-backend/internal/domain/repositories"
	"github.com/cynric/familymanagement-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// notDeleted é o filtro de soft delete aplicado a toda leitura
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

func notDeletedAs(alias string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".deleted_at IS NULL")
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	// id e timestamps preenchidos no insert
	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*entities.User, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

func (r *UserRepository) FindProfileByUsername(ctx context.Context, username string) (*entities.UserProfile, error) {
	var row userProfileRow

	result := r.getDB(ctx).
		Table("users AS u").
		Select("u.*, creator.username AS created_by_username, updater.username AS updated_by_username").
		Joins("LEFT JOIN users AS creator ON creator.id = u.created_by").
		Joins("LEFT JOIN users AS updater ON updater.id = u.updated_by").
		Scopes(notDeletedAs("u")).
		Where("u.username = ?", username).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	user := r.toEntity(&row.UserModel)

	return &entities.UserProfile{
		User:              *user,
		CreatedByUsername: deref(row.CreatedByUsername),
		UpdatedByUsername: deref(row.UpdatedByUsername),
	}, nil
}

// Update grava os campos mutáveis e renova updated_at.
// id, created_at, created_by e deleted_at nunca são alterados aqui.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	now := r.db.NowFunc()

	result := db.Model(&UserModel{}).
		Where("id = ?", user.ID).
		Scopes(notDeleted).
		UpdateColumns(map[string]interface{}{
			"username":    model.Username,
			"password":    model.Password,
			"email":       model.Email,
			"role":        model.Role,
			"status":      model.Status,
			"phone":       model.Phone,
			"gender":      model.Gender,
			"family_role": model.FamilyRole,
			"avatar_url":  model.AvatarURL,
			"updated_by":  model.UpdatedBy,
			"updated_at":  now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	user.UpdatedAt = now
	return nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (bool, error) {
	db := r.getDB(ctx)
	now := r.db.NowFunc()

	columns := map[string]interface{}{
		"deleted_at": now,
		"updated_at": now,
	}
	if actorID != nil {
		columns["updated_by"] = *actorID
	}

	// Soft delete: atualizar deleted_at ao invés de deletar
	result := db.Model(&UserModel{}).
		Where("id = ?", id).
		Scopes(notDeleted).
		UpdateColumns(columns)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete user: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Scopes(notDeleted).Where(query, args...).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// Conversores

func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:         user.ID,
		Username:   user.Username,
		Password:   user.PasswordHash,
		Email:      optional(user.Email.String()),
		Role:       user.Role.Code(),
		Status:     user.Status.Code(),
		Phone:      optional(user.Phone),
		Gender:     optional(user.Gender),
		FamilyRole: optional(user.FamilyRole),
		AvatarURL:  optional(user.AvatarURL),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		CreatedBy:  user.CreatedBy,
		UpdatedBy:  user.UpdatedBy,
		DeletedAt:  user.DeletedAt,
	}
}

// toEntity nunca rejeita o que já está gravado: o email é lido sem validação
func (r *UserRepository) toEntity(model *UserModel) *entities.User {
	return &entities.User{
		ID:           model.ID,
		Username:     model.Username,
		PasswordHash: model.Password,
		Email:        valueobjects.EmailFromStorage(deref(model.Email)),
		Phone:        deref(model.Phone),
		Gender:       deref(model.Gender),
		FamilyRole:   deref(model.FamilyRole),
		AvatarURL:    deref(model.AvatarURL),
		Role:         entities.UserRoleFromCode(model.Role),
		Status:       entities.UserStatusFromCode(model.Status),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		CreatedBy:    model.CreatedBy,
		UpdatedBy:    model.UpdatedBy,
		DeletedAt:    model.DeletedAt,
	}
}

// optional converte string vazia em NULL; qualquer outro valor é gravado como está
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
