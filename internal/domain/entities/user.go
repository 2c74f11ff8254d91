package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cynric/familymanagement-backend/internal/domain/valueobjects"
)

// User representa a conta de um membro da família
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Email        valueobjects.Email
	Phone        string
	Gender       string
	FamilyRole   string // papel na família, texto livre ("Mãe", "Avô"...)
	AvatarURL    string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatedBy    *uuid.UUID
	UpdatedBy    *uuid.UUID
	DeletedAt    *time.Time // Soft delete
}

// NewUser cria um usuário com papel MEMBER e estado ACTIVE
func NewUser(username, passwordHash string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         RoleMember,
		Status:       StatusActive,
	}
}

// DisplayName retorna o papel na família quando preenchido, senão o username
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.FamilyRole) != "" {
		return u.FamilyRole
	}
	return u.Username
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsMember() bool {
	return u.Role == RoleMember
}

func (u *User) IsGuest() bool {
	return u.Role == RoleGuest
}

// SoftDelete marca o usuário como deletado. Um usuário já deletado mantém
// a data original.
func (u *User) SoftDelete(at time.Time) {
	if u.DeletedAt != nil {
		return
	}
	u.DeletedAt = &at
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return errors.New("username is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password is required")
	}

	if u.Role.IsZero() {
		return errors.New("role is required")
	}

	if u.Status.IsZero() {
		return errors.New("status is required")
	}

	return nil
}
