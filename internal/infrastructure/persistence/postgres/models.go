package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel é o model GORM da tabela users.
// role e status guardam os códigos inteiros das tabelas de códigos; a
// conversão acontece em toModel/toEntity. Nenhum campo tem default do banco
// porque o código 0 (ADMIN/ACTIVE) é um valor válido.
type UserModel struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Username   string     `gorm:"column:username;type:varchar(50);not null;index"`
	Password   string     `gorm:"column:password;type:varchar(255);not null"`
	Email      *string    `gorm:"column:email;type:varchar(255)"`
	Role       int        `gorm:"column:role;type:smallint;not null"`
	Status     int        `gorm:"column:status;type:smallint;not null"`
	Phone      *string    `gorm:"column:phone;type:varchar(20);index"`
	Gender     *string    `gorm:"column:gender;type:varchar(10)"`
	FamilyRole *string    `gorm:"column:family_role;type:varchar(50)"`
	AvatarURL  *string    `gorm:"column:avatar_url;type:varchar(500)"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
	CreatedBy  *uuid.UUID `gorm:"column:created_by;type:uuid"`
	UpdatedBy  *uuid.UUID `gorm:"column:updated_by;type:uuid"`
	DeletedAt  *time.Time `gorm:"column:deleted_at;index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate gera o UUID quando o id não foi informado
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// userProfileRow recebe o resultado do self-join que resolve os usernames
// de created_by/updated_by
type userProfileRow struct {
	UserModel         `gorm:"embedded"`
	CreatedByUsername *string `gorm:"column:created_by_username"`
	UpdatedByUsername *string `gorm:"column:updated_by_username"`
}
