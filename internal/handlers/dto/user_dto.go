package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
	"github.com/cynric/familymanagement-backend/internal/services"
)

// DateTimeLayout é o formato dos timestamps no JSON (yyyy-MM-dd HH:mm:ss)
const DateTimeLayout = "2006-01-02 15:04:05"

// LocalDateTime serializa um instante sem fuso, em UTC
type LocalDateTime time.Time

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(DateTimeLayout) + `"`), nil
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := time.Parse(`"`+DateTimeLayout+`"`, string(data))
	if err != nil {
		return err
	}
	*t = LocalDateTime(parsed)
	return nil
}

// RegisterUserRequest representa a requisição de cadastro
type RegisterUserRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50" example:"xiaoming"`
	Password   string `json:"password" binding:"required,min=8,maxbytes=72" example:"s3cret-pass"`
	Email      string `json:"email" binding:"omitempty,email,max=255" example:"xiaoming@example.com"`
	Phone      string `json:"phone" binding:"omitempty,max=20" example:"13800000000"`
	Gender     string `json:"gender" binding:"omitempty,max=10"`
	FamilyRole string `json:"familyRole" binding:"omitempty,max=50" example:"儿子"`
}

// ToInput converte a requisição para o input do serviço
func (r RegisterUserRequest) ToInput(createdBy *uuid.UUID) services.RegisterUserInput {
	return services.RegisterUserInput{
		Username:   r.Username,
		Password:   r.Password,
		Email:      r.Email,
		Phone:      r.Phone,
		Gender:     r.Gender,
		FamilyRole: r.FamilyRole,
		CreatedBy:  createdBy,
	}
}

// UpdateProfileRequest representa uma alteração parcial de perfil.
// Campos ausentes não mudam; string vazia limpa o campo.
type UpdateProfileRequest struct {
	Email      *string `json:"email" binding:"omitempty,email,max=255"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	Gender     *string `json:"gender" binding:"omitempty,max=10"`
	FamilyRole *string `json:"familyRole" binding:"omitempty,max=50"`
	AvatarURL  *string `json:"avatarUrl" binding:"omitempty,url,max=500"`
}

// ToInput converte a requisição para o input do serviço
func (r UpdateProfileRequest) ToInput() services.UpdateProfileInput {
	return services.UpdateProfileInput{
		Email:      r.Email,
		Phone:      r.Phone,
		Gender:     r.Gender,
		FamilyRole: r.FamilyRole,
		AvatarURL:  r.AvatarURL,
	}
}

// UserResponse representa a resposta de um usuário. Senha e deletedAt nunca saem.
type UserResponse struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	DisplayName string        `json:"displayName"`
	Email       string        `json:"email,omitempty"`
	Phone       string        `json:"phone,omitempty"`
	Gender      string        `json:"gender,omitempty"`
	FamilyRole  string        `json:"familyRole,omitempty"`
	AvatarURL   string        `json:"avatarUrl,omitempty"`
	Role        string        `json:"role" example:"MEMBER"`
	RoleName    string        `json:"roleName" example:"家庭成员"`
	Status      string        `json:"status" example:"ACTIVE"`
	StatusName  string        `json:"statusName" example:"启用"`
	CreatedAt   LocalDateTime `json:"createdAt" swaggertype:"string" example:"2025-01-01 08:00:00"`
	UpdatedAt   LocalDateTime `json:"updatedAt" swaggertype:"string" example:"2025-01-01 08:00:00"`
	CreatedBy   *string       `json:"createdBy,omitempty"`
	UpdatedBy   *string       `json:"updatedBy,omitempty"`
}

// ProfileResponse é o UserResponse com os nomes de quem criou e alterou
type ProfileResponse struct {
	UserResponse
	CreatedByUsername string `json:"createdByUsername,omitempty"`
	UpdatedByUsername string `json:"updatedByUsername,omitempty"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName(),
		Email:       user.Email.String(),
		Phone:       user.Phone,
		Gender:      user.Gender,
		FamilyRole:  user.FamilyRole,
		AvatarURL:   user.AvatarURL,
		Role:        user.Role.String(),
		RoleName:    user.Role.Name(),
		Status:      user.Status.String(),
		StatusName:  user.Status.Name(),
		CreatedAt:   LocalDateTime(user.CreatedAt),
		UpdatedAt:   LocalDateTime(user.UpdatedAt),
		CreatedBy:   uuidString(user.CreatedBy),
		UpdatedBy:   uuidString(user.UpdatedBy),
	}
}

// ToProfileResponse converte a visão de perfil para ProfileResponse
func ToProfileResponse(profile *entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserResponse:      ToUserResponse(&profile.User),
		CreatedByUsername: profile.CreatedByUsername,
		UpdatedByUsername: profile.UpdatedByUsername,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
