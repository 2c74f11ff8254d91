package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cynric/familymanagement-backend/internal/domain/errors"
	"github.com/cynric/familymanagement-backend/internal/domain/ports"
	"github.com/cynric/familymanagement-backend/internal/handlers/dto"
	"github.com/cynric/familymanagement-backend/internal/services"
)

// ActorIDHeader identifica quem executa a operação, para as colunas de auditoria
const ActorIDHeader = "X-Actor-ID"

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.With("component", "user_handler"),
	}
}

// Register godoc
// @Summary      Cadastra um usuário
// @Description  Cria um MEMBER ativo. A senha é guardada em hash bcrypt.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                   false  "UUID de quem cadastra"
// @Param        request     body    dto.RegisterUserRequest  true   "Dados do usuário"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	var req dto.RegisterUserRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.ToInput(actorID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetByUsername godoc
// @Summary      Busca o perfil de um usuário pelo username
// @Tags         users
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/by-username/{username} [get]
func (h *UserHandler) GetByUsername(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// GetUser godoc
// @Summary      Busca um usuário por ID
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "UUID do usuário"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile godoc
// @Summary      Altera o perfil de um usuário
// @Description  Apenas os campos enviados mudam; string vazia limpa o campo.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id          path    string                    true   "UUID do usuário"
// @Param        X-Actor-ID  header  string                    false  "UUID de quem altera"
// @Param        request     body    dto.UpdateProfileRequest  true   "Campos alterados"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), id, req.ToInput(), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser godoc
// @Summary      Remove um usuário (soft delete)
// @Tags         users
// @Param        id          path    string  true   "UUID do usuário"
// @Param        X-Actor-ID  header  string  false  "UUID de quem remove"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id, actorID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bind decodifica o corpo JSON; em caso de erro já escreve o problema
func (h *UserHandler) bind(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	if fieldErrors := dto.ValidationErrorsI18n(c, err); fieldErrors != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, fieldErrors))
		return false
	}

	dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, "error.invalid_body"))
	return false
}

func (h *UserHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidUserID.Error()))
		return uuid.Nil, false
	}
	return id, true
}

// actorID lê o header opcional X-Actor-ID
func (h *UserHandler) actorID(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader(ActorIDHeader)
	if raw == "" {
		return nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, "error.invalid_actor_id"))
		return nil, false
	}
	return &id, true
}

// handleError traduz erros de domínio para respostas RFC 7807
func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound):
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, errors.ErrUserNotFound.Error()))

	case errs.Is(err, errors.ErrUsernameAlreadyExists):
		dto.WriteProblem(c, dto.ConflictErrorResponseI18n(c, errors.ErrUsernameAlreadyExists.Error()))

	case errs.Is(err, errors.ErrPhoneAlreadyExists):
		dto.WriteProblem(c, dto.ConflictErrorResponseI18n(c, errors.ErrPhoneAlreadyExists.Error()))

	case errs.Is(err, errors.ErrInvalidEmail):
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidEmail.Error()))

	case errs.Is(err, errors.ErrInvalidInput):
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsI18n(c, err)))

	default:
		h.logger.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
	}
}
