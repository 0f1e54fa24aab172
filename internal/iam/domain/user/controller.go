package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"okiteru-api/internal/iam/identity"
	"okiteru-api/internal/pkg/log/access_log"
	"okiteru-api/internal/pkg/log/audit_log"
	"okiteru-api/internal/pkg/rest_err"
)

type Controller interface {
	Routes(routes gin.IRouter, adminGuards ...gin.HandlerFunc)
	Create(c *gin.Context)
	Me(c *gin.Context)
	Read(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type controllerImpl struct {
	Service Service
}

func NewController(service Service) Controller {
	return &controllerImpl{
		Service: service,
	}
}

// Routes registra /users. adminGuards protegem as rotas de administração.
func (ctrl *controllerImpl) Routes(routes gin.IRouter, adminGuards ...gin.HandlerFunc) {
	userGroup := routes.Group("/users")
	admin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, adminGuards...), h)
	}
	{
		userGroup.GET("/me", ctrl.Me)
		userGroup.GET("", admin(ctrl.List)...)
		userGroup.POST("", admin(ctrl.Create)...)
		userGroup.GET("/:id", ctrl.Read)
		userGroup.PUT("/:id", admin(ctrl.Update)...)
		userGroup.DELETE("/:id", admin(ctrl.Delete)...)
	}
}

func (ctrl *controllerImpl) logAudit(c *gin.Context, action, function string, success bool, input, output interface{}) {
	entry := audit_log.AuditLog{
		RequestID:  access_log.RequestID(c),
		Domain:     "user",
		Action:     action,
		Function:   function,
		Success:    success,
		InputData:  audit_log.SerializeData(input),
		OutputData: audit_log.SerializeData(output),
	}
	if id, ok := identity.Get(c); ok {
		entry.UserID = &id.UserID
		entry.Identifier = id.Email
	}
	audit_log.LogAsync(c.Request.Context(), entry)
}

func restErrorFrom(err error) *rest_err.RestErr {
	switch {
	case errors.Is(err, ErrNotFound):
		return rest_err.NewNotFoundError(err.Error())
	case errors.Is(err, ErrExternalIDDuplicated), errors.Is(err, ErrEmailDuplicated):
		return rest_err.NewConflictValidationError(err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		return rest_err.NewBadRequestError(err.Error())
	default:
		return rest_err.NewInternalServerError("internal server error", nil)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		restError := rest_err.NewBadRequestValidationError("invalid user id",
			[]rest_err.Causes{rest_err.NewCause("id", "must be a valid UUID")})
		c.JSON(restError.Code, restError)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary      Cria um usuário
// @Description  Registra um usuário vinculado a um identificador do provedor de identidade.
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateUserRequestDto true "Dados do usuário"
// @Success      201  {object}  UserResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      401  {object}  rest_err.RestErr
// @Failure      409  {object}  rest_err.RestErr  "cognito_user_id ou email já cadastrados"
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/users [post]
func (ctrl *controllerImpl) Create(c *gin.Context) {
	var req CreateUserRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBindingError("invalid json body", err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "create", "Create", false, req, restError)
		return
	}

	created, err := ctrl.Service.Create(c.Request.Context(), User{
		ExternalID: req.ExternalID,
		Email:      req.Email,
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       req.Role,
	})
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "create", "Create", false, req, restError)
		return
	}

	response := toResponse(created)
	c.JSON(http.StatusCreated, response)
	ctrl.logAudit(c, "create", "Create", true, req, response)
}

// @Summary      Usuário autenticado
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponseDto
// @Failure      401  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Router       /api/users/me [get]
func (ctrl *controllerImpl) Me(c *gin.Context) {
	id, ok := identity.Get(c)
	if !ok {
		restError := rest_err.NewUnauthorizedError("not authenticated")
		c.JSON(restError.Code, restError)
		return
	}

	found, err := ctrl.Service.GetByID(c.Request.Context(), id.UserID)
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		return
	}
	c.JSON(http.StatusOK, toResponse(found))
}

// @Summary      Busca um usuário
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "UUID do usuário"
// @Success      200  {object}  UserResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/users/{id} [get]
func (ctrl *controllerImpl) Read(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := ctrl.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		return
	}
	c.JSON(http.StatusOK, toResponse(found))
}

// @Summary      Lista usuários
// @Description  Lista paginada com total de registros para os filtros aplicados.
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        skip         query  int     false  "Registros a pular (padrão 0)"
// @Param        limit        query  int     false  "Tamanho da página, 1 a 1000 (padrão 100)"
// @Param        role         query  string  false  "staff ou manager"
// @Param        active_only  query  bool    false  "Somente usuários ativos"
// @Success      200  {object}  UserListResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/users [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	var req ListUserRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBindingError("invalid query parameters", err)
		c.JSON(restError.Code, restError)
		return
	}

	filter := ListFilter{
		Skip:       req.Skip,
		Limit:      DefaultListLimit,
		Role:       UserRole(req.Role),
		ActiveOnly: req.ActiveOnly,
	}
	if req.Limit != nil {
		filter.Limit = *req.Limit
	}

	users, total, err := ctrl.Service.List(c.Request.Context(), filter)
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		return
	}

	response := UserListResponseDto{Total: total, Users: make([]UserResponseDto, 0, len(users))}
	for _, u := range users {
		response.Users = append(response.Users, toResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// @Summary      Atualiza um usuário
// @Description  Atualização parcial: somente os campos enviados são alterados.
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                true  "UUID do usuário"
// @Param        request  body  UpdateUserRequestDto  true  "Campos a atualizar"
// @Success      200  {object}  UserResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/users/{id} [put]
func (ctrl *controllerImpl) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBindingError("invalid json body", err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "update", "Update", false, req, restError)
		return
	}

	updated, err := ctrl.Service.Update(c.Request.Context(), id, UserPatch{
		Name:   req.Name,
		Phone:  req.Phone,
		Role:   req.Role,
		Active: req.Active,
	})
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "update", "Update", false, req, restError)
		return
	}

	response := toResponse(updated)
	c.JSON(http.StatusOK, response)
	ctrl.logAudit(c, "update", "Update", true, req, response)
}

// @Summary      Desativa um usuário
// @Description  Exclusão lógica: o registro permanece com active=false.
// @Tags         User
// @Security     BearerAuth
// @Param        id   path  string  true  "UUID do usuário"
// @Success      204
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/users/{id} [delete]
func (ctrl *controllerImpl) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.Service.Delete(c.Request.Context(), id); err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "delete", "Delete", false, id, restError)
		return
	}

	c.Status(http.StatusNoContent)
	ctrl.logAudit(c, "delete", "Delete", true, id, nil)
}
