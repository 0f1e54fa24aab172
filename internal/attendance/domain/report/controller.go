package report

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
	Routes(routes gin.IRouter)
	Create(c *gin.Context)
	Read(c *gin.Context)
	List(c *gin.Context)
	Latest(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type controllerImpl struct {
	service Service
}

func NewController(service Service) Controller {
	return &controllerImpl{
		service: service,
	}
}

func (ctrl *controllerImpl) Routes(routes gin.IRouter) {
	reportGroup := routes.Group("/previous-day-reports")
	{
		reportGroup.POST("", ctrl.Create)
		reportGroup.GET("", ctrl.List)
		reportGroup.GET("/latest/me", ctrl.Latest)
		reportGroup.GET("/:id", ctrl.Read)
		reportGroup.PUT("/:id", ctrl.Update)
		reportGroup.DELETE("/:id", ctrl.Delete)
	}
}

func (ctrl *controllerImpl) logAudit(c *gin.Context, caller *identity.Identity, action, function string, success bool, input, output interface{}) {
	entry := audit_log.AuditLog{
		RequestID:  access_log.RequestID(c),
		Domain:     "previous_day_report",
		Action:     action,
		Function:   function,
		Success:    success,
		InputData:  audit_log.SerializeData(input),
		OutputData: audit_log.SerializeData(output),
	}
	if caller != nil {
		entry.UserID = &caller.UserID
		entry.Identifier = caller.Email
	}
	audit_log.LogAsync(c.Request.Context(), entry)
}

func restErrorFrom(err error) *rest_err.RestErr {
	switch {
	case errors.Is(err, ErrNotFound):
		return rest_err.NewNotFoundError(err.Error())
	case errors.Is(err, ErrForbidden):
		return rest_err.NewForbiddenError("you do not have access to this report")
	case errors.Is(err, ErrDateDuplicated):
		return rest_err.NewConflictValidationError(err.Error(),
			[]rest_err.Causes{rest_err.NewCause("report_date", "already reported")})
	case errors.Is(err, ErrUnknownUser):
		return rest_err.NewNotFoundError(err.Error())
	case errors.Is(err, ErrInvalidInput):
		return rest_err.NewBadRequestError(err.Error())
	default:
		return rest_err.NewInternalServerError("internal server error", nil)
	}
}

// caller aborta com 401 quando o gate não resolveu uma identidade.
func caller(c *gin.Context) (*identity.Identity, bool) {
	id, ok := identity.Get(c)
	if !ok {
		restError := rest_err.NewUnauthorizedError("not authenticated")
		c.JSON(restError.Code, restError)
		return nil, false
	}
	return id, true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		restError := rest_err.NewBadRequestValidationError("invalid report id",
			[]rest_err.Causes{rest_err.NewCause("id", "must be a valid UUID")})
		c.JSON(restError.Code, restError)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary      Registra o relatório do dia anterior
// @Description  Horários previstos para o próximo turno e fotos. Um relatório por data.
// @Tags         PreviousDayReport
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateReportRequestDto true "Relatório"
// @Success      201  {object}  ReportResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      401  {object}  rest_err.RestErr
// @Failure      409  {object}  rest_err.RestErr  "Já existe relatório para a data"
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/previous-day-reports [post]
func (ctrl *controllerImpl) Create(c *gin.Context) {
	me, ok := caller(c)
	if !ok {
		return
	}

	var req CreateReportRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBindingError("invalid json body", err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, me, "create", "Create", false, req, restError)
		return
	}
	in, causes := req.toInput()
	if len(causes) > 0 {
		restError := rest_err.NewBadRequestValidationError("invalid json body", causes)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, me, "create", "Create", false, req, restError)
		return
	}

	created, err := ctrl.service.Create(c.Request.Context(), me.UserID, in)
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, me, "create", "Create", false, req, restError)
		return
	}

	response := toResponse(created)
	c.JSON(http.StatusCreated, response)
	ctrl.logAudit(c, me, "create", "Create", true, req, response)
}

// @Summary      Busca um relatório
// @Tags         PreviousDayReport
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "UUID do relatório"
// @Success      200  {object}  ReportResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      403  {object}  rest_err.RestErr  "Relatório de outro usuário"
// @Failure      404  {object}  rest_err.RestErr
// @Router       /api/previous-day-reports/{id} [get]
func (ctrl *controllerImpl) Read(c *gin.Context) {
	me, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := ctrl.service.Get(c.Request.Context(), id, me.UserID)
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		return
	}
	c.JSON(http.StatusOK, toResponse(found))
}

// @Summary      Lista relatórios do usuário
// @Description  Ordenados pela data do relatório, mais recente primeiro.
// @Tags         PreviousDayReport
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Quantidade, 1 a 100 (padrão 10)"
// @Param        offset  query  int  false  "Deslocamento (padrão 0)"
// @Success      200  {array}   ReportResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Router       /api/previous-day-reports [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	me, ok := caller(c)
	if !ok {
		return
	}

	var req ListReportRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBindingError("invalid query parameters", err)
		c.JSON(restError.Code, restError)
		return
	}
	limit := DefaultListLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	reports, err := ctrl.service.List(c.Request.Context(), me.UserID, limit, req.Offset)
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		return
	}

	response := make([]ReportResponseDto, 0, len(reports))
	for _, r := range reports {
		response = append(response, toResponse(r))
	}
	c.JSON(http.StatusOK, response)
}

// @Summary      Relatório mais recente do usuário
// @Description  Retorna null quando o usuário ainda não registrou relatórios.
// @Tags         PreviousDayReport
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ReportResponseDto
// @Router       /api/previous-day-reports/latest/me [get]
func (ctrl *controllerImpl) Latest(c *gin.Context) {
	me, ok := caller(c)
	if !ok {
		return
	}

	latest, err := ctrl.service.GetLatest(c.Request.Context(), me.UserID)
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		return
	}
	if latest == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, toResponse(*latest))
}

// @Summary      Atualiza um relatório
// @Description  Atualização parcial do próprio relatório.
// @Tags         PreviousDayReport
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                  true  "UUID do relatório"
// @Param        request  body  UpdateReportRequestDto  true  "Campos a atualizar"
// @Success      200  {object}  ReportResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      403  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      409  {object}  rest_err.RestErr
// @Router       /api/previous-day-reports/{id} [put]
func (ctrl *controllerImpl) Update(c *gin.Context) {
	me, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateReportRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBindingError("invalid json body", err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, me, "update", "Update", false, req, restError)
		return
	}
	patch, causes := req.toPatch()
	if len(causes) > 0 {
		restError := rest_err.NewBadRequestValidationError("invalid json body", causes)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, me, "update", "Update", false, req, restError)
		return
	}

	updated, err := ctrl.service.Update(c.Request.Context(), id, me.UserID, patch)
	if err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, me, "update", "Update", false, req, restError)
		return
	}

	response := toResponse(updated)
	c.JSON(http.StatusOK, response)
	ctrl.logAudit(c, me, "update", "Update", true, req, response)
}

// @Summary      Remove um relatório
// @Tags         PreviousDayReport
// @Security     BearerAuth
// @Param        id   path  string  true  "UUID do relatório"
// @Success      204
// @Failure      403  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Router       /api/previous-day-reports/{id} [delete]
func (ctrl *controllerImpl) Delete(c *gin.Context) {
	me, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id, me.UserID); err != nil {
		restError := restErrorFrom(err)
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, me, "delete", "Delete", false, id, restError)
		return
	}

	c.Status(http.StatusNoContent)
	ctrl.logAudit(c, me, "delete", "Delete", true, id, nil)
}
