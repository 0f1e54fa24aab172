package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"okiteru-api/internal/iam/application/auth"
	"okiteru-api/internal/iam/domain/model"
	"okiteru-api/internal/iam/domain/user"
	"okiteru-api/internal/iam/identity"
	"okiteru-api/internal/infra/jwt"
	"okiteru-api/internal/pkg/logger"
	"okiteru-api/internal/pkg/rest_err"
)

// Mode define como o chamador é identificado.
type Mode string

const (
	// ModeCognito valida o ID token Bearer e provisiona o usuário.
	ModeCognito Mode = "cognito"
	// ModeHeader confia em X-User-Id / X-User-Role. Só para desenvolvimento.
	ModeHeader Mode = "header"

	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCognito, "":
		return ModeCognito, nil
	case ModeHeader:
		return ModeHeader, nil
	default:
		return "", fmt.Errorf("auth mode %q inválido, use cognito ou header", s)
	}
}

type Middleware interface {
	SetContextAuthorization() gin.HandlerFunc
	AuthorizeRole(requiredRoles ...model.UserRole) gin.HandlerFunc
}

type impl struct {
	service auth.Service
	mode    Mode
}

func NewMiddleware(service auth.Service, mode Mode) Middleware {
	return &impl{
		service: service,
		mode:    mode,
	}
}

func (mw *impl) SetContextAuthorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			id  identity.Identity
			err error
		)

		if mw.mode == ModeHeader {
			id, err = mw.service.FromHeaders(c.GetHeader(HeaderUserID), c.GetHeader(HeaderUserRole))
		} else {
			id, err = mw.fromBearer(c)
		}
		if err != nil {
			abortWith(c, err)
			return
		}

		identity.Set(c, &id)
		c.Next()
	}
}

func (mw *impl) fromBearer(c *gin.Context) (identity.Identity, error) {
	ctx := c.Request.Context()
	claims, err := mw.service.Authenticate(ctx, extractBearerToken(c.GetHeader("Authorization")))
	if err != nil {
		return identity.Identity{}, err
	}
	return mw.service.ResolveOrProvision(ctx, claims)
}

func abortWith(c *gin.Context, err error) {
	var e *rest_err.RestErr
	switch {
	case errors.Is(err, auth.ErrNotConfigured), errors.Is(err, jwt.ErrNotConfigured):
		e = rest_err.NewNotImplementedError("authentication provider is not configured")
	case errors.Is(err, jwt.ErrKeySetUnavailable):
		logger.Use().Error("[AUTH] falha ao buscar o JWKS", zap.Error(err))
		e = rest_err.NewInternalServerError("could not load token signing keys", nil)
	case errors.Is(err, user.ErrEmailDuplicated):
		e = rest_err.NewConflictValidationError("email already bound to another account", nil)
	case isAuthFailure(err):
		c.Header("WWW-Authenticate", "Bearer")
		e = rest_err.NewUnauthorizedError(err.Error())
	default:
		logger.Use().Error("[AUTH] falha na autenticação", zap.Error(err))
		e = rest_err.NewInternalServerError("internal server error", nil)
	}
	c.AbortWithStatusJSON(e.Code, e)
}

func isAuthFailure(err error) bool {
	for _, target := range []error{
		auth.ErrMissingToken,
		auth.ErrMissingClaims,
		auth.ErrMissingIdentity,
		auth.ErrInvalidIdentity,
		jwt.ErrMissingKid,
		jwt.ErrUnknownKid,
		jwt.ErrInvalidToken,
		jwt.ErrInvalidIssuer,
		jwt.ErrWrongTokenUse,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (mw *impl) AuthorizeRole(requiredRoles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identity.Get(c)
		if !ok {
			e := rest_err.NewUnauthorizedError("not authenticated")
			c.AbortWithStatusJSON(e.Code, e)
			return
		}

		if !isRoleAuthorized(id.Role, requiredRoles) {
			required := make([]string, len(requiredRoles))
			for i, role := range requiredRoles {
				required[i] = string(role)
			}
			e := rest_err.NewForbiddenError(fmt.Sprintf("access denied, one of these roles is required: %v", required))
			c.AbortWithStatusJSON(e.Code, e)
			return
		}

		c.Next()
	}
}

func isRoleAuthorized(userRole model.UserRole, requiredRoles []model.UserRole) bool {
	if len(requiredRoles) == 0 {
		return true
	}
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}
