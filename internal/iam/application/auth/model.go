package auth

import (
	"context"

	"okiteru-api/internal/iam/domain/model"
	"okiteru-api/internal/infra/jwt"
)

const (
	managerGroup = "manager"

	devExternalID = "dev-user"
	devEmail      = "dev@example.com"
)

// TokenVerifier é implementado por *jwt.Verifier.
type TokenVerifier interface {
	Configured() bool
	Verify(ctx context.Context, token string) (*jwt.Claims, error)
}

func roleFromGroups(groups []string) model.UserRole {
	for _, g := range groups {
		if g == managerGroup {
			return model.RoleManager
		}
	}
	return model.RoleStaff
}
