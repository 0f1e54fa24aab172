package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"okiteru-api/internal/iam/domain/model"
	"okiteru-api/internal/iam/domain/user"
	"okiteru-api/internal/iam/identity"
	"okiteru-api/internal/infra/jwt"
)

type Service interface {
	// Authenticate valida o token Bearer e confere as claims exigidas pelo
	// diretório.
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
	// ResolveOrProvision associa as claims validadas a um usuário do
	// diretório e o cria no primeiro acesso.
	ResolveOrProvision(ctx context.Context, claims *jwt.Claims) (identity.Identity, error)
	// FromHeaders monta a identidade de desenvolvimento a partir dos headers.
	// Não consulta o diretório.
	FromHeaders(userID, role string) (identity.Identity, error)
}

type implService struct {
	verifier TokenVerifier
	users    user.Service
}

func NewService(verifier TokenVerifier, users user.Service) Service {
	return &implService{
		verifier: verifier,
		users:    users,
	}
}

func (s *implService) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	if s.verifier == nil || !s.verifier.Configured() {
		return nil, ErrNotConfigured
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, ErrMissingClaims
	}
	return claims, nil
}

func (s *implService) ResolveOrProvision(ctx context.Context, claims *jwt.Claims) (identity.Identity, error) {
	if claims == nil || claims.Subject == "" || claims.Email == "" {
		return identity.Identity{}, ErrMissingClaims
	}
	name := claims.Name
	if name == "" {
		name = claims.Email
	}

	u, err := s.users.GetOrCreate(ctx, user.User{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       name,
		Role:       roleFromGroups(claims.Groups),
	})
	if err != nil {
		return identity.Identity{}, err
	}

	return identity.Identity{
		UserID:     u.ID,
		ExternalID: u.ExternalID,
		Email:      u.Email,
		Role:       u.Role,
	}, nil
}

func (s *implService) FromHeaders(userID, role string) (identity.Identity, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return identity.Identity{}, ErrMissingIdentity
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return identity.Identity{}, ErrInvalidIdentity
	}

	r := model.UserRole(strings.TrimSpace(role))
	if r == "" {
		r = model.RoleStaff
	}
	return identity.Identity{
		UserID:     id,
		ExternalID: devExternalID,
		Email:      devEmail,
		Role:       r,
	}, nil
}
