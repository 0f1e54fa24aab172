package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"okiteru-api/internal/pkg/logger"
)

type Service interface {
	GetOrCreate(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByExternalID(ctx context.Context, externalID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id uuid.UUID, patch UserPatch) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceImpl struct {
	Repository Repository
}

func NewService(repository Repository) Service {
	return &serviceImpl{
		Repository: repository,
	}
}

// GetOrCreate devolve o usuário vinculado a user.ExternalID e o cria com os
// campos informados quando não existe. Registros existentes não são alterados.
func (s *serviceImpl) GetOrCreate(ctx context.Context, user User) (User, error) {
	existing, err := s.Repository.Read(ctx, User{ExternalID: user.ExternalID})
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	created, err := s.Create(ctx, user)
	if errors.Is(err, ErrExternalIDDuplicated) {
		// outro primeiro login gravou o mesmo usuário antes
		return s.Repository.Read(ctx, User{ExternalID: user.ExternalID})
	}
	if err != nil {
		return User{}, err
	}

	logger.Use().Info("[USER] usuário provisionado",
		zap.String("user_id", created.ID.String()),
		zap.String("role", string(created.Role)),
	)
	return created, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	if id == uuid.Nil {
		return User{}, ErrNotFound
	}
	return s.Repository.Read(ctx, User{ID: id})
}

func (s *serviceImpl) GetByExternalID(ctx context.Context, externalID string) (User, error) {
	if externalID == "" {
		return User{}, ErrNotFound
	}
	return s.Repository.Read(ctx, User{ExternalID: externalID})
}

func (s *serviceImpl) GetByEmail(ctx context.Context, email string) (User, error) {
	if email == "" {
		return User{}, ErrNotFound
	}
	return s.Repository.Read(ctx, User{Email: email})
}

func (s *serviceImpl) List(ctx context.Context, filter ListFilter) ([]User, int64, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Skip < 0 || filter.Limit < 1 || filter.Limit > MaxListLimit {
		return nil, 0, ErrInvalidInput
	}
	if filter.Role != "" && !IsValidUserRole(filter.Role) {
		return nil, 0, ErrInvalidInput
	}
	return s.Repository.List(ctx, filter)
}

func (s *serviceImpl) Create(ctx context.Context, user User) (User, error) {
	if user.Role == "" {
		user.Role = RoleStaff
	}
	user.Name = strings.TrimSpace(user.Name)
	if user.ExternalID == "" || user.Email == "" || !validName(user.Name) || !validPhone(user.Phone) || !IsValidUserRole(user.Role) {
		return User{}, ErrInvalidInput
	}

	newUser := User{
		ExternalID: user.ExternalID,
		Email:      user.Email,
		Role:       user.Role,
		Name:       user.Name,
		Phone:      user.Phone,
		Active:     true,
	}

	var created User
	err := s.Repository.Transaction(ctx, func(repo Repository) error {
		if _, err := repo.Read(ctx, User{ExternalID: newUser.ExternalID}); err == nil {
			return ErrExternalIDDuplicated
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		if _, err := repo.Read(ctx, User{Email: newUser.Email}); err == nil {
			return ErrEmailDuplicated
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}

		var err error
		created, err = repo.Create(ctx, newUser)
		return err
	})
	if err != nil {
		return User{}, err
	}
	return created, nil
}

func (s *serviceImpl) Update(ctx context.Context, id uuid.UUID, patch UserPatch) (User, error) {
	if id == uuid.Nil {
		return User{}, ErrNotFound
	}
	fields := make(map[string]interface{})
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if !validName(name) {
			return User{}, ErrInvalidInput
		}
		fields["name"] = name
	}
	if patch.Phone.Set {
		if !validPhone(patch.Phone.Value) {
			return User{}, ErrInvalidInput
		}
		if patch.Phone.IsNull() {
			fields["phone"] = nil
		} else {
			fields["phone"] = *patch.Phone.Value
		}
	}
	if patch.Role != nil {
		if !IsValidUserRole(*patch.Role) {
			return User{}, ErrInvalidInput
		}
		fields["role"] = *patch.Role
	}
	if patch.Active != nil {
		fields["active"] = *patch.Active
	}

	var updated User
	err := s.Repository.Transaction(ctx, func(repo Repository) error {
		current, err := repo.Read(ctx, User{ID: id})
		if err != nil {
			return err
		}
		if patch.empty() {
			updated = current
			return nil
		}
		updated, err = repo.Update(ctx, id, fields)
		return err
	})
	if err != nil {
		return User{}, err
	}
	return updated, nil
}

// Delete desativa o usuário; o registro permanece.
func (s *serviceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	inactive := false
	_, err := s.Update(ctx, id, UserPatch{Active: &inactive})
	return err
}

func validName(name string) bool {
	return name != "" && len([]rune(name)) <= 100
}

func validPhone(phone *string) bool {
	return phone == nil || len([]rune(*phone)) <= 20
}
