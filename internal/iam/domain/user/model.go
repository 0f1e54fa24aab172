package user

import (
	"github.com/google/uuid"

	"okiteru-api/internal/iam/domain/model"
	"okiteru-api/internal/pkg/optional"
)

type User = model.User
type UserRole = model.UserRole

const (
	RoleStaff   = model.RoleStaff
	RoleManager = model.RoleManager

	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// ListFilter seleciona uma página do diretório. Role vazio aceita qualquer papel.
type ListFilter struct {
	Skip       int
	Limit      int
	Role       UserRole
	ActiveOnly bool
}

// UserPatch traz os campos graváveis de uma atualização; nil mantém o valor.
// Phone aceita null explícito para limpar o telefone.
type UserPatch struct {
	Name   *string
	Phone  optional.Field[string]
	Role   *UserRole
	Active *bool
}

func (p UserPatch) empty() bool {
	return p.Name == nil && !p.Phone.Set && p.Role == nil && p.Active == nil
}

func IsValidUserRole(r UserRole) bool {
	return r.Valid()
}

func byID(id uuid.UUID) User {
	return User{ID: id}
}
