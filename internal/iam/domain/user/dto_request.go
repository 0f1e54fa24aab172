package user

import "okiteru-api/internal/pkg/optional"

type CreateUserRequestDto struct {
	ExternalID string   `json:"cognito_user_id" binding:"required,max=255"`
	Email      string   `json:"email" binding:"required,email,max=255"`
	Name       string   `json:"name" binding:"required,min=1,max=100"`
	Phone      *string  `json:"phone" binding:"omitempty,max=20"`
	Role       UserRole `json:"role" binding:"omitempty,oneof=staff manager"`
}

// UpdateUserRequestDto: chave ausente mantém o campo; "phone": null limpa o telefone.
type UpdateUserRequestDto struct {
	Name   *string                `json:"name" binding:"omitempty,min=1,max=100"`
	Phone  optional.Field[string] `json:"phone" swaggertype:"string"`
	Role   *UserRole              `json:"role" binding:"omitempty,oneof=staff manager"`
	Active *bool                  `json:"active"`
}

type ListUserRequestDto struct {
	Skip       int    `form:"skip" binding:"min=0"`
	Limit      *int   `form:"limit" binding:"omitempty,min=1,max=1000"`
	Role       string `form:"role" binding:"omitempty,oneof=staff manager"`
	ActiveOnly bool   `form:"active_only"`
}
