package user

import (
	"time"

	"github.com/google/uuid"
)

type UserResponseDto struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"cognito_user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      *string   `json:"phone"`
	Role       UserRole  `json:"role"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserListResponseDto struct {
	Total int64             `json:"total"`
	Users []UserResponseDto `json:"users"`
}

func toResponse(u User) UserResponseDto {
	return UserResponseDto{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Email:      u.Email,
		Name:       u.Name,
		Phone:      u.Phone,
		Role:       u.Role,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
