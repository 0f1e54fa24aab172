package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStaff   UserRole = "staff"
	RoleManager UserRole = "manager"
)

// User espelha a tabela users. ExternalID guarda o subject do provedor de
// identidade na coluna cognito_user_id.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID string    `gorm:"column:cognito_user_id;type:varchar(255);not null;uniqueIndex:users_cognito_user_id_key"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:users_email_key"`
	Role       UserRole  `gorm:"type:varchar(20);not null;default:staff;index:idx_users_role"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Phone      *string   `gorm:"type:varchar(20)"`
	Active     bool      `gorm:"not null;default:true;index:idx_users_active"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (r UserRole) Valid() bool {
	return r == RoleStaff || r == RoleManager
}
