package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	constraintExternalID = "users_cognito_user_id_key"
	constraintEmail      = "users_email_key"

	sqliteUniqueFailed = "UNIQUE constraint failed:"
)

type Repository interface {
	Create(ctx context.Context, user User) (User, error)
	Read(ctx context.Context, user User) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (User, error)
	Transaction(ctx context.Context, fn func(repo Repository) error) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{
		db: db,
	}
}

func (r *repositoryImpl) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repositoryImpl{db: tx})
	})
}

func (r *repositoryImpl) Create(ctx context.Context, user User) (User, error) {
	result := r.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return User{}, translateWriteError(result.Error)
	}
	return user, nil
}

// Read busca pelo primeiro campo preenchido: ID, ExternalID ou Email.
func (r *repositoryImpl) Read(ctx context.Context, user User) (User, error) {
	query := r.db.WithContext(ctx)
	switch {
	case user.ID != uuid.Nil:
		query = query.Where("id = ?", user.ID)
	case user.ExternalID != "":
		query = query.Where("cognito_user_id = ?", user.ExternalID)
	case user.Email != "":
		query = query.Where("email = ?", user.Email)
	default:
		return User{}, ErrInvalidInput
	}

	var found User
	if err := query.First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return found, nil
}

func (r *repositoryImpl) List(ctx context.Context, filter ListFilter) ([]User, int64, error) {
	query := r.db.WithContext(ctx).Model(&User{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := make([]User, 0)
	err := query.Order("created_at").Order("id").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (User, error) {
	if len(fields) == 0 {
		return User{}, ErrInvalidInput
	}
	fields["updated_at"] = time.Now().UTC()

	query := r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(fields)
	if query.Error != nil {
		return User{}, translateWriteError(query.Error)
	}
	if query.RowsAffected == 0 {
		return User{}, ErrNotFound
	}

	return r.Read(ctx, byID(id))
}

// translateWriteError converte violações de unicidade nos erros do diretório.
// O Postgres informa o nome da constraint; o SQLite só a mensagem.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return fmt.Errorf("erro do banco (%s): %w", pgErr.Code, err)
		}
		switch pgErr.ConstraintName {
		case constraintExternalID:
			return ErrExternalIDDuplicated
		case constraintEmail:
			return ErrEmailDuplicated
		default:
			return fmt.Errorf("violação de unicidade (%s): %w", pgErr.ConstraintName, err)
		}
	}

	// SQLite: "UNIQUE constraint failed: users.email"
	msg := err.Error()
	if !strings.Contains(msg, sqliteUniqueFailed) {
		return err
	}
	switch {
	case strings.Contains(msg, "users.cognito_user_id"):
		return ErrExternalIDDuplicated
	case strings.Contains(msg, "users.email"):
		return ErrEmailDuplicated
	}
	return err
}
