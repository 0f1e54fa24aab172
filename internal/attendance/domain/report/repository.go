package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const constraintUserDate = "uq_prev_reports_user_date"

type Repository interface {
	Create(ctx context.Context, report Report) (Report, error)
	Read(ctx context.Context, id uuid.UUID) (Report, error)
	ReadByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (Report, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Report, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) (Report, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Transaction(ctx context.Context, fn func(repo Repository) error) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repositoryImpl{db: tx})
	})
}

func (r *repositoryImpl) Create(ctx context.Context, report Report) (Report, error) {
	if err := r.db.WithContext(ctx).Create(&report).Error; err != nil {
		return Report{}, translateWriteError(err)
	}
	return report, nil
}

func (r *repositoryImpl) first(query *gorm.DB) (Report, error) {
	var found Report
	if err := query.First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	return found, nil
}

func (r *repositoryImpl) Read(ctx context.Context, id uuid.UUID) (Report, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *repositoryImpl) ReadByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (Report, error) {
	return r.first(r.db.WithContext(ctx).
		Where("user_id = ? AND report_date = ?", userID, datatypes.Date(dateOnly(date))))
}

func (r *repositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Report, error) {
	reports := make([]Report, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("report_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *repositoryImpl) LatestByUser(ctx context.Context, userID uuid.UUID) (Report, error) {
	return r.first(r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("report_date DESC"))
}

func (r *repositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (Report, error) {
	if len(fields) == 0 {
		return Report{}, ErrInvalidInput
	}
	fields["updated_at"] = time.Now().UTC()

	query := r.db.WithContext(ctx).
		Model(&Report{}).
		Where("id = ?", id).
		Updates(fields)
	if query.Error != nil {
		return Report{}, translateWriteError(query.Error)
	}
	if query.RowsAffected == 0 {
		return Report{}, ErrNotFound
	}
	return r.Read(ctx, id)
}

func (r *repositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Report{})
	if query.Error != nil {
		return query.Error
	}
	if query.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translateWriteError converte a violação de (user_id, report_date) e a FK de
// users nos erros sentinela.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == constraintUserDate {
				return ErrDateDuplicated
			}
			return fmt.Errorf("violação de unicidade (%s): %w", pgErr.ConstraintName, err)
		case "23503":
			return ErrUnknownUser
		default:
			return fmt.Errorf("erro do banco (%s): %w", pgErr.Code, err)
		}
	}

	// SQLite não expõe o nome da constraint, só a mensagem.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed:") && strings.Contains(msg, "previous_day_reports.report_date"):
		return ErrDateDuplicated
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrUnknownUser
	}
	return err
}
