package report

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, in ReportInput) (Report, error)
	Get(ctx context.Context, id, userID uuid.UUID) (Report, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Report, error)
	GetLatest(ctx context.Context, userID uuid.UUID) (*Report, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch ReportPatch) (Report, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type serviceImpl struct {
	Repository Repository
}

func NewService(repository Repository) Service {
	return &serviceImpl{
		Repository: repository,
	}
}

// Create registra um relatório de userID. Um segundo relatório na mesma data
// gera conflito; a constraint única do banco resolve criações concorrentes.
func (s *serviceImpl) Create(ctx context.Context, userID uuid.UUID, in ReportInput) (Report, error) {
	if userID == uuid.Nil || in.ReportDate.IsZero() || !validURL(in.AppearancePhotoURL) || !validURL(in.RoutePhotoURL) {
		return Report{}, ErrInvalidInput
	}

	newReport := Report{
		UserID:             userID,
		ReportDate:         datatypes.Date(dateOnly(in.ReportDate)),
		NextWakeUpTime:     in.NextWakeUpTime,
		NextDepartureTime:  in.NextDepartureTime,
		NextArrivalTime:    in.NextArrivalTime,
		AppearancePhotoURL: in.AppearancePhotoURL,
		RoutePhotoURL:      in.RoutePhotoURL,
		Notes:              in.Notes,
	}

	var created Report
	err := s.Repository.Transaction(ctx, func(repo Repository) error {
		if _, err := repo.ReadByUserAndDate(ctx, userID, in.ReportDate); err == nil {
			return ErrDateDuplicated
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}

		var err error
		created, err = repo.Create(ctx, newReport)
		return err
	})
	if err != nil {
		return Report{}, err
	}
	return created, nil
}

// Get só devolve o relatório ao dono. Relatório de outro usuário gera
// ErrForbidden; inexistente, ErrNotFound.
func (s *serviceImpl) Get(ctx context.Context, id, userID uuid.UUID) (Report, error) {
	return owned(ctx, s.Repository, id, userID)
}

func owned(ctx context.Context, repo Repository, id, userID uuid.UUID) (Report, error) {
	found, err := repo.Read(ctx, id)
	if err != nil {
		return Report{}, err
	}
	if found.UserID != userID {
		return Report{}, ErrForbidden
	}
	return found, nil
}

func (s *serviceImpl) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Report, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	return s.Repository.ListByUser(ctx, userID, limit, offset)
}

// GetLatest devolve o relatório de maior data, ou nil.
func (s *serviceImpl) GetLatest(ctx context.Context, userID uuid.UUID) (*Report, error) {
	latest, err := s.Repository.LatestByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &latest, nil
}

func (s *serviceImpl) Update(ctx context.Context, id, userID uuid.UUID, patch ReportPatch) (Report, error) {
	fields := make(map[string]interface{})
	if patch.ReportDate != nil {
		if patch.ReportDate.IsZero() {
			return Report{}, ErrInvalidInput
		}
		fields["report_date"] = datatypes.Date(dateOnly(*patch.ReportDate))
	}
	if patch.NextWakeUpTime != nil {
		fields["next_wake_up_time"] = *patch.NextWakeUpTime
	}
	if patch.NextDepartureTime != nil {
		fields["next_departure_time"] = *patch.NextDepartureTime
	}
	if patch.NextArrivalTime != nil {
		fields["next_arrival_time"] = *patch.NextArrivalTime
	}
	if patch.AppearancePhotoURL != nil {
		if !validURL(*patch.AppearancePhotoURL) {
			return Report{}, ErrInvalidInput
		}
		fields["appearance_photo_url"] = *patch.AppearancePhotoURL
	}
	if patch.RoutePhotoURL != nil {
		if !validURL(*patch.RoutePhotoURL) {
			return Report{}, ErrInvalidInput
		}
		fields["route_photo_url"] = *patch.RoutePhotoURL
	}
	if patch.Notes.IsNull() {
		fields["notes"] = nil
	} else if patch.Notes.Set {
		fields["notes"] = *patch.Notes.Value
	}

	var updated Report
	err := s.Repository.Transaction(ctx, func(repo Repository) error {
		current, err := owned(ctx, repo, id, userID)
		if err != nil {
			return err
		}
		if patch.empty() {
			updated = current
			return nil
		}
		if patch.ReportDate != nil && !sameDay(*patch.ReportDate, time.Time(current.ReportDate)) {
			if _, err := repo.ReadByUserAndDate(ctx, userID, *patch.ReportDate); err == nil {
				return ErrDateDuplicated
			} else if !errors.Is(err, ErrNotFound) {
				return err
			}
		}
		updated, err = repo.Update(ctx, id, fields)
		return err
	})
	if err != nil {
		return Report{}, err
	}
	return updated, nil
}

// Delete remove o registro definitivamente.
func (s *serviceImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.Repository.Transaction(ctx, func(repo Repository) error {
		if _, err := owned(ctx, repo, id, userID); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

func validURL(u string) bool {
	return u != "" && len(u) <= MaxPhotoURLLen
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
