package report

import (
	"time"

	"gorm.io/datatypes"

	"okiteru-api/internal/attendance/domain/model"
	"okiteru-api/internal/pkg/optional"
)

type Report = model.PreviousDayReport

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
	MaxPhotoURLLen   = 500

	DateLayout = "2006-01-02"
)

// ReportInput reúne todos os campos do relatório que o usuário grava.
type ReportInput struct {
	ReportDate         time.Time
	NextWakeUpTime     datatypes.Time
	NextDepartureTime  datatypes.Time
	NextArrivalTime    datatypes.Time
	AppearancePhotoURL string
	RoutePhotoURL      string
	Notes              *string
}

// ReportPatch traz os campos a alterar; nil mantém o valor. Notes aceita
// null explícito para limpar a observação.
type ReportPatch struct {
	ReportDate         *time.Time
	NextWakeUpTime     *datatypes.Time
	NextDepartureTime  *datatypes.Time
	NextArrivalTime    *datatypes.Time
	AppearancePhotoURL *string
	RoutePhotoURL      *string
	Notes              optional.Field[string]
}

func (p ReportPatch) empty() bool {
	return p.ReportDate == nil && p.NextWakeUpTime == nil && p.NextDepartureTime == nil &&
		p.NextArrivalTime == nil && p.AppearancePhotoURL == nil && p.RoutePhotoURL == nil && !p.Notes.Set
}

// dateOnly descarta hora e fuso para que o mesmo dia compare igual no banco.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
