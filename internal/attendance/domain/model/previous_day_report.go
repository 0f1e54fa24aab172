package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PreviousDayReport é o plano do funcionário para o próximo turno, enviado na
// véspera. Um relatório por usuário e data.
type PreviousDayReport struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_prev_reports_user_date,priority:1"`
	ReportDate         datatypes.Date `gorm:"not null;uniqueIndex:uq_prev_reports_user_date,priority:2;index:idx_prev_reports_date"`
	NextWakeUpTime     datatypes.Time `gorm:"not null"`
	NextDepartureTime  datatypes.Time `gorm:"not null"`
	NextArrivalTime    datatypes.Time `gorm:"not null"`
	AppearancePhotoURL string         `gorm:"column:appearance_photo_url;type:varchar(500);not null"`
	RoutePhotoURL      string         `gorm:"column:route_photo_url;type:varchar(500);not null"`
	Notes              *string        `gorm:"type:text"`
	CreatedAt          time.Time      `gorm:"not null;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"not null;autoUpdateTime"`
}

func (PreviousDayReport) TableName() string {
	return "previous_day_reports"
}

func (r *PreviousDayReport) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
