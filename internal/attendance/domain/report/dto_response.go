package report

import (
	"time"

	"github.com/google/uuid"
)

type ReportResponseDto struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	ReportDate         string    `json:"report_date" example:"2025-12-17"`
	NextWakeUpTime     string    `json:"next_wake_up_time" example:"06:00:00"`
	NextDepartureTime  string    `json:"next_departure_time" example:"07:30:00"`
	NextArrivalTime    string    `json:"next_arrival_time" example:"09:00:00"`
	AppearancePhotoURL string    `json:"appearance_photo_url"`
	RoutePhotoURL      string    `json:"route_photo_url"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toResponse(r Report) ReportResponseDto {
	return ReportResponseDto{
		ID:                 r.ID,
		UserID:             r.UserID,
		ReportDate:         time.Time(r.ReportDate).Format(DateLayout),
		NextWakeUpTime:     r.NextWakeUpTime.String(),
		NextDepartureTime:  r.NextDepartureTime.String(),
		NextArrivalTime:    r.NextArrivalTime.String(),
		AppearancePhotoURL: r.AppearancePhotoURL,
		RoutePhotoURL:      r.RoutePhotoURL,
		Notes:              r.Notes,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
