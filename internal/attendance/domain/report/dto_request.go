package report

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"okiteru-api/internal/pkg/optional"
	"okiteru-api/internal/pkg/rest_err"
)

type CreateReportRequestDto struct {
	ReportDate         string  `json:"report_date" binding:"required" example:"2025-12-17"`
	NextWakeUpTime     string  `json:"next_wake_up_time" binding:"required" example:"06:00:00"`
	NextDepartureTime  string  `json:"next_departure_time" binding:"required" example:"07:30:00"`
	NextArrivalTime    string  `json:"next_arrival_time" binding:"required" example:"09:00:00"`
	AppearancePhotoURL string  `json:"appearance_photo_url" binding:"required,max=500"`
	RoutePhotoURL      string  `json:"route_photo_url" binding:"required,max=500"`
	Notes              *string `json:"notes"`
}

// UpdateReportRequestDto: chave ausente mantém o campo; "notes": null limpa a observação.
type UpdateReportRequestDto struct {
	ReportDate         *string                `json:"report_date"`
	NextWakeUpTime     *string                `json:"next_wake_up_time"`
	NextDepartureTime  *string                `json:"next_departure_time"`
	NextArrivalTime    *string                `json:"next_arrival_time"`
	AppearancePhotoURL *string                `json:"appearance_photo_url" binding:"omitempty,min=1,max=500"`
	RoutePhotoURL      *string                `json:"route_photo_url" binding:"omitempty,min=1,max=500"`
	Notes              optional.Field[string] `json:"notes" swaggertype:"string"`
}

type ListReportRequestDto struct {
	Limit  *int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int  `form:"offset" binding:"min=0"`
}

func parseDate(field, value string, causes *[]rest_err.Causes) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		*causes = append(*causes, rest_err.NewCause(field, "must be a date in YYYY-MM-DD format"))
		return time.Time{}
	}
	return t
}

// parseClock aceita HH:MM:SS ou HH:MM.
func parseClock(field, value string, causes *[]rest_err.Causes) datatypes.Time {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
		}
	}
	*causes = append(*causes, rest_err.NewCause(field, fmt.Sprintf("must be a time in HH:MM:SS format, got %q", value)))
	return datatypes.Time(0)
}

func (r CreateReportRequestDto) toInput() (ReportInput, []rest_err.Causes) {
	var causes []rest_err.Causes
	in := ReportInput{
		ReportDate:         parseDate("report_date", r.ReportDate, &causes),
		NextWakeUpTime:     parseClock("next_wake_up_time", r.NextWakeUpTime, &causes),
		NextDepartureTime:  parseClock("next_departure_time", r.NextDepartureTime, &causes),
		NextArrivalTime:    parseClock("next_arrival_time", r.NextArrivalTime, &causes),
		AppearancePhotoURL: r.AppearancePhotoURL,
		RoutePhotoURL:      r.RoutePhotoURL,
		Notes:              r.Notes,
	}
	return in, causes
}

func (r UpdateReportRequestDto) toPatch() (ReportPatch, []rest_err.Causes) {
	var causes []rest_err.Causes
	patch := ReportPatch{
		AppearancePhotoURL: r.AppearancePhotoURL,
		RoutePhotoURL:      r.RoutePhotoURL,
		Notes:              r.Notes,
	}
	if r.ReportDate != nil {
		d := parseDate("report_date", *r.ReportDate, &causes)
		patch.ReportDate = &d
	}
	clock := func(field string, v *string) *datatypes.Time {
		if v == nil {
			return nil
		}
		t := parseClock(field, *v, &causes)
		return &t
	}
	patch.NextWakeUpTime = clock("next_wake_up_time", r.NextWakeUpTime)
	patch.NextDepartureTime = clock("next_departure_time", r.NextDepartureTime)
	patch.NextArrivalTime = clock("next_arrival_time", r.NextArrivalTime)
	return patch, causes
}
