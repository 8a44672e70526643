// file: internals/features/school/calendar/dto/calendar_event_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/calendar/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/dbtime"
)

var (
	ErrInvalidStartDate = errors.New("invalid calendar_event_start_date (use YYYY-MM-DD)")
	ErrInvalidEndDate   = errors.New("invalid calendar_event_end_date (use YYYY-MM-DD)")
	ErrEndBeforeStart   = errors.New("calendar_event_end_date must be >= calendar_event_start_date")
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateCalendarEventRequest struct {
	CalendarEventTitle string `json:"calendar_event_title" validate:"required,max=200"`

	CalendarEventKind string `json:"calendar_event_kind" validate:"required,oneof=Holiday Exam Meeting Activity"`

	// Tanggal "YYYY-MM-DD"
	CalendarEventStartDate string `json:"calendar_event_start_date" validate:"required,datetime=2006-01-02"`
	CalendarEventEndDate   string `json:"calendar_event_end_date"   validate:"required,datetime=2006-01-02"`

	CalendarEventDescription *string `json:"calendar_event_description" validate:"omitempty,max=10000"`
	CalendarEventAudience    *string `json:"calendar_event_audience"    validate:"omitempty,oneof=all students teachers staff"`
}

func (r *CreateCalendarEventRequest) ToModel(schoolID uuid.UUID) (*m.CalendarEventModel, error) {
	start, err := dbtime.ParseDateYMD(r.CalendarEventStartDate)
	if err != nil {
		return nil, ErrInvalidStartDate
	}
	end, err := dbtime.ParseDateYMD(r.CalendarEventEndDate)
	if err != nil {
		return nil, ErrInvalidEndDate
	}
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}

	title := strings.TrimSpace(r.CalendarEventTitle)
	slug := helper.Slugify(title+"-"+start.String(), 160)
	audience := m.EventAudienceAll
	if r.CalendarEventAudience != nil {
		audience = *r.CalendarEventAudience
	}

	return &m.CalendarEventModel{
		CalendarEventSchoolID:    schoolID,
		CalendarEventTitle:       title,
		CalendarEventSlug:        &slug,
		CalendarEventKind:        r.CalendarEventKind,
		CalendarEventStartDate:   start,
		CalendarEventEndDate:     end,
		CalendarEventDescription: trimPtr(r.CalendarEventDescription),
		CalendarEventAudience:    audience,
	}, nil
}

// Update partial (pointer = tidak dikirim vs dikirim)
type UpdateCalendarEventRequest struct {
	CalendarEventTitle       *string `json:"calendar_event_title"       validate:"omitempty,max=200"`
	CalendarEventKind        *string `json:"calendar_event_kind"        validate:"omitempty,oneof=Holiday Exam Meeting Activity"`
	CalendarEventStartDate   *string `json:"calendar_event_start_date"  validate:"omitempty,datetime=2006-01-02"`
	CalendarEventEndDate     *string `json:"calendar_event_end_date"    validate:"omitempty,datetime=2006-01-02"`
	CalendarEventDescription *string `json:"calendar_event_description" validate:"omitempty,max=10000"`
	CalendarEventAudience    *string `json:"calendar_event_audience"    validate:"omitempty,oneof=all students teachers staff"`
}

// Apply ke model existing (controller: ambil existing → req.Apply → Save).
func (r *UpdateCalendarEventRequest) Apply(ev *m.CalendarEventModel) error {
	if r.CalendarEventTitle != nil {
		title := strings.TrimSpace(*r.CalendarEventTitle)
		if title != "" {
			ev.CalendarEventTitle = title
			slug := helper.Slugify(title+"-"+ev.CalendarEventStartDate.String(), 160)
			ev.CalendarEventSlug = &slug
		}
	}
	if r.CalendarEventKind != nil {
		ev.CalendarEventKind = *r.CalendarEventKind
	}

	newStart := ev.CalendarEventStartDate
	newEnd := ev.CalendarEventEndDate
	if r.CalendarEventStartDate != nil {
		d, err := dbtime.ParseDateYMD(*r.CalendarEventStartDate)
		if err != nil {
			return ErrInvalidStartDate
		}
		newStart = d
	}
	if r.CalendarEventEndDate != nil {
		d, err := dbtime.ParseDateYMD(*r.CalendarEventEndDate)
		if err != nil {
			return ErrInvalidEndDate
		}
		newEnd = d
	}
	if newEnd.Before(newStart) {
		return ErrEndBeforeStart
	}
	ev.CalendarEventStartDate = newStart
	ev.CalendarEventEndDate = newEnd

	if r.CalendarEventDescription != nil {
		ev.CalendarEventDescription = trimPtr(r.CalendarEventDescription)
	}
	if r.CalendarEventAudience != nil {
		ev.CalendarEventAudience = *r.CalendarEventAudience
	}
	return nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type CalendarEventResponse struct {
	CalendarEventID       uuid.UUID `json:"calendar_event_id"`
	CalendarEventSchoolID uuid.UUID `json:"calendar_event_school_id"`

	CalendarEventTitle string  `json:"calendar_event_title"`
	CalendarEventSlug  *string `json:"calendar_event_slug,omitempty"`
	CalendarEventKind  string  `json:"calendar_event_kind"`

	CalendarEventStartDate string `json:"calendar_event_start_date"` // YYYY-MM-DD
	CalendarEventEndDate   string `json:"calendar_event_end_date"`   // YYYY-MM-DD

	CalendarEventDescription *string `json:"calendar_event_description,omitempty"`
	CalendarEventAudience    string  `json:"calendar_event_audience"`

	CalendarEventCreatedAt time.Time `json:"calendar_event_created_at"`
	CalendarEventUpdatedAt time.Time `json:"calendar_event_updated_at"`
}

func FromModelCalendarEvent(ev *m.CalendarEventModel) *CalendarEventResponse {
	if ev == nil {
		return nil
	}
	return &CalendarEventResponse{
		CalendarEventID:          ev.CalendarEventID,
		CalendarEventSchoolID:    ev.CalendarEventSchoolID,
		CalendarEventTitle:       ev.CalendarEventTitle,
		CalendarEventSlug:        ev.CalendarEventSlug,
		CalendarEventKind:        ev.CalendarEventKind,
		CalendarEventStartDate:   ev.CalendarEventStartDate.String(),
		CalendarEventEndDate:     ev.CalendarEventEndDate.String(),
		CalendarEventDescription: ev.CalendarEventDescription,
		CalendarEventAudience:    ev.CalendarEventAudience,
		CalendarEventCreatedAt:   ev.CalendarEventCreatedAt,
		CalendarEventUpdatedAt:   ev.CalendarEventUpdatedAt,
	}
}

func FromModelCalendarEvents(list []m.CalendarEventModel) []*CalendarEventResponse {
	out := make([]*CalendarEventResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelCalendarEvent(&list[i]))
	}
	return out
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
