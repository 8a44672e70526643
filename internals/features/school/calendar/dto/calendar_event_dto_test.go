package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "schoolku_backend/internals/features/school/calendar/model"
)

func strp(s string) *string { return &s }

func TestCreateCalendarEventRequest_ToModel(t *testing.T) {
	schoolID := uuid.New()
	req := CreateCalendarEventRequest{
		CalendarEventTitle:     "  Ujian Tengah Semester ",
		CalendarEventKind:      m.EventKindExam,
		CalendarEventStartDate: "2026-03-09",
		CalendarEventEndDate:   "2026-03-13",
		CalendarEventAudience:  strp(m.EventAudienceStudents),
	}

	ev, err := req.ToModel(schoolID)
	require.NoError(t, err)
	assert.Equal(t, schoolID, ev.CalendarEventSchoolID)
	assert.Equal(t, "Ujian Tengah Semester", ev.CalendarEventTitle)
	assert.Equal(t, m.EventKindExam, ev.CalendarEventKind)
	assert.Equal(t, "2026-03-09", ev.CalendarEventStartDate.String())
	assert.Equal(t, "2026-03-13", ev.CalendarEventEndDate.String())
	assert.Equal(t, m.EventAudienceStudents, ev.CalendarEventAudience)
	require.NotNil(t, ev.CalendarEventSlug)
	assert.Equal(t, "ujian-tengah-semester-2026-03-09", *ev.CalendarEventSlug)
}

func TestCreateCalendarEventRequest_DefaultAudience(t *testing.T) {
	req := CreateCalendarEventRequest{
		CalendarEventTitle:     "Rapat Guru",
		CalendarEventKind:      m.EventKindMeeting,
		CalendarEventStartDate: "2026-07-01",
		CalendarEventEndDate:   "2026-07-01",
	}
	ev, err := req.ToModel(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, m.EventAudienceAll, ev.CalendarEventAudience)
}

func TestCreateCalendarEventRequest_DateErrors(t *testing.T) {
	req := CreateCalendarEventRequest{
		CalendarEventTitle:     "X",
		CalendarEventKind:      m.EventKindActivity,
		CalendarEventStartDate: "bukan-tanggal",
		CalendarEventEndDate:   "2026-07-01",
	}
	_, err := req.ToModel(uuid.New())
	assert.ErrorIs(t, err, ErrInvalidStartDate)

	req.CalendarEventStartDate = "2026-07-02"
	req.CalendarEventEndDate = "2026-07-01"
	_, err = req.ToModel(uuid.New())
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestUpdateCalendarEventRequest_Apply(t *testing.T) {
	base := CreateCalendarEventRequest{
		CalendarEventTitle:     "Libur Awal",
		CalendarEventKind:      m.EventKindHoliday,
		CalendarEventStartDate: "2026-06-01",
		CalendarEventEndDate:   "2026-06-01",
	}
	ev, err := base.ToModel(uuid.New())
	require.NoError(t, err)

	upd := UpdateCalendarEventRequest{
		CalendarEventTitle:   strp("Libur Kenaikan Kelas"),
		CalendarEventEndDate: strp("2026-06-05"),
	}
	require.NoError(t, upd.Apply(ev))
	assert.Equal(t, "Libur Kenaikan Kelas", ev.CalendarEventTitle)
	assert.Equal(t, "2026-06-01", ev.CalendarEventStartDate.String())
	assert.Equal(t, "2026-06-05", ev.CalendarEventEndDate.String())
	// field yang tidak dikirim tidak berubah
	assert.Equal(t, m.EventKindHoliday, ev.CalendarEventKind)

	// range invalid ditolak, tanggal model tidak berubah
	bad := UpdateCalendarEventRequest{CalendarEventEndDate: strp("2026-05-01")}
	assert.ErrorIs(t, bad.Apply(ev), ErrEndBeforeStart)
	assert.Equal(t, "2026-06-05", ev.CalendarEventEndDate.String())
}
