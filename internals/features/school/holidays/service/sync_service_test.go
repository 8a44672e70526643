package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	evModel "schoolku_backend/internals/features/school/calendar/model"
	"schoolku_backend/internals/helpers/dbtime"
)

func holidayEvent(schoolID uuid.UUID, date dbtime.DateYMD, title string) evModel.CalendarEventModel {
	return evModel.CalendarEventModel{
		CalendarEventSchoolID:  schoolID,
		CalendarEventKind:      evModel.EventKindHoliday,
		CalendarEventTitle:     title,
		CalendarEventStartDate: date,
		CalendarEventEndDate:   date,
		CalendarEventAudience:  evModel.EventAudienceAll,
	}
}

func TestDedupHolidayEvents_LastWinsPerDate(t *testing.T) {
	schoolID := uuid.New()
	d1 := dbtime.NewDateYMD(2026, time.March, 21)
	d2 := dbtime.NewDateYMD(2026, time.March, 23)

	events := []evModel.CalendarEventModel{
		holidayEvent(schoolID, d1, "Nyepi"),
		holidayEvent(schoolID, d2, "Cuti Bersama"),
		holidayEvent(schoolID, d1, "Hari Raya Nyepi"), // tanggal sama, judul beda
	}

	rows := DedupHolidayEvents(schoolID, events)
	require.Len(t, rows, 2)

	// urutan tanggal pertama-terlihat dipertahankan
	assert.Equal(t, d1.String(), rows[0].SchoolHolidayDate.String())
	assert.Equal(t, "Hari Raya Nyepi", rows[0].SchoolHolidayName)
	assert.Equal(t, d2.String(), rows[1].SchoolHolidayDate.String())
	assert.Equal(t, "Cuti Bersama", rows[1].SchoolHolidayName)

	for _, r := range rows {
		assert.Equal(t, schoolID, r.SchoolHolidaySchoolID)
		assert.True(t, r.SchoolHolidayIsPaid)
	}
}

func TestDedupHolidayEvents_Empty(t *testing.T) {
	rows := DedupHolidayEvents(uuid.New(), nil)
	assert.Empty(t, rows)
}
