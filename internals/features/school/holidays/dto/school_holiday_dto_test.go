package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthSelector_Unmarshal(t *testing.T) {
	var req AutoMarkRequest
	require.NoError(t, json.Unmarshal([]byte(`{"month":"all","year":2026}`), &req))
	assert.True(t, req.Month.All)

	months, err := req.Month.Months()
	require.NoError(t, err)
	assert.Len(t, months, 12)

	require.NoError(t, json.Unmarshal([]byte(`{"month":8,"year":2026}`), &req))
	assert.False(t, req.Month.All)
	months, err = req.Month.Months()
	require.NoError(t, err)
	assert.Equal(t, []int{8}, months)

	// angka dalam string juga diterima
	require.NoError(t, json.Unmarshal([]byte(`{"month":"3","year":2026}`), &req))
	months, err = req.Month.Months()
	require.NoError(t, err)
	assert.Equal(t, []int{3}, months)
}

func TestMonthSelector_Invalid(t *testing.T) {
	var req AutoMarkRequest
	assert.Error(t, json.Unmarshal([]byte(`{"month":"agustus","year":2026}`), &req))

	require.NoError(t, json.Unmarshal([]byte(`{"month":0,"year":2026}`), &req))
	_, err := req.Month.Months()
	assert.ErrorIs(t, err, ErrInvalidMonth)

	require.NoError(t, json.Unmarshal([]byte(`{"month":13,"year":2026}`), &req))
	_, err = req.Month.Months()
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestCreateSchoolHolidayRequest_ToModel(t *testing.T) {
	schoolID := uuid.New()

	req := CreateSchoolHolidayRequest{
		SchoolHolidayDate: "2026-08-15",
		SchoolHolidayName: "  Independence Day  ",
	}
	h, err := req.ToModel(schoolID)
	require.NoError(t, err)
	assert.Equal(t, schoolID, h.SchoolHolidaySchoolID)
	assert.Equal(t, "2026-08-15", h.SchoolHolidayDate.String())
	assert.Equal(t, "Independence Day", h.SchoolHolidayName)
	assert.True(t, h.SchoolHolidayIsPaid, "default is_paid harus true")

	unpaid := false
	req.SchoolHolidayIsPaid = &unpaid
	h, err = req.ToModel(schoolID)
	require.NoError(t, err)
	assert.False(t, h.SchoolHolidayIsPaid)

	req.SchoolHolidayDate = "15-08-2026"
	_, err = req.ToModel(schoolID)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSyncFromSchoolRequest_ParsedDates(t *testing.T) {
	req := SyncFromSchoolRequest{
		SourceSchoolID: uuid.NewString(),
		SelectedDates:  []string{"2026-01-26", "2026-10-02"},
	}
	dates, err := req.ParsedDates()
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "2026-01-26", dates[0].String())
	assert.Equal(t, "2026-10-02", dates[1].String())

	req.SelectedDates = []string{"2026-13-99"}
	_, err = req.ParsedDates()
	assert.ErrorIs(t, err, ErrInvalidDate)

	req.SelectedDates = nil
	dates, err = req.ParsedDates()
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestFromModelSchoolHoliday_SundayFlag(t *testing.T) {
	req := CreateSchoolHolidayRequest{
		SchoolHolidayDate: "2026-01-04", // Minggu
		SchoolHolidayName: "Sunday",
	}
	h, err := req.ToModel(uuid.New())
	require.NoError(t, err)

	resp := FromModelSchoolHoliday(h)
	assert.True(t, resp.SchoolHolidayIsSunday)
	assert.Equal(t, "2026-01-04", resp.SchoolHolidayDate)

	req.SchoolHolidayDate = "2026-01-05"
	h, err = req.ToModel(uuid.New())
	require.NoError(t, err)
	assert.False(t, FromModelSchoolHoliday(h).SchoolHolidayIsSunday)
}
