package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attModel "schoolku_backend/internals/features/school/attendance/model"
	"schoolku_backend/internals/helpers/dbtime"
)

func TestNormalizeMonths(t *testing.T) {
	got, err := NormalizeMonths([]int{12, 1, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 12}, got)

	got, err = NormalizeMonths([]int{7})
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got)

	got, err = NormalizeMonths(AllMonths())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, got)

	_, err = NormalizeMonths(nil)
	assert.Error(t, err)
	_, err = NormalizeMonths([]int{})
	assert.Error(t, err)
	_, err = NormalizeMonths([]int{0})
	assert.Error(t, err)
	_, err = NormalizeMonths([]int{13})
	assert.Error(t, err)
	_, err = NormalizeMonths([]int{5, -1})
	assert.Error(t, err)
}

func TestBuildStudentHolidayRows_CrossProduct(t *testing.T) {
	schoolID := uuid.New()
	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	dates := []dbtime.DateYMD{
		dbtime.NewDateYMD(2026, time.January, 4),
		dbtime.NewDateYMD(2026, time.January, 26),
	}

	rows := BuildStudentHolidayRows(schoolID, students, dates)
	require.Len(t, rows, 6)

	seen := map[[2]string]bool{}
	for _, r := range rows {
		assert.Equal(t, schoolID, r.StudentAttendanceSchoolID)
		assert.Equal(t, attModel.AttendanceHoliday, r.StudentAttendanceStatus)
		key := [2]string{r.StudentAttendanceStudentID.String(), r.StudentAttendanceDate.String()}
		assert.False(t, seen[key], "duplikat pasangan %v", key)
		seen[key] = true
	}
}

func TestBuildHolidayRows_EmptyInputs(t *testing.T) {
	schoolID := uuid.New()
	dates := []dbtime.DateYMD{dbtime.NewDateYMD(2026, time.May, 1)}

	assert.Empty(t, BuildStudentHolidayRows(schoolID, nil, dates))
	assert.Empty(t, BuildTeacherHolidayRows(schoolID, []uuid.UUID{uuid.New()}, nil))
	assert.Empty(t, BuildStaffHolidayRows(schoolID, nil, nil))
}

func TestBuildTeacherAndStaffHolidayRows(t *testing.T) {
	schoolID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	dates := []dbtime.DateYMD{
		dbtime.NewDateYMD(2026, time.August, 15),
		dbtime.NewDateYMD(2026, time.August, 16),
		dbtime.NewDateYMD(2026, time.August, 23),
	}

	teacherRows := BuildTeacherHolidayRows(schoolID, ids, dates)
	require.Len(t, teacherRows, 6)
	for _, r := range teacherRows {
		assert.Equal(t, attModel.AttendanceHoliday, r.TeacherAttendanceStatus)
		assert.Equal(t, schoolID, r.TeacherAttendanceSchoolID)
	}

	staffRows := BuildStaffHolidayRows(schoolID, ids[:1], dates)
	require.Len(t, staffRows, 3)
	for i, r := range staffRows {
		assert.Equal(t, ids[0], r.StaffAttendanceStaffID)
		assert.Equal(t, dates[i].String(), r.StaffAttendanceDate.String())
	}
}
