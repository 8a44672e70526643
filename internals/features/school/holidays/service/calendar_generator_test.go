package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYearlyHolidays_Deterministic(t *testing.T) {
	a := GenerateYearlyHolidays(2026)
	b := GenerateYearlyHolidays(2026)
	assert.Equal(t, a, b)
}

func TestGenerateYearlyHolidays_SortedWithinYear(t *testing.T) {
	out := GenerateYearlyHolidays(2026)
	require.NotEmpty(t, out)

	for i := 1; i < len(out); i++ {
		assert.True(t, out[i-1].Date.Before(out[i].Date),
			"tidak terurut: %s >= %s", out[i-1].Date, out[i].Date)
	}
	for _, h := range out {
		assert.Equal(t, 2026, h.Date.Year())
	}
}

func TestGenerateYearlyHolidays_FixedDates(t *testing.T) {
	out := GenerateYearlyHolidays(2026)
	byDate := map[string]string{}
	for _, h := range out {
		byDate[h.Date.String()] = h.Name
	}

	assert.Equal(t, "New Year's Day", byDate["2026-01-01"])
	assert.Equal(t, "Republic Day", byDate["2026-01-26"])
	assert.Equal(t, "Labour Day", byDate["2026-05-01"])
	assert.Equal(t, "Independence Day", byDate["2026-08-15"])
	assert.Equal(t, "Gandhi Jayanti", byDate["2026-10-02"])
	assert.Equal(t, "Children's Day", byDate["2026-11-14"])
	assert.Equal(t, "Christmas Day", byDate["2026-12-25"])
}

func TestGenerateYearlyHolidays_AllSundaysExactlyOnce(t *testing.T) {
	out := GenerateYearlyHolidays(2026)

	seen := map[string]int{}
	for _, h := range out {
		seen[h.Date.String()]++
	}
	for d, n := range seen {
		assert.Equal(t, 1, n, "tanggal %s muncul %d kali", d, n)
	}

	// setiap Minggu di tahun itu harus ada di output
	d := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	sundays := 0
	for d.Year() == 2026 {
		sundays++
		_, ok := seen[d.Format("2006-01-02")]
		assert.True(t, ok, "Minggu %s tidak ada di output", d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 7)
	}
	assert.GreaterOrEqual(t, sundays, 52)
}

func TestGenerateYearlyHolidays_FixedNameWinsOnSunday(t *testing.T) {
	// 15 Agustus 2027 jatuh pada hari Minggu
	out := GenerateYearlyHolidays(2027)
	byDate := map[string]string{}
	for _, h := range out {
		byDate[h.Date.String()] = h.Name
	}
	require.Contains(t, byDate, "2027-08-15")
	assert.Equal(t, "Independence Day", byDate["2027-08-15"])
}

func TestGenerateYearlyHolidays_CountBounds(t *testing.T) {
	for _, year := range []int{2024, 2025, 2026, 2027} {
		out := GenerateYearlyHolidays(year)
		// 52-53 Minggu + 7 libur tetap, minus tumpang tindih
		assert.GreaterOrEqual(t, len(out), 52+7-7, "year=%d", year)
		assert.LessOrEqual(t, len(out), 53+7, "year=%d", year)
	}
}
