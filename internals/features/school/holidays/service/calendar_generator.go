// file: internals/features/school/holidays/service/calendar_generator.go
package service

import (
	"sort"
	"time"

	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================================================
   Calendar Generator — murni, deterministik, tanpa I/O.
   Output: daftar (tanggal, nama) terurut naik untuk satu tahun:
   - ~7 libur nasional tanggal-tetap (satu yurisdiksi)
   - semua hari Minggu
   Libur mengambang/lunar TIDAK dihitung (non-goal; butuh kalender
   astronomis dan berbeda per daerah).
   ========================================================= */

// GeneratedHoliday satu entri kalender hasil generator.
type GeneratedHoliday struct {
	Date dbtime.DateYMD
	Name string
}

type fixedHoliday struct {
	Month time.Month
	Day   int
	Name  string
}

// Libur nasional tanggal-tetap.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "New Year's Day"},
	{time.January, 26, "Republic Day"},
	{time.May, 1, "Labour Day"},
	{time.August, 15, "Independence Day"},
	{time.October, 2, "Gandhi Jayanti"},
	{time.November, 14, "Children's Day"},
	{time.December, 25, "Christmas Day"},
}

const sundayName = "Sunday"

// GenerateYearlyHolidays mengembalikan kalender libur satu tahun, urut tanggal.
// Kalau libur tetap jatuh di hari Minggu, nama libur tetap yang dipakai
// (satu baris per tanggal — selaras dengan unique (school_id, date)).
func GenerateYearlyHolidays(year int) []GeneratedHoliday {
	byDate := make(map[string]GeneratedHoliday, 64)

	for _, fh := range fixedHolidays {
		d := dbtime.NewDateYMD(year, fh.Month, fh.Day)
		byDate[d.String()] = GeneratedHoliday{Date: d, Name: fh.Name}
	}

	// Minggu pertama tahun tsb, lalu loncat 7 hari sampai ganti tahun.
	d := dbtime.NewDateYMD(year, time.January, 1)
	for !d.IsSunday() {
		d = d.AddDays(1)
	}
	for d.Year() == year {
		if _, exists := byDate[d.String()]; !exists {
			byDate[d.String()] = GeneratedHoliday{Date: d, Name: sundayName}
		}
		d = d.AddDays(7)
	}

	out := make([]GeneratedHoliday, 0, len(byDate))
	for _, gh := range byDate {
		out = append(out, gh)
	}
	// format YYYY-MM-DD fixed-width → sort leksikografis = sort kronologis
	sort.Slice(out, func(i, j int) bool { return out[i].Date.String() < out[j].Date.String() })
	return out
}
