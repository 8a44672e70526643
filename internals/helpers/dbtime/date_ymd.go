// file: internals/helpers/dbtime/date_ymd.go
package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

/* =========================================================
   DateYMD — tanggal kalender murni (tanpa jam, tanpa zona)
   - Disimpan & dibandingkan sebagai "YYYY-MM-DD"
   - Kolom DB: type:date
   Catatan: JANGAN pakai time.Time/timestamptz untuk tanggal
   libur — konversi zona bikin geser satu hari.
   ========================================================= */

const LayoutYMD = "2006-01-02"

type DateYMD struct {
	t time.Time // selalu midnight UTC; hanya komponen tanggal yang dipakai
}

// ParseDateYMD menerima string "YYYY-MM-DD" (strict).
func ParseDateYMD(s string) (DateYMD, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(LayoutYMD, s)
	if err != nil {
		return DateYMD{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return DateYMD{t: t}, nil
}

// NewDateYMD dari komponen tahun-bulan-hari.
func NewDateYMD(year int, month time.Month, day int) DateYMD {
	return DateYMD{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime membuang komponen jam & zona (ambil tanggal apa adanya).
func DateFromTime(t time.Time) DateYMD {
	y, m, d := t.Date()
	return NewDateYMD(y, m, d)
}

func TodayUTC() DateYMD { return DateFromTime(time.Now().UTC()) }

func (d DateYMD) String() string   { return d.t.Format(LayoutYMD) }
func (d DateYMD) IsZero() bool     { return d.t.IsZero() }
func (d DateYMD) Year() int        { return d.t.Year() }
func (d DateYMD) Month() time.Month { return d.t.Month() }
func (d DateYMD) Day() int         { return d.t.Day() }

func (d DateYMD) Weekday() time.Weekday { return d.t.Weekday() }
func (d DateYMD) IsSunday() bool        { return d.t.Weekday() == time.Sunday }

func (d DateYMD) AddDays(n int) DateYMD { return DateYMD{t: d.t.AddDate(0, 0, n)} }

func (d DateYMD) Before(o DateYMD) bool { return d.t.Before(o.t) }
func (d DateYMD) After(o DateYMD) bool  { return d.t.After(o.t) }
func (d DateYMD) Equal(o DateYMD) bool  { return d.t.Equal(o.t) }

// Time mengembalikan midnight UTC — hanya untuk interop (Format dsb).
func (d DateYMD) Time() time.Time { return d.t }

/* =========================
   JSON: "YYYY-MM-DD"
   ========================= */

func (d DateYMD) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateYMD) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = DateYMD{}
		return nil
	}
	v, err := ParseDateYMD(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

/* =========================
   SQL: Scanner + Valuer
   ========================= */

// Scan menerima time.Time (driver pg) atau string/[]byte "YYYY-MM-DD".
func (d *DateYMD) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = DateYMD{}
		return nil
	case time.Time:
		*d = DateFromTime(v)
		return nil
	case string:
		got, err := ParseDateYMD(firstToken(v))
		if err != nil {
			return err
		}
		*d = got
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("dbtime: cannot scan %T into DateYMD", src)
	}
}

// Value selalu string "YYYY-MM-DD" supaya driver tidak ikut campur soal zona.
func (d DateYMD) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// GormDataType memaksa kolom DATE.
func (DateYMD) GormDataType() string { return "date" }

// beberapa driver mengirim "2006-01-02T00:00:00Z" — ambil bagian tanggalnya saja
func firstToken(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > len(LayoutYMD) {
		return s[:len(LayoutYMD)]
	}
	return s
}

/* =========================================================
   Range bulanan — dipakai reconciler auto-mark
   ========================================================= */

// MonthRange mengembalikan tanggal pertama & terakhir bulan tsb.
func MonthRange(year int, month time.Month) (first, last DateYMD) {
	first = NewDateYMD(year, month, 1)
	last = DateYMD{t: first.t.AddDate(0, 1, -1)}
	return
}

// YearRange: 1 Januari s/d 31 Desember.
func YearRange(year int) (first, last DateYMD) {
	return NewDateYMD(year, time.January, 1), NewDateYMD(year, time.December, 31)
}
