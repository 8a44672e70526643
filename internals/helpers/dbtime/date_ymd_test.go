package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateYMD(t *testing.T) {
	d, err := ParseDateYMD("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-15", d.String())
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDateYMD("15-08-2026")
	assert.Error(t, err)
	_, err = ParseDateYMD("")
	assert.Error(t, err)
	_, err = ParseDateYMD("2026-02-30")
	assert.Error(t, err)
}

func TestDateYMD_JSONRoundtrip(t *testing.T) {
	d := NewDateYMD(2026, time.January, 26)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-26"`, string(b))

	var back DateYMD
	require.NoError(t, back.UnmarshalJSON(b))
	assert.True(t, d.Equal(back))
}

func TestDateYMD_ScanVariants(t *testing.T) {
	want := "2026-12-25"

	var fromTime DateYMD
	require.NoError(t, fromTime.Scan(time.Date(2026, 12, 25, 17, 30, 0, 0, time.FixedZone("WIB", 7*3600))))
	assert.Equal(t, want, fromTime.String())

	var fromString DateYMD
	require.NoError(t, fromString.Scan("2026-12-25"))
	assert.Equal(t, want, fromString.String())

	// driver bisa kirim timestamp text; hanya token tanggal yang dipakai
	var fromTimestamp DateYMD
	require.NoError(t, fromTimestamp.Scan([]byte("2026-12-25T00:00:00Z")))
	assert.Equal(t, want, fromTimestamp.String())

	var fromNil DateYMD
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())
}

func TestDateYMD_Value(t *testing.T) {
	d := NewDateYMD(2026, time.May, 1)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", v)
}

func TestDateYMD_SundayAndArithmetic(t *testing.T) {
	// 4 Januari 2026 adalah Minggu
	sun := NewDateYMD(2026, time.January, 4)
	assert.True(t, sun.IsSunday())
	assert.False(t, sun.AddDays(1).IsSunday())
	assert.True(t, sun.AddDays(7).IsSunday())

	assert.True(t, sun.Before(sun.AddDays(1)))
	assert.True(t, sun.AddDays(1).After(sun))
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	assert.Equal(t, "2024-02-01", first.String())
	assert.Equal(t, "2024-02-29", last.String()) // kabisat

	first, last = MonthRange(2026, time.February)
	assert.Equal(t, "2026-02-01", first.String())
	assert.Equal(t, "2026-02-28", last.String())

	first, last = MonthRange(2026, time.December)
	assert.Equal(t, "2026-12-01", first.String())
	assert.Equal(t, "2026-12-31", last.String())
}

func TestYearRange(t *testing.T) {
	first, last := YearRange(2026)
	assert.Equal(t, "2026-01-01", first.String())
	assert.Equal(t, "2026-12-31", last.String())
}
