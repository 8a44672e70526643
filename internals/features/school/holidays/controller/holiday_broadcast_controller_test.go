package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svc "schoolku_backend/internals/features/school/holidays/service"
)

// Broadcast best-effort yang gagal di tengah: status 500, tapi body WAJIB
// tetap membawa BroadcastResult supaya caller tahu tanggal mana yang sudah
// commit. Error polos tanpa payload = caller buta terhadap partial commit.
func TestWritePartialPropagationCarriesResult(t *testing.T) {
	res := &svc.BroadcastResult{
		Dates: []svc.BroadcastDateOutcome{
			{Date: "2026-01-01", Name: "New Year's Day", Schools: 12},
			{Date: "2026-01-04", Name: "Weekly Holiday", Schools: 0, Error: "pq: deadlock detected"},
		},
		SchoolsAffected: 12,
		HolidaysCount:   1,
		Partial:         true,
	}
	perr := &svc.PartialPropagationError{
		Done:   1,
		Total:  59,
		AtDate: "2026-01-04",
		Err:    errors.New("pq: deadlock detected"),
	}

	app := fiber.New()
	app.Post("/broadcast", func(c *fiber.Ctx) error {
		return writePartialPropagation(c, res, perr)
	})

	req := httptest.NewRequest(http.MethodPost, "/broadcast", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		ErrorCode string `json:"error_code"`
		Data      struct {
			Result struct {
				Dates []struct {
					Date  string `json:"date"`
					Error string `json:"error"`
				} `json:"dates"`
				Partial bool `json:"partial"`
			} `json:"result"`
			DatesCommitted int    `json:"dates_committed"`
			DatesTotal     int    `json:"dates_total"`
			FailedAtDate   string `json:"failed_at_date"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))

	assert.False(t, out.Success)
	assert.Equal(t, "INTERNAL_ERROR", out.ErrorCode)
	assert.Contains(t, out.Message, "1/59")
	assert.Contains(t, out.Message, "2026-01-04")

	// hasil per tanggal harus utuh sampai ke caller
	assert.Equal(t, 1, out.Data.DatesCommitted)
	assert.Equal(t, 59, out.Data.DatesTotal)
	assert.Equal(t, "2026-01-04", out.Data.FailedAtDate)
	assert.True(t, out.Data.Result.Partial)
	require.Len(t, out.Data.Result.Dates, 2)
	assert.Equal(t, "2026-01-01", out.Data.Result.Dates[0].Date)
	assert.Empty(t, out.Data.Result.Dates[0].Error)
	assert.Equal(t, "pq: deadlock detected", out.Data.Result.Dates[1].Error)
}
