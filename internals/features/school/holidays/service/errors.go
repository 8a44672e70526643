// file: internals/features/school/holidays/service/errors.go
package service

import (
	"errors"
	"fmt"
)

/* =========================================================
   Taksonomi error engine libur/absensi
   ========================================================= */

var (
	// ErrDuplicateHoliday — unique (school_id, date) kena saat admin add.
	// Tidak pernah di-merge diam-diam; jalur bulk memang pakai upsert.
	ErrDuplicateHoliday = errors.New("holiday already exists for this date")

	// ErrHolidayNotFound — target update/delete tidak ada untuk tenant tsb.
	// Predicate SELALU menyertakan school_id, tidak pernah id saja.
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrTenantMissing — school_id tidak bisa di-resolve dari konteks.
	ErrTenantMissing = errors.New("no active school in request context")
)

// PartialPropagationError — broadcast/sync gagal di tengah daftar tanggal.
// Tanggal yang sudah commit tetap commit (best-effort, bukan all-or-nothing).
type PartialPropagationError struct {
	Done   int // tanggal yang sudah berhasil sebelum gagal
	Total  int
	AtDate string
	Err    error
}

func (e *PartialPropagationError) Error() string {
	return fmt.Sprintf("propagation stopped at %s (%d/%d dates committed): %v",
		e.AtDate, e.Done, e.Total, e.Err)
}

func (e *PartialPropagationError) Unwrap() error { return e.Err }
