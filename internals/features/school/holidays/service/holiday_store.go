// file: internals/features/school/holidays/service/holiday_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attService "schoolku_backend/internals/features/school/attendance/service"
	evService "schoolku_backend/internals/features/school/calendar/service"
	m "schoolku_backend/internals/features/school/holidays/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================================================
   HolidayStore — daftar libur kanonik per tenant-tahun.
   Setiap mutasi libur + mirror event-nya jalan dalam SATU
   transaksi; mirror dicari via tanggal (lihat EventMirror).
   Jalur admin = tryCreate (konflik DITOLAK) — kebalikan dari
   upsert milik reconciler/broadcast.
   ========================================================= */

type HolidayStore struct {
	DB         *gorm.DB
	Reconciler *attService.HolidayReconciler
}

func NewHolidayStore(db *gorm.DB) *HolidayStore {
	return &HolidayStore{DB: db, Reconciler: attService.NewHolidayReconciler(db)}
}

// List — semua libur tenant, urut tanggal naik; year opsional.
func (s *HolidayStore) List(ctx context.Context, schoolID uuid.UUID, year *int) ([]m.SchoolHolidayModel, error) {
	q := s.DB.WithContext(ctx).
		Where("school_holiday_school_id = ?", schoolID)
	if year != nil {
		first, last := dbtime.YearRange(*year)
		q = q.Where("school_holiday_date BETWEEN ? AND ?", first, last)
	}
	var out []m.SchoolHolidayModel
	if err := q.Order("school_holiday_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Create menambah satu libur + mirror event + stempel absensi tanggal itu.
// Hari Minggu tidak di-stempel (sudah libur mingguan lewat auto-mark).
// Duplikat (school_id, date) → ErrDuplicateHoliday, tidak di-merge.
func (s *HolidayStore) Create(ctx context.Context, h *m.SchoolHolidayModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(h).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return ErrDuplicateHoliday
			}
			return err
		}
		if err := evService.CreateForHoliday(tx, h); err != nil {
			return err
		}
		if !h.SchoolHolidayDate.IsSunday() {
			return s.Reconciler.ApplyDates(tx, h.SchoolHolidaySchoolID, []dbtime.DateYMD{h.SchoolHolidayDate})
		}
		return nil
	})
}

// Update — predicate SELALU id + school_id (isolasi tenant); mirror
// direlokasi via tanggal LAMA.
func (s *HolidayStore) Update(ctx context.Context, id, schoolID uuid.UUID, date dbtime.DateYMD, name string, isPaid bool) (*m.SchoolHolidayModel, error) {
	var updated m.SchoolHolidayModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing m.SchoolHolidayModel
		if err := tx.
			Where("school_holiday_id = ?", id).
			Where("school_holiday_school_id = ?", schoolID).
			First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHolidayNotFound
			}
			return err
		}

		oldDate := existing.SchoolHolidayDate
		existing.SchoolHolidayDate = date
		existing.SchoolHolidayName = name
		existing.SchoolHolidayIsPaid = isPaid

		if err := tx.Save(&existing).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return ErrDuplicateHoliday
			}
			return err
		}
		if err := evService.RelocateForHoliday(tx, &existing, oldDate); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete menghapus libur (hard delete) + mirror event-nya via tanggal.
// Stempel absensi yang sudah terlanjur ada dibereskan oleh auto-mark
// berikutnya (fase clear).
func (s *HolidayStore) Delete(ctx context.Context, id, schoolID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing m.SchoolHolidayModel
		if err := tx.
			Where("school_holiday_id = ?", id).
			Where("school_holiday_school_id = ?", schoolID).
			First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHolidayNotFound
			}
			return err
		}
		if err := tx.
			Where("school_holiday_id = ?", id).
			Where("school_holiday_school_id = ?", schoolID).
			Delete(&m.SchoolHolidayModel{}).Error; err != nil {
			return err
		}
		return evService.RemoveForHolidayDate(tx, schoolID, existing.SchoolHolidayDate)
	})
}
