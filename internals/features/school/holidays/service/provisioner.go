// file: internals/features/school/holidays/service/provisioner.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	evService "schoolku_backend/internals/features/school/calendar/service"
	m "schoolku_backend/internals/features/school/holidays/model"
)

/* =========================================================
   CalendarProvisioner — trigger saat login: pastikan kalender
   libur tahun berjalan (dan tahun depan) sudah terisi, tanpa
   bikin login nunggu dan tanpa kerja dobel.
   ========================================================= */

// PopulatedThreshold: > 5 baris libur = tahun dianggap sudah terisi.
// Ambang warisan — cek jumlah murahan, BUKAN verifikasi cakupan tanggal.
// Jangan dianggap bermakna semantik.
const PopulatedThreshold = 5

type CalendarProvisioner struct {
	DB *gorm.DB
}

func NewCalendarProvisioner(db *gorm.DB) *CalendarProvisioner {
	return &CalendarProvisioner{DB: db}
}

// Ensure — idempoten, aman dipanggil di setiap login.
// Error di-log lalu DITELAN: trigger ini tidak boleh menggagalkan
// atau memblokir alur login pemanggilnya.
func (p *CalendarProvisioner) Ensure(ctx context.Context, schoolID uuid.UUID, year int) {
	if schoolID == uuid.Nil {
		return
	}
	if err := p.ensure(ctx, schoolID, year); err != nil {
		log.Printf("[CalendarProvisioner] school=%s year=%d err: %v", schoolID, year, err)
	}
}

func (p *CalendarProvisioner) ensure(ctx context.Context, schoolID uuid.UUID, year int) error {
	populated, err := p.yearPopulated(ctx, schoolID, year)
	if err != nil {
		return err
	}
	if populated {
		return nil
	}

	generated := GenerateYearlyHolidays(year)
	rows := make([]m.SchoolHolidayModel, 0, len(generated))
	for _, gh := range generated {
		rows = append(rows, m.SchoolHolidayModel{
			SchoolHolidaySchoolID: schoolID,
			SchoolHolidayDate:     gh.Date,
			SchoolHolidayName:     gh.Name,
			SchoolHolidayIsPaid:   true,
		})
	}

	return p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// DO NOTHING: pemanggil concurrent yang keduluan insert tanggal
		// yang sama cukup di-skip, bukan error
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&rows).Error; err != nil {
			return err
		}
		// ambil ulang baris tahun itu supaya mirror membawa id asli
		// (baris yang kalah konflik tidak dapat id dari DO NOTHING)
		var stored []m.SchoolHolidayModel
		if err := tx.
			Where("school_holiday_school_id = ?", schoolID).
			Where("EXTRACT(YEAR FROM school_holiday_date) = ?", year).
			Order("school_holiday_date ASC").
			Find(&stored).Error; err != nil {
			return err
		}
		// mirror event: cek-ada-dulu-baru-insert (event tidak punya
		// unique key, jadi tidak bisa DO NOTHING di situ)
		for i := range stored {
			if err := evService.EnsureForHoliday(tx, &stored[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *CalendarProvisioner) yearPopulated(ctx context.Context, schoolID uuid.UUID, year int) (bool, error) {
	var count int64
	if err := p.DB.WithContext(ctx).Model(&m.SchoolHolidayModel{}).
		Where("school_holiday_school_id = ?", schoolID).
		Where("EXTRACT(YEAR FROM school_holiday_date) = ?", year).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > PopulatedThreshold, nil
}
