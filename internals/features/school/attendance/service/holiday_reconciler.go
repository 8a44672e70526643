// file: internals/features/school/attendance/service/holiday_reconciler.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attModel "schoolku_backend/internals/features/school/attendance/model"
	holModel "schoolku_backend/internals/features/school/holidays/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================================================
   HolidayReconciler — mesin clear-then-apply.

   Per bulan yang diminta:
   1) CLEAR : hapus semua baris absensi ber-status holiday pada rentang
      bulan itu (3 ledger). Jalan walau set libur kosong — begitulah
      stempel basi ikut hilang saat libur dihapus dari kalender.
   2) APPLY : kalau ada libur, cross-product (person × tanggal libur)
      di-upsert status=holiday. Konflik (person_id, date) DITIMPA —
      libur menang atas status apa pun yang sudah tercatat hari itu.

   Seluruh bulan dalam satu panggilan = SATU transaksi per tenant;
   gagal di tengah → rollback semua bulan panggilan itu.
   ========================================================= */

// ReconciliationError — kegagalan di dalam transaksi reconcile. Batch
// tenant-bulan panggilan itu sudah di-rollback. ConstraintName (kalau
// kebaca) membedakan masalah skema vs masalah data.
type ReconciliationError struct {
	SchoolID       uuid.UUID
	Month          int
	ConstraintName string
	Err            error
}

func (e *ReconciliationError) Error() string {
	if e.ConstraintName != "" {
		return fmt.Sprintf("attendance reconciliation failed (school=%s month=%d constraint=%s): %v",
			e.SchoolID, e.Month, e.ConstraintName, e.Err)
	}
	return fmt.Sprintf("attendance reconciliation failed (school=%s month=%d): %v", e.SchoolID, e.Month, e.Err)
}

func (e *ReconciliationError) Unwrap() error { return e.Err }

// DefaultBatchSize — batas chunk insert supaya parameter list tidak meledak,
// bukan untuk cancellation.
const DefaultBatchSize = 2000

// AllMonths — dipakai endpoint auto-mark dengan month="all".
func AllMonths() []int { return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12} }

type HolidayReconciler struct {
	DB        *gorm.DB
	BatchSize int
}

func NewHolidayReconciler(db *gorm.DB) *HolidayReconciler {
	return &HolidayReconciler{DB: db, BatchSize: DefaultBatchSize}
}

// Reconcile menjalankan clear+apply untuk bulan-bulan yang diminta.
// Mengembalikan jumlah HARI kalender yang ditarget (bukan jumlah baris).
func (r *HolidayReconciler) Reconcile(ctx context.Context, schoolID uuid.UUID, months []int, year int) (int, error) {
	if schoolID == uuid.Nil {
		return 0, fmt.Errorf("reconcile: school id is required")
	}
	months, err := NormalizeMonths(months)
	if err != nil {
		return 0, err
	}

	daysTargeted := 0
	txErr := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range months {
			n, er := r.reconcileMonth(tx, schoolID, year, time.Month(m))
			if er != nil {
				return &ReconciliationError{
					SchoolID:       schoolID,
					Month:          m,
					ConstraintName: helper.PGConstraintName(er),
					Err:            er,
				}
			}
			daysTargeted += n
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	log.Printf("[HolidayReconciler] school=%s year=%d months=%v days=%d", schoolID, year, months, daysTargeted)
	return daysTargeted, nil
}

func (r *HolidayReconciler) reconcileMonth(tx *gorm.DB, schoolID uuid.UUID, year int, month time.Month) (int, error) {
	first, last := dbtime.MonthRange(year, month)

	// 1) CLEAR — tanpa syarat, walau bulan ini tidak punya libur
	if err := r.clearHolidayRange(tx, schoolID, first, last); err != nil {
		return 0, err
	}

	// 2) set H: tanggal libur tenant dalam rentang
	var dates []dbtime.DateYMD
	if err := tx.Model(&holModel.SchoolHolidayModel{}).
		Where("school_holiday_school_id = ?", schoolID).
		Where("school_holiday_date BETWEEN ? AND ?", first, last).
		Order("school_holiday_date ASC").
		Pluck("school_holiday_date", &dates).Error; err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	// 3) APPLY ke tiga ledger
	if err := r.ApplyDates(tx, schoolID, dates); err != nil {
		return 0, err
	}
	return len(dates), nil
}

// clearHolidayRange menghapus HANYA baris ber-status holiday; status lain
// milik manusia/subsistem lain dan tidak boleh disentuh fase ini.
func (r *HolidayReconciler) clearHolidayRange(tx *gorm.DB, schoolID uuid.UUID, first, last dbtime.DateYMD) error {
	if err := tx.
		Where("student_attendance_school_id = ?", schoolID).
		Where("student_attendance_date BETWEEN ? AND ?", first, last).
		Where("student_attendance_status = ?", attModel.AttendanceHoliday).
		Delete(&attModel.StudentAttendanceModel{}).Error; err != nil {
		return err
	}
	if err := tx.
		Where("teacher_attendance_school_id = ?", schoolID).
		Where("teacher_attendance_date BETWEEN ? AND ?", first, last).
		Where("teacher_attendance_status = ?", attModel.AttendanceHoliday).
		Delete(&attModel.TeacherAttendanceModel{}).Error; err != nil {
		return err
	}
	return tx.
		Where("staff_attendance_school_id = ?", schoolID).
		Where("staff_attendance_date BETWEEN ? AND ?", first, last).
		Where("staff_attendance_status = ?", attModel.AttendanceHoliday).
		Delete(&attModel.StaffAttendanceModel{}).Error
}

// ApplyDates menstempel status holiday ke tiga ledger untuk tanggal-tanggal
// tsb (dipakai juga oleh jalur "add holiday" untuk satu tanggal). Harus
// dipanggil di dalam transaksi pemanggil.
func (r *HolidayReconciler) ApplyDates(tx *gorm.DB, schoolID uuid.UUID, dates []dbtime.DateYMD) error {
	if len(dates) == 0 {
		return nil
	}
	batch := r.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	// siswa — yang ditandai keluar/terhapus dieksklusi
	var studentIDs []uuid.UUID
	if err := tx.Model(&peopleModel.StudentModel{}).
		Where("student_school_id = ?", schoolID).
		Where("student_deleted_at IS NULL").
		Pluck("student_id", &studentIDs).Error; err != nil {
		return err
	}
	if rows := BuildStudentHolidayRows(schoolID, studentIDs, dates); len(rows) > 0 {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_attendance_student_id"}, {Name: "student_attendance_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"student_attendance_status":     attModel.AttendanceHoliday,
				"student_attendance_updated_at": gorm.Expr("NOW()"),
			}),
		}).CreateInBatches(rows, batch).Error; err != nil {
			return err
		}
	}

	// guru
	var teacherIDs []uuid.UUID
	if err := tx.Model(&peopleModel.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID).
		Where("teacher_deleted_at IS NULL").
		Pluck("teacher_id", &teacherIDs).Error; err != nil {
		return err
	}
	if rows := BuildTeacherHolidayRows(schoolID, teacherIDs, dates); len(rows) > 0 {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "teacher_attendance_teacher_id"}, {Name: "teacher_attendance_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"teacher_attendance_status":     attModel.AttendanceHoliday,
				"teacher_attendance_updated_at": gorm.Expr("NOW()"),
			}),
		}).CreateInBatches(rows, batch).Error; err != nil {
			return err
		}
	}

	// pegawai
	var staffIDs []uuid.UUID
	if err := tx.Model(&peopleModel.StaffModel{}).
		Where("staff_school_id = ?", schoolID).
		Where("staff_deleted_at IS NULL").
		Pluck("staff_id", &staffIDs).Error; err != nil {
		return err
	}
	if rows := BuildStaffHolidayRows(schoolID, staffIDs, dates); len(rows) > 0 {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "staff_attendance_staff_id"}, {Name: "staff_attendance_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"staff_attendance_status":     attModel.AttendanceHoliday,
				"staff_attendance_updated_at": gorm.Expr("NOW()"),
			}),
		}).CreateInBatches(rows, batch).Error; err != nil {
			return err
		}
	}
	return nil
}

/* =========================
   Builder cross-product (murni, gampang dites)
   ========================= */

func BuildStudentHolidayRows(schoolID uuid.UUID, studentIDs []uuid.UUID, dates []dbtime.DateYMD) []attModel.StudentAttendanceModel {
	rows := make([]attModel.StudentAttendanceModel, 0, len(studentIDs)*len(dates))
	for _, sid := range studentIDs {
		for _, d := range dates {
			rows = append(rows, attModel.StudentAttendanceModel{
				StudentAttendanceSchoolID:  schoolID,
				StudentAttendanceStudentID: sid,
				StudentAttendanceDate:      d,
				StudentAttendanceStatus:    attModel.AttendanceHoliday,
			})
		}
	}
	return rows
}

func BuildTeacherHolidayRows(schoolID uuid.UUID, teacherIDs []uuid.UUID, dates []dbtime.DateYMD) []attModel.TeacherAttendanceModel {
	rows := make([]attModel.TeacherAttendanceModel, 0, len(teacherIDs)*len(dates))
	for _, tid := range teacherIDs {
		for _, d := range dates {
			rows = append(rows, attModel.TeacherAttendanceModel{
				TeacherAttendanceSchoolID:  schoolID,
				TeacherAttendanceTeacherID: tid,
				TeacherAttendanceDate:      d,
				TeacherAttendanceStatus:    attModel.AttendanceHoliday,
			})
		}
	}
	return rows
}

func BuildStaffHolidayRows(schoolID uuid.UUID, staffIDs []uuid.UUID, dates []dbtime.DateYMD) []attModel.StaffAttendanceModel {
	rows := make([]attModel.StaffAttendanceModel, 0, len(staffIDs)*len(dates))
	for _, pid := range staffIDs {
		for _, d := range dates {
			rows = append(rows, attModel.StaffAttendanceModel{
				StaffAttendanceSchoolID: schoolID,
				StaffAttendanceStaffID:  pid,
				StaffAttendanceDate:     d,
				StaffAttendanceStatus:   attModel.AttendanceHoliday,
			})
		}
	}
	return rows
}

// NormalizeMonths memvalidasi & menurutkan daftar bulan (1..12), dedup.
// nil/kosong dianggap error — pemanggil harus eksplisit ("all" → AllMonths()).
func NormalizeMonths(months []int) ([]int, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("reconcile: at least one month is required")
	}
	seen := map[int]bool{}
	out := make([]int, 0, len(months))
	for _, m := range months {
		if m < 1 || m > 12 {
			return nil, fmt.Errorf("reconcile: invalid month %d (want 1-12)", m)
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}
