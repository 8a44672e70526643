// file: internals/features/school/attendance/model/attendance_status.go
package model

// AttendanceStatus merepresentasikan enum attendance_status_enum di Postgres.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceLeave   AttendanceStatus = "leave"
	AttendanceSick    AttendanceStatus = "sick"

	// AttendanceHoliday adalah satu-satunya status yang boleh ditulis /
	// dihapus oleh HolidayReconciler. Status lain milik manusia atau
	// subsistem lain (mis. check-in biometrik) dan tidak pernah disentuh
	// di luar fase apply (libur menang atas status yang sudah ada).
	AttendanceHoliday AttendanceStatus = "holiday"
)
