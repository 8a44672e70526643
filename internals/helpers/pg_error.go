// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"regexp"
)

/* ===============================
   PG error mapping (tanpa import driver)
=================================*/

// pgSQLErr — cukup interface lokal; pgconn.PgError memenuhi ini.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsUniqueViolation: SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}

// IsForeignKeyViolation: SQLSTATE 23503.
func IsForeignKeyViolation(err error) bool {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23503"
	}
	return false
}

var reConstraint = regexp.MustCompile(`constraint "([^"]+)"`)

// PGConstraintName mengambil nama constraint dari pesan error driver
// (best-effort; format pg: ... violates unique constraint "ux_...").
func PGConstraintName(err error) string {
	if err == nil {
		return ""
	}
	if m := reConstraint.FindStringSubmatch(err.Error()); len(m) == 2 {
		return m[1]
	}
	return ""
}
