package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePGErr struct {
	state string
	msg   string
}

func (e *fakePGErr) SQLState() string { return e.state }
func (e *fakePGErr) Error() string    { return e.msg }

func TestIsUniqueViolation(t *testing.T) {
	uniq := &fakePGErr{state: "23505", msg: `duplicate key value violates unique constraint "ux_school_holidays_school_date"`}
	assert.True(t, IsUniqueViolation(uniq))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create holiday: %w", uniq)))

	fk := &fakePGErr{state: "23503", msg: "fk violation"}
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
}

func TestPGConstraintName(t *testing.T) {
	uniq := &fakePGErr{state: "23505", msg: `duplicate key value violates unique constraint "ux_student_attendances_person_date"`}
	assert.Equal(t, "ux_student_attendances_person_date", PGConstraintName(uniq))

	assert.Equal(t, "", PGConstraintName(errors.New("no constraint here")))
	assert.Equal(t, "", PGConstraintName(nil))
}
