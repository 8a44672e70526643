package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialPropagationError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &PartialPropagationError{Done: 42, Total: 59, AtDate: "2026-07-12", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "2026-07-12")
	assert.Contains(t, err.Error(), "42/59")

	var perr *PartialPropagationError
	assert.True(t, errors.As(error(err), &perr))
	assert.Equal(t, 42, perr.Done)
}
