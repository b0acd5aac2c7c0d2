package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailableWrapping(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Unavailable(cause)

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRejectedWrapping(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := Rejected(cause)

	assert.ErrorIs(t, err, ErrRejected)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnavailable)
}
