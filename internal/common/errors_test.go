package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	base := errors.New("boom")

	err := NewUserError("could not open history", base)
	assert.Equal(t, "could not open history: boom", err.Error())
	assert.ErrorIs(t, err, base)

	var ue *UserError
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, "could not open history", ue.UserMessage)

	assert.Equal(t, "plain", NewUserError("plain", nil).Error())
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("cargo", errors.New("unknown cargo type \"liquid\""))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "cargo")
}
