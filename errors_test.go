package clustermap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avoronov/clustermap"
)

func TestErrorWithMessage(t *testing.T) {
	newErr := clustermap.ErrInvalidPath.WithMessage("asdfqwerty")
	assert.Equal(
		t, "No such file or directory: asdfqwerty", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, clustermap.ErrInvalidPath)
}

func TestErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := clustermap.ErrNoSession.Wrap(originalErr)
	expectedMessage := "No cluster map loaded: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, clustermap.ErrNoSession, "sentinel not set as parent")
}
