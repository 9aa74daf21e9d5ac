package clustermap

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Error is the error type returned across the core boundary. Errors can be
// annotated with context or wrapped around an underlying cause without losing
// their identity for errors.Is checks.
type Error interface {
	error
	WithMessage(message string) Error
	Wrap(err error) Error
}

type baseError string

const rootError = baseError("")

var ErrInvalidPath = rootError.WithMessage("No such file or directory")
var ErrNoSession = rootError.WithMessage("No cluster map loaded")
var ErrVolumeUnreadable = rootError.WithMessage("Volume root cannot be read")
var ErrUnknownTotalClusters = rootError.WithMessage("Total cluster count unavailable")

func (e baseError) Error() string {
	return string(e)
}

func (e baseError) WithMessage(message string) Error {
	return sessionError{
		message:       message,
		originalError: e,
	}
}

func (e baseError) Wrap(err error) Error {
	return sessionError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type sessionError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a
// string describing the error.
func (e sessionError) Error() string {
	return e.message
}

func (e sessionError) WithMessage(message string) Error {
	return sessionError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e sessionError) Wrap(err error) Error {
	return sessionError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e sessionError) Unwrap() error {
	return e.originalError
}
