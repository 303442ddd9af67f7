package services

import "github.com/mkochanov/listkeeper/internal/common"

// ValidationError is raised before any network call. Error() is the exact
// text shown to the user; errors.Is matches common.ErrValidation.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Is(target error) bool { return target == common.ErrValidation }

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}
