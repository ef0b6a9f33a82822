package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidGrade    = errors.New("invalid grade value")
	ErrDuplicateGrade  = errors.New("grade already recorded")
	ErrSubjectNotFound = errors.New("subject not found")
)

type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s",
		e.Field, e.Value, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}
