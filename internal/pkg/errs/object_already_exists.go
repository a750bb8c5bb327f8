package errs

import (
	"errors"
	"fmt"
)

var ErrObjectAlreadyExists = errors.New("object already exists")

// ObjectAlreadyExistsError reports a write rejected by a uniqueness rule.
type ObjectAlreadyExistsError struct {
	ParamName string
	Key       any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, key any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Key:       key,
	}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, key any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Key:       key,
		Cause:     cause,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %v (cause: %v)", ErrObjectAlreadyExists, e.ParamName, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %v", ErrObjectAlreadyExists, e.ParamName, e.Key)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}
