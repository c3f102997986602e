// Package convert translates API access methods between their wire form
// (package wire) and the domain model (package model).
//
// Encoders are total. Decoders validate untrusted input and report every
// failure as an *InvalidArgumentError, which matches ErrInvalidArgument under
// errors.Is. All functions are pure and safe for concurrent use.
package convert

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error kind decoders produce.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes why a wire message was rejected. Err, when
// set, is the model-level cause (model.ErrInvalidAddress and friends).
type InvalidArgumentError struct {
	Message string
	Err     error
}

func (e *InvalidArgumentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", ErrInvalidArgument, e.Message)
	}
	return fmt.Sprintf("%v: %s: %v", ErrInvalidArgument, e.Message, e.Err)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

func invalid(cause error, format string, args ...interface{}) error {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...), Err: cause}
}

// withContext prefixes the message of an InvalidArgumentError so nested
// failures read outermost first.
func withContext(err error, format string, args ...interface{}) error {
	ctx := fmt.Sprintf(format, args...)
	var ie *InvalidArgumentError
	if errors.As(err, &ie) {
		return &InvalidArgumentError{Message: ctx + ": " + ie.Message, Err: ie.Err}
	}
	return &InvalidArgumentError{Message: ctx, Err: err}
}
