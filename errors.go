package protoconv

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrMissingRequired matches every *MissingRequiredError through errors.Is.
var ErrMissingRequired = errors.New("required value missing")

// MissingRequiredError signals that an optional wire value was absent
// where a required domain value was expected.
type MissingRequiredError struct {
	// Field names the absent value. It may be empty.
	Field string
}

func (e *MissingRequiredError) Error() string {
	if e.Field == "" {
		return ErrMissingRequired.Error()
	}
	return fmt.Sprintf("required value %q missing", e.Field)
}

func (e *MissingRequiredError) Is(target error) bool {
	return target == ErrMissingRequired
}

func (e *MissingRequiredError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// IsMissingRequired checks whether an error is a MissingRequiredError and returns it.
func IsMissingRequired(err error) (*MissingRequiredError, bool) {
	var m *MissingRequiredError
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

// TimestampError signals that a (seconds, nanos) pair does not denote a
// valid calendar instant. The raw wire values are kept for diagnosis.
type TimestampError struct {
	Seconds int64
	Nanos   int64
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("failed to parse timestamp: %d s and %d ns", e.Seconds, e.Nanos)
}

func (e *TimestampError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// NewTimestampError creates a new TimestampError.
func NewTimestampError(seconds, nanos int64) *TimestampError {
	return &TimestampError{Seconds: seconds, Nanos: nanos}
}

// IsTimestamp checks whether an error is a TimestampError and returns it.
func IsTimestamp(err error) (*TimestampError, bool) {
	var t *TimestampError
	if errors.As(err, &t) {
		return t, true
	}
	return nil, false
}

// ElementError reports the element that aborted a sequence conversion.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

func (e *ElementError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// IsElement checks whether an error is an ElementError and returns it.
func IsElement(err error) (*ElementError, bool) {
	var el *ElementError
	if errors.As(err, &el) {
		return el, true
	}
	return nil, false
}
