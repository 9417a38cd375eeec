package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrBusinessRule      = errors.New("business rule violated")
	ErrOutOfServiceArea  = errors.New("out of service area")
	ErrConflict          = errors.New("conflict")
)

// sanitize collapses newlines so formatted errors stay on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates that a mandatory value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced object does not exist.
// IDs holds every missing identifier so callers can enumerate them in one message.
type ObjectNotFoundError struct {
	ParamName string
	IDs       []any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for a single missing identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, IDs: []any{id}}
}

// NewObjectNotFoundErrorWithIDs creates an ObjectNotFoundError enumerating several missing identifiers.
func NewObjectNotFoundErrorWithIDs(paramName string, ids []any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, IDs: ids}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, IDs: []any{id}, Cause: cause}
}

func (e *ObjectNotFoundError) idList() string {
	parts := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		parts = append(parts, fmt.Sprintf("%v", id))
	}
	return strings.Join(parts, ", ")
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.idList(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.idList())
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// BusinessRuleError carries a user-facing reason for rejecting an order request.
// The message is surfaced verbatim to the caller, so it must not leak internals.
type BusinessRuleError struct {
	Message string
}

// NewBusinessRuleError creates a BusinessRuleError with a human-readable reason.
func NewBusinessRuleError(format string, args ...any) *BusinessRuleError {
	return &BusinessRuleError{Message: fmt.Sprintf(format, args...)}
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

func (e *BusinessRuleError) Unwrap() error {
	return ErrBusinessRule
}

// OutOfServiceAreaError indicates that delivery coordinates are matched by no active zone.
// This is a user-actionable outcome, distinct from validation and infrastructure failures.
type OutOfServiceAreaError struct {
	Lat float64
	Lng float64
}

// NewOutOfServiceAreaError creates an OutOfServiceAreaError for the given coordinates.
func NewOutOfServiceAreaError(lat, lng float64) *OutOfServiceAreaError {
	return &OutOfServiceAreaError{Lat: lat, Lng: lng}
}

func (e *OutOfServiceAreaError) Error() string {
	return "the address is outside the available delivery zones"
}

func (e *OutOfServiceAreaError) Unwrap() error {
	return ErrOutOfServiceArea
}

// ConflictError indicates that a persistence-level constraint rejected a write.
// Raw database error codes are translated into this type before reaching callers.
type ConflictError struct {
	Message string
	Cause   error
}

// NewConflictError creates a ConflictError wrapping the underlying constraint violation.
func NewConflictError(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
