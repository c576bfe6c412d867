// Package errors provides coded errors for the sysnode consensus library.
// Callers match on error categories with Is and the predefined errors in
// Error_types.go rather than on message text.
package errors

import (
	"context"
	"errors"
	"strings"
)

func Join(errs ...error) error {
	var messages []string

	for _, err := range errs {
		if err != nil {
			messages = append(messages, err.Error())
		}
	}

	if len(messages) == 0 {
		return nil
	}

	return errors.New(strings.Join(messages, ", "))
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	// cycle through the wrapped errors and check if any of them match the target
	if castedErr, ok := err.(*Error); ok {
		if castedErr.As(target) {
			return true
		}

		if castedErr.wrappedErr != nil {
			return errors.As(castedErr.wrappedErr, target)
		}
	}

	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// IsRetryableError determines if an error is transient and the operation should
// be retried. Consensus rule violations are never retryable; a failed interval
// walk may succeed after the caller resynchronizes its header store.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Check if context was cancelled - not retryable
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		switch tErr.Code() {
		case ERR_STORAGE_UNAVAILABLE,
			ERR_DIFFICULTY_BROKEN_CHAIN:
			return true
		case ERR_DIFFICULTY_UNEXPECTED_CHANGE,
			ERR_DIFFICULTY_MALFORMED_WALK,
			ERR_DIFFICULTY_MISMATCH:
			return false
		}
	}

	return false
}

// IsConsensusError determines if an error represents a consensus rule
// violation, meaning the header being validated must be rejected outright.
func IsConsensusError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		switch tErr.Code() {
		case ERR_BLOCK_INVALID,
			ERR_DIFFICULTY_UNEXPECTED_CHANGE,
			ERR_DIFFICULTY_MISMATCH:
			return true
		}
	}

	return false
}
