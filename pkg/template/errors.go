package template

import (
	"context"
	"errors"
	"fmt"
)

// Input previews attached to validation failures are capped so that error
// values stay small regardless of payload size.
const (
	previewLimit    = 50
	previewEllipsis = "..."
)

// InputTooLargeError reports a size-policy violation. It carries the
// offending size, the limit that was in force, and a diagnostic fingerprint
// of the input so the failure can be referenced in logs without retaining
// the payload itself.
type InputTooLargeError struct {
	Size uint64
	Max  uint64
	Hash string
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input too large: %d bytes exceeds maximum of %d bytes", e.Size, e.Max)
}

// InvalidInputError reports a content-policy violation. Preview holds at
// most the first 50 characters of the rejected input (with an ellipsis
// marker when truncated); an empty Preview means no preview was captured.
type InvalidInputError struct {
	Message string
	Preview string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// CancelledError reports that an operation was abandoned at a cancellation
// checkpoint. It is an expected control-flow outcome, not an application
// fault.
type CancelledError struct {
	Operation string
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("operation cancelled: %s", e.Operation)
}

// IsTooLarge reports whether err (or any error in its chain) is an
// *InputTooLargeError.
func IsTooLarge(err error) bool {
	var target *InputTooLargeError
	return errors.As(err, &target)
}

// IsInvalidInput reports whether err (or any error in its chain) is an
// *InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsCancelled reports whether err represents a cancelled operation: either
// a *CancelledError from a pipeline checkpoint or a context cancellation
// surfaced through the error chain.
func IsCancelled(err error) bool {
	var target *CancelledError
	if errors.As(err, &target) {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// previewOf returns the leading characters of input for use in diagnostics,
// truncated to previewLimit runes with an ellipsis marker appended.
func previewOf(input string) string {
	runes := []rune(input)
	if len(runes) <= previewLimit {
		return input
	}
	return string(runes[:previewLimit]) + previewEllipsis
}
