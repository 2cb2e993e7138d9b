package bind

import (
	"errors"

	"github.com/eaceto/go-multiplatform-template-lib/pkg/template"
	"github.com/eaceto/go-multiplatform-template-lib/pkg/template/model"
)

// Error kinds crossing the binding boundary. The set is closed: hosts
// switch on Kind and never need Go type information.
const (
	KindInputTooLarge      = "input_too_large"
	KindInvalidInput       = "invalid_input"
	KindCancelled          = "cancelled"
	KindModelNotFound      = "model_not_found"
	KindInvalidModelFormat = "invalid_model_format"
	KindIO                 = "io_error"
	KindGeneric            = "generic"
)

// Error is the one error shape hosts receive: a kind tag plus string
// and integer fields only. Fields that do not apply to a kind are left
// at their zero values.
type Error struct {
	Kind      string
	Message   string
	Size      int64
	Max       int64
	Hash      string
	Preview   string
	Operation string
	Path      string
}

func (e *Error) Error() string {
	return e.Message
}

// Flatten maps any error from the core packages onto the closed kind
// set, copying the variant's fields across. Unrecognized errors become
// KindGeneric; nil stays nil.
func Flatten(err error) *Error {
	if err == nil {
		return nil
	}

	// Already flat: pass through unchanged so Flatten is idempotent.
	var flat *Error
	if errors.As(err, &flat) {
		return flat
	}

	var tooLarge *template.InputTooLargeError
	if errors.As(err, &tooLarge) {
		return &Error{
			Kind:    KindInputTooLarge,
			Message: tooLarge.Error(),
			Size:    int64(tooLarge.Size),
			Max:     int64(tooLarge.Max),
			Hash:    tooLarge.Hash,
		}
	}

	var invalid *template.InvalidInputError
	if errors.As(err, &invalid) {
		return &Error{
			Kind:    KindInvalidInput,
			Message: invalid.Error(),
			Preview: invalid.Preview,
		}
	}

	var cancelled *template.CancelledError
	if errors.As(err, &cancelled) {
		return &Error{
			Kind:      KindCancelled,
			Message:   cancelled.Error(),
			Operation: cancelled.Operation,
		}
	}
	if template.IsCancelled(err) {
		// Bare context cancellations carry no operation name.
		return &Error{Kind: KindCancelled, Message: err.Error()}
	}

	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		return &Error{
			Kind:    KindModelNotFound,
			Message: notFound.Error(),
			Path:    notFound.Path,
		}
	}

	var badFormat *model.InvalidFormatError
	if errors.As(err, &badFormat) {
		return &Error{
			Kind:    KindInvalidModelFormat,
			Message: badFormat.Error(),
		}
	}

	var ioErr *model.IOError
	if errors.As(err, &ioErr) {
		return &Error{
			Kind:    KindIO,
			Message: ioErr.Error(),
		}
	}

	return &Error{Kind: KindGeneric, Message: err.Error()}
}
