package template

import (
	"strings"
	"unicode/utf8"
)

// CheckSize reports whether input fits within max bytes. Input at
// exactly max passes; anything larger fails with *InputTooLargeError.
// The error's diagnostic hash is left empty here; the pipeline attaches
// it on the failure path.
func CheckSize(input string, max uint64) error {
	if size := uint64(len(input)); size > max {
		return &InputTooLargeError{Size: size, Max: max}
	}
	return nil
}

// CheckContent rejects input the binding boundary cannot carry: null
// bytes first, then malformed UTF-8. Valid input passes, the empty
// string included.
func CheckContent(input string) error {
	if strings.IndexByte(input, 0x00) >= 0 {
		return &InvalidInputError{
			Message: "input contains null bytes",
			Preview: previewOf(input),
		}
	}
	if !utf8.ValidString(input) {
		return &InvalidInputError{
			Message: "input is not valid UTF-8",
			Preview: previewOf(input),
		}
	}
	return nil
}
