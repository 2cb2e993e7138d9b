package template

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tooLarge := &InputTooLargeError{Size: 2_000_000, Max: 1_000_000, Hash: "abc"}
	assert.Equal(t,
		"input too large: 2000000 bytes exceeds maximum of 1000000 bytes",
		tooLarge.Error())

	invalid := &InvalidInputError{Message: "input contains null bytes", Preview: "a\x00b"}
	assert.Equal(t, "invalid input: input contains null bytes", invalid.Error())

	cancelled := &CancelledError{Operation: "echo"}
	assert.Equal(t, "operation cancelled: echo", cancelled.Error())
}

func TestClassifiers(t *testing.T) {
	t.Parallel()

	tooLarge := &InputTooLargeError{Size: 2, Max: 1}
	invalid := &InvalidInputError{Message: "input is not valid UTF-8"}
	cancelled := &CancelledError{Operation: "echo"}

	assert.True(t, IsTooLarge(tooLarge))
	assert.False(t, IsTooLarge(invalid))
	assert.False(t, IsTooLarge(nil))

	assert.True(t, IsInvalidInput(invalid))
	assert.False(t, IsInvalidInput(cancelled))

	assert.True(t, IsCancelled(cancelled))
	assert.False(t, IsCancelled(tooLarge))
	assert.False(t, IsCancelled(nil))
}

func TestClassifiers_SeeThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("echo failed: %w", &InputTooLargeError{Size: 2, Max: 1})
	assert.True(t, IsTooLarge(wrapped))

	assert.True(t, IsCancelled(fmt.Errorf("batch: %w", &CancelledError{Operation: "echo"})))
}

func TestIsCancelled_CoversContextErrors(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancelled(context.Canceled))
	assert.True(t, IsCancelled(context.DeadlineExceeded))
	assert.True(t, IsCancelled(fmt.Errorf("run: %w", context.Canceled)))
	assert.False(t, IsCancelled(errors.New("something else")))
}
