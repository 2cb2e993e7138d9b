package template

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaceto/go-multiplatform-template-lib/pkg/template/cancel"
)

func TestHelloWorld(t *testing.T) {
	t.Parallel()

	assert.True(t, HelloWorld())
}

func TestRandom_Range(t *testing.T) {
	t.Parallel()

	seen := make(map[float64]bool)
	for range 1000 {
		v := Random()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		seen[v] = true
	}
	assert.Greater(t, len(seen), 1, "draws should not all collide")
}

func TestEcho_Success(t *testing.T) {
	t.Parallel()

	before := uint64(time.Now().Unix())
	out, err := Echo(context.Background(), "Hello, World!", nil)
	after := uint64(time.Now().Unix())

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Hello, World!", out.Text())
	assert.Equal(t, uint32(13), out.Length())
	assert.GreaterOrEqual(t, out.Timestamp(), before)
	assert.LessOrEqual(t, out.Timestamp(), after)
	assert.Empty(t, out.DiagnosticHash(), "success never records a hash")
	assert.NotEqual(t, uuid.Nil, out.Id())
}

func TestEcho_LengthCountsBytes(t *testing.T) {
	t.Parallel()

	out, err := Echo(context.Background(), "héllo", nil)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, uint32(6), out.Length(), "5 runes, 6 UTF-8 bytes")
}

func TestEcho_EmptyInput(t *testing.T) {
	t.Parallel()

	out, err := Echo(context.Background(), "", nil)
	assert.NoError(t, err)
	assert.Nil(t, out, "empty valid input is no reply, not an error")
}

func TestEcho_PreCancelledSignal(t *testing.T) {
	t.Parallel()

	sig := cancel.New()
	sig.Cancel()

	out, err := Echo(context.Background(), "hello", sig)
	assert.Nil(t, out)
	require.True(t, IsCancelled(err))

	var cancelled *CancelledError
	require.ErrorAs(t, err, &cancelled)
	assert.Equal(t, "echo", cancelled.Operation)
}

func TestEcho_CancellationBeatsValidation(t *testing.T) {
	t.Parallel()

	sig := cancel.New()
	sig.Cancel()

	// Oversized and cancelled at once: the checkpoint wins, so the
	// input is never inspected.
	cfg := NewConfig(4, true)
	_, err := cfg.Echo(context.Background(), "way past the limit", sig)
	assert.True(t, IsCancelled(err))
	assert.False(t, IsTooLarge(err))
}

func TestEcho_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancelCtx := context.WithCancel(context.Background())
	cancelCtx()

	out, err := Echo(ctx, "hello", nil)
	assert.Nil(t, out)
	assert.True(t, IsCancelled(err))
}

func TestConfigEcho_TooLarge(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(10, true)
	input := "12345678901"
	out, err := cfg.Echo(context.Background(), input, nil)
	assert.Nil(t, out)
	require.True(t, IsTooLarge(err))

	var tooLarge *InputTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, uint64(11), tooLarge.Size)
	assert.Equal(t, uint64(10), tooLarge.Max)
	assert.Equal(t, DiagnosticHash(input), tooLarge.Hash)
}

func TestConfigEcho_AtLimitPasses(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(10, true)
	out, err := cfg.Echo(context.Background(), "1234567890", nil)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "1234567890", out.Text())
}

func TestEcho_DefaultLimit(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("a", int(DefaultMaxInputSize)+1)
	_, err := Echo(context.Background(), input, nil)
	require.True(t, IsTooLarge(err))

	var tooLarge *InputTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, DefaultMaxInputSize+1, tooLarge.Size)
	assert.Equal(t, DefaultMaxInputSize, tooLarge.Max)
	assert.NotEmpty(t, tooLarge.Hash)
}

func TestConfigEcho_InvalidContent(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	t.Run("null bytes", func(t *testing.T) {
		_, err := cfg.Echo(context.Background(), "null\x00byte", nil)
		require.True(t, IsInvalidInput(err))

		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "input contains null bytes", invalid.Message)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		_, err := cfg.Echo(context.Background(), "bad\xffbytes", nil)
		require.True(t, IsInvalidInput(err))

		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "input is not valid UTF-8", invalid.Message)
	})
}

func TestConfigEcho_ValidationDisabled(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(100, false)

	out, err := cfg.Echo(context.Background(), "null\x00byte", nil)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "null\x00byte", out.Text())

	out, err = cfg.Echo(context.Background(), "bad\xffbytes", nil)
	require.NoError(t, err)
	assert.Equal(t, "bad\xffbytes", out.Text())
}

func TestConfigEcho_SizeEnforcedEvenWithoutValidation(t *testing.T) {
	t.Parallel()

	// The validation switch gates content checks only; the size limit
	// always applies.
	cfg := NewConfig(3, false)
	_, err := cfg.Echo(context.Background(), "abcd", nil)
	assert.True(t, IsTooLarge(err))
}

func TestEcho_SharedSignalUnderConcurrency(t *testing.T) {
	t.Parallel()

	sig := cancel.New()
	const callers = 32

	var wg sync.WaitGroup
	errs := make([]error, callers)
	outs := make([]*Outcome, callers)

	wg.Add(callers + 1)
	for i := range callers {
		go func() {
			defer wg.Done()
			outs[i], errs[i] = Echo(context.Background(), "concurrent", sig)
		}()
	}
	go func() {
		defer wg.Done()
		sig.Cancel()
	}()
	wg.Wait()

	// Every call either completed or observed the cancellation; no
	// third outcome exists.
	for i := range callers {
		if errs[i] != nil {
			assert.True(t, IsCancelled(errs[i]))
			assert.Nil(t, outs[i])
		} else {
			require.NotNil(t, outs[i])
			assert.Equal(t, "concurrent", outs[i].Text())
		}
	}

	// The flag is monotonic, so anything started after the cancel
	// fails at the first checkpoint.
	_, err := Echo(context.Background(), "late", sig)
	assert.True(t, IsCancelled(err))
}
