package template

import (
	"context"
	"math/rand/v2"
	"runtime"

	"github.com/eaceto/go-multiplatform-template-lib/pkg/template/cancel"
)

// opEcho names the echo operation in cancellation reports.
const opEcho = "echo"

// HelloWorld reports that the library is loaded and callable. Hosts use
// it as the first smoke test after binding.
func HelloWorld() bool {
	return true
}

// Random returns a uniform value in [0.0, 1.0). It never fails and is
// not subject to validation or cancellation.
func Random() float64 {
	return rand.Float64()
}

// Echo runs the cancellable validated echo pipeline with the library
// defaults. It returns (nil, nil) for empty valid input, an *Outcome
// for non-empty valid input, and a classified error otherwise.
//
// sig may be nil, meaning cancellation was never requested. Cancellation
// is checked twice, once on entry and once after a cooperative yield,
// and always wins over validation: a cancelled call reports
// *CancelledError no matter what the input looks like.
func Echo(ctx context.Context, input string, sig *cancel.Signal) (*Outcome, error) {
	return DefaultConfig().Echo(ctx, input, sig)
}

// Echo runs the pipeline under this configuration. The configuration is
// authoritative: its size limit and validation switch apply as given,
// with no fallback to the library defaults.
func (c Config) Echo(ctx context.Context, input string, sig *cancel.Signal) (*Outcome, error) {
	if err := checkCancelled(ctx, sig); err != nil {
		return nil, err
	}

	// One cooperative yield between the two checkpoints, so a cancel
	// issued while the call is in flight has a window to land.
	runtime.Gosched()

	if err := checkCancelled(ctx, sig); err != nil {
		return nil, err
	}

	if err := CheckSize(input, c.maxInputSize); err != nil {
		return nil, withDiagnosticHash(err, input)
	}

	if c.validation {
		if err := CheckContent(input); err != nil {
			return nil, err
		}
	}

	if input == "" {
		return nil, nil
	}
	return newOutcome(input), nil
}

func checkCancelled(ctx context.Context, sig *cancel.Signal) error {
	if sig != nil && sig.IsCancelled() {
		return &CancelledError{Operation: opEcho}
	}
	if ctx != nil && ctx.Err() != nil {
		return &CancelledError{Operation: opEcho}
	}
	return nil
}
