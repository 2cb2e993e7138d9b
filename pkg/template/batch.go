package template

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/eaceto/go-multiplatform-template-lib/pkg/template/cancel"
)

// EchoAll echoes every input concurrently under one configuration and
// one shared cancellation signal. Results keep the order of inputs;
// empty inputs produce nil elements.
//
// The batch is all-or-nothing: the first failure cancels the remaining
// echoes through the group context and becomes the returned error.
// Cancelling sig stops every echo in the batch, since the signal is
// observed, never consumed.
func EchoAll(ctx context.Context, inputs []string, cfg Config, sig *cancel.Signal) ([]*Outcome, error) {
	outcomes := make([]*Outcome, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		g.Go(func() error {
			out, err := cfg.Echo(gctx, input, sig)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
