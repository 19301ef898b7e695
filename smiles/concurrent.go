package smiles

import (
	"context"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// ParallelWalk runs one Walker per visitor, concurrently, against the same
// finalized adjacency. Adjacency is read-only once built, so this is safe:
// the concurrency boundary sits at this orchestration layer, never inside
// the single-threaded Builder/Walker/Writer core (§5).
func ParallelWalk(ctx context.Context, adjacency *Adjacency, visitors []Visitor) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, v := range visitors {
		v := v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Walk(adjacency, v)
		})
	}
	return g.Wait()
}

// BatchRead parses every string in inputs independently and returns their
// Adjacency results in the same order. Unlike Read, a failure on one input
// does not stop the batch: every error is collected and returned together
// via multierr, so a caller can see every bad input in one pass rather than
// fixing them one at a time.
func BatchRead(inputs []string, opts ...ReadOption) ([]*Adjacency, error) {
	results := make([]*Adjacency, len(inputs))
	var errs error
	for i, in := range inputs {
		adj, err := Read(in, opts...)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		results[i] = adj
	}
	return results, errs
}
