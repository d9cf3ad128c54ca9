package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LoadAll runs the fetches concurrently and returns once all of them have settled.
// The first failure fails the whole load and cancels the context of the others.
func LoadAll(ctx context.Context, fetches ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		fetch := fetch
		g.Go(func() error {
			return fetch(gctx)
		})
	}
	return g.Wait()
}
