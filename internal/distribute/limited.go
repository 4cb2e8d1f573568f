// Package distribute provides concurrency primitives, like limited distribution of work.
package distribute

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var ErrNotEnoughConcurrency = fmt.Errorf("concurrency must be greater than zero")

// OneToN distributes work to a limited number of worker functions.
// Items are produced by sourceFn and handed to concurrency workerFn calls.
// Note that concurrency must be greater than zero.
func OneToN[T any](
	ctx context.Context,
	sourceFn func(ctx context.Context, dataCh chan<- T) error,
	workerFn func(ctx context.Context, data T) error,
	concurrency int,
) error {
	if concurrency < 1 {
		return ErrNotEnoughConcurrency
	}

	ch := make(chan T, concurrency)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(ch)
		return sourceFn(ctx, ch)
	})
	for i := 0; i < concurrency; i++ {
		eg.Go(func() error {
			for data := range ch {
				err := workerFn(ctx, data)
				if err != nil {
					return err
				}
			}

			return ctx.Err()
		})
	}

	return eg.Wait()
}

// Each calls fn for every index of a slice of length n using at most concurrency goroutines.
func Each(ctx context.Context, n int, fn func(ctx context.Context, idx int) error, concurrency int) error {
	return OneToN(
		ctx,
		func(ctx context.Context, idxCh chan<- int) error {
			for i := 0; i < n; i++ {
				select {
				case idxCh <- i:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		},
		fn,
		concurrency,
	)
}
