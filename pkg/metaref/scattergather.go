/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metaref

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

type indexed[T any] struct {
	idx   int
	value T
}

// Maps every source value by pool of workers and gathers results in single goroutine.
//
// Gatherer receives index of the source value with its mapped value.
// The first mapper error cancels the rest of work and is returned.
func scatterGather[IN, OUT any](
	outerCtx context.Context,
	source []IN,
	workers int,
	mapper func(context.Context, IN) (OUT, error),
	gatherer func(int, OUT),
) error {
	if workers <= 0 {
		workers = 1
	}

	g, workersCtx := errgroup.WithContext(outerCtx)

	tasks := make(chan indexed[IN])
	g.Go(func() error {
		defer close(tasks)
		for i, v := range source {
			select {
			case <-workersCtx.Done():
				return nil
			case tasks <- indexed[IN]{i, v}:
			}
		}
		return nil
	})

	results := make(chan indexed[OUT])
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			defer wg.Done()
			for {
				select {
				case <-workersCtx.Done():
					return nil
				case in, ok := <-tasks:
					if !ok {
						return nil
					}
					out, err := mapper(workersCtx, in.value)
					if err != nil {
						return err
					}
					select {
					case results <- indexed[OUT]{in.idx, out}:
					case <-workersCtx.Done():
						return nil
					}
				}
			}
		})
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	g.Go(func() error {
		for {
			select {
			case <-workersCtx.Done():
				return nil
			case r, ok := <-results:
				if !ok {
					return nil
				}
				gatherer(r.idx, r.value)
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return outerCtx.Err()
}
