/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metaref

import "context"

// # Future
//
// Result of asynchronous work. Future may be dropped at any time:
// work is finished and its result is discarded.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) complete(value T, err error) {
	f.value, f.err = value, err
	close(f.done)
}

// Returns channel, which is closed when work is finished
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Waits for result. Returns ctx error if ctx is done before work is finished.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Runs work in new goroutine
func Go[T any](ctx context.Context, work func(context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		f.complete(work(ctx))
	}()
	return f
}

// Returns completed future
func Completed[T any](value T, err error) *Future[T] {
	f := newFuture[T]()
	f.complete(value, err)
	return f
}

// Chains work to be run with the result of future. Error of future is passed through.
func Then[T, R any](ctx context.Context, f *Future[T], work func(context.Context, T) (R, error)) *Future[R] {
	return Go(ctx, func(ctx context.Context) (R, error) {
		v, err := f.Await(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		return work(ctx, v)
	})
}
