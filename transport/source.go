// Package transport delivers raw flag updates to a binding engine.
//
// A Source observes some external representation of flag values and calls
// its binding.UpdateFunc once per observed change, in observation order.
// Run drives several sources at once and serializes their calls.
package transport

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/apstndb/flagbind/binding"
)

// Source delivers flag updates until its input is exhausted or ctx is done.
type Source interface {
	Run(ctx context.Context, apply binding.UpdateFunc) error
}

// ErrorHandler decides what a source does with a failed update.
// Returning nil skips the update; returning an error stops the source.
type ErrorHandler func(err error) error

// StopOnError is an ErrorHandler that stops the source on the first failure.
func StopOnError(err error) error {
	return err
}

func handleError(onError ErrorHandler, logger binding.Logger, err error, args ...any) error {
	if err == nil {
		return nil
	}
	if onError != nil {
		return onError(err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("flag update failed", append(args, "err", err)...)
	return nil
}

// Run runs all sources concurrently until they finish, ctx is done, or one
// fails. Calls into apply are serialized. The first source error cancels the
// others and is returned.
func Run(ctx context.Context, apply binding.UpdateFunc, sources ...Source) error {
	var mu sync.Mutex
	serialized := func(name string, raw *string) error {
		mu.Lock()
		defer mu.Unlock()
		return apply(name, raw)
	}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for _, src := range sources {
		p.Go(func(ctx context.Context) error {
			return src.Run(ctx, serialized)
		})
	}
	return p.Wait()
}
