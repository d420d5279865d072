package focus

import (
	"context"

	"github.com/auth-platform/libs/go/focus/option"
)

// Effectful catalogue variants. Each mirrors its pure counterpart in
// constructors.go but takes a callback that receives the execution
// context and may fail; a callback error aborts the execution and no
// command may be applied.

// AlterWithError is Alter with an effectful rewrite function.
func AlterWithError[E any](fn func(ctx context.Context, state option.Option[E]) (option.Option[E], error)) Focus[E, Unit] {
	return OnMaybe(func(ctx context.Context, state option.Option[E]) (Unit, option.Option[E], error) {
		post, err := fn(ctx, state)
		if err != nil {
			return Unit{}, option.None[E](), err
		}
		return Unit{}, post, nil
	})
}

// UpdateWithError is Update with an effectful replacement function.
// An absent slot stays absent and the callback is not invoked.
func UpdateWithError[E any](fn func(ctx context.Context, current E) (option.Option[E], error)) Focus[E, Unit] {
	return AlterWithError(func(ctx context.Context, state option.Option[E]) (option.Option[E], error) {
		if state.IsNone() {
			return state, nil
		}
		return fn(ctx, state.Unwrap())
	})
}

// AdjustWithError is Adjust with an effectful transformation.
// An absent slot stays absent and the callback is not invoked.
func AdjustWithError[E any](fn func(ctx context.Context, current E) (E, error)) Focus[E, Unit] {
	return UpdateWithError(func(ctx context.Context, current E) (option.Option[E], error) {
		next, err := fn(ctx, current)
		if err != nil {
			return option.None[E](), err
		}
		return option.Some(next), nil
	})
}

// InsertOrMergeWithError is InsertOrMerge with an effectful merge
// function; the merge is only invoked for an occupied slot.
func InsertOrMergeWithError[E any](merge func(ctx context.Context, inserted, existing E) (E, error), value E) Focus[E, Unit] {
	return AlterWithError(func(ctx context.Context, state option.Option[E]) (option.Option[E], error) {
		if state.IsNone() {
			return option.Some(value), nil
		}
		merged, err := merge(ctx, value, state.Unwrap())
		if err != nil {
			return option.None[E](), err
		}
		return option.Some(merged), nil
	})
}
