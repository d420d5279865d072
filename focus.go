package focus

import (
	"context"

	"github.com/auth-platform/libs/go/focus/option"
)

// Unit is the result type of constructors that only edit the slot.
type Unit = struct{}

// Focus describes one inspection and/or edit of a single slot holding
// an element of type E, producing a result of type R. The two branches
// cover the two possible slot states; both report the slot's post-state
// as an Option: None means the slot ends up absent, Some(v) means it
// ends up holding v.
type Focus[E, R any] struct {
	absent  func(ctx context.Context) (R, option.Option[E], error)
	present func(ctx context.Context, current E) (R, option.Option[E], error)
}

// New creates a Focus from explicit absent and present branches.
func New[E, R any](
	absent func(ctx context.Context) (R, option.Option[E], error),
	present func(ctx context.Context, current E) (R, option.Option[E], error),
) Focus[E, R] {
	return Focus[E, R]{absent: absent, present: present}
}

// RunAbsent executes the branch for a currently absent slot.
func (f Focus[E, R]) RunAbsent(ctx context.Context) (R, option.Option[E], error) {
	return f.absent(ctx)
}

// RunPresent executes the branch for a slot currently holding current.
func (f Focus[E, R]) RunPresent(ctx context.Context, current E) (R, option.Option[E], error) {
	return f.present(ctx, current)
}

// Run dispatches on the slot state, executing exactly one branch.
func (f Focus[E, R]) Run(ctx context.Context, state option.Option[E]) (R, option.Option[E], error) {
	if state.IsSome() {
		return f.present(ctx, state.Unwrap())
	}
	return f.absent(ctx)
}

// OnMaybe lifts an effectful function over the slot state into a Focus.
// Every other constructor in this package reduces to OnMaybe; it is the
// single semantic core of the catalogue.
func OnMaybe[E, R any](fn func(ctx context.Context, state option.Option[E]) (R, option.Option[E], error)) Focus[E, R] {
	return Focus[E, R]{
		absent: func(ctx context.Context) (R, option.Option[E], error) {
			return fn(ctx, option.None[E]())
		},
		present: func(ctx context.Context, current E) (R, option.Option[E], error) {
			return fn(ctx, option.Some(current))
		},
	}
}

// Lift lifts a pure function over the slot state into a Focus. The
// resulting branches ignore the context and never fail.
func Lift[E, R any](fn func(state option.Option[E]) (R, option.Option[E])) Focus[E, R] {
	return OnMaybe(func(_ context.Context, state option.Option[E]) (R, option.Option[E], error) {
		result, post := fn(state)
		return result, post, nil
	})
}

// Pure creates a Focus that returns a fixed result and leaves the slot
// state untouched. It is the identity element of Bind.
func Pure[E, R any](result R) Focus[E, R] {
	return Lift(func(state option.Option[E]) (R, option.Option[E]) {
		return result, state
	})
}
