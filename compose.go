package focus

import (
	"context"

	"github.com/auth-platform/libs/go/focus/option"
)

// Bind sequences two focuses: it runs f's branch for the incoming slot
// state, passes f's result to next, and dispatches the produced focus
// on f's post-state rather than the original state. The combined focus
// reports the second focus's result and post-state. If f's branch
// fails, next is never invoked and the error propagates unchanged.
func Bind[E, R1, R2 any](f Focus[E, R1], next func(R1) Focus[E, R2]) Focus[E, R2] {
	step := func(ctx context.Context, r1 R1, post option.Option[E], err error) (R2, option.Option[E], error) {
		if err != nil {
			var zero R2
			return zero, option.None[E](), err
		}
		return next(r1).Run(ctx, post)
	}
	return Focus[E, R2]{
		absent: func(ctx context.Context) (R2, option.Option[E], error) {
			r1, post, err := f.absent(ctx)
			return step(ctx, r1, post, err)
		},
		present: func(ctx context.Context, current E) (R2, option.Option[E], error) {
			r1, post, err := f.present(ctx, current)
			return step(ctx, r1, post, err)
		},
	}
}

// Map transforms a focus's result without touching its slot decision.
func Map[E, R1, R2 any](f Focus[E, R1], fn func(R1) R2) Focus[E, R2] {
	return Bind(f, func(r1 R1) Focus[E, R2] {
		return Pure[E](fn(r1))
	})
}

// Then sequences two focuses, discarding the first one's result.
func Then[E, R1, R2 any](f Focus[E, R1], g Focus[E, R2]) Focus[E, R2] {
	return Bind(f, func(R1) Focus[E, R2] {
		return g
	})
}

// MapInput retargets a focus across an element conversion: conv turns
// the outer element into the one f understands, back converts f's
// post-state elements outward. The two functions are expected to be
// mutually inverse.
func MapInput[B, A, R any](f Focus[A, R], conv func(B) A, back func(A) B) Focus[B, R] {
	outward := func(post option.Option[A]) option.Option[B] {
		return option.Map(post, back)
	}
	return Focus[B, R]{
		absent: func(ctx context.Context) (R, option.Option[B], error) {
			result, post, err := f.absent(ctx)
			return result, outward(post), err
		},
		present: func(ctx context.Context, current B) (R, option.Option[B], error) {
			result, post, err := f.present(ctx, conv(current))
			return result, outward(post), err
		},
	}
}
