package focus

import (
	"context"
	"errors"
	"testing"

	"github.com/auth-platform/libs/go/focus/option"
)

var errMergeFailed = errors.New("merge failed")

func TestEffectfulConstructors(t *testing.T) {
	ctx := context.Background()

	t.Run("AlterWithError rewrites the slot", func(t *testing.T) {
		f := AlterWithError(func(_ context.Context, state option.Option[int]) (option.Option[int], error) {
			return option.Some(state.UnwrapOr(0) + 1), nil
		})
		_, post, err := f.Run(ctx, option.Some(5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post != option.Some(6) {
			t.Errorf("expected Some(6), got %v", post)
		}
	})

	t.Run("AlterWithError propagates failure", func(t *testing.T) {
		f := AlterWithError(func(context.Context, option.Option[int]) (option.Option[int], error) {
			return option.None[int](), errMergeFailed
		})
		_, _, err := f.Run(ctx, option.Some(5))
		if !errors.Is(err, errMergeFailed) {
			t.Errorf("expected errMergeFailed, got %v", err)
		}
	})

	t.Run("UpdateWithError skips the callback on an absent slot", func(t *testing.T) {
		f := UpdateWithError(func(context.Context, int) (option.Option[int], error) {
			t.Error("callback must not run on an absent slot")
			return option.None[int](), nil
		})
		_, post, err := f.Run(ctx, option.None[int]())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post != option.None[int]() {
			t.Errorf("expected None, got %v", post)
		}
	})

	t.Run("AdjustWithError transforms a present element", func(t *testing.T) {
		f := AdjustWithError(func(_ context.Context, x int) (int, error) {
			return x * 2, nil
		})
		_, post, err := f.Run(ctx, option.Some(21))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post != option.Some(42) {
			t.Errorf("expected Some(42), got %v", post)
		}
	})

	t.Run("InsertOrMergeWithError inserts without merging on absent", func(t *testing.T) {
		f := InsertOrMergeWithError(func(context.Context, int, int) (int, error) {
			t.Error("merge must not run on an absent slot")
			return 0, nil
		}, 7)
		_, post, err := f.Run(ctx, option.None[int]())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post != option.Some(7) {
			t.Errorf("expected Some(7), got %v", post)
		}
	})

	t.Run("InsertOrMergeWithError merges on occupied", func(t *testing.T) {
		f := InsertOrMergeWithError(func(_ context.Context, inserted, existing int) (int, error) {
			return inserted + existing, nil
		}, 3)
		_, post, err := f.Run(ctx, option.Some(5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post != option.Some(8) {
			t.Errorf("expected Some(8), got %v", post)
		}
	})

	t.Run("InsertOrMergeWithError propagates merge failure", func(t *testing.T) {
		f := InsertOrMergeWithError(func(context.Context, int, int) (int, error) {
			return 0, errMergeFailed
		}, 3)
		_, _, err := f.Run(ctx, option.Some(5))
		if !errors.Is(err, errMergeFailed) {
			t.Errorf("expected errMergeFailed, got %v", err)
		}
	})
}

func TestBindShortCircuitsOnError(t *testing.T) {
	failing := OnMaybe(func(context.Context, option.Option[int]) (int, option.Option[int], error) {
		return 0, option.None[int](), errMergeFailed
	})

	continuations := 0
	f := Bind(failing, func(int) Focus[int, int] {
		continuations++
		return Pure[int](1)
	})

	for _, state := range []option.Option[int]{option.None[int](), option.Some(3)} {
		_, _, err := f.Run(context.Background(), state)
		if !errors.Is(err, errMergeFailed) {
			t.Errorf("state %v: expected errMergeFailed, got %v", state, err)
		}
	}
	if continuations != 0 {
		t.Errorf("continuation ran %d times after a failed branch", continuations)
	}
}

func TestBranchesRunAtMostOnce(t *testing.T) {
	firstRuns := 0
	first := OnMaybe(func(_ context.Context, state option.Option[int]) (int, option.Option[int], error) {
		firstRuns++
		return state.UnwrapOr(0), state, nil
	})

	secondRuns := 0
	second := OnMaybe(func(_ context.Context, state option.Option[int]) (int, option.Option[int], error) {
		secondRuns++
		return state.UnwrapOr(0), state, nil
	})

	f := Then(first, second)
	if _, _, err := f.Run(context.Background(), option.Some(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if firstRuns != 1 || secondRuns != 1 {
		t.Errorf("expected one run per step, got %d and %d", firstRuns, secondRuns)
	}
}

func TestCancelledContextAbortsExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := AlterWithError(func(ctx context.Context, state option.Option[int]) (option.Option[int], error) {
		if err := ctx.Err(); err != nil {
			return option.None[int](), err
		}
		return option.Some(1), nil
	})

	_, _, err := f.Run(ctx, option.Some(5))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
