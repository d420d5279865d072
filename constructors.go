package focus

import "github.com/auth-platform/libs/go/focus/option"

// Insert creates a Focus that stores value in the slot, overwriting
// any existing element.
func Insert[E any](value E) Focus[E, Unit] {
	return Alter(func(option.Option[E]) option.Option[E] {
		return option.Some(value)
	})
}

// InsertOrMerge creates a Focus that stores value in an absent slot
// and otherwise stores merge(value, existing).
func InsertOrMerge[E any](merge func(inserted, existing E) E, value E) Focus[E, Unit] {
	return Alter(func(state option.Option[E]) option.Option[E] {
		if state.IsSome() {
			return option.Some(merge(value, state.Unwrap()))
		}
		return option.Some(value)
	})
}

// Alter creates a Focus that rewrites the slot state with fn: fn
// receives the current state and its return value becomes the
// post-state, so it can insert, delete, or modify in one step.
func Alter[E any](fn func(option.Option[E]) option.Option[E]) Focus[E, Unit] {
	return Lift(func(state option.Option[E]) (Unit, option.Option[E]) {
		return Unit{}, fn(state)
	})
}

// Update creates a Focus that, when the slot is present, replaces the
// element with fn's Some result or removes the slot on None. An absent
// slot stays absent.
func Update[E any](fn func(E) option.Option[E]) Focus[E, Unit] {
	return Alter(func(state option.Option[E]) option.Option[E] {
		return option.FlatMap(state, fn)
	})
}

// Adjust creates a Focus that applies fn to a present element and
// leaves an absent slot absent.
func Adjust[E any](fn func(E) E) Focus[E, Unit] {
	return Update(func(current E) option.Option[E] {
		return option.Some(fn(current))
	})
}

// Delete creates a Focus that erases the slot.
func Delete[E any]() Focus[E, Unit] {
	return Alter(func(option.Option[E]) option.Option[E] {
		return option.None[E]()
	})
}

// Lookup creates a Focus that returns the slot state without
// changing it.
func Lookup[E any]() Focus[E, option.Option[E]] {
	return Lift(func(state option.Option[E]) (option.Option[E], option.Option[E]) {
		return state, state
	})
}

// LookupWithDefault creates a Focus that returns the element or
// defaultValue when the slot is absent, without changing the slot.
func LookupWithDefault[E any](defaultValue E) Focus[E, E] {
	return Map(Lookup[E](), func(state option.Option[E]) E {
		return state.UnwrapOr(defaultValue)
	})
}

// Member creates a Focus that reports whether the slot is occupied,
// without changing it.
func Member[E any]() Focus[E, bool] {
	return Map(Lookup[E](), option.Option[E].IsSome)
}

// LookupAndDelete creates a Focus that returns the slot state and
// erases the slot. It is the fused form of Lookup followed by Delete
// and behaves identically to that composition.
func LookupAndDelete[E any]() Focus[E, option.Option[E]] {
	return Lift(func(state option.Option[E]) (option.Option[E], option.Option[E]) {
		return state, option.None[E]()
	})
}
