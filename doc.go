// Package focus provides a composable description of a single
// associative-container slot operation.
//
// A Focus describes what to do with one slot whose current value may or
// may not exist: inspect it, produce a result, and decide whether the
// slot should keep its state, be removed, or be replaced. The container
// that owns the slot (the executor) supplies the current state, runs
// exactly one branch of the focus, and applies the returned post-state
// as a Command. The focus itself owns no storage and performs no I/O.
//
// The catalogue constructors (Insert, Delete, Adjust, Update, Alter,
// Lookup, ...) reproduce the classic map edit operations as focuses,
// and Bind sequences several focuses into one, each step observing the
// post-state left by the previous one:
//
//	f := focus.Bind(focus.Lookup[int](), func(prior option.Option[int]) focus.Focus[int, option.Option[int]] {
//		return focus.Map(focus.Delete[int](), func(focus.Unit) option.Option[int] { return prior })
//	})
//
// Branches take a context.Context and may return an error; pure
// constructors ignore the context and never fail, so the same type
// serves synchronous, fallible, and cancellable executions.
package focus
