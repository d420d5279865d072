package focus

import (
	"fmt"

	"github.com/auth-platform/libs/go/focus/option"
)

// Kind identifies what an executor must do to the slot after a focus
// has run. Exactly one kind applies per execution.
type Kind uint8

const (
	// Keep leaves the slot state unchanged.
	Keep Kind = iota
	// Remove erases the slot.
	Remove
	// Replace stores the command's value in the slot.
	Replace
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Keep:
		return "Keep"
	case Remove:
		return "Remove"
	case Replace:
		return "Replace"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Command is the slot instruction a focus execution reduces to.
// The value is meaningful only when Kind is Replace.
type Command[E any] struct {
	kind  Kind
	value E
}

// KeepSlot creates a Command that leaves the slot unchanged.
func KeepSlot[E any]() Command[E] {
	return Command[E]{kind: Keep}
}

// RemoveSlot creates a Command that erases the slot.
func RemoveSlot[E any]() Command[E] {
	return Command[E]{kind: Remove}
}

// ReplaceSlot creates a Command that stores value in the slot.
func ReplaceSlot[E any](value E) Command[E] {
	return Command[E]{kind: Replace, value: value}
}

// Kind returns the command's kind.
func (c Command[E]) Kind() Kind {
	return c.kind
}

// Value returns the replacement value and whether one is present
// (true only for Replace commands).
func (c Command[E]) Value() (E, bool) {
	return c.value, c.kind == Replace
}

// Decide reduces a focus execution's post-state to a Command, given
// the slot state the focus was run against. An absent post-state maps
// to Remove when the slot was present and Keep when it already was
// absent. A present post-state always maps to Replace, even when the
// value equals the input: the executor performs the redundant write
// rather than the focus layer comparing values.
func Decide[E any](before, after option.Option[E]) Command[E] {
	if after.IsSome() {
		return ReplaceSlot(after.Unwrap())
	}
	if before.IsSome() {
		return RemoveSlot[E]()
	}
	return KeepSlot[E]()
}
