package flow

import (
	"github.com/go-flow/controlflow/pkg/optional"
)

// The two OrElse functions are the primitives: every other conversion in this
// file delegates to one of them, so the presence/absence branch and the
// at-most-once producer call live in a single place per direction.

// ContinueOrElse treats presence as continuation: when o holds a value it
// returns Continue with that value, otherwise Break carrying produce().
// produce runs only when o is empty, exactly once.
func ContinueOrElse[B, T any](o optional.Optional[T], produce func() B) ControlFlow[B, T] {
	if v, ok := o.Get(); ok {
		return Continue[B](v)
	}
	return Break[B, T](produce())
}

// BreakOrElse treats presence as termination: when o holds a value it returns
// Break with that value, otherwise Continue carrying produce(). produce runs
// only when o is empty, exactly once.
func BreakOrElse[C, T any](o optional.Optional[T], produce func() C) ControlFlow[T, C] {
	if v, ok := o.Get(); ok {
		return Break[T, C](v)
	}
	return Continue[T, C](produce())
}

// ContinueOr is ContinueOrElse with an already-computed break value.
func ContinueOr[B, T any](o optional.Optional[T], b B) ControlFlow[B, T] {
	return ContinueOrElse(o, func() B { return b })
}

// BreakOr is BreakOrElse with an already-computed continue value.
func BreakOr[C, T any](o optional.Optional[T], c C) ControlFlow[T, C] {
	return BreakOrElse(o, func() C { return c })
}

// ContinueOrZero is ContinueOrElse breaking with the zero value of B.
func ContinueOrZero[B, T any](o optional.Optional[T]) ControlFlow[B, T] {
	return ContinueOrElse(o, func() (zero B) { return })
}

// BreakOrZero is BreakOrElse continuing with the zero value of C.
func BreakOrZero[C, T any](o optional.Optional[T]) ControlFlow[T, C] {
	return BreakOrElse(o, func() (zero C) { return })
}
