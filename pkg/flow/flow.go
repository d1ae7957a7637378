// Package flow provides a two-armed control-flow value for loop bodies that
// need to decide between continuing with the next item and stopping with a
// final result, together with adapters that build such a value from an
// Optional.
package flow

type (
	// ControlFlow is a sum of two arms: Break carrying a value of type B,
	// meaning "stop iterating, here is the terminal result", and Continue
	// carrying a value of type C, meaning "keep iterating, here is the next
	// item". Exactly one arm is populated. The zero value is Continue with
	// the zero value of C.
	//
	// ControlFlow values are comparable when B and C are.
	ControlFlow[B, C any] struct {
		breakValue    B
		continueValue C
		isBreak       bool
	}
)

// Break returns a ControlFlow on the Break arm, carrying b.
func Break[B, C any](b B) ControlFlow[B, C] {
	return ControlFlow[B, C]{breakValue: b, isBreak: true}
}

// Continue returns a ControlFlow on the Continue arm, carrying c.
func Continue[B, C any](c C) ControlFlow[B, C] {
	return ControlFlow[B, C]{continueValue: c}
}

// IsBreak reports whether the Break arm is populated.
func (cf ControlFlow[B, C]) IsBreak() bool {
	return cf.isBreak
}

// IsContinue reports whether the Continue arm is populated.
func (cf ControlFlow[B, C]) IsContinue() bool {
	return !cf.isBreak
}

// BreakValue returns the Break arm's value and whether that arm is populated.
func (cf ControlFlow[B, C]) BreakValue() (B, bool) {
	return cf.breakValue, cf.isBreak
}

// ContinueValue returns the Continue arm's value and whether that arm is
// populated.
func (cf ControlFlow[B, C]) ContinueValue() (C, bool) {
	return cf.continueValue, !cf.isBreak
}
