// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loop

// Carrier states threaded through the drivers.
// Every pass derives a new carrier value; none is mutated after creation.

// LoopState carries one generation of loop state together with the break flag.
//
// Break is sticky: once a step reports break, every carrier derived from it
// also reports break. Steps combine flags with logical OR and never clear them.
type LoopState[A any] struct {
	// State is the caller's explicit state value.
	State A

	// Break reports that no further pass may run.
	Break bool
}

// SwitchState carries the state of a Switch between case tests.
//
// Value starts as the expression under test and is replaced by the match
// value of each case that matches. HasResult is false until a case or the
// default branch produces a result and is never reset afterwards.
type SwitchState[A comparable, B any] struct {
	// Value is the comparison basis for the next case.
	Value A

	// Result holds the most recent case or default output.
	// Valid when HasResult is true.
	Result B

	// HasResult reports whether Result has been produced.
	HasResult bool

	// Break reports that no further case may be tested.
	Break bool
}

// Get returns the recorded result and whether one exists.
func (s SwitchState[A, B]) Get() (B, bool) {
	if s.HasResult {
		return s.Result, true
	}
	var zero B
	return zero, false
}
