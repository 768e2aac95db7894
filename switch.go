// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loop

// Case pairs a match value with a handler.
// Handle receives the current comparison value and returns the case result
// and whether the switch breaks after this case.
type Case[A comparable, B any] struct {
	Match  A
	Handle func(A) (B, bool)
}

// On creates a Case matching m.
func On[A comparable, B any](m A, handle func(A) (B, bool)) Case[A, B] {
	return Case[A, B]{Match: m, Handle: handle}
}

// caseFrame is a case whose handler has been lifted into a switch step.
type caseFrame[A comparable, B any] struct {
	match A
	run   func(SwitchState[A, B]) SwitchState[A, B]
}

// Switch tests cases in order against expr and returns the result of the
// first matching case whose handler signals break. When no case breaks, the
// default branch runs on the current comparison value and its output is
// returned; the default branch is always terminal.
//
// A matching case that does not break falls through: testing continues with
// the remaining cases, compared against the matched case's own match value
// rather than expr. Only subsequent cases sharing that match value run.
//
// A nil def means no default branch. Switch then returns the last case
// result, or [ErrNoResult] when no case matched.
//
// Example:
//
//	day, err := Switch(n, []Case[int, string]{
//	    On(1, func(int) (string, bool) { return "Monday", true }),
//	    On(2, func(int) (string, bool) { return "Tuesday", true }),
//	}, func(int) string { return "Unknown" })
func Switch[A comparable, B any](expr A, cases []Case[A, B], def func(A) B) (B, error) {
	frames := make([]caseFrame[A, B], len(cases))
	for i, c := range cases {
		frames[i] = transformCase(c)
	}
	var fallback func(SwitchState[A, B]) SwitchState[A, B]
	if def != nil {
		fallback = transformDefault(def)
	}
	s := driveSwitch(SwitchState[A, B]{Value: expr}, frames, fallback)
	if v, ok := s.Get(); ok {
		return v, nil
	}
	var zero B
	return zero, ErrNoResult
}

// driveSwitch is the iterative switch driver.
// It stops at the first broken state, or after the default branch once the
// frames are exhausted.
func driveSwitch[A comparable, B any](
	s SwitchState[A, B],
	frames []caseFrame[A, B],
	fallback func(SwitchState[A, B]) SwitchState[A, B],
) SwitchState[A, B] {
	for !s.Break {
		if len(frames) == 0 {
			if fallback == nil {
				return s
			}
			return fallback(s)
		}
		f := frames[0]
		frames = frames[1:]
		if f.match == s.Value {
			s = f.run(s)
		}
	}
	return s
}
