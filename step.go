// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loop

// Step wrappers lift caller functions over plain state into break-aware
// functions over carriers. Drivers only ever see the wrapped forms.

// transformBody lifts a body or increment step into a carrier step.
// The returned break flag is the OR of the incoming and the step's flag.
func transformBody[A any](f func(A) (A, bool)) func(LoopState[A]) LoopState[A] {
	return func(s LoopState[A]) LoopState[A] {
		next, brk := f(s.State)
		return LoopState[A]{State: next, Break: s.Break || brk}
	}
}

// transformPredicate lifts a pre-condition into a carrier test.
// A broken carrier never satisfies the test and the predicate is not called.
func transformPredicate[A any](f func(A) bool) func(LoopState[A]) bool {
	return func(s LoopState[A]) bool {
		return !s.Break && f(s.State)
	}
}

// transformCase lifts a case handler into a switch step.
// The handler sees the current comparison value; afterwards the comparison
// value becomes the case's own match value.
func transformCase[A comparable, B any](c Case[A, B]) caseFrame[A, B] {
	return caseFrame[A, B]{
		match: c.Match,
		run: func(s SwitchState[A, B]) SwitchState[A, B] {
			result, brk := c.Handle(s.Value)
			return SwitchState[A, B]{
				Value:     c.Match,
				Result:    result,
				HasResult: true,
				Break:     brk,
			}
		},
	}
}

// transformDefault lifts the default branch into a terminal switch step.
func transformDefault[A comparable, B any](f func(A) B) func(SwitchState[A, B]) SwitchState[A, B] {
	return func(s SwitchState[A, B]) SwitchState[A, B] {
		return SwitchState[A, B]{
			Value:     s.Value,
			Result:    f(s.Value),
			HasResult: true,
			Break:     true,
		}
	}
}
