// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loop

// Loop combinators.
// Each combinator wraps the caller's functions, builds the initial carrier,
// runs the matching pass policy through drive and unwraps the final state.
// Steps return (next state, break); break is sticky for the rest of the call.

// While runs body while pre holds for the current state and no step has
// signalled break. Returns the final state.
//
// If pre is false for the initial state, body is never called and state is
// returned unchanged.
//
// Example:
//
//	// sum 1..10
//	type acc struct{ i, sum int }
//	r := While(acc{i: 1},
//	    func(s acc) bool { return s.i <= 10 },
//	    func(s acc) (acc, bool) { return acc{s.i + 1, s.sum + s.i}, false },
//	)
//	// r.sum == 55
func While[A any](state A, pre func(A) bool, body func(A) (A, bool)) A {
	p := whilePass[A]{
		pre:  transformPredicate(pre),
		body: transformBody(body),
	}
	return drive(LoopState[A]{State: state}, p).State
}

// DoWhile runs body once, then again while post holds for the state the last
// pass produced and no step has signalled break.
//
// The returned state is the state produced by the last body call, including
// the call after which post became false.
func DoWhile[A any](state A, body func(A) (A, bool), post func(A) bool) A {
	p := doWhilePass[A]{
		body: transformBody(body),
		post: post,
	}
	return drive(p.run(LoopState[A]{State: state}), p).State
}

// For runs body followed by incr while pre holds and no step has signalled
// break.
//
// incr always runs after body, even when body signalled break; the loop stops
// when the next pre-condition check observes the break. The returned state is
// therefore the state after the last incr.
func For[A any](state A, pre func(A) bool, body func(A) (A, bool), incr func(A) (A, bool)) A {
	p := forPass[A]{
		pre:  transformPredicate(pre),
		body: transformBody(body),
		incr: transformBody(incr),
	}
	return drive(LoopState[A]{State: state}, p).State
}
