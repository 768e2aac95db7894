// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loop

// pass is an F-bounded interface for the loop evaluation strategies.
// The type parameter P is the concrete policy (self-referential bound), A is
// the caller's state type. Shared iteration lives in drive; policies define
// only the entry test and the pass body that diverge between loop kinds.
type pass[P pass[P, A], A any] interface {
	// enter reports whether another pass runs from carrier s.
	enter(s LoopState[A]) bool
	// run executes one pass and returns the next carrier.
	run(s LoopState[A]) LoopState[A]
}

// drive is the unified iterative driver for While, DoWhile and For.
// The policy type P is known at monomorphization time, enabling the compiler
// to devirtualize enter/run calls. Three policies:
//   - whilePass[A]: pre-condition, then body
//   - doWhilePass[A]: post-condition after an unconditional first pass
//   - forPass[A]: pre-condition, then body followed by increment
//
// drive never grows the call stack per pass.
func drive[P pass[P, A], A any](s LoopState[A], p P) LoopState[A] {
	for p.enter(s) {
		s = p.run(s)
	}
	return s
}

// whilePass tests the pre-condition before every pass.
type whilePass[A any] struct {
	pre  func(LoopState[A]) bool
	body func(LoopState[A]) LoopState[A]
}

func (p whilePass[A]) enter(s LoopState[A]) bool       { return p.pre(s) }
func (p whilePass[A]) run(s LoopState[A]) LoopState[A] { return p.body(s) }

// doWhilePass tests the post-condition against the state a pass produced.
// The first pass is run by the caller of drive without consulting enter.
type doWhilePass[A any] struct {
	body func(LoopState[A]) LoopState[A]
	post func(A) bool
}

func (p doWhilePass[A]) enter(s LoopState[A]) bool       { return !s.Break && p.post(s.State) }
func (p doWhilePass[A]) run(s LoopState[A]) LoopState[A] { return p.body(s) }

// forPass runs the increment unconditionally after the body, even when the
// body broke. The break is observed by pre at the top of the next pass.
type forPass[A any] struct {
	pre  func(LoopState[A]) bool
	body func(LoopState[A]) LoopState[A]
	incr func(LoopState[A]) LoopState[A]
}

func (p forPass[A]) enter(s LoopState[A]) bool       { return p.pre(s) }
func (p forPass[A]) run(s LoopState[A]) LoopState[A] { return p.incr(p.body(s)) }

// stepper is the non-bounded view of a pass policy, used where the concrete
// policy type cannot appear in a signature.
type stepper[A any] interface {
	enter(s LoopState[A]) bool
	run(s LoopState[A]) LoopState[A]
}

var (
	_ pass[whilePass[int], int]   = whilePass[int]{}
	_ pass[doWhilePass[int], int] = doWhilePass[int]{}
	_ pass[forPass[int], int]     = forPass[int]{}
)
