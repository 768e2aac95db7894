// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loop

import "sync/atomic"

// Stepping boundary for caller-driven loops.
// StepWhile/StepDoWhile/StepFor evaluate one pass at a time,
// unlike While/DoWhile/For which run the driver to completion.

// Pending represents a loop with at least one more pass to run.
// It holds the current carrier and a one-shot resumption handle.
//
// Pending enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a loop.
type Pending[A any] struct {
	used atomic.Uintptr
	s    LoopState[A]
	p    stepper[A]
}

// State returns the carrier the pending pass will start from.
func (h *Pending[A]) State() LoopState[A] { return h.s }

// Resume runs one pass.
// Returns either the final state (with nil pending) or the current state and
// the next pending pass. Panics if the handle has already been resumed or
// discarded.
//
// The returned handle reuses the receiver's memory.
func (h *Pending[A]) Resume() (A, *Pending[A]) {
	if h.used.Add(1) != 1 {
		panic("loop: pending pass resumed twice")
	}
	return h.advance()
}

// TryResume attempts to run one pass.
// Returns (state, pending, true) on success, or (zero, nil, false) if already used.
func (h *Pending[A]) TryResume() (A, *Pending[A], bool) {
	if h.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	a, next := h.advance()
	return a, next, true
}

// Discard marks the handle as consumed without running the pass.
func (h *Pending[A]) Discard() {
	h.used.Store(1)
	h.p = nil
}

func (h *Pending[A]) advance() (A, *Pending[A]) {
	s := h.p.run(h.s)
	if !h.p.enter(s) {
		h.p = nil
		return s.State, nil
	}
	h.s = s
	h.used.Store(0)
	return s.State, h
}

// StepWhile prepares a While loop for stepping.
// Returns (state, nil) if pre rejects the initial state, or (state, pending)
// otherwise.
//
// Example:
//
//	s, next := StepWhile(state, pre, body)
//	for next != nil {
//	    s, next = next.Resume()
//	}
//	// s == While(state, pre, body)
func StepWhile[A any](state A, pre func(A) bool, body func(A) (A, bool)) (A, *Pending[A]) {
	return begin[A](LoopState[A]{State: state}, whilePass[A]{
		pre:  transformPredicate(pre),
		body: transformBody(body),
	})
}

// StepDoWhile prepares a DoWhile loop for stepping.
// The first pass always runs, so the returned pending is never nil.
func StepDoWhile[A any](state A, body func(A) (A, bool), post func(A) bool) (A, *Pending[A]) {
	p := doWhilePass[A]{
		body: transformBody(body),
		post: post,
	}
	return state, &Pending[A]{s: LoopState[A]{State: state}, p: p}
}

// StepFor prepares a For loop for stepping.
// Each pass runs body followed by incr.
func StepFor[A any](state A, pre func(A) bool, body func(A) (A, bool), incr func(A) (A, bool)) (A, *Pending[A]) {
	return begin[A](LoopState[A]{State: state}, forPass[A]{
		pre:  transformPredicate(pre),
		body: transformBody(body),
		incr: transformBody(incr),
	})
}

func begin[A any](s LoopState[A], p stepper[A]) (A, *Pending[A]) {
	if !p.enter(s) {
		return s.State, nil
	}
	return s.State, &Pending[A]{s: s, p: p}
}
