// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package loop provides higher-order control-flow combinators for porting
// imperative algorithms to code that threads state explicitly.
//
// Mutable locals become one explicit state value (usually a struct) that every
// step function receives and returns. The combinators evaluate predicates,
// iterate, and propagate C-style break.
//
// # Design Philosophy
//
// loop provides:
//   - Four combinators with the shape of the imperative statements they replace
//   - A single sticky break flag carried next to the state
//   - Iterative drivers: pass count never bounds stack depth
//
// # Break Protocol
//
// Every body and increment step returns (next, brk). The driver combines brk
// with the running flag by logical OR, so once a step breaks the flag stays set
// for the rest of the call. There is no continue; express it with conditional
// logic inside the step. There is no multi-level break.
//
// # Carriers
//
//   - [LoopState]: caller state plus break flag, one value per generation
//   - [SwitchState]: comparison value, optional result, break flag
//
// # Combinators
//
//   - [While]: test pre-condition, run body, repeat
//   - [DoWhile]: run body, test post-condition, repeat
//   - [For]: test pre-condition, run body, run increment, repeat
//   - [Switch]: test [Case] values in order, fall through until a handler breaks
//
// # F-Bounded Drivers
//
// While, DoWhile and For share one driver parameterised by a pass policy with
// an F-bounded constraint (type pass[P pass[P, A], A any]). The policy type is
// known at monomorphization time, so the entry test and the pass body can be
// devirtualized.
//
// # Switch Fallthrough
//
// After a case matches, the comparison value becomes that case's own match
// value. A non-breaking case therefore only falls through into later cases
// with an equal match value; cases with distinct values are skipped. When no
// case breaks, the default branch runs on the comparison value and always
// terminates the switch.
//
// # Stepping Boundary
//
// [StepWhile], [StepDoWhile] and [StepFor] evaluate one pass at a time for
// callers that need to observe or interleave generations.
//
//   - [Pending]: next pass with one-shot resumption handle
//   - [Pending.State]: carrier before the pass
//   - [Pending.Resume]: run the pass (panics on reuse)
//   - [Pending.TryResume]: non-panicking variant of Resume
//   - [Pending.Discard]: abandon the loop
//
// Returns (state, nil) on completion, or (state, [*Pending]) when another
// pass would run. Resuming to completion yields the same state as the
// one-shot combinator.
//
// # Errors
//
// Only [Switch] can fail, with [ErrNoResult], and only when the default branch
// is nil. Panics from caller functions propagate unchanged.
//
// # Example
//
//	type fact struct{ i, acc int }
//
//	r := For(fact{i: 1, acc: 1},
//		func(s fact) bool { return s.i <= 5 },
//		func(s fact) (fact, bool) { return fact{s.i, s.acc * s.i}, false },
//		func(s fact) (fact, bool) { return fact{s.i + 1, s.acc}, false },
//	)
//	// r.acc == 120
package loop
