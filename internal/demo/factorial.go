// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package demo ports small imperative programs onto the loop combinators.
package demo

import (
	"fmt"
	"strings"

	"code.hybscloud.com/loop"
)

// MaxN is the largest n whose factorial fits in an int64.
const MaxN = 20

// Style selects the loop combinator a factorial is computed with.
type Style string

const (
	StyleWhile   Style = "while"
	StyleDoWhile Style = "do-while"
	StyleFor     Style = "for"
)

// Styles returns all loop styles in display order.
func Styles() []Style {
	return []Style{StyleWhile, StyleDoWhile, StyleFor}
}

// ParseStyle resolves a style name, case-insensitively.
func ParseStyle(name string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case StyleWhile, StyleDoWhile, StyleFor:
		return s, nil
	case "dowhile", "do_while":
		return StyleDoWhile, nil
	default:
		return "", fmt.Errorf("unknown loop style %q (want while, do-while or for)", name)
	}
}

// Locals is the explicit state of the factorial loop:
//
//	int i = 1, acc = 1;
//	while (i <= n) { if (i == breakAt) break; acc *= i; i++; }
type Locals struct {
	I   int
	N   int
	Acc int
}

// Factorial computes n! with the given loop style. A positive breakAt injects
// a break when the loop variable reaches it, leaving the product of the
// numbers before it.
func Factorial(style Style, n, breakAt int) (int, error) {
	if err := checkN(n); err != nil {
		return 0, err
	}
	start := Locals{I: 1, N: n, Acc: 1}
	pre := func(s Locals) bool { return s.I <= s.N }
	switch style {
	case StyleWhile:
		return loop.While(start, pre, stepBody(breakAt)).Acc, nil
	case StyleDoWhile:
		return loop.DoWhile(start, stepBody(breakAt), pre).Acc, nil
	case StyleFor:
		return loop.For(start, pre, multiply(breakAt), increment).Acc, nil
	default:
		return 0, fmt.Errorf("unknown loop style %q", style)
	}
}

// Generation is one observed state of a stepped factorial.
type Generation struct {
	Pass   int
	Locals Locals
}

// Trace steps the factorial loop one pass at a time and returns every
// generation, starting with the initial state.
func Trace(style Style, n, breakAt int) ([]Generation, error) {
	if err := checkN(n); err != nil {
		return nil, err
	}
	start := Locals{I: 1, N: n, Acc: 1}
	pre := func(s Locals) bool { return s.I <= s.N }
	var (
		s    Locals
		next *loop.Pending[Locals]
	)
	switch style {
	case StyleWhile:
		s, next = loop.StepWhile(start, pre, stepBody(breakAt))
	case StyleDoWhile:
		s, next = loop.StepDoWhile(start, stepBody(breakAt), pre)
	case StyleFor:
		s, next = loop.StepFor(start, pre, multiply(breakAt), increment)
	default:
		return nil, fmt.Errorf("unknown loop style %q", style)
	}
	gens := []Generation{{Pass: 0, Locals: s}}
	for pass := 1; next != nil; pass++ {
		s, next = next.Resume()
		gens = append(gens, Generation{Pass: pass, Locals: s})
	}
	return gens, nil
}

func checkN(n int) error {
	if n < 0 || n > MaxN {
		return fmt.Errorf("n must be in [0, %d], got %d", MaxN, n)
	}
	return nil
}

func breaks(breakAt int, s Locals) bool {
	return breakAt > 0 && s.I == breakAt
}

// stepBody is the while/do-while body: multiply, then advance.
func stepBody(breakAt int) func(Locals) (Locals, bool) {
	return func(s Locals) (Locals, bool) {
		if breaks(breakAt, s) {
			return s, true
		}
		return Locals{I: s.I + 1, N: s.N, Acc: s.Acc * s.I}, false
	}
}

// multiply is the for body; the increment advances.
func multiply(breakAt int) func(Locals) (Locals, bool) {
	return func(s Locals) (Locals, bool) {
		if breaks(breakAt, s) {
			return s, true
		}
		return Locals{I: s.I, N: s.N, Acc: s.Acc * s.I}, false
	}
}

func increment(s Locals) (Locals, bool) {
	return Locals{I: s.I + 1, N: s.N, Acc: s.Acc}, false
}
