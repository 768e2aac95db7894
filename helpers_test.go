// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loop_test

import "code.hybscloud.com/loop"

// fact is the explicit state of an iterative factorial.
type fact struct {
	i, n, acc int
}

func factPre(s fact) bool { return s.i <= s.n }

// factBody multiplies and advances; it breaks without changing the state
// when i reaches brk (brk <= 0 disables the break).
func factBody(brk int) func(fact) (fact, bool) {
	return func(s fact) (fact, bool) {
		if brk > 0 && s.i == brk {
			return s, true
		}
		return fact{i: s.i + 1, n: s.n, acc: s.acc * s.i}, false
	}
}

// factForBody multiplies only; the increment advances i.
func factForBody(brk int) func(fact) (fact, bool) {
	return func(s fact) (fact, bool) {
		if brk > 0 && s.i == brk {
			return s, true
		}
		return fact{i: s.i, n: s.n, acc: s.acc * s.i}, false
	}
}

func factIncr(s fact) (fact, bool) {
	return fact{i: s.i + 1, n: s.n, acc: s.acc}, false
}

func whileFactorial(n, brk int) int {
	return loop.While(fact{i: 1, n: n, acc: 1}, factPre, factBody(brk)).acc
}

func doWhileFactorial(n, brk int) int {
	return loop.DoWhile(fact{i: 1, n: n, acc: 1}, factBody(brk), factPre).acc
}

func forFactorial(n, brk int) int {
	return loop.For(fact{i: 1, n: n, acc: 1}, factPre, factForBody(brk), factIncr).acc
}

// refFactorial is the imperative reference.
func refFactorial(n, brk int) int {
	acc := 1
	for i := 1; i <= n; i++ {
		if brk > 0 && i == brk {
			break
		}
		acc *= i
	}
	return acc
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func dayCases() []loop.Case[int, string] {
	cases := make([]loop.Case[int, string], 0, len(weekdays))
	for i, name := range weekdays {
		cases = append(cases, loop.On(i+1, func(int) (string, bool) { return name, true }))
	}
	return cases
}

func invalidDay(int) string { return "Invalid day" }
