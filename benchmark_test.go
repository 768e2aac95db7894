// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loop_test

import (
	"testing"

	"code.hybscloud.com/loop"
)

// BenchmarkWhile measures a 100-pass While.
func BenchmarkWhile(b *testing.B) {
	pre := below(100)
	for b.Loop() {
		_ = loop.While(0, pre, inc)
	}
}

// BenchmarkDoWhile measures a 100-pass DoWhile.
func BenchmarkDoWhile(b *testing.B) {
	post := below(100)
	for b.Loop() {
		_ = loop.DoWhile(0, inc, post)
	}
}

// BenchmarkFor measures a 100-pass For.
func BenchmarkFor(b *testing.B) {
	pre := below(100)
	noop := func(x int) (int, bool) { return x, false }
	for b.Loop() {
		_ = loop.For(0, pre, noop, inc)
	}
}

// BenchmarkFactorialFor measures the struct-state factorial.
func BenchmarkFactorialFor(b *testing.B) {
	body := factForBody(0)
	for b.Loop() {
		_ = loop.For(fact{i: 1, n: 20, acc: 1}, factPre, body, factIncr)
	}
}

// BenchmarkSwitchWeekday measures a seven-case Switch hitting the last case.
func BenchmarkSwitchWeekday(b *testing.B) {
	cases := dayCases()
	for b.Loop() {
		_, _ = loop.Switch(7, cases, invalidDay)
	}
}

// BenchmarkStepWhile measures stepping a 100-pass While.
func BenchmarkStepWhile(b *testing.B) {
	pre := below(100)
	for b.Loop() {
		_, p := loop.StepWhile(0, pre, inc)
		for p != nil {
			_, p = p.Resume()
		}
	}
}
