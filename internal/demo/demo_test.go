// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo_test

import (
	"testing"

	"code.hybscloud.com/loop/internal/demo"
)

func TestFactorialAllStyles(t *testing.T) {
	want := 1
	for n := 1; n <= demo.MaxN; n++ {
		want *= n
		for _, style := range demo.Styles() {
			got, err := demo.Factorial(style, n, 0)
			if err != nil {
				t.Fatalf("%s n=%d: unexpected error %v", style, n, err)
			}
			if got != want {
				t.Fatalf("%s n=%d: got %d, want %d", style, n, got, want)
			}
		}
	}
}

func TestFactorialBreakAtFive(t *testing.T) {
	for _, style := range demo.Styles() {
		for n := 1; n <= 10; n++ {
			got, err := demo.Factorial(style, n, 5)
			if err != nil {
				t.Fatalf("%s n=%d: unexpected error %v", style, n, err)
			}
			want := 24
			if n < 5 {
				want = 1
				for i := 2; i <= n; i++ {
					want *= i
				}
			}
			if got != want {
				t.Fatalf("%s n=%d: got %d, want %d", style, n, got, want)
			}
		}
	}
}

func TestFactorialRange(t *testing.T) {
	for _, n := range []int{-1, demo.MaxN + 1} {
		if _, err := demo.Factorial(demo.StyleWhile, n, 0); err == nil {
			t.Fatalf("n=%d: expected error", n)
		}
	}
	if _, err := demo.Factorial("until", 3, 0); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestParseStyle(t *testing.T) {
	for name, want := range map[string]demo.Style{
		"while":    demo.StyleWhile,
		" FOR ":    demo.StyleFor,
		"do-while": demo.StyleDoWhile,
		"dowhile":  demo.StyleDoWhile,
		"do_while": demo.StyleDoWhile,
	} {
		got, err := demo.ParseStyle(name)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", name, err)
		}
		if got != want {
			t.Fatalf("%q: got %q, want %q", name, got, want)
		}
	}
	if _, err := demo.ParseStyle("loop"); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestTraceWhile(t *testing.T) {
	gens, err := demo.Trace(demo.StyleWhile, 3, 0)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []demo.Locals{
		{I: 1, N: 3, Acc: 1},
		{I: 2, N: 3, Acc: 1},
		{I: 3, N: 3, Acc: 2},
		{I: 4, N: 3, Acc: 6},
	}
	if len(gens) != len(want) {
		t.Fatalf("got %d generations, want %d", len(gens), len(want))
	}
	for i, g := range gens {
		if g.Pass != i || g.Locals != want[i] {
			t.Fatalf("generation %d: got %+v, want pass %d %+v", i, g, i, want[i])
		}
	}
}

func TestTraceMatchesFactorial(t *testing.T) {
	for _, style := range demo.Styles() {
		for _, brk := range []int{0, 2, 5} {
			gens, err := demo.Trace(style, 8, brk)
			if err != nil {
				t.Fatalf("%s: unexpected error %v", style, err)
			}
			want, _ := demo.Factorial(style, 8, brk)
			if got := gens[len(gens)-1].Locals.Acc; got != want {
				t.Fatalf("%s brk=%d: got %d, want %d", style, brk, got, want)
			}
		}
	}
}

func TestTraceDoWhileZero(t *testing.T) {
	gens, err := demo.Trace(demo.StyleDoWhile, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	// body runs once even though 1 > 0
	if len(gens) != 2 {
		t.Fatalf("got %d generations, want 2", len(gens))
	}
}

func TestDayName(t *testing.T) {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, want := range names {
		got, err := demo.DayName(i + 1)
		if err != nil {
			t.Fatalf("day %d: unexpected error %v", i+1, err)
		}
		if got != want {
			t.Fatalf("day %d: got %q, want %q", i+1, got, want)
		}
	}
	if got, _ := demo.DayName(8); got != demo.InvalidDay {
		t.Fatalf("day 8: got %q, want %q", got, demo.InvalidDay)
	}
}

func TestIsWeekend(t *testing.T) {
	for day := 0; day <= 8; day++ {
		got, err := demo.IsWeekend(day)
		if err != nil {
			t.Fatalf("day %d: unexpected error %v", day, err)
		}
		want := day == 6 || day == 7
		if got != want {
			t.Fatalf("day %d: got %v, want %v", day, got, want)
		}
	}
}
