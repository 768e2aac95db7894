// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo

import "code.hybscloud.com/loop"

// InvalidDay is returned by DayName for numbers outside 1..7.
const InvalidDay = "Invalid day"

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// dayCases is the case list of
//
//	switch (day) { case 1: name = "Monday"; break; ... default: name = "Invalid day"; }
var dayCases = func() []loop.Case[int, string] {
	cases := make([]loop.Case[int, string], len(dayNames))
	for i, name := range dayNames {
		cases[i] = loop.On(i+1, func(int) (string, bool) { return name, true })
	}
	return cases
}()

// DayName maps 1..7 to Monday..Sunday through loop.Switch.
func DayName(day int) (string, error) {
	return loop.Switch(day, dayCases, func(int) string { return InvalidDay })
}

// IsWeekend classifies a day with a falling-through switch: Saturday does not
// break and falls into the Sunday-valued case, which does.
//
//	switch (day) { case 6: case 7: return true; default: return false; }
//
// Cases are compared against the last matched value, so the fallthrough case
// for Saturday carries Saturday's value.
func IsWeekend(day int) (bool, error) {
	return loop.Switch(day, []loop.Case[int, bool]{
		loop.On(6, func(int) (bool, bool) { return true, false }),
		loop.On(6, func(int) (bool, bool) { return true, true }),
		loop.On(7, func(int) (bool, bool) { return true, true }),
	}, func(int) bool { return false })
}
