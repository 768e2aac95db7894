// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"code.hybscloud.com/loop/internal/demo"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// dimStyle for labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for computed values
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for out-of-range results
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for result boxes
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(0, 1)
)

// FactorialResult is one line of the factorial command.
type FactorialResult struct {
	Style demo.Style
	N     int
	Value int
}

// FormatFactorials renders factorial results in a box.
func FormatFactorials(w io.Writer, breakAt int, results []FactorialResult) {
	title := "Factorial"
	if breakAt > 0 {
		title += dimStyle.Render(fmt.Sprintf("  (break at i == %d)", breakAt))
	}
	lines := []string{titleStyle.Render(title)}
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%s %d! = %s",
			dimStyle.Render(fmt.Sprintf("%-9s", string(r.Style)+":")),
			r.N,
			successStyle.Render(fmt.Sprint(r.Value)),
		))
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

// FormatDay renders one weekday lookup.
func FormatDay(w io.Writer, day int, name string) {
	style := successStyle
	if name == demo.InvalidDay {
		style = errorStyle
	}
	fmt.Fprintf(w, "%s %s\n", dimStyle.Render(fmt.Sprintf("%3d", day)), style.Render(name))
}

// FormatTrace renders every generation of a stepped loop.
func FormatTrace(w io.Writer, style demo.Style, gens []demo.Generation) {
	lines := []string{titleStyle.Render(fmt.Sprintf("Generations (%s)", style))}
	for _, g := range gens {
		line := fmt.Sprintf("%s i=%-3d acc=%d",
			dimStyle.Render(fmt.Sprintf("pass %2d", g.Pass)),
			g.Locals.I, g.Locals.Acc,
		)
		lines = append(lines, line)
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}
