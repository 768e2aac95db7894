// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the loopdemo command tree.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"code.hybscloud.com/loop/internal/demo"
	"code.hybscloud.com/loop/internal/version"
)

// StyleEnv overrides the default --style of the factorial and steps commands.
const StyleEnv = "LOOPDEMO_STYLE"

// NewRootCommand builds the loopdemo command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "loopdemo",
		Short: "Run imperative programs ported onto loop combinators",
		Long: `loopdemo runs small imperative programs whose loops and switches are
expressed with the while, do-while, for and switch combinators of
code.hybscloud.com/loop, with explicit state and sticky break.`,
		SilenceUsage: true,
	}
	root.Version = version.Version
	root.SetVersionTemplate(fmt.Sprintf("loopdemo %s\n", version.String()))

	root.AddCommand(newFactorialCommand(), newStepsCommand(), newWeekdayCommand())
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultStyle returns the style flag default, honouring StyleEnv.
func defaultStyle(fallback string) string {
	if env := os.Getenv(StyleEnv); env != "" {
		return env
	}
	return fallback
}

// parseN parses the factorial argument.
func parseN(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid n %q: %w", arg, err)
	}
	if n < 0 || n > demo.MaxN {
		return 0, fmt.Errorf("n must be in [0, %d], got %d", demo.MaxN, n)
	}
	return n, nil
}

// resolveStyles expands "all" into every style.
func resolveStyles(name string) ([]demo.Style, error) {
	if name == "all" {
		return demo.Styles(), nil
	}
	s, err := demo.ParseStyle(name)
	if err != nil {
		return nil, err
	}
	return []demo.Style{s}, nil
}
