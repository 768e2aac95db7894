// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"code.hybscloud.com/loop/internal/demo"
)

func newFactorialCommand() *cobra.Command {
	var (
		style   string
		breakAt int
	)
	cmd := &cobra.Command{
		Use:   "factorial N",
		Short: "Compute N! with the loop combinators",
		Long: `Compute N! with While, DoWhile or For. --break-at K injects a break when the
loop variable reaches K, leaving the product of 1..K-1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				return err
			}
			styles, err := resolveStyles(style)
			if err != nil {
				return err
			}
			results := make([]FactorialResult, 0, len(styles))
			for _, s := range styles {
				v, err := demo.Factorial(s, n, breakAt)
				if err != nil {
					return fmt.Errorf("%s factorial: %w", s, err)
				}
				results = append(results, FactorialResult{Style: s, N: n, Value: v})
			}
			FormatFactorials(cmd.OutOrStdout(), breakAt, results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&style, "style", "s", defaultStyle("all"), "Loop style (while, do-while, for, all)")
	cmd.Flags().IntVarP(&breakAt, "break-at", "b", 0, "Break when the loop variable reaches this value (0 = never)")
	return cmd
}

func newStepsCommand() *cobra.Command {
	var (
		style   string
		breakAt int
	)
	cmd := &cobra.Command{
		Use:   "steps N",
		Short: "Print every generation of a stepped factorial loop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				return err
			}
			styles, err := resolveStyles(style)
			if err != nil {
				return err
			}
			for _, s := range styles {
				gens, err := demo.Trace(s, n, breakAt)
				if err != nil {
					return fmt.Errorf("%s trace: %w", s, err)
				}
				FormatTrace(cmd.OutOrStdout(), s, gens)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&style, "style", "s", defaultStyle("while"), "Loop style (while, do-while, for, all)")
	cmd.Flags().IntVarP(&breakAt, "break-at", "b", 0, "Break when the loop variable reaches this value (0 = never)")
	return cmd
}
