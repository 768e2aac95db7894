// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"code.hybscloud.com/loop/internal/demo"
)

func newWeekdayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday N...",
		Short: "Name days 1..7 with the switch combinator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				day, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid day %q: %w", arg, err)
				}
				name, err := demo.DayName(day)
				if err != nil {
					return fmt.Errorf("day %d: %w", day, err)
				}
				FormatDay(cmd.OutOrStdout(), day, name)
			}
			return nil
		},
	}
}
