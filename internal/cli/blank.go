// opticalc - a library for ophthalmic lens calculations
// Copyright (C) 2026  The opticalc contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lenslab/opticalc"
)

// NewBlankCommand creates the blank command.
func NewBlankCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "blank <effective-diameter> <eyesize> <bridge> <ipd>",
		Short: "Minimum and recommended lens blank size",
		Long: `Compute the minimum round blank diameter needed to cut a
single-vision lens with correct centration, and the recommended size
with a 1 mm working edge border.  All arguments are millimeters.

Example:

	opticalc blank 55 50 15 53`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [4]float64
			for i, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid measurement %q", arg)
				}
				v[i] = x
			}
			min := opticalc.MinimumBlankSize(v[0], v[1], v[2], v[3])
			rec := opticalc.RecommendedBlankSize(v[0], v[1], v[2], v[3])
			fmt.Fprintf(cmd.OutOrStdout(), "minimum:     %g mm\nrecommended: %g mm\n", min, rec)
			return nil
		},
	}
}
