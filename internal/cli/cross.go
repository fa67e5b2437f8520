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

	"github.com/spf13/cobra"

	"github.com/lenslab/opticalc"
)

// NewCrossCommand creates the cross command.
func NewCrossCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cross <prescription> <prescription>",
		Short: "Combine two obliquely crossed cylinders",
		Long: `Combine two stacked sphero-cylindrical lenses into the single
equivalent prescription.  The result is in minus-cylinder form.

Example:

	opticalc cross -- -4.00/+2.00x45 -5.00/-3.00x120`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseLens(args[0])
			if err != nil {
				return err
			}
			b, err := parseLens(args[1])
			if err != nil {
				return err
			}
			r := opticalc.CrossedCylinders(a, b)
			fmt.Fprintf(cmd.OutOrStdout(), "%s + %s = %+.2f/%+.2fx%.1f\n",
				formatLens(a), formatLens(b), r.Sphere, r.Cylinder, r.Axis)
			return nil
		},
	}
}
