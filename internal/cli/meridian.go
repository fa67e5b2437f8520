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
)

// NewMeridianCommand creates the meridian command.
func NewMeridianCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "meridian <prescription> <degrees>",
		Short: "Power of a lens at an oblique meridian",
		Long: `Evaluate the meridional power of a lens at an arbitrary meridian,
in degrees.  Meridian 0 is horizontal, 90 is vertical.

Example:

	opticalc meridian -- -2.00/-4.00x30 45`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lens, err := parseLens(args[0])
			if err != nil {
				return err
			}
			meridian, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid meridian %q", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s @ %g deg = %+.3f D\n",
				formatLens(lens), meridian, lens.PowerAt(meridian))
			return nil
		},
	}
}
