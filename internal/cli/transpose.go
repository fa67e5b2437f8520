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
)

// NewTransposeCommand creates the transpose command.
func NewTransposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose <prescription>",
		Short: "Rewrite a prescription in the opposite cylinder form",
		Long: `Transpose a prescription between minus- and plus-cylinder notation.
Both forms have identical optical power.

Example:

	opticalc transpose -- -3.50/+2.00x150`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lens, err := parseLens(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n",
				formatLens(lens), formatLens(lens.Transpose()))
			return nil
		},
	}
}
