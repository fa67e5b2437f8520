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

// PrismOptions holds flags for the prism command.
type PrismOptions struct {
	Eye string
	In  float64
	Up  float64
}

// NewPrismCommand creates the prism command.
func NewPrismCommand() *cobra.Command {
	opts := &PrismOptions{}

	cmd := &cobra.Command{
		Use:   "prism <prescription>",
		Short: "Induced prism from lens decentration",
		Long: `Compute the prism induced by decentering a lens from the visual
axis, using Prentice's rule with the full toric power matrix.

Decentration is given in millimeters: --in is positive toward the nose
and negative toward the temple (for either eye), --up is positive
upward.  Components are reported with their clinical base direction.

Example:

	opticalc prism --eye OD --in 2 --up -1 -- +2.00/-1.00x25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrism(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Eye, "eye", "", "which eye, OD (right) or OS (left)")
	cmd.Flags().Float64Var(&opts.In, "in", 0, "nasal decentration in mm (negative for temporal)")
	cmd.Flags().Float64Var(&opts.Up, "up", 0, "upward decentration in mm (negative for down)")
	cmd.MarkFlagRequired("eye")

	return cmd
}

func runPrism(opts *PrismOptions, lensArg string, cmd *cobra.Command) error {
	eye, err := parseEye(opts.Eye)
	if err != nil {
		return err
	}
	lens, err := parseLens(lensArg)
	if err != nil {
		return err
	}

	p := opticalc.InducedPrism(eye, lens, opticalc.Decentration{
		Horizontal: opts.In,
		Vertical:   opts.Up,
	})

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s decentered %g mm in, %g mm up\n",
		eye, formatLens(lens), opts.In, opts.Up)
	if mag, base, ok := p.HorizontalBase(); ok {
		fmt.Fprintf(w, "horizontal: %.3f pd %s\n", mag, base)
	} else {
		fmt.Fprintln(w, "horizontal: none")
	}
	if mag, base, ok := p.VerticalBase(); ok {
		fmt.Fprintf(w, "vertical:   %.3f pd %s\n", mag, base)
	} else {
		fmt.Fprintln(w, "vertical:   none")
	}
	fmt.Fprintf(w, "magnitude:  %.3f pd\n", p.Magnitude)
	return nil
}
