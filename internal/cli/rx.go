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

// RxOptions holds flags for the rx command.
type RxOptions struct {
	From    string
	To      string
	Reading bool
}

// NewRxCommand creates the rx command.
func NewRxCommand() *cobra.Command {
	opts := &RxOptions{}

	cmd := &cobra.Command{
		Use:   "rx <prescription>",
		Short: "Convert a full prescription between refractive indices",
		Long: `Convert a sphero-cylindrical prescription measured under one
refractive index to the prescription for another index.  Sphere and
cylinder scale by the same factor; the axis is unchanged.

With --reading the direction is reversed: the prescription is taken as
the true power at the --to index and the output is what a lensmeter
calibrated for the --from index would read.

Example:

	opticalc rx --from crown --to polycarbonate -- -2.00/-1.00x180`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRx(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "index the prescription was measured under")
	cmd.Flags().StringVar(&opts.To, "to", "", "index to convert to")
	cmd.Flags().BoolVar(&opts.Reading, "reading", false, "simulate a lensmeter reading instead (reverse direction)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

func runRx(opts *RxOptions, lensArg string, cmd *cobra.Command) error {
	lens, err := parseLens(lensArg)
	if err != nil {
		return err
	}
	from, err := parseIndex(opts.From)
	if err != nil {
		return err
	}
	to, err := parseIndex(opts.To)
	if err != nil {
		return err
	}

	if opts.Reading {
		// lens is the true Rx at the --to index; the instrument is
		// calibrated for the --from index
		reading, err := opticalc.SimulateLensmeterReading(lens, from, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "true %s @ %g reads %s @ %g\n",
			formatLens(lens), to, formatLens(reading), from)
		return nil
	}

	out, err := opticalc.ConvertRx(lens, from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s @ %g -> %s @ %g\n",
		formatLens(lens), from, formatLens(out), to)
	return nil
}
