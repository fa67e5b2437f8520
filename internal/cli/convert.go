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

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	From string
	To   string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <power>",
		Short: "Convert a power between refractive indices",
		Long: `Convert a single lens power measured under one refractive index to
the power for another index, using the lensmaker scaling identity
F' = F*(to-1)/(from-1).

Example: a polycarbonate lens reading -4.463 D on a lensmeter calibrated
for crown glass has a true power of about -5.00 D:

	opticalc convert --from crown --to polycarbonate -- -4.463

(The "--" keeps a leading minus power from being read as a flag.)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "index the power was measured under (number or material name)")
	cmd.Flags().StringVar(&opts.To, "to", "", "index to convert to (number or material name)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(opts *ConvertOptions, powerArg string, cmd *cobra.Command) error {
	power, err := strconv.ParseFloat(powerArg, 64)
	if err != nil {
		return fmt.Errorf("invalid power %q", powerArg)
	}
	from, err := parseIndex(opts.From)
	if err != nil {
		return err
	}
	to, err := parseIndex(opts.To)
	if err != nil {
		return err
	}

	converted, err := opticalc.ConvertPower(power, from, to)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%+.3f D @ %g -> %+.3f D @ %g\n",
		power, from, converted, to)
	return nil
}
