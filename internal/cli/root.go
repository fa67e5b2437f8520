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

// Package cli implements the opticalc command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the opticalc CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opticalc",
		Short: "clinical optics calculations for spectacle lenses",
		Long: `Opticalc computes clinical optics quantities for spectacle lenses:
refractive-index power conversion, lensmeter-reading simulation, induced
prism from decentration, crossed cylinders, transposition, oblique
meridian power, and lens blank sizes.

Prescriptions are written as SPHERE/CYLxAXIS, for example -3.50/-2.00x60.
A bare sphere like +2.00 is also accepted.  Refractive indices may be
given numerically (1.586) or as a material name (see "opticalc materials").`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewConvertCommand())
	cmd.AddCommand(NewRxCommand())
	cmd.AddCommand(NewTransposeCommand())
	cmd.AddCommand(NewCrossCommand())
	cmd.AddCommand(NewPrismCommand())
	cmd.AddCommand(NewMeridianCommand())
	cmd.AddCommand(NewBlankCommand())
	cmd.AddCommand(NewMaterialsCommand())
	cmd.AddCommand(NewBatchCommand())

	return cmd
}
