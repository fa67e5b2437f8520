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
	"strings"

	"github.com/lenslab/opticalc"
	"github.com/lenslab/opticalc/material"
)

// parseLens parses the clinical prescription notation SPHERE/CYLxAXIS,
// e.g. "-3.50/-2.00x60".  The cylinder part is optional: a bare
// "-3.50" is a pure sphere.
func parseLens(s string) (opticalc.SpheroCyl, error) {
	sphPart, cylPart, hasCyl := strings.Cut(s, "/")

	sphere, err := strconv.ParseFloat(sphPart, 64)
	if err != nil {
		return opticalc.SpheroCyl{}, fmt.Errorf("invalid prescription %q: bad sphere", s)
	}
	if !hasCyl {
		return opticalc.SpheroCyl{Sphere: sphere}, nil
	}

	cylStr, axisStr, hasAxis := strings.Cut(cylPart, "x")
	if !hasAxis {
		return opticalc.SpheroCyl{}, fmt.Errorf("invalid prescription %q: missing axis", s)
	}
	cylinder, err := strconv.ParseFloat(cylStr, 64)
	if err != nil {
		return opticalc.SpheroCyl{}, fmt.Errorf("invalid prescription %q: bad cylinder", s)
	}
	axis, err := strconv.ParseFloat(axisStr, 64)
	if err != nil {
		return opticalc.SpheroCyl{}, fmt.Errorf("invalid prescription %q: bad axis", s)
	}

	return opticalc.SpheroCyl{Sphere: sphere, Cylinder: cylinder, Axis: axis}, nil
}

// formatLens renders a prescription in the same notation parseLens
// accepts, with powers in hundredths of a diopter.
func formatLens(lens opticalc.SpheroCyl) string {
	if lens.Cylinder == 0 {
		return fmt.Sprintf("%+.2f", lens.Sphere)
	}
	return fmt.Sprintf("%+.2f/%+.2fx%g", lens.Sphere, lens.Cylinder, lens.Axis)
}

// parseIndex resolves a refractive index given numerically or as a
// material name.
func parseIndex(s string) (float64, error) {
	if m, ok := material.ByName(s); ok {
		return m.Index, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown material or index %q", s)
	}
	return n, nil
}

// parseEye resolves "OD" or "OS", ignoring case.
func parseEye(s string) (opticalc.Eye, error) {
	switch strings.ToUpper(s) {
	case "OD":
		return opticalc.OD, nil
	case "OS":
		return opticalc.OS, nil
	}
	return 0, fmt.Errorf("invalid eye %q (must be OD or OS)", s)
}
