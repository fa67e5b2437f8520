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

// Package material lists refractive indices of common ophthalmic lens
// materials.
//
// All indices are for the sodium D-line (589.3 nm) at 20 degrees
// Celsius, the standard reference wavelength for ophthalmic work.
package material

import "strings"

// Refractive indices of common lens materials.
const (
	// CR39 is Columbia Resin #39, the standard plastic lens material.
	CR39 = 1.498

	// CrownGlass is standard optical crown glass.
	CrownGlass = 1.523

	// Trivex is a light, impact-resistant urethane material.
	Trivex = 1.532

	// Polycarbonate is the usual choice for safety and children's
	// eyewear.
	Polycarbonate = 1.586

	// HighIndex160, HighIndex167 and HighIndex174 are high-index
	// plastics used to thin lenses for stronger prescriptions.
	HighIndex160 = 1.600
	HighIndex167 = 1.670
	HighIndex174 = 1.740
)

// Material pairs a material name with its refractive index.
type Material struct {
	Name  string
	Index float64
}

// All lists the known materials in order of increasing index.
func All() []Material {
	return []Material{
		{"cr39", CR39},
		{"crown", CrownGlass},
		{"trivex", Trivex},
		{"polycarbonate", Polycarbonate},
		{"1.60", HighIndex160},
		{"1.67", HighIndex167},
		{"1.74", HighIndex174},
	}
}

// ByName looks up a material by its name, ignoring case.  The names
// are the ones reported by [All].
func ByName(name string) (Material, bool) {
	name = strings.ToLower(name)
	for _, m := range All() {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}
