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

package opticalc

import "math"

// SpheroCyl is a sphero-cylindrical lens prescription.
//
// The cylinder may be written in minus or plus form; both describe the
// same optical power (see [SpheroCyl.Transpose]).  The axis is
// meaningful only modulo 180 degrees: an axis of 0 and an axis of 180
// describe the same meridian, and every formula in this package treats
// them identically.
type SpheroCyl struct {
	// Sphere is the spherical component of the lens power, in diopters.
	Sphere float64

	// Cylinder is the cylindrical component of the lens power, in
	// diopters.  For example -1.25 DC x 180 has Cylinder = -1.25.
	Cylinder float64

	// Axis is the cylinder axis in degrees, conventionally in [0, 180).
	Axis float64
}

// Normalize returns a copy of the prescription with the axis reduced
// into the range [0, 180).
func (s SpheroCyl) Normalize() SpheroCyl {
	s.Axis = normalizeAxis(s.Axis)
	return s
}

// PowerAt evaluates the meridional power of the lens at the meridian
// given in degrees, using the formula S + C*sin^2(phi - axis).
// Meridian 0 is horizontal, meridian 90 is vertical.
func (s SpheroCyl) PowerAt(meridianDeg float64) float64 {
	delta := (meridianDeg - s.Axis) * math.Pi / 180
	sin := math.Sin(delta)
	return s.Sphere + s.Cylinder*sin*sin
}

// Transpose rewrites the prescription in the opposite cylinder form:
// the sphere becomes sphere+cylinder, the cylinder changes sign, and
// the axis rotates by 90 degrees (modulo 180).  The optical power is
// unchanged, and transposing twice returns the original values exactly.
func (s SpheroCyl) Transpose() SpheroCyl {
	return SpheroCyl{
		Sphere:   s.Sphere + s.Cylinder,
		Cylinder: -s.Cylinder,
		Axis:     normalizeAxis(s.Axis + 90),
	}
}

// ObliqueMeridian returns the power of the lens at an arbitrary
// meridian, in diopters.  It is shorthand for [SpheroCyl.PowerAt].
func ObliqueMeridian(lens SpheroCyl, meridianDeg float64) float64 {
	return lens.PowerAt(meridianDeg)
}

// Transpose converts a prescription between minus- and plus-cylinder
// notation.  It is shorthand for [SpheroCyl.Transpose].
func Transpose(lens SpheroCyl) SpheroCyl {
	return lens.Transpose()
}

// normalizeAxis reduces an axis in degrees into the range [0, 180).
func normalizeAxis(axis float64) float64 {
	axis = math.Mod(axis, 180)
	if axis < 0 {
		axis += 180
	}
	return axis
}
