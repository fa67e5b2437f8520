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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// PowerMatrix is the dioptric power of a lens in the fixed
// horizontal/vertical basis.  The elements are stored as [Px Pt Py].
//
// If M = [Px Pt Py] is a [PowerMatrix], then M corresponds to the
// following symmetric 2x2 matrix:
//
//	/ Px Pt \
//	\ Pt Py /
//
// where Px is the power along the 180-degree (horizontal) meridian,
// Py is the power along the 90-degree (vertical) meridian, and Pt is
// the toric cross-term.  Power matrices of superposed lenses add
// element-wise.
type PowerMatrix [3]float64

// PowerMatrixOf builds the power matrix of a sphero-cylindrical lens.
//
// With theta the cylinder axis in radians, the elements are
//
//	Px = S + C*sin^2(theta)
//	Py = S + C*cos^2(theta)
//	Pt = -C*sin(theta)*cos(theta)
//
// The trace Px+Py always equals 2*S+C.
func PowerMatrixOf(lens SpheroCyl) PowerMatrix {
	theta := lens.Axis * math.Pi / 180
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	return PowerMatrix{
		lens.Sphere + lens.Cylinder*sin*sin,
		-lens.Cylinder * sin * cos,
		lens.Sphere + lens.Cylinder*cos*cos,
	}
}

// Add returns the element-wise sum of two power matrices.  This is the
// power matrix of the two lenses stacked in contact.
func (M PowerMatrix) Add(B PowerMatrix) PowerMatrix {
	return PowerMatrix{M[0] + B[0], M[1] + B[1], M[2] + B[2]}
}

// Trace returns Px+Py, which equals 2*sphere+cylinder for the matrix
// of any prescription.
func (M PowerMatrix) Trace() float64 {
	return M[0] + M[2]
}

// Det returns the determinant Px*Py - Pt^2.
func (M PowerMatrix) Det() float64 {
	return M[0]*M[2] - M[1]*M[1]
}

// Apply multiplies the power matrix by the given vector:
//
//	/ Px Pt \ / v.X \
//	\ Pt Py / \ v.Y /
//
// With v a decentration in centimeters this is Prentice's rule in
// matrix form and the result is a prism vector in prism diopters.
func (M PowerMatrix) Apply(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: M[0]*v.X + M[1]*v.Y,
		Y: M[1]*v.X + M[2]*v.Y,
	}
}

// SpheroCyl decomposes the power matrix back into a prescription in
// minus-cylinder form.
//
// The two principal powers are the eigenvalues of the matrix; the
// sphere is their maximum and the cylinder the (non-positive)
// difference to the other one.  The axis is recovered from the
// principal direction via atan2 and normalized into [0, 180).
//
// When the matrix is spherical (Pt = 0 and Px = Py) the axis is
// undefined; by convention the result has axis 0.
func (M PowerMatrix) SpheroCyl() SpheroCyl {
	trace := M.Trace()
	det := M.Det()

	// The eigenvalues are (trace +- delta)/2.  The max with zero
	// guards against a slightly negative discriminant from rounding.
	delta := math.Sqrt(math.Max(trace*trace-4*det, 0))

	cylinder := -delta
	sphere := (trace - cylinder) / 2

	axis := math.Atan2(sphere-M[0], M[1]) * 180 / math.Pi

	return SpheroCyl{
		Sphere:   sphere,
		Cylinder: cylinder,
		Axis:     normalizeAxis(axis),
	}
}
