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

// Package opticalc computes clinical optics quantities for spectacle
// lenses.
//
// The package provides closed-form computations over sphero-cylindrical
// prescriptions: refractive-index power conversion, lensmeter-reading
// simulation, induced prism from lens decentration, combination of
// obliquely crossed cylinders, minus/plus-cylinder transposition, power
// at an oblique meridian, and minimum lens-blank size.
//
// All functions are pure: every result is fully determined by the
// arguments, no state is kept, and all value types are passed and
// returned by value.  Concurrent use from multiple goroutines is safe
// without locking.
//
// A prescription is represented by a [SpheroCyl]:
//
//	lens := opticalc.SpheroCyl{Sphere: -2.00, Cylinder: -1.00, Axis: 90}
//
// Computations which need the full toric power of a lens go through its
// 2x2 dioptric power matrix, see [PowerMatrix].  Angles are degrees at
// the API boundary and are converted to radians internally.
//
// The only rejected input is a refractive index less than or equal to 1
// (air or worse), which makes the lensmaker scaling identity undefined;
// see [InvalidIndexError].  All other inputs, including clinically
// implausible ones, propagate through the arithmetic unchecked.
package opticalc
