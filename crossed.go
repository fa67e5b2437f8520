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

// CrossedCylinders combines two obliquely crossed sphero-cylindrical
// lenses into the single lens with the same net power.
//
// Dioptric power in the fixed horizontal/vertical basis is additive,
// so the two power matrices are summed and the sum decomposed back to
// a prescription.  The result is always in minus-cylinder form; use
// [SpheroCyl.Transpose] for the plus-cylinder equivalent.
//
// Combining with a plano lens (sphere and cylinder both zero) returns
// the other lens unchanged, and the combination is commutative and,
// under the fixed minus-cylinder convention, associative.
func CrossedCylinders(a, b SpheroCyl) SpheroCyl {
	M := PowerMatrixOf(a).Add(PowerMatrixOf(b))
	return M.SpheroCyl()
}
