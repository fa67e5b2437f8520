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

// ConvertPower converts a lens power measured under an assumed
// refractive index to the power for another index.
//
// In the thin-lens approximation the power of a lens in air is
// F = (n-1)*S, where S depends only on the surface curvatures.  A
// power determined for fromIndex therefore rescales to toIndex as
//
//	F' = F * (toIndex - 1) / (fromIndex - 1)
//
// The conversion is exact for sphere and cylinder powers alike;
// thickness and vertex effects are ignored, as is usual for routine
// lab work.
//
// ConvertPower returns an [InvalidIndexError] if either index is not
// greater than 1.
func ConvertPower(measured, fromIndex, toIndex float64) (float64, error) {
	if err := checkIndex(fromIndex); err != nil {
		return 0, err
	}
	if err := checkIndex(toIndex); err != nil {
		return 0, err
	}
	return measured * (toIndex - 1) / (fromIndex - 1), nil
}

// ConvertRx converts a full prescription measured under an assumed
// refractive index to the prescription for another index.  Sphere and
// cylinder are scaled by the same factor as in [ConvertPower]; the
// axis is unchanged, since index scaling does not rotate meridians.
func ConvertRx(measured SpheroCyl, fromIndex, toIndex float64) (SpheroCyl, error) {
	sphere, err := ConvertPower(measured.Sphere, fromIndex, toIndex)
	if err != nil {
		return SpheroCyl{}, err
	}
	cylinder, err := ConvertPower(measured.Cylinder, fromIndex, toIndex)
	if err != nil {
		return SpheroCyl{}, err
	}
	return SpheroCyl{
		Sphere:   sphere,
		Cylinder: cylinder,
		Axis:     measured.Axis,
	}, nil
}

// SimulateLensmeterReading predicts what a lensmeter calibrated for
// lensmeterIndex reads for a lens whose true power assumes trueIndex.
// This is the inverse direction of [ConvertRx]: a true polycarbonate
// -5.00 D (n = 1.586) reads about -4.463 D on a lensmeter calibrated
// to crown glass (n = 1.523).
//
// The formula is not symmetric in the two indices, so the argument
// order matters: the first index is the instrument's, the second the
// lens material's.
func SimulateLensmeterReading(trueRx SpheroCyl, lensmeterIndex, trueIndex float64) (SpheroCyl, error) {
	return ConvertRx(trueRx, trueIndex, lensmeterIndex)
}
