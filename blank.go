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

// MinimumBlankSize returns the smallest round blank diameter, in
// millimeters, from which a single-vision lens for the given frame can
// be cut with correct optical centration:
//
//	minimum = effectiveDiameter + (eyesize + bridge - ipd)
//
// The term in parentheses is the total horizontal decentration of the
// optical center within the frame.  All arguments are millimeters:
// the frame's effective diameter, the horizontal lens opening
// (eyesize), the bridge width, and the wearer's interpupillary
// distance.
//
// Inputs are not validated; negative or zero values propagate through
// the arithmetic.
func MinimumBlankSize(effectiveDiameter, eyesize, bridge, ipd float64) float64 {
	return effectiveDiameter + (eyesize + bridge - ipd)
}

// RecommendedBlankSize returns [MinimumBlankSize] plus a 2 mm
// allowance, giving a 1 mm working edge border all around for edging
// tolerances.
func RecommendedBlankSize(effectiveDiameter, eyesize, bridge, ipd float64) float64 {
	return MinimumBlankSize(effectiveDiameter, eyesize, bridge, ipd) + 2
}
