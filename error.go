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

import "strconv"

// InvalidIndexError indicates that a refractive index passed to a
// conversion function is physically meaningless.  An index of exactly 1
// (air) makes the lensmaker scaling identity divide by zero, and
// indices below 1 do not occur for lens materials.
type InvalidIndexError struct {
	Index float64
}

func (err *InvalidIndexError) Error() string {
	return "invalid refractive index " +
		strconv.FormatFloat(err.Index, 'g', -1, 64) +
		" (must be greater than 1)"
}

// checkIndex rejects refractive indices for which the power scaling
// factor (n-1) is zero, negative, or NaN.
func checkIndex(n float64) error {
	if !(n > 1) {
		return &InvalidIndexError{Index: n}
	}
	return nil
}
