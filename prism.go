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
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Eye identifies which eye a lens sits in front of.  It determines the
// sign convention for nasal decentration and the clinical naming of
// horizontal prism base directions.
type Eye int

const (
	// OD is the right eye (oculus dexter).
	OD Eye = iota

	// OS is the left eye (oculus sinister).
	OS
)

func (e Eye) String() string {
	switch e {
	case OD:
		return "OD"
	case OS:
		return "OS"
	default:
		return "Eye(" + strconv.Itoa(int(e)) + ")"
	}
}

// HorizontalBase is the base direction of a horizontal prism component
// relative to the patient.
type HorizontalBase int

const (
	// BaseIn points toward the nose.
	BaseIn HorizontalBase = iota

	// BaseOut points toward the temple.
	BaseOut
)

func (b HorizontalBase) String() string {
	if b == BaseIn {
		return "Base In"
	}
	return "Base Out"
}

// VerticalBase is the base direction of a vertical prism component.
type VerticalBase int

const (
	// BaseUp points upward.
	BaseUp VerticalBase = iota

	// BaseDown points downward.
	BaseDown
)

func (b VerticalBase) String() string {
	if b == BaseUp {
		return "Base Up"
	}
	return "Base Down"
}

// Decentration is the displacement of the optical center of a lens from
// the wearer's visual axis, in millimeters.
type Decentration struct {
	// Horizontal is positive for decentration toward the nose ("in")
	// and negative toward the temple ("out"), for either eye.
	Horizontal float64

	// Vertical is positive for decentration upward and negative
	// downward.
	Vertical float64
}

// Prism is the prism induced by decentering a lens, resolved for one
// eye.  Horizontal and Vertical are signed components in prism
// diopters; their clinical base directions are obtained from
// [Prism.HorizontalBase] and [Prism.VerticalBase].
type Prism struct {
	Eye Eye

	// Horizontal is the signed horizontal prism component in prism
	// diopters.  The sign is an intermediate convention; its clinical
	// meaning depends on the eye.
	Horizontal float64

	// Vertical is the signed vertical prism component in prism
	// diopters.  Positive corresponds to base down, negative to base
	// up.
	Vertical float64

	// Magnitude is the Euclidean norm of the two components.
	Magnitude float64
}

// HorizontalBase returns the magnitude and clinical base direction of
// the horizontal component.  For an exactly zero component there is no
// base direction and ok is false.
//
// The base naming is mirrored between the two eyes: the numeric sign
// which reads "Base In" for OD reads "Base Out" for OS, so that a
// physically identical nasal relationship is charted the same way for
// either eye.
func (p Prism) HorizontalBase() (magnitude float64, base HorizontalBase, ok bool) {
	if p.Horizontal == 0 {
		return 0, 0, false
	}
	neg := p.Horizontal < 0
	switch {
	case p.Eye == OD && neg, p.Eye == OS && !neg:
		base = BaseIn
	default:
		base = BaseOut
	}
	return math.Abs(p.Horizontal), base, true
}

// VerticalBase returns the magnitude and base direction of the vertical
// component.  For an exactly zero component there is no base direction
// and ok is false.  Vertical base naming does not depend on the eye.
func (p Prism) VerticalBase() (magnitude float64, base VerticalBase, ok bool) {
	if p.Vertical == 0 {
		return 0, 0, false
	}
	if p.Vertical < 0 {
		return -p.Vertical, BaseUp, true
	}
	return p.Vertical, BaseDown, true
}

// InducedPrism computes the prism induced by decentering a lens,
// using Prentice's rule in matrix form.
//
// The lens is represented by its [PowerMatrix] and multiplied by the
// decentration vector converted from millimeters to centimeters.  Both
// vector components carry a leading minus sign: a lens decentered
// relative to the visual axis induces prism based in the opposite
// direction.  For OS the nasal component is negated before the
// multiplication, so the same physical nasal or temporal decentration
// produces mirrored horizontal results between the eyes.
func InducedPrism(eye Eye, lens SpheroCyl, dec Decentration) Prism {
	in := dec.Horizontal
	if eye == OS {
		in = -in
	}

	M := PowerMatrixOf(lens)
	p := M.Apply(vec.Vec2{X: -in / 10, Y: -dec.Vertical / 10})

	return Prism{
		Eye:        eye,
		Horizontal: p.X,
		Vertical:   p.Y,
		Magnitude:  math.Hypot(p.X, p.Y),
	}
}
