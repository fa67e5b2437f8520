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
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func TestPowerMatrixOf(t *testing.T) {
	type testCase struct {
		lens SpheroCyl
		want PowerMatrix
	}
	cases := []testCase{
		// plano
		{SpheroCyl{}, PowerMatrix{0, 0, 0}},
		// pure sphere: diagonal, no cross-term
		{SpheroCyl{Sphere: 3}, PowerMatrix{3, 0, 3}},
		// -2.00 DC x 180: all power in the vertical meridian
		{SpheroCyl{Cylinder: -2, Axis: 180}, PowerMatrix{0, 0, -2}},
		// -2.00 DC x 90: all power in the horizontal meridian
		{SpheroCyl{Cylinder: -2, Axis: 90}, PowerMatrix{-2, 0, 0}},
		// -2.00 DC x 45: power split evenly, full cross-term
		{SpheroCyl{Cylinder: -2, Axis: 45}, PowerMatrix{-1, 1, -1}},
	}
	for _, test := range cases {
		t.Run(fmt.Sprintf("%+v", test.lens), func(t *testing.T) {
			got := PowerMatrixOf(test.lens)
			if d := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestTraceInvariant checks that Px+Py = 2*S+C for every lens.
func TestTraceInvariant(t *testing.T) {
	for _, lens := range testLenses {
		M := PowerMatrixOf(lens)
		want := 2*lens.Sphere + lens.Cylinder
		if math.Abs(M.Trace()-want) > 1e-12 {
			t.Errorf("lens %+v: trace %g, want %g", lens, M.Trace(), want)
		}
	}
}

// TestMatrixRoundTrip checks that decomposing the matrix of a
// minus-cylinder prescription recovers the prescription.
func TestMatrixRoundTrip(t *testing.T) {
	for _, lens := range testLenses {
		if lens.Cylinder > 0 {
			lens = lens.Transpose()
		}
		lens = lens.Normalize()
		t.Run(fmt.Sprintf("%+v", lens), func(t *testing.T) {
			got := PowerMatrixOf(lens).SpheroCyl()
			want := lens
			if lens.Cylinder == 0 {
				// axis is arbitrary for a spherical matrix
				want.Axis = got.Axis
			}
			if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestSphericalDecomposition checks the degenerate case: a spherical
// matrix has no cylinder to anchor an axis, and decomposes to axis 0.
func TestSphericalDecomposition(t *testing.T) {
	for _, s := range []float64{0, 1.5, -4.25} {
		M := PowerMatrix{s, 0, s}
		got := M.SpheroCyl()
		want := SpheroCyl{Sphere: s}
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Error(d)
		}
	}
}

func TestMatrixApply(t *testing.T) {
	M := PowerMatrix{2, 0.5, -1}
	got := M.Apply(vec.Vec2{X: 3, Y: -2})
	want := vec.Vec2{X: 2*3 + 0.5*(-2), Y: 0.5*3 + (-1)*(-2)}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestMatrixAdd(t *testing.T) {
	A := PowerMatrix{1, 2, 3}
	B := PowerMatrix{-0.5, 0.25, 4}
	want := PowerMatrix{0.5, 2.25, 7}
	if got := A.Add(B); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := B.Add(A); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
