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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lenslab/opticalc/material"
)

func TestConvertPower(t *testing.T) {
	// A polycarbonate lens measured on a lensmeter calibrated for
	// crown glass reads -4.463 D; its true power is -5.00 D.
	got, err := ConvertPower(-4.463, material.CrownGlass, material.Polycarbonate)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-(-5.00)) > 1e-3 {
		t.Errorf("got %g, want -5.00", got)
	}

	// the inverse direction recovers the reading
	got, err = ConvertPower(-5.00, material.Polycarbonate, material.CrownGlass)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-(-4.463)) > 1e-3 {
		t.Errorf("got %g, want -4.463", got)
	}
}

// TestConvertPowerRoundTrip checks that converting there and back is
// the identity, for several index pairs.
func TestConvertPowerRoundTrip(t *testing.T) {
	indices := []float64{material.CR39, material.CrownGlass,
		material.Polycarbonate, material.HighIndex174}
	powers := []float64{-12.25, -4.463, -0.25, 0, 1.75, 8.5}
	for _, a := range indices {
		for _, b := range indices {
			for _, p := range powers {
				q, err := ConvertPower(p, a, b)
				if err != nil {
					t.Fatal(err)
				}
				back, err := ConvertPower(q, b, a)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(back-p) > 1e-6 {
					t.Errorf("%g D %g->%g->%g: got %g", p, a, b, a, back)
				}
			}
		}
	}
}

func TestConvertPowerInvalidIndex(t *testing.T) {
	type testCase struct {
		from, to float64
	}
	cases := []testCase{
		{1.0, 1.586},
		{1.523, 1.0},
		{0, 1.586},
		{1.523, -1.5},
		{math.NaN(), 1.586},
	}
	for _, test := range cases {
		t.Run(fmt.Sprintf("%g->%g", test.from, test.to), func(t *testing.T) {
			got, err := ConvertPower(-4.0, test.from, test.to)
			if err == nil {
				t.Fatalf("got %g, want error", got)
			}
			var invalid *InvalidIndexError
			if !errors.As(err, &invalid) {
				t.Errorf("got %T, want *InvalidIndexError", err)
			}
			if got != 0 {
				t.Errorf("got %g alongside error, want 0", got)
			}
		})
	}
}

func TestConvertRx(t *testing.T) {
	measured := SpheroCyl{Sphere: -2.00, Cylinder: -1.00, Axis: 180}
	got, err := ConvertRx(measured, material.CrownGlass, material.Polycarbonate)
	if err != nil {
		t.Fatal(err)
	}

	factor := (material.Polycarbonate - 1) / (material.CrownGlass - 1)
	want := SpheroCyl{
		Sphere:   measured.Sphere * factor,
		Cylinder: measured.Cylinder * factor,
		Axis:     180, // axis never changes
	}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestConvertRxInvalidIndex(t *testing.T) {
	_, err := ConvertRx(SpheroCyl{Sphere: 1}, 1.0, 1.586)
	var invalid *InvalidIndexError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want *InvalidIndexError", err)
	}
	if invalid.Index != 1.0 {
		t.Errorf("got index %g, want 1", invalid.Index)
	}
}

func TestSimulateLensmeterReading(t *testing.T) {
	// true polycarbonate -5.00 D reads about -4.463 D on a crown
	// glass instrument
	trueRx := SpheroCyl{Sphere: -5.00, Cylinder: 0, Axis: 0}
	reading, err := SimulateLensmeterReading(trueRx, material.CrownGlass, material.Polycarbonate)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(reading.Sphere-(-4.463)) > 1e-3 {
		t.Errorf("got %g, want -4.463", reading.Sphere)
	}

	// simulation followed by the normal conversion is the identity
	trueRx = SpheroCyl{Sphere: -3.25, Cylinder: -2.25, Axis: 37}
	reading, err = SimulateLensmeterReading(trueRx, material.CrownGlass, material.Polycarbonate)
	if err != nil {
		t.Fatal(err)
	}
	recovered, err := ConvertRx(reading, material.CrownGlass, material.Polycarbonate)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(trueRx, recovered, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}
