// seehuhn.de/go/ellipse - scan conversion of rotated ellipses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package testcases defines ellipse scan-conversion scenarios shared by the
// tests, the benchmarks and the reference generators.
package testcases

import "seehuhn.de/go/ellipse"

// TestCase defines a single scan-conversion test.
type TestCase struct {
	Name    string          // lowercase a-z, 0-9 and _ only
	Request ellipse.Request // the ellipse, as a user would enter it
	Width   int             // canvas width in pixels
	Height  int             // canvas height in pixels
}

// Ellipse returns the normalised ellipse of the test case.
func (tc TestCase) Ellipse() ellipse.Ellipse {
	return tc.Request.Ellipse()
}

// req is a helper to build an ellipse.Request.
func req(ra, rb, x, y int, degrees float64) ellipse.Request {
	return ellipse.Request{RA: ra, RB: rb, X: x, Y: y, Degrees: degrees}
}
