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

// Package ellipse scan-converts rotated ellipses into RGB pixel buffers.
//
// An [Ellipse] decides for every grid point whether it lies on or inside the
// outline, a [ScanConverter] paints all such points of a [Canvas], and the
// ppm sub-package writes the canvas as a plain-text P3 image.
package ellipse

//go:generate go run ./testcases/export

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// segmentTol is how far a grid point may lie off a degenerate ellipse and
// still be counted as inside. It absorbs the rounding error of cos and sin
// at multiples of 90 degrees.
const segmentTol = 1e-9

// Ellipse describes a rotated ellipse on the pixel grid.
//
// The grid is indexed as (i, j) with i the row and j the column. X is the
// centre coordinate compared against i, Y the one compared against j.
// RA is the semi-axis along the local u direction, which without rotation
// runs down the rows; RB is the one along v, running across the columns.
// By convention RA <= RB (see [Request.Ellipse]).
type Ellipse struct {
	RA, RB int
	X, Y   int

	// Theta is the counter-clockwise rotation in radians.
	Theta float64
}

// Request holds ellipse parameters as supplied by a user, with the
// rotation given in degrees and the axes in arbitrary order.
type Request struct {
	RA, RB  int
	X, Y    int
	Degrees float64
}

// Ellipse converts the request into an Ellipse.
// The axes are swapped if RA > RB, and the angle is reduced to [0, 360)
// degrees before conversion to radians, so that requests differing by
// whole turns give bit-identical results.
func (r Request) Ellipse() Ellipse {
	ra, rb := r.RA, r.RB
	if ra > rb {
		ra, rb = rb, ra
	}

	deg := math.Mod(r.Degrees, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}

	return Ellipse{
		RA:    ra,
		RB:    rb,
		X:     r.X,
		Y:     r.Y,
		Theta: deg * math.Pi / 180,
	}
}

// Contains reports whether the grid point (i, j) lies on or inside the
// ellipse.
//
// If one of the semi-axes is zero, the ellipse degenerates to a line
// segment along the other axis, and only points on that segment are
// inside.
func (e Ellipse) Contains(i, j int) bool {
	m := e.membership()
	return m.contains(i, j)
}

// Bounds returns a box in device coordinates which contains every grid
// point inside the ellipse. LLx/URx bound the columns j, LLy/URy the rows
// i; the upper bounds are exclusive. The box is widened by one pixel on
// each side, so that rounding in [Ellipse.Contains] cannot reach outside.
func (e Ellipse) Bounds() rect.Rect {
	c, s := math.Cos(e.Theta), math.Sin(e.Theta)
	ra, rb := float64(e.RA), float64(e.RB)

	// half extents of the rotated ellipse along rows and columns
	hRow := math.Hypot(ra*c, rb*s)
	hCol := math.Hypot(ra*s, rb*c)

	x, y := float64(e.X), float64(e.Y)
	return rect.Rect{
		LLx: math.Floor(y-hCol) - 1,
		LLy: math.Floor(x-hRow) - 1,
		URx: math.Ceil(y+hCol) + 2,
		URy: math.Ceil(x+hRow) + 2,
	}
}

// Path returns the outline of the ellipse, approximated by four cubic
// Bézier curves, in device coordinates: x is the column, y the row.
func (e Ellipse) Path() *path.Data {
	c, s := math.Cos(e.Theta), math.Sin(e.Theta)

	// maps local (u, v) to device (column, row)
	toDevice := matrix.Matrix{s, c, -c, s, float64(e.Y), float64(e.X)}
	pt := func(u, v float64) vec.Vec2 {
		return apply(toDevice, vec.Vec2{X: u, Y: v})
	}

	ru, rv := float64(e.RA), float64(e.RB)
	ku, kv := ru*kappa, rv*kappa
	return (&path.Data{}).
		MoveTo(pt(ru, 0)).
		CubeTo(pt(ru, kv), pt(ku, rv), pt(0, rv)).
		CubeTo(pt(-ku, rv), pt(-ru, kv), pt(-ru, 0)).
		CubeTo(pt(-ru, -kv), pt(-ku, -rv), pt(0, -rv)).
		CubeTo(pt(ku, -rv), pt(ru, -kv), pt(ru, 0)).
		Close()
}

// membership holds the precomputed state of the membership test.
type membership struct {
	frame matrix.Matrix // linear part maps (i-X, j-Y) to (u, v)
	x, y  int

	ra2, rb2, rab2 float64
	degenerate     bool
}

func (e Ellipse) membership() membership {
	c, s := math.Cos(e.Theta), math.Sin(e.Theta)
	ra, rb := float64(e.RA), float64(e.RB)
	ab := ra * rb
	return membership{
		frame:      matrix.Matrix{c, s, s, -c, 0, 0},
		x:          e.X,
		y:          e.Y,
		ra2:        ra * ra,
		rb2:        rb * rb,
		rab2:       ab * ab,
		degenerate: e.RA == 0 || e.RB == 0,
	}
}

// contains implements the scaled implicit inequality
//
//	rb²·u² + ra²·v² ≤ ra²·rb²
//
// where (u, v) are the coordinates of the point in the ellipse frame.
func (m *membership) contains(i, j int) bool {
	d := vec.Vec2{X: float64(i - m.x), Y: float64(j - m.y)}
	u := m.frame[0]*d.X + m.frame[2]*d.Y
	v := m.frame[1]*d.X + m.frame[3]*d.Y

	if m.degenerate {
		if m.ra2 == 0 {
			return math.Abs(u) <= segmentTol && v*v <= m.rb2
		}
		return math.Abs(v) <= segmentTol && u*u <= m.ra2
	}
	return m.rb2*(u*u)+(v*v)*m.ra2 <= m.rab2
}

// apply transforms p by the affine map m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
