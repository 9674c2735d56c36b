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

package ellipse_test

import (
	"bytes"
	"testing"

	"seehuhn.de/go/ellipse"
	"seehuhn.de/go/ellipse/testcases"
)

var red = ellipse.RGB{R: 255}

// bruteForce paints every pixel for which Contains holds.
func bruteForce(tc testcases.TestCase, fill, bg ellipse.RGB) *ellipse.Canvas {
	e := tc.Ellipse()
	c := ellipse.NewCanvas(tc.Width, tc.Height)
	c.Clear(bg)
	for i := range tc.Height {
		for j := range tc.Width {
			if e.Contains(i, j) {
				c.SetRGB(j, i, fill)
			}
		}
	}
	return c
}

// TestScanVariants verifies that pruning and concurrency do not change the
// painted pixels.
func TestScanVariants(t *testing.T) {
	variants := []struct {
		name string
		s    ellipse.ScanConverter
	}{
		{"exhaustive", ellipse.ScanConverter{}},
		{"prune", ellipse.ScanConverter{Prune: true}},
		{"workers", ellipse.ScanConverter{Workers: 4}},
		{"prune_workers", ellipse.ScanConverter{Prune: true, Workers: 4}},
		{"many_workers", ellipse.ScanConverter{Prune: true, Workers: 1000}},
	}

	forAll(t, func(t *testing.T, tc testcases.TestCase) {
		want := bruteForce(tc, ellipse.Blue, red)
		e := tc.Ellipse()
		for _, v := range variants {
			c := ellipse.NewCanvas(tc.Width, tc.Height)
			c.Clear(red)
			v.s.Fill(c, e, ellipse.Blue)
			if !bytes.Equal(c.Pix, want.Pix) {
				t.Errorf("%s: result differs from brute force", v.name)
			}
		}
	})
}

func TestSpansMatchFill(t *testing.T) {
	s := ellipse.ScanConverter{Prune: true}
	forAll(t, func(t *testing.T, tc testcases.TestCase) {
		e := tc.Ellipse()
		c := ellipse.NewCanvas(tc.Width, tc.Height)

		lastRow, lastEnd := -1, -1
		s.Spans(e, tc.Width, tc.Height, func(i, jMin, jMax int) {
			switch {
			case jMin >= jMax:
				t.Errorf("empty span %d:[%d, %d)", i, jMin, jMax)
			case i < lastRow:
				t.Errorf("row %d reported after row %d", i, lastRow)
			case i == lastRow && jMin <= lastEnd:
				t.Errorf("span %d:[%d, %d) not maximal or out of order", i, jMin, jMax)
			}
			lastRow, lastEnd = i, jMax
			for j := jMin; j < jMax; j++ {
				c.SetRGB(j, i, ellipse.Blue)
			}
		})

		want := bruteForce(tc, ellipse.Blue, ellipse.Black)
		if !bytes.Equal(c.Pix, want.Pix) {
			t.Error("spans differ from brute force")
		}
	})
}

func TestFillOutside(t *testing.T) {
	tc := testcases.All["clip"][3]
	if tc.Name != "outside" {
		t.Fatalf("unexpected test case %q", tc.Name)
	}

	for _, prune := range []bool{false, true} {
		s := ellipse.ScanConverter{Prune: prune}
		n := 0
		s.Spans(tc.Ellipse(), tc.Width, tc.Height, func(i, jMin, jMax int) {
			n += jMax - jMin
		})
		if n != 0 {
			t.Errorf("prune=%t: %d pixels painted for an ellipse outside the canvas", prune, n)
		}
	}
}

func TestDefaultExample(t *testing.T) {
	cfg := ellipse.DefaultConfig()
	c := ellipse.Render(cfg, ellipse.Request{RA: 128, RB: 64, X: 400, Y: 400, Degrees: 30})

	if c.Width != 800 || c.Height != 800 {
		t.Fatalf("canvas is %dx%d, want 800x800", c.Width, c.Height)
	}
	checks := []struct {
		x, y int
		want ellipse.RGB
	}{
		{400, 400, ellipse.Blue},
		{0, 0, ellipse.Black},
		{799, 799, ellipse.Black},
		{400, 400 + 60, ellipse.Blue},
		{400, 400 + 140, ellipse.Black},
	}
	for _, ck := range checks {
		if got := c.RGBAt(ck.x, ck.y); got != ck.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", ck.x, ck.y, got, ck.want)
		}
	}

	// The area of the ellipse is about pi*128*64.
	n := 0
	for y := range c.Height {
		for x := range c.Width {
			if c.RGBAt(x, y) == ellipse.Blue {
				n++
			}
		}
	}
	if n < 25500 || n > 26000 {
		t.Errorf("%d pixels painted, want about 25736", n)
	}
}

func TestNewScanConverter(t *testing.T) {
	cfg := ellipse.DefaultConfig()
	cfg.Prune = false
	cfg.Workers = 3
	s := ellipse.NewScanConverter(cfg)
	if s.Prune || s.Workers != 3 {
		t.Errorf("got %+v", *s)
	}
}
