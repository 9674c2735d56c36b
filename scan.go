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

package ellipse

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// ScanConverter paints the pixels inside an ellipse.
//
// The zero value performs a plain sequential scan which evaluates the
// membership test once for every pixel of the canvas, in row-major order.
// A ScanConverter holds no state between calls and may be shared.
type ScanConverter struct {
	// Prune restricts the scan to the bounding box of the ellipse, clamped
	// to the canvas. Pixels outside the box can never be inside the
	// ellipse, so this does not change the result.
	Prune bool

	// Workers sets how many goroutines fill disjoint bands of rows.
	// Values below 2 give a sequential scan.
	Workers int
}

// NewScanConverter returns a ScanConverter using the Prune and Workers
// settings of cfg.
func NewScanConverter(cfg Config) *ScanConverter {
	return &ScanConverter{
		Prune:   cfg.Prune,
		Workers: cfg.Workers,
	}
}

// Fill sets every pixel of c which lies inside e to the colour fill.
// All other pixels are left unchanged.
//
// When Workers > 1, the rows are split into contiguous bands which are
// filled concurrently. Fill returns after all bands are complete.
func (s *ScanConverter) Fill(c *Canvas, e Ellipse, fill RGB) {
	iMin, iMax, jMin, jMax, ok := s.scanBox(e, c.Width, c.Height)
	if !ok {
		Logger().Debug("ellipse outside canvas",
			slog.Int("width", c.Width), slog.Int("height", c.Height))
		return
	}

	workers := min(s.Workers, iMax-iMin)
	Logger().Debug("scan convert",
		slog.Int("width", c.Width),
		slog.Int("height", c.Height),
		slog.Any("rows", [2]int{iMin, iMax}),
		slog.Any("cols", [2]int{jMin, jMax}),
		slog.Int("workers", max(workers, 1)))

	m := e.membership()
	paint := func(i, j0, j1 int) {
		c.fillRow(i, j0, j1, fill)
	}

	if workers < 2 {
		m.spans(iMin, iMax, jMin, jMax, paint)
		return
	}

	// Each band owns its rows, so no pixel is written by two goroutines.
	var g errgroup.Group
	g.SetLimit(workers)
	band := (iMax - iMin + workers - 1) / workers
	for lo := iMin; lo < iMax; lo += band {
		hi := min(lo+band, iMax)
		g.Go(func() error {
			m.spans(lo, hi, jMin, jMax, paint)
			return nil
		})
	}
	_ = g.Wait() // bands never fail; Wait is the barrier
}

// Spans reports the pixels of a width×height canvas which lie inside e,
// as maximal runs [jMin, jMax) of columns in row i. Rows are reported in
// increasing order, runs within a row from left to right.
func (s *ScanConverter) Spans(e Ellipse, width, height int, emit func(i, jMin, jMax int)) {
	iMin, iMax, jMin, jMax, ok := s.scanBox(e, width, height)
	if !ok {
		return
	}
	m := e.membership()
	m.spans(iMin, iMax, jMin, jMax, emit)
}

// scanBox returns the range of rows [iMin, iMax) and columns [jMin, jMax)
// which need to be tested.
func (s *ScanConverter) scanBox(e Ellipse, width, height int) (iMin, iMax, jMin, jMax int, ok bool) {
	iMax, jMax = height, width
	if s.Prune {
		b := e.Bounds()
		iMin = max(int(b.LLy), 0)
		iMax = min(int(b.URy), height)
		jMin = max(int(b.LLx), 0)
		jMax = min(int(b.URx), width)
	}
	if iMin >= iMax || jMin >= jMax {
		return 0, 0, 0, 0, false
	}
	return iMin, iMax, jMin, jMax, true
}

// spans tests every point of the given box exactly once, row by row, and
// calls emit for each maximal run of inside points.
func (m *membership) spans(iMin, iMax, jMin, jMax int, emit func(i, jMin, jMax int)) {
	for i := iMin; i < iMax; i++ {
		start := -1
		for j := jMin; j < jMax; j++ {
			if m.contains(i, j) {
				if start < 0 {
					start = j
				}
			} else if start >= 0 {
				emit(i, start, j)
				start = -1
			}
		}
		if start >= 0 {
			emit(i, start, jMax)
		}
	}
}
