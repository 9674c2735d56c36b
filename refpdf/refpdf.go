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

// Package refpdf writes vector reference images of ellipses as PDF.
//
// The page shows the ellipse in white on a black background, one point per
// pixel, so that rendering it at 72 dpi gives an image which can be
// compared against the scan-converted mask.
package refpdf

import (
	"io"
	"log/slog"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/ellipse"
	"seehuhn.de/go/ellipse/internal/atomicfile"
)

// Write creates a single-page PDF file of size width×height points
// showing e. The file only appears at pdfPath once it is complete.
func Write(pdfPath string, e ellipse.Ellipse, width, height int) error {
	n, err := atomicfile.Write(pdfPath, func(w io.Writer) error {
		return writePage(w, e, width, height)
	})
	if err != nil {
		return err
	}

	ellipse.Logger().Info("reference written",
		slog.String("path", pdfPath),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int64("bytes", n))
	return nil
}

func writePage(w io.Writer, e ellipse.Ellipse, width, height int) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}

	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left; rows count from the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	// Pixel (i, j) covers [j, j+1)×[i, i+1); its sample point is the
	// pixel centre.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})

	page.SetFillColor(color.DeviceGray(1))
	p := e.Path()
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt := p.Coords[coordIdx]
			page.MoveTo(pt.X, pt.Y)
			coordIdx++
		case path.CmdLineTo:
			pt := p.Coords[coordIdx]
			page.LineTo(pt.X, pt.Y)
			coordIdx++
		case path.CmdCubeTo:
			c1, c2, pt := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			coordIdx += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Fill()

	return page.Close()
}
