package ellipse_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"seehuhn.de/go/ellipse"
)

var _ draw.Image = (*ellipse.Canvas)(nil)

func TestCanvasLayout(t *testing.T) {
	c := ellipse.NewCanvas(5, 3)
	if len(c.Pix) != 5*3*3 {
		t.Fatalf("len(Pix) = %d, want 45", len(c.Pix))
	}
	if c.Stride() != 15 {
		t.Errorf("Stride() = %d, want 15", c.Stride())
	}

	col := ellipse.RGB{R: 1, G: 2, B: 3}
	c.SetRGB(4, 2, col) // column 4, row 2
	off := 3 * (2*5 + 4)
	if off != c.PixOffset(4, 2) {
		t.Errorf("PixOffset(4, 2) = %d, want %d", c.PixOffset(4, 2), off)
	}
	if got := c.Pix[off : off+3]; got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("Pix[%d:] = %v, want [1 2 3]", off, got)
	}
	if got := c.RGBAt(4, 2); got != col {
		t.Errorf("RGBAt(4, 2) = %v, want %v", got, col)
	}
	if got := c.Row(2)[12:15]; got[0] != 1 || got[2] != 3 {
		t.Errorf("Row(2) ends in %v", got)
	}
}

func TestCanvasOutOfRange(t *testing.T) {
	c := ellipse.NewCanvas(4, 4)
	c.Clear(ellipse.Blue)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		c.SetRGB(p.X, p.Y, ellipse.Black)
		if got := c.RGBAt(p.X, p.Y); got != ellipse.Black {
			t.Errorf("RGBAt(%d, %d) = %v, want black", p.X, p.Y, got)
		}
	}
	for i := 0; i < len(c.Pix); i += 3 {
		if c.Pix[i+1] != ellipse.Blue.G {
			t.Fatalf("out of range write changed byte %d", i+1)
		}
	}
}

func TestCanvasImage(t *testing.T) {
	c := ellipse.NewCanvas(8, 4)
	if c.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("Bounds() = %v", c.Bounds())
	}

	// Drawing through the image/draw interfaces uses the same layout.
	draw.Draw(c, image.Rect(2, 1, 4, 2), image.NewUniform(color.RGBA{0, 121, 215, 255}), image.Point{}, draw.Src)
	for y := range 4 {
		for x := range 8 {
			want := ellipse.Black
			if y == 1 && (x == 2 || x == 3) {
				want = ellipse.Blue
			}
			if got := c.RGBAt(x, y); got != want {
				t.Errorf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	r, g, b, a := c.At(2, 1).RGBA()
	if r != 0 || g != 121*0x101 || b != 215*0x101 || a != 0xffff {
		t.Errorf("At(2, 1).RGBA() = %d, %d, %d, %d", r, g, b, a)
	}
}

func TestRGBModel(t *testing.T) {
	cases := []struct {
		in   color.Color
		want ellipse.RGB
	}{
		{ellipse.Blue, ellipse.Blue},
		{color.Gray{Y: 200}, ellipse.RGB{200, 200, 200}},
		{color.NRGBA{10, 20, 30, 255}, ellipse.RGB{10, 20, 30}},
		{color.RGBA{50, 0, 0, 128}, ellipse.RGB{99, 0, 0}},
	}
	for _, c := range cases {
		if got := ellipse.RGBModel.Convert(c.in); got != c.want {
			t.Errorf("Convert(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
