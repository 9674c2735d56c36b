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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the canvas and fill parameters of a conversion.
type Config struct {
	// Width and Height give the canvas size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Fill is the colour of pixels inside the ellipse.
	Fill RGB `toml:"fill"`

	// Background is the colour of all other pixels.
	Background RGB `toml:"background"`

	// Prune restricts the scan to the bounding box of the ellipse.
	// This does not change the result.
	Prune bool `toml:"prune"`

	// Workers is the number of goroutines filling rows in parallel.
	// Values below 2 mean a sequential scan.
	Workers int `toml:"workers"`
}

// DefaultConfig returns the configuration used when nothing else is
// specified: an 800×800 black canvas and a blue fill.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     800,
		Fill:       Blue,
		Background: Black,
		Prune:      true,
		Workers:    1,
	}
}

// Validate checks that the configuration describes a usable canvas.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid number of workers %d", c.Workers)
	}
	return nil
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their values from [DefaultConfig]; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig reads a TOML configuration from r, see [LoadConfig].
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, errors.New(strict.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// String returns the colour in "#rrggbb" notation.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts
// "#rrggbb" and the decimal form "r,g,b".
func (c *RGB) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return fmt.Errorf("invalid colour %q", s)
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return fmt.Errorf("invalid colour %q: %w", s, err)
		}
		*c = RGB{uint8(n >> 16), uint8(n >> 8), uint8(n)}
		return nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("invalid colour %q", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return fmt.Errorf("invalid colour %q: %w", s, err)
		}
		ch[i] = uint8(n)
	}
	*c = RGB{ch[0], ch[1], ch[2]}
	return nil
}
