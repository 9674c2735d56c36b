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

// Command ellipse draws a rotated ellipse and writes it as an image file.
//
// Usage:
//
//	ellipse [flags] [ra rb x y degrees]
//
// The centre (x, y) is given as row and column of the canvas, with (0, 0)
// at the top left. Without arguments, the parameters are read from
// standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/ellipse"
	"seehuhn.de/go/ellipse/output"
	"seehuhn.de/go/ellipse/refpdf"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("ellipse failed", "error", err)
		}
		os.Exit(1)
	}
}

type options struct {
	out        string
	format     string
	configPath string
	verbose    bool

	width, height int
	workers       int
	fill          ellipse.RGB
	background    ellipse.RGB
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ellipse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ellipse [flags] [ra rb x y degrees]")
		fs.PrintDefaults()
	}

	def := ellipse.DefaultConfig()
	var opt options
	fs.StringVar(&opt.out, "o", "test.ppm", "output file")
	fs.StringVar(&opt.format, "format", "", "output format: ppm, ppm-raw, png, bmp, tiff or pdf (default: from file name, else ppm)")
	fs.StringVar(&opt.configPath, "config", "", "TOML configuration file")
	fs.BoolVar(&opt.verbose, "v", false, "log debug information")
	fs.IntVar(&opt.width, "width", def.Width, "canvas width in pixels")
	fs.IntVar(&opt.height, "height", def.Height, "canvas height in pixels")
	fs.IntVar(&opt.workers, "workers", def.Workers, "number of goroutines filling rows")
	fs.TextVar(&opt.fill, "fill", def.Fill, "fill colour, #rrggbb or r,g,b")
	fs.TextVar(&opt.background, "background", def.Background, "background colour, #rrggbb or r,g,b")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	ellipse.SetLogger(logger)

	cfg, err := opt.config(fs)
	if err != nil {
		return err
	}

	var req ellipse.Request
	switch fs.NArg() {
	case 0:
		req, err = prompt(stdin, stdout, cfg)
	case 5:
		req, err = parseRequest(fs.Args())
	default:
		fs.Usage()
		return fmt.Errorf("expected 5 arguments, got %d", fs.NArg())
	}
	if err != nil {
		return err
	}
	if req.RA < 0 || req.RB < 0 {
		return fmt.Errorf("semi-axes must be non-negative, got %d and %d", req.RA, req.RB)
	}

	name := strings.ToLower(strings.TrimSpace(opt.format))
	if name == "" && strings.EqualFold(filepath.Ext(opt.out), ".pdf") {
		name = "pdf"
	}
	if name == "pdf" {
		return refpdf.Write(opt.out, req.Ellipse(), cfg.Width, cfg.Height)
	}

	format := output.FormatForPath(opt.out)
	if name != "" {
		format, err = output.ParseFormat(name)
		if err != nil {
			return err
		}
	}

	c := ellipse.Render(cfg, req)
	return output.Save(opt.out, c, format)
}

// config combines the defaults, the configuration file and the flags
// given on the command line, in this order of increasing precedence.
func (opt *options) config(fs *flag.FlagSet) (ellipse.Config, error) {
	cfg := ellipse.DefaultConfig()
	if opt.configPath != "" {
		var err error
		cfg, err = ellipse.LoadConfig(opt.configPath)
		if err != nil {
			return ellipse.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = opt.width
		case "height":
			cfg.Height = opt.height
		case "workers":
			cfg.Workers = opt.workers
		case "fill":
			cfg.Fill = opt.fill
		case "background":
			cfg.Background = opt.background
		}
	})

	if err := cfg.Validate(); err != nil {
		return ellipse.Config{}, err
	}
	return cfg, nil
}

func prompt(stdin io.Reader, stdout io.Writer, cfg ellipse.Config) (ellipse.Request, error) {
	fmt.Fprintln(stdout, "Position of Up Left is 0,0")
	fmt.Fprintf(stdout, "Size of the Background is %d*%d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(stdout, "Position of the center is %d*%d\n", cfg.Height/2, cfg.Width/2)
	fmt.Fprintf(stdout, "Valid input: 128 64 %d %d 30\n", cfg.Height/2, cfg.Width/2)
	fmt.Fprint(stdout, "Please input ra,rb,x,y,rotate degree of your Ellipse:")

	var r ellipse.Request
	_, err := fmt.Fscan(stdin, &r.RA, &r.RB, &r.X, &r.Y, &r.Degrees)
	if err != nil {
		return ellipse.Request{}, fmt.Errorf("read ellipse parameters: %w", err)
	}
	return r, nil
}

func parseRequest(args []string) (ellipse.Request, error) {
	var ints [4]int
	names := [4]string{"ra", "rb", "x", "y"}
	for k := range ints {
		n, err := strconv.Atoi(args[k])
		if err != nil {
			return ellipse.Request{}, fmt.Errorf("invalid %s %q: %w", names[k], args[k], err)
		}
		ints[k] = n
	}
	deg, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return ellipse.Request{}, fmt.Errorf("invalid rotation %q: %w", args[4], err)
	}
	return ellipse.Request{RA: ints[0], RB: ints[1], X: ints[2], Y: ints[3], Degrees: deg}, nil
}
