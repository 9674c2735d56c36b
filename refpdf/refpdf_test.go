package refpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/ellipse"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "ellipse.pdf")

	e := ellipse.Request{RA: 128, RB: 64, X: 400, Y: 400, Degrees: 30}.Ellipse()
	if err := Write(fname, e, 800, 800); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 16)])
	}
}

func TestWriteDegenerate(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "point.pdf")
	e := ellipse.Ellipse{X: 16, Y: 16}
	if err := Write(fname, e, 32, 32); err != nil {
		t.Fatal(err)
	}
}

func TestWriteBadPath(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "x.pdf")
	if err := Write(fname, ellipse.Ellipse{RA: 1, RB: 2}, 8, 8); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestWriteLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "ref.pdf")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := Write(target, ellipse.Ellipse{RA: 3, RB: 5, X: 8, Y: 8}, 16, 16); err == nil {
		t.Fatal("expected an error when the destination is a directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !entries[0].IsDir() {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only the target directory", names)
	}
}
