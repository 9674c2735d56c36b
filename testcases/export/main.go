// Command export writes the test case definitions to JSON, for use by
// external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/ellipse"
	"seehuhn.de/go/ellipse/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string  `json:"name"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	RA      int     `json:"ra"`
	RB      int     `json:"rb"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Degrees float64 `json:"degrees"`
	Theta   float64 `json:"theta"` // radians, after normalisation
	Pixels  int     `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	e := tc.Ellipse()

	// the normalised axes are what the membership test uses
	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   tc.Width,
		Height:  tc.Height,
		RA:      e.RA,
		RB:      e.RB,
		X:       e.X,
		Y:       e.Y,
		Degrees: tc.Request.Degrees,
		Theta:   e.Theta,
	}

	var s ellipse.ScanConverter
	s.Spans(e, tc.Width, tc.Height, func(i, jMin, jMax int) {
		jtc.Pixels += jMax - jMin
	})
	return jtc
}
