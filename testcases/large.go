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

package testcases

// largeCases use the default canvas size of the command line tool.
var largeCases = []TestCase{
	{
		Name:    "default_example",
		Request: req(128, 64, 400, 400, 30),
		Width:   800,
		Height:  800,
	},
	{
		Name:    "wide",
		Request: req(90, 380, 400, 400, 0),
		Width:   800,
		Height:  800,
	},
	{
		Name:    "rotated_wide",
		Request: req(90, 380, 400, 400, 135),
		Width:   800,
		Height:  800,
	},
}
