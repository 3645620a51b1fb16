/*
Copyright © 2026 the GridProbe authors.
This file is part of GridProbe.

GridProbe is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GridProbe is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GridProbe.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command gridprobe is a command-line tool for exploratory analysis of a
// single 3-dimensional gridded weather dataset.
package main

import (
	"fmt"
	"os"

	"github.com/spatialgrid/gridprobe/gridprobeutil"
)

func main() {
	if err := gridprobeutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
