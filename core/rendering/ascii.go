/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rendering

import (
	"strings"

	"github.com/google/taxinomia/gridhead/core/columns"
	"github.com/google/taxinomia/gridhead/core/views"
	"github.com/mattn/go-runewidth"
)

// placedCell is a header cell positioned on the leaf column grid
type placedCell struct {
	row, col int
	rowspan  int
	colspan  int
	text     string
}

// ToAscii returns a string representation of the header with ASCII borders
func ToAscii(vm views.HeaderViewModel) string {
	placed, rows, cols := placeCells(vm)
	if rows == 0 || cols == 0 {
		return ""
	}

	widths := calculateColumnWidths(placed, cols)

	// x offset of the first character of every leaf column, plus the closing border
	xs := make([]int, cols+1)
	x := 1
	for c := 0; c < cols; c++ {
		xs[c] = x
		x += widths[c] + 1
	}
	xs[cols] = x

	canvas := make([][]rune, rows*2+1)
	for y := range canvas {
		canvas[y] = []rune(strings.Repeat(" ", x))
	}

	// Lines first, corners last so crossings always end up as '+'
	for _, p := range placed {
		left, right := xs[p.col]-1, xs[p.col+p.colspan]-1
		top, bottom := p.row*2, (p.row+p.rowspan)*2
		for i := left; i <= right; i++ {
			canvas[top][i] = '-'
			canvas[bottom][i] = '-'
		}
		for j := top; j <= bottom; j++ {
			canvas[j][left] = '|'
			canvas[j][right] = '|'
		}
	}
	for _, p := range placed {
		left, right := xs[p.col]-1, xs[p.col+p.colspan]-1
		top, bottom := p.row*2, (p.row+p.rowspan)*2
		canvas[top][left], canvas[top][right] = '+', '+'
		canvas[bottom][left], canvas[bottom][right] = '+', '+'
	}

	for _, p := range placed {
		span := xs[p.col+p.colspan] - xs[p.col] - 1
		writeText(canvas[p.row*2+1], xs[p.col], runewidth.FillRight(runewidth.Truncate(p.text, span, ""), span))
	}

	var sb strings.Builder
	for _, line := range canvas {
		for _, r := range line {
			if r != 0 {
				sb.WriteRune(r)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// placeCells puts every cell on the first free slot of its row, the same
// way a browser places table cells with rowspan and colspan.
func placeCells(vm views.HeaderViewModel) ([]placedCell, int, int) {
	rows := len(vm.Rows)
	if rows == 0 {
		return nil, 0, 0
	}
	cols := 0
	for _, cell := range vm.Rows[0].Cells {
		cols += max(cell.Colspan, 1)
	}

	occupied := make([][]bool, rows)
	for r := range occupied {
		occupied[r] = make([]bool, cols)
	}

	var placed []placedCell
	for r, row := range vm.Rows {
		c := 0
		for i := range row.Cells {
			cell := &row.Cells[i]
			for c < cols && occupied[r][c] {
				c++
			}
			if c >= cols {
				break
			}
			p := placedCell{
				row:     r,
				col:     c,
				rowspan: min(max(cell.Rowspan, 1), rows-r),
				colspan: min(max(cell.Colspan, 1), cols-c),
				text:    cellText(cell),
			}
			for j := r; j < r+p.rowspan; j++ {
				for k := c; k < c+p.colspan; k++ {
					occupied[j][k] = true
				}
			}
			placed = append(placed, p)
			c += p.colspan
		}
	}
	return placed, rows, cols
}

// calculateColumnWidths calculates the width needed for each leaf column.
// Spanning cells that do not fit widen the last column they cover.
func calculateColumnWidths(placed []placedCell, cols int) []int {
	widths := make([]int, cols)

	// Set minimum width to 1
	for i := range widths {
		widths[i] = 1
	}

	for _, p := range placed {
		if p.colspan == 1 {
			widths[p.col] = max(widths[p.col], runewidth.StringWidth(p.text))
		}
	}
	for _, p := range placed {
		if p.colspan == 1 {
			continue
		}
		available := p.colspan - 1
		for c := p.col; c < p.col+p.colspan; c++ {
			available += widths[c]
		}
		if need := runewidth.StringWidth(p.text); need > available {
			widths[p.col+p.colspan-1] += need - available
		}
	}
	return widths
}

func cellText(cell *views.HeaderCellView) string {
	switch cell.Kind {
	case columns.KindOrder:
		return "#"
	case columns.KindCheckbox:
		return "[ ]"
	}
	text := cell.Label
	if cell.Hidden {
		text = "(" + text + ")"
	}
	return text
}

// writeText copies text onto a canvas line; wide runes take two slots, the
// second one is left as 0 and skipped on output.
func writeText(line []rune, x int, text string) {
	for _, r := range text {
		if x >= len(line) {
			return
		}
		line[x] = r
		x++
		if runewidth.RuneWidth(r) == 2 && x < len(line) {
			line[x] = 0
			x++
		}
	}
}
