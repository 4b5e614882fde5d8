//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"github.com/mattn/go-runewidth"
	gott "github.com/timburks/ropey/types"
)

// A cell is one character placed at a display column.
type cell struct {
	ch    rune
	col   int
	width int
}

// layout places the characters of a line on display columns. Tabs advance
// to the next multiple of tabWidth and wide characters take two columns.
func layout(line string, tabWidth int) []cell {
	cells := make([]cell, 0, len(line))
	col := 0
	for _, ch := range line {
		if ch == '\t' {
			next := (col/tabWidth + 1) * tabWidth
			for ; col < next; col++ {
				cells = append(cells, cell{ch: ' ', col: col, width: 1})
			}
			continue
		}
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		cells = append(cells, cell{ch: ch, col: col, width: w})
		col += w
	}
	return cells
}

// displayColumn returns the display column of the character at col.
func displayColumn(line string, col int, tabWidth int) int {
	x := 0
	i := 0
	for _, ch := range line {
		if i == col {
			break
		}
		if ch == '\t' {
			x = (x/tabWidth + 1) * tabWidth
		} else {
			x += runewidth.RuneWidth(ch)
		}
		i++
	}
	return x
}

// scroll moves offset the least distance that keeps cursor inside a view of
// the given size.
func scroll(offset gott.Size, cursor gott.Point, view gott.Size) gott.Size {
	if cursor.Row < offset.Rows {
		offset.Rows = cursor.Row
	}
	if view.Rows > 0 && cursor.Row >= offset.Rows+view.Rows {
		offset.Rows = cursor.Row - view.Rows + 1
	}
	if cursor.Col < offset.Cols {
		offset.Cols = cursor.Col
	}
	if view.Cols > 0 && cursor.Col >= offset.Cols+view.Cols {
		offset.Cols = cursor.Col - view.Cols + 1
	}
	return offset
}
