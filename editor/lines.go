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
package editor

import "sort"

// A lineTable holds the character offset at which each line starts.
// The first entry is always 0; a trailing newline starts a final empty
// line. Edits update the table in place of rescanning the buffer.
type lineTable []int

func newLineTable(text string) lineTable {
	t := lineTable{0}
	i := 0
	for _, c := range text {
		i++
		if c == '\n' {
			t = append(t, i)
		}
	}
	return t
}

func (t lineTable) count() int {
	return len(t)
}

// locate converts a character offset into a row and column.
func (t lineTable) locate(index int) (row, col int) {
	row = sort.Search(len(t), func(r int) bool { return t[r] > index }) - 1
	if row < 0 {
		row = 0
	}
	return row, index - t[row]
}

func (t lineTable) start(row int) int {
	return t[row]
}

// end returns the offset of the newline that ends row, or length when
// row is the last line.
func (t lineTable) end(row, length int) int {
	if row+1 < len(t) {
		return t[row+1] - 1
	}
	return length
}

// inserted returns the table after text is inserted at index.
func (t lineTable) inserted(index int, text string) lineTable {
	k := sort.Search(len(t), func(r int) bool { return t[r] > index })
	var added []int
	n := 0
	for _, c := range text {
		n++
		if c == '\n' {
			added = append(added, index+n)
		}
	}
	result := make(lineTable, 0, len(t)+len(added))
	result = append(result, t[:k]...)
	result = append(result, added...)
	for _, s := range t[k:] {
		result = append(result, s+n)
	}
	return result
}

// deleted returns the table after the characters in [start, end) are removed.
func (t lineTable) deleted(start, end int) lineTable {
	d := end - start
	if d <= 0 {
		return t
	}
	result := make(lineTable, 0, len(t))
	for _, s := range t {
		switch {
		case s <= start:
			result = append(result, s)
		case s > end:
			result = append(result, s-d)
		}
	}
	return result
}
