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

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// scan computes a row and column the slow way, by walking the text.
func scan(text string, index int) (row, col int) {
	seen := 0
	for _, c := range text {
		if seen == index {
			break
		}
		if c == '\n' {
			row++
			col = 0
		} else {
			col++
		}
		seen++
	}
	return row, col
}

func TestLineTableMatchesScan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[ab\n世]{0,30}`).Draw(t, "text")
		table := newLineTable(text)
		n := len([]rune(text))
		for i := 0; i <= n; i++ {
			row, col := table.locate(i)
			wantRow, wantCol := scan(text, i)
			if row != wantRow || col != wantCol {
				t.Fatalf("locate(%d) = (%d, %d), want (%d, %d)", i, row, col, wantRow, wantCol)
			}
		}
	})
}

func TestLineTableTracksEdits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runes := []rune(rapid.StringMatching(`[ab\n]{0,20}`).Draw(t, "text"))
		table := newLineTable(string(runes))
		for k, n := 0, rapid.IntRange(1, 10).Draw(t, "edits"); k < n; k++ {
			i := rapid.IntRange(0, len(runes)).Draw(t, "at")
			if rapid.Bool().Draw(t, "insert") {
				text := rapid.StringMatching(`[xy\n]{0,5}`).Draw(t, "inserted")
				table = table.inserted(i, text)
				runes = slices.Insert(runes, i, []rune(text)...)
			} else {
				end := rapid.IntRange(i, len(runes)).Draw(t, "end")
				table = table.deleted(i, end)
				runes = slices.Delete(runes, i, end)
			}
			want := newLineTable(string(runes))
			if !slices.Equal(table, want) {
				t.Fatalf("table %v, want %v for %q", table, want, string(runes))
			}
		}
	})
}
