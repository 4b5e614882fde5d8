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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/ropey/rope"
	gott "github.com/timburks/ropey/types"
)

func newTestBuffer(text string) *Buffer {
	b := NewBuffer(DefaultOptions())
	b.Load(text)
	return b
}

// moveTo places the cursor at index by walking right from the start.
func moveTo(b *Buffer, index int) {
	b.MoveToStart()
	for b.CursorIndex() < index {
		b.MoveRight()
	}
}

func TestInsertIntoEmptyBuffer(t *testing.T) {
	b := NewBuffer(DefaultOptions())
	b.InsertAtCursor("hello\nworld")
	assert.Equal(t, "hello\nworld", b.Text())
	assert.Equal(t, 11, b.Length())
	assert.Equal(t, 11, b.CursorIndex())
	assert.Equal(t, gott.Point{Row: 1, Col: 5}, b.Cursor())
}

func TestInsertNormalisesEscapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"newline", `hello\nworld`, "hello\nworld"},
		{"tab", `a\tb`, "a\tb"},
		{"carriage return", `a\rb`, "a\rb"},
		{"backslash", `a\\b`, `a\b`},
		{"escaped backslash before n", `a\\nb`, `a\nb`},
		{"real newline untouched", "a\nb", "a\nb"},
		{"lone backslash", `a\`, `a\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(DefaultOptions())
			b.InsertAtCursor(tt.input)
			assert.Equal(t, tt.expected, b.Text())
			assert.Equal(t, len([]rune(tt.expected)), b.CursorIndex())
		})
	}
}

func TestDeleteAtCursor(t *testing.T) {
	b := newTestBuffer("hello")
	b.MoveToEnd()
	b.DeleteAtCursor(2)
	assert.Equal(t, "hel", b.Text())
	assert.Equal(t, 3, b.CursorIndex())

	b.DeleteAtCursor(10)
	assert.Equal(t, "", b.Text())
	assert.Equal(t, 0, b.CursorIndex())

	b.DeleteAtCursor(1)
	assert.Equal(t, "", b.Text())
}

func TestDeleteJoinsLines(t *testing.T) {
	b := newTestBuffer("ab\ncd")
	moveTo(b, 3)
	require.Equal(t, gott.Point{Row: 1, Col: 0}, b.Cursor())
	b.DeleteAtCursor(1)
	assert.Equal(t, "abcd", b.Text())
	assert.Equal(t, gott.Point{Row: 0, Col: 2}, b.Cursor())
	assert.Equal(t, 1, b.LineCount())
}

func TestHorizontalMotionStopsAtEnds(t *testing.T) {
	b := newTestBuffer("ab")
	b.MoveLeft()
	assert.Equal(t, 0, b.CursorIndex())
	b.MoveRight()
	b.MoveRight()
	b.MoveRight()
	assert.Equal(t, 2, b.CursorIndex())
	b.MoveCursor(gott.MoveLeft)
	assert.Equal(t, 1, b.CursorIndex())
}

func TestVerticalMotion(t *testing.T) {
	b := newTestBuffer("abcdef\nab\nabcdef")
	moveTo(b, 5)

	b.MoveUp()
	assert.Equal(t, gott.Point{Row: 0, Col: 5}, b.Cursor(), "up at row 0 is a no-op")

	b.MoveDown()
	assert.Equal(t, gott.Point{Row: 1, Col: 2}, b.Cursor(), "column clamps to a shorter line")
	assert.Equal(t, 9, b.CursorIndex())

	b.MoveDown()
	assert.Equal(t, gott.Point{Row: 2, Col: 2}, b.Cursor())
	assert.Equal(t, 12, b.CursorIndex())

	b.MoveDown()
	assert.Equal(t, gott.Point{Row: 2, Col: 2}, b.Cursor(), "down at the last row is a no-op")

	b.MoveToLineEnd()
	b.MoveCursor(gott.MoveUp)
	b.MoveCursor(gott.MoveUp)
	assert.Equal(t, gott.Point{Row: 0, Col: 2}, b.Cursor())
}

func TestVerticalMotionPreservesColumn(t *testing.T) {
	b := newTestBuffer("hello\nworld!\nfoo")
	moveTo(b, 3)
	b.MoveDown()
	assert.Equal(t, gott.Point{Row: 1, Col: 3}, b.Cursor())
	b.MoveDown()
	assert.Equal(t, gott.Point{Row: 2, Col: 3}, b.Cursor())
	b.MoveUp()
	assert.Equal(t, gott.Point{Row: 1, Col: 3}, b.Cursor())
}

func TestTrailingNewlineStartsALine(t *testing.T) {
	b := newTestBuffer("abc\n")
	b.MoveToEnd()
	assert.Equal(t, 2, b.LineCount())
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, b.Cursor())
	assert.Equal(t, "", b.Line(1))
	b.MoveUp()
	assert.Equal(t, gott.Point{Row: 0, Col: 0}, b.Cursor())
	b.MoveDown()
	assert.Equal(t, 4, b.CursorIndex())
}

func TestLineStartAndEnd(t *testing.T) {
	b := newTestBuffer("hello\nworld")
	moveTo(b, 2)
	b.MoveToLineEnd()
	assert.Equal(t, 5, b.CursorIndex())
	b.MoveToLineStart()
	assert.Equal(t, 0, b.CursorIndex())

	moveTo(b, 8)
	b.MoveToLineEnd()
	assert.Equal(t, 11, b.CursorIndex())
	b.MoveToLineStart()
	assert.Equal(t, 6, b.CursorIndex())
}

func TestMoveWordRight(t *testing.T) {
	b := newTestBuffer("ab  cd")
	b.MoveWordRight()
	assert.Equal(t, 2, b.CursorIndex())
	b.MoveWordRight()
	assert.Equal(t, 6, b.CursorIndex())
	b.MoveWordRight()
	assert.Equal(t, 6, b.CursorIndex())
}

func TestMoveWordLeft(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		from     int
		expected int
	}{
		{"at start", "ab cd", 0, 0},
		{"from end", "ab cd", 5, 3},
		{"from word start", "ab cd", 3, 0},
		{"inside word", "abc def", 6, 4},
		{"across newline", "ab\n  cd", 5, 0},
		{"only spaces", "   x", 3, 0},
		{"multibyte", "héllo wörld", 11, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(tt.text)
			moveTo(b, tt.from)
			b.MoveWordLeft()
			assert.Equal(t, tt.expected, b.CursorIndex())
		})
	}
}

func TestInsertNewlineAbove(t *testing.T) {
	b := newTestBuffer("hello\nworld")
	moveTo(b, 8)
	b.InsertNewlineAbove()
	assert.Equal(t, "hello\n\nworld", b.Text())
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, b.Cursor())
	assert.Equal(t, 6, b.CursorIndex())

	require.True(t, b.Undo())
	assert.Equal(t, "hello\nworld", b.Text())
}

func TestInsertNewlineBelow(t *testing.T) {
	b := newTestBuffer("hello\nworld")
	moveTo(b, 2)
	b.InsertNewlineBelow()
	assert.Equal(t, "hello\n\nworld", b.Text())
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, b.Cursor())

	require.True(t, b.Undo())
	assert.Equal(t, "hello\nworld", b.Text())
}

func TestDeleteCurrentLine(t *testing.T) {
	b := newTestBuffer("hello\nworld")
	b.DeleteCurrentLine()
	assert.Equal(t, "world", b.Text())
	assert.Equal(t, 0, b.CursorIndex())
}

func TestDeleteLastLine(t *testing.T) {
	b := newTestBuffer("hello\nworld")
	moveTo(b, 8)
	b.DeleteCurrentLine()
	assert.Equal(t, "hello\n", b.Text())
	assert.Equal(t, 6, b.CursorIndex())
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, b.Cursor())
}

func TestDeleteCurrentLineOfEmptyBuffer(t *testing.T) {
	b := NewBuffer(DefaultOptions())
	b.DeleteCurrentLine()
	assert.Equal(t, "", b.Text())
	assert.Equal(t, 0, b.CursorIndex())
}

func TestUndoRedo(t *testing.T) {
	b := newTestBuffer("hello")
	b.MoveToEnd()
	b.InsertAtCursor(" world")
	require.True(t, b.Undo())
	assert.Equal(t, "hello", b.Text())
	assert.Equal(t, 5, b.CursorIndex(), "cursor is clamped to the restored text")
	require.True(t, b.Redo())
	assert.Equal(t, "hello world", b.Text())
	assert.False(t, b.Redo())
}

func TestUndoOnEmptyHistory(t *testing.T) {
	b := newTestBuffer("abc")
	assert.False(t, b.Undo())
	assert.False(t, b.Redo())
	assert.Equal(t, "abc", b.Text())
}

func TestNewEditClearsRedo(t *testing.T) {
	b := NewBuffer(DefaultOptions())
	b.InsertAtCursor("a")
	b.InsertAtCursor("b")
	require.True(t, b.Undo())
	b.InsertAtCursor("c")
	assert.False(t, b.Redo())
	assert.Equal(t, "ac", b.Text())
}

func TestUndoLimit(t *testing.T) {
	b := NewBuffer(DefaultOptions())
	for i := 0; i < 1001; i++ {
		b.InsertAtCursor("x")
	}
	undone := 0
	for i := 0; i < 1001; i++ {
		if b.Undo() {
			undone++
		}
	}
	assert.Equal(t, 1000, undone)
	assert.Equal(t, "x", b.Text())
}

func TestSnapshotsShareStructure(t *testing.T) {
	b := newTestBuffer("hello world")
	before := b.Root()
	b.MoveToEnd()
	b.InsertAtCursor("!")
	assert.Equal(t, "hello world", rope.Flatten(before))
	require.True(t, b.Undo())
	assert.Same(t, before, b.Root())
}

func TestDeepEditsAreRebalanced(t *testing.T) {
	options := DefaultOptions()
	options.MaxLeaf = 16
	b := NewBuffer(options)
	for i := 0; i < 2000; i++ {
		b.InsertAtCursor("ab")
		b.MoveLeft()
	}
	assert.Equal(t, 4000, b.Length())
	assert.Less(t, rope.Depth(b.Root()), 40)
	assert.Equal(t, strings.Repeat("a", 2000)+strings.Repeat("b", 2000), b.Text())
}

func TestUnbalancedWhenRebalanceIsOff(t *testing.T) {
	options := DefaultOptions()
	options.Rebalance = false
	b := NewBuffer(options)
	for i := 0; i < 100; i++ {
		b.InsertAtCursor("x")
	}
	assert.GreaterOrEqual(t, rope.Depth(b.Root()), 99)
}

func TestMultibyteRowsAndColumns(t *testing.T) {
	b := NewBuffer(DefaultOptions())
	b.InsertAtCursor("日本語\nénorme")
	assert.Equal(t, 10, b.Length())
	assert.Equal(t, gott.Point{Row: 1, Col: 6}, b.Cursor())
	b.MoveUp()
	assert.Equal(t, gott.Point{Row: 0, Col: 3}, b.Cursor())
	assert.Equal(t, "日本語", b.Line(0))
	assert.Equal(t, "énorme", b.Line(1))
}

func TestLoadResetsState(t *testing.T) {
	b := NewBuffer(DefaultOptions())
	b.InsertAtCursor("scratch")
	b.Load("new\ntext")
	assert.Equal(t, 0, b.CursorIndex())
	assert.False(t, b.Modified())
	assert.False(t, b.Undo())
	assert.Equal(t, "new\ntext", b.Text())
}
