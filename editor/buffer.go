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
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/timburks/ropey/history"
	"github.com/timburks/ropey/rope"
	gott "github.com/timburks/ropey/types"
)

// Options control how buffers store text and how much history they keep.
type Options struct {
	UndoLimit int  // snapshots kept for undo
	MaxLeaf   int  // fragment size used when rebalancing
	Rebalance bool // rebalance ropes that grow too deep
}

func DefaultOptions() Options {
	return Options{
		UndoLimit: history.DefaultLimit,
		MaxLeaf:   rope.DefaultMaxLeaf,
		Rebalance: true,
	}
}

// A Buffer holds the text being edited and a cursor into it.
// The cursor is a character offset; its row and column are derived
// from the line table after every change.
type Buffer struct {
	root     *rope.Node
	cursor   int
	row      int
	col      int
	fileName string
	modified bool
	lines    lineTable
	history  *history.History
	options  Options
}

func NewBuffer(options Options) *Buffer {
	return &Buffer{
		root:    rope.NewLeaf(""),
		lines:   newLineTable(""),
		history: history.NewHistory(options.UndoLimit),
		options: options,
	}
}

// Load replaces the contents of the buffer with text held in a single
// leaf. History is discarded and the cursor returns to the start.
func (b *Buffer) Load(text string) {
	b.root = rope.NewLeaf(text)
	b.lines = newLineTable(text)
	b.history.Clear()
	b.cursor = 0
	b.modified = false
	b.updateCursorPosition()
}

func (b *Buffer) FileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) Modified() bool {
	return b.modified
}

func (b *Buffer) markSaved() {
	b.modified = false
}

// Root returns the current rope.
func (b *Buffer) Root() *rope.Node {
	return b.root
}

func (b *Buffer) History() *history.History {
	return b.history
}

func (b *Buffer) Text() string {
	return rope.Flatten(b.root)
}

func (b *Buffer) Length() int {
	return rope.Length(b.root)
}

func (b *Buffer) CursorIndex() int {
	return b.cursor
}

func (b *Buffer) Cursor() gott.Point {
	return gott.Point{Row: b.row, Col: b.col}
}

func (b *Buffer) LineCount() int {
	return b.lines.count()
}

// Line returns the text of row without its newline.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= b.lines.count() {
		return ""
	}
	start := b.lines.start(row)
	end := b.lines.end(row, b.Length())
	_, rest := rope.Split(b.root, start)
	line, _ := rope.Split(rest, end-start)
	return rope.Flatten(line)
}

func (b *Buffer) lineLength(row int) int {
	return b.lines.end(row, b.Length()) - b.lines.start(row)
}

// Editing. Each command saves a snapshot before it changes anything.

var escapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t", `\r`, "\r")

// InsertAtCursor inserts text at the cursor and moves the cursor past it.
// The two-character sequences \n, \t, \r and \\ are replaced by the
// characters they name.
func (b *Buffer) InsertAtCursor(text string) {
	b.snapshot()
	b.insert(escapes.Replace(text))
}

// DeleteAtCursor removes up to count characters before the cursor.
func (b *Buffer) DeleteAtCursor(count int) {
	b.snapshot()
	count = max(count, 0)
	end := min(b.cursor, b.Length())
	start := max(0, b.cursor-count)
	b.delete(start, end)
	b.cursor = min(start, b.Length())
	b.updateCursorPosition()
}

// InsertNewlineAbove opens an empty line above the cursor's line and
// leaves the cursor on it.
func (b *Buffer) InsertNewlineAbove() {
	b.snapshot()
	b.MoveToLineStart()
	b.insert("\n")
	b.cursor--
	b.updateCursorPosition()
}

// InsertNewlineBelow opens an empty line below the cursor's line and
// leaves the cursor on it.
func (b *Buffer) InsertNewlineBelow() {
	b.snapshot()
	b.MoveToLineEnd()
	b.insert("\n")
}

// DeleteCurrentLine removes the cursor's line and its newline. On the
// last line there is no newline after it to remove.
func (b *Buffer) DeleteCurrentLine() {
	b.snapshot()
	start := b.lines.start(b.row)
	end := b.lines.end(b.row, b.Length())
	if b.row+1 < b.lines.count() {
		end++
	}
	b.delete(start, end)
	b.cursor = min(start, b.Length())
	b.updateCursorPosition()
}

// Undo restores the state saved before the most recent edit.
// It returns false when there is nothing to undo.
func (b *Buffer) Undo() bool {
	root, ok := b.history.Undo(b.root)
	if ok {
		b.restore(root)
	}
	return ok
}

// Redo reapplies the most recently undone edit.
// It returns false when there is nothing to redo.
func (b *Buffer) Redo() bool {
	root, ok := b.history.Redo(b.root)
	if ok {
		b.restore(root)
	}
	return ok
}

// Cursor movement. Moving past either end of the buffer does nothing.

func (b *Buffer) MoveCursor(direction int) {
	switch direction {
	case gott.MoveLeft:
		b.MoveLeft()
	case gott.MoveRight:
		b.MoveRight()
	case gott.MoveUp:
		b.MoveUp()
	case gott.MoveDown:
		b.MoveDown()
	}
}

func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
		b.updateCursorPosition()
	}
}

func (b *Buffer) MoveRight() {
	if b.cursor < b.Length() {
		b.cursor++
		b.updateCursorPosition()
	}
}

// MoveUp keeps the column unless the line above is shorter.
func (b *Buffer) MoveUp() {
	if b.row == 0 {
		return
	}
	b.moveToRow(b.row - 1)
}

// MoveDown keeps the column unless the line below is shorter.
func (b *Buffer) MoveDown() {
	if b.row+1 >= b.lines.count() {
		return
	}
	b.moveToRow(b.row + 1)
}

func (b *Buffer) moveToRow(row int) {
	col := min(b.col, b.lineLength(row))
	b.cursor = b.lines.start(row) + col
	b.updateCursorPosition()
}

func (b *Buffer) MoveToLineStart() {
	b.cursor = b.lines.start(b.row)
	b.updateCursorPosition()
}

func (b *Buffer) MoveToLineEnd() {
	b.cursor = b.lines.end(b.row, b.Length())
	b.updateCursorPosition()
}

func (b *Buffer) MoveToStart() {
	b.cursor = 0
	b.updateCursorPosition()
}

func (b *Buffer) MoveToEnd() {
	b.cursor = b.Length()
	b.updateCursorPosition()
}

// MoveWordRight skips whitespace and then the word after it.
func (b *Buffer) MoveWordRight() {
	n := b.Length()
	i := b.cursor
	for i < n && unicode.IsSpace(b.charAt(i)) {
		i++
	}
	for i < n && !unicode.IsSpace(b.charAt(i)) {
		i++
	}
	b.cursor = i
	b.updateCursorPosition()
}

// MoveWordLeft skips whitespace before the cursor and lands on the start
// of the word before it.
func (b *Buffer) MoveWordLeft() {
	if b.cursor == 0 {
		return
	}
	i := b.cursor - 1
	for i > 0 && unicode.IsSpace(b.charAt(i)) {
		i--
	}
	for i > 0 && !unicode.IsSpace(b.charAt(i-1)) {
		i--
	}
	b.cursor = i
	b.updateCursorPosition()
}

func (b *Buffer) charAt(i int) rune {
	c, err := rope.CharAt(b.root, i)
	if err != nil {
		log.Printf("%+v", err)
		return utf8.RuneError
	}
	return c
}

func (b *Buffer) snapshot() {
	b.history.Snapshot(b.root)
}

func (b *Buffer) insert(text string) {
	root, err := rope.Insert(b.root, b.cursor, text)
	if err != nil {
		log.Printf("%+v", err)
		return
	}
	b.lines = b.lines.inserted(b.cursor, text)
	b.setRoot(root)
	b.cursor += utf8.RuneCountInString(text)
	b.updateCursorPosition()
}

func (b *Buffer) delete(start, end int) {
	root, err := rope.Delete(b.root, start, end)
	if err != nil {
		log.Printf("%+v", err)
		return
	}
	b.lines = b.lines.deleted(start, end)
	b.setRoot(root)
}

func (b *Buffer) setRoot(root *rope.Node) {
	if b.options.Rebalance && rope.NeedsRebalance(root) {
		root = rope.Rebalance(root, b.options.MaxLeaf)
	}
	b.root = root
	b.modified = true
}

// restore installs a root taken from history.
func (b *Buffer) restore(root *rope.Node) {
	b.root = root
	b.lines = newLineTable(rope.Flatten(root))
	b.modified = true
	b.cursor = min(b.cursor, b.Length())
	b.updateCursorPosition()
}

// updateCursorPosition derives the row and column from the cursor index.
func (b *Buffer) updateCursorPosition() {
	b.row, b.col = b.lines.locate(b.cursor)
}
