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
package types

// Commander modes
const (
	ModeEdit   = 0
	ModePrompt = 1
	ModeLisp   = 2
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Prompt purposes
const (
	PromptNone   = 0
	PromptSaveAs = 1
	PromptOpen   = 2
)

// A Point is a zero-based row and column, counted in characters.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Buffer is the editing surface the commander, operations and screen see.
type Buffer interface {
	InsertAtCursor(text string)
	DeleteAtCursor(count int)
	MoveCursor(direction int)
	MoveToLineStart()
	MoveToLineEnd()
	MoveToStart()
	MoveToEnd()
	MoveWordLeft()
	MoveWordRight()
	InsertNewlineAbove()
	InsertNewlineBelow()
	DeleteCurrentLine()
	Undo() bool
	Redo() bool

	Text() string
	Length() int
	CursorIndex() int
	Cursor() Point
	LineCount() int
	Line(row int) string
	FileName() string
	Modified() bool
}

type Editor interface {
	GetBuffer() Buffer
	Perform(op Operation, multiplier int)
	Repeat()
	ReadFile(path string) error
	WriteFile(path string) error
	Save() error
	SaveAs(path string) error
	Diff() (string, error)
}

// An Operation is a repeatable editing command.
type Operation interface {
	Perform(b Buffer, multiplier int)
}

type Commander interface {
	GetMode() int
	GetPrompt() string
	GetInput() string
	GetMessage() string
}

// Events
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 3
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Key int

// Keys
const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlF
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlY
	KeyCtrlZ
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeySpace
	KeyTab
)
