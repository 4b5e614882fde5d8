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
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	gott "github.com/timburks/ropey/types"
)

const hints = "^A save  ^O open  ^Z undo  ^Y redo  ^L lisp  ^Q quit"

// The Screen draws the state of an Editor.
type Screen struct {
	size     gott.Size // screen size
	offset   gott.Size // first visible row and display column
	tabWidth int
}

func NewScreen(tabWidth int) *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{tabWidth: tabWidth}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e gott.Editor, c gott.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	b := e.GetBuffer()
	editSize := gott.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols}
	cursor := b.Cursor()
	cursorCol := displayColumn(b.Line(cursor.Row), cursor.Col, s.tabWidth)
	s.offset = scroll(s.offset, gott.Point{Row: cursor.Row, Col: cursorCol}, editSize)

	s.RenderBuffer(b, editSize)
	s.RenderInfoBar(b)
	s.RenderMessageBar(c)
	if c.GetMode() == gott.ModeEdit {
		termbox.SetCursor(cursorCol-s.offset.Cols, cursor.Row-s.offset.Rows)
	} else {
		prompt := promptLine(c)
		termbox.SetCursor(runewidth.StringWidth(prompt), s.size.Rows-1)
	}
	termbox.Flush()
}

func (s *Screen) RenderBuffer(b gott.Buffer, editSize gott.Size) {
	for y := 0; y < editSize.Rows; y++ {
		row := y + s.offset.Rows
		if row >= b.LineCount() {
			termbox.SetCell(0, y, '~', termbox.ColorBlue, termbox.ColorBlack)
			continue
		}
		for _, cell := range layout(b.Line(row), s.tabWidth) {
			x := cell.col - s.offset.Cols
			if x < 0 || x+cell.width > editSize.Cols {
				continue
			}
			termbox.SetCell(x, y, cell.ch, termbox.ColorWhite, termbox.ColorBlack)
		}
	}
}

func (s *Screen) RenderInfoBar(b gott.Buffer) {
	name := b.FileName()
	if name == "" {
		name = "[No Name]"
	}
	if b.Modified() {
		name += " [+]"
	}
	cursor := b.Cursor()
	text := fmt.Sprintf(" %s | Ln %d, Col %d | %s", name, cursor.Row+1, cursor.Col+1, hints)
	s.renderBar(text, s.size.Rows-2, termbox.ColorBlack, termbox.ColorWhite)
}

func (s *Screen) RenderMessageBar(c gott.Commander) {
	line := c.GetMessage()
	if c.GetMode() != gott.ModeEdit {
		line = promptLine(c)
	}
	s.renderBar(line, s.size.Rows-1, termbox.ColorWhite, termbox.ColorBlack)
}

func (s *Screen) renderBar(text string, y int, fg, bg termbox.Attribute) {
	x := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if x+w > s.size.Cols {
			break
		}
		termbox.SetCell(x, y, ch, fg, bg)
		x += w
	}
	for ; x < s.size.Cols; x++ {
		termbox.SetCell(x, y, ' ', fg, bg)
	}
}

func promptLine(c gott.Commander) string {
	if c.GetMode() == gott.ModeLisp {
		return c.GetInput()
	}
	return c.GetPrompt() + ": " + c.GetInput()
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &gott.Event{Type: gott.EventResize}
	case termbox.EventError:
		log.Printf("%+v", event.Err)
		return &gott.Event{Type: gott.EventError}
	}
	return &gott.Event{
		Type: gott.EventKey,
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyCtrlA:
		return gott.KeyCtrlA
	case termbox.KeyCtrlB:
		return gott.KeyCtrlB
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlK:
		return gott.KeyCtrlK
	case termbox.KeyCtrlL:
		return gott.KeyCtrlL
	case termbox.KeyCtrlN:
		return gott.KeyCtrlN
	case termbox.KeyCtrlO:
		return gott.KeyCtrlO
	case termbox.KeyCtrlP:
		return gott.KeyCtrlP
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyCtrlR:
		return gott.KeyCtrlR
	case termbox.KeyCtrlY:
		return gott.KeyCtrlY
	case termbox.KeyCtrlZ:
		return gott.KeyCtrlZ
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
